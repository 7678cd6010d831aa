package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	Register a user. The very first user needs no token and becomes a superuser; afterwards only superusers may create users.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.RegisterUserInput	true	"CreateUser payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Failure		401	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Failure		409	{object}	serializer.Response
//	@Router			/manage/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	req := service.RegisterUserInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), principal(c), req)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: u})
}

// GetMe godoc
//
//	@Summary	Current user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Router		/manage/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: principal(c)})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Superusers see every user, everyone else only themselves
//	@Tags			users
//	@Produce		json
//	@Param			skip	query	integer	false	"Rows to skip"
//	@Param			limit	query	integer	false	"Max rows, default 100, max 1000"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.User}
//	@Router			/manage/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	users, err := h.svc.List(c.Request.Context(), principal(c), page.Skip, page.Limit)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: users})
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		user_id	path	integer	true	"User ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: u})
}

// UpdateUser godoc
//
//	@Summary	Update user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user_id	path	integer					true	"User ID"
//	@Param		payload	body	service.UpdateUserInput	true	"UpdateUser payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	req := service.UpdateUserInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	u, err := h.svc.Update(c.Request.Context(), principal(c), id, req)
	if err != nil {
		writeError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: u})
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Description	Deletes the user together with all of their projects
//	@Tags			users
//	@Param			user_id	path	integer	true	"User ID"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}
