package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/middleware"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/repo"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type PageReq struct {
	Skip  int `form:"skip,default=0" json:"skip" binding:"min=0" example:"0"`
	Limit int `form:"limit,default=100" json:"limit" binding:"min=1,max=1000" example:"100"`
}

type CreateOpts struct {
	AllowDuplicates bool `form:"allow_duplicates,default=false" json:"allow_duplicates" example:"false"`
}

func bindPage(c *gin.Context) (PageReq, bool) {
	req := PageReq{Limit: repo.DefaultListLimit}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return req, false
	}
	return req, true
}

func bindCreateOpts(c *gin.Context) (CreateOpts, bool) {
	opts := CreateOpts{}
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return opts, false
	}
	return opts, true
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return 0, false
	}
	return uint(id), true
}

// principal is nil when the route does not require authentication and none was sent.
func principal(c *gin.Context) *model.User {
	v, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}

func apiProject(c *gin.Context) (*model.Project, bool) {
	p, ok := c.MustGet(middleware.ProjectKey).(*model.Project)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("project not found")))
	}
	return p, ok
}

func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// writeError maps service errors onto HTTP responses.
func writeError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(notFoundMsg))
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Not authenticated"))
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Could not validate credentials"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Incorrect email or password"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr("The user doesn't have enough privileges"))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, serializer.ConflictErr(""))
	case errors.Is(err, service.ErrBadReference):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Service not found in this project", err))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
