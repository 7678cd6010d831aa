package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Returns the caller's project with the same name (200) unless allow_duplicates is set; otherwise creates one with a fresh API key (201)
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			allow_duplicates	query	boolean						false	"Always insert a new row"
//	@Param			payload				body	service.CreateProjectInput	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/manage/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	opts, ok := bindCreateOpts(c)
	if !ok {
		return
	}
	req := service.CreateProjectInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, created, err := h.svc.Create(c.Request.Context(), principal(c), req, opts.AllowDuplicates)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(createdStatus(created), serializer.Response{Data: p})
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		projects
//	@Produce	json
//	@Param		skip	query	integer	false	"Rows to skip"
//	@Param		limit	query	integer	false	"Max rows, default 100, max 1000"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/manage/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	projects, err := h.svc.List(c.Request.Context(), principal(c), page.Skip, page.Limit)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Returns the project with its services, bookings and subscribers
//	@Tags			projects
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// UpdateProject godoc
//
//	@Summary	Update project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Param		project_id	path	integer						true	"Project ID"
//	@Param		payload		body	service.UpdateProjectInput	true	"UpdateProject payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := service.UpdateProjectInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	p, err := h.svc.Update(c.Request.Context(), principal(c), id, req)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Deletes the project with its services, bookings and subscribers
//	@Tags			projects
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.Status(http.StatusNoContent)
}
