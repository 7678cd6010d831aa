package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

// ServiceHandler serves a project's bookable services.
type ServiceHandler struct {
	svc service.CatalogService
}

func NewServiceHandler(s service.CatalogService) *ServiceHandler {
	return &ServiceHandler{svc: s}
}

// CreateService godoc
//
//	@Summary		Create service
//	@Description	Returns the project's service with the same name (200) unless allow_duplicates is set
//	@Tags			services
//	@Accept			json
//	@Produce		json
//	@Param			project_id			path	integer						true	"Project ID"
//	@Param			allow_duplicates	query	boolean						false	"Always insert a new row"
//	@Param			payload				body	service.CreateServiceInput	true	"CreateService payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Service}
//	@Success		200	{object}	serializer.Response{data=model.Service}
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/projects/{project_id}/services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	opts, ok := bindCreateOpts(c)
	if !ok {
		return
	}
	req := service.CreateServiceInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, created, err := h.svc.Create(c.Request.Context(), principal(c), projectID, req, opts.AllowDuplicates)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.JSON(createdStatus(created), serializer.Response{Data: s})
}

// ListServices godoc
//
//	@Summary	List services
//	@Tags		services
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		skip		query	integer	false	"Rows to skip"
//	@Param		limit		query	integer	false	"Max rows, default 100, max 1000"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Service}
//	@Router		/manage/projects/{project_id}/services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := h.svc.List(c.Request.Context(), principal(c), projectID, page.Skip, page.Limit)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetService godoc
//
//	@Summary	Get service
//	@Tags		services
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		service_id	path	integer	true	"Service ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Service}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/services/{service_id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "service_id")
	if !ok {
		return
	}
	s, err := h.svc.Get(c.Request.Context(), principal(c), projectID, id)
	if err != nil {
		writeError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: s})
}

// UpdateService godoc
//
//	@Summary	Update service
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Param		project_id	path	integer						true	"Project ID"
//	@Param		service_id	path	integer						true	"Service ID"
//	@Param		payload		body	service.UpdateServiceInput	true	"UpdateService payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Service}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/services/{service_id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "service_id")
	if !ok {
		return
	}
	req := service.UpdateServiceInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	s, err := h.svc.Update(c.Request.Context(), principal(c), projectID, id, req)
	if err != nil {
		writeError(c, err, "Service not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: s})
}

// DeleteService godoc
//
//	@Summary		Delete service
//	@Description	Deletes the service and its bookings
//	@Tags			services
//	@Param			project_id	path	integer	true	"Project ID"
//	@Param			service_id	path	integer	true	"Service ID"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/projects/{project_id}/services/{service_id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "service_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal(c), projectID, id); err != nil {
		writeError(c, err, "Service not found")
		return
	}
	c.Status(http.StatusNoContent)
}
