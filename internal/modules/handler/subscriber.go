package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type SubscriberHandler struct {
	svc service.SubscriberService
}

func NewSubscriberHandler(s service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{svc: s}
}

// ListSubscribers godoc
//
//	@Summary	List subscribers
//	@Tags		subscribers
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		skip		query	integer	false	"Rows to skip"
//	@Param		limit		query	integer	false	"Max rows, default 100, max 1000"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Subscriber}
//	@Router		/manage/projects/{project_id}/subscribers [get]
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
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

// GetSubscriber godoc
//
//	@Summary	Get subscriber
//	@Tags		subscribers
//	@Produce	json
//	@Param		project_id		path	integer	true	"Project ID"
//	@Param		subscriber_id	path	integer	true	"Subscriber ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Subscriber}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/subscribers/{subscriber_id} [get]
func (h *SubscriberHandler) GetSubscriber(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "subscriber_id")
	if !ok {
		return
	}
	s, err := h.svc.Get(c.Request.Context(), principal(c), projectID, id)
	if err != nil {
		writeError(c, err, "Subscriber not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: s})
}

// DeleteSubscriber godoc
//
//	@Summary	Delete subscriber
//	@Tags		subscribers
//	@Param		project_id		path	integer	true	"Project ID"
//	@Param		subscriber_id	path	integer	true	"Subscriber ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/subscribers/{subscriber_id} [delete]
func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "subscriber_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal(c), projectID, id); err != nil {
		writeError(c, err, "Subscriber not found")
		return
	}
	c.Status(http.StatusNoContent)
}
