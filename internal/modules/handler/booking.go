package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{svc: s}
}

// CreateBooking godoc
//
//	@Summary		Create booking
//	@Description	Returns the booking for the same service and time (200) unless allow_duplicates is set. The service must belong to the project.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			project_id			path	integer						true	"Project ID"
//	@Param			allow_duplicates	query	boolean						false	"Always insert a new row"
//	@Param			payload				body	service.CreateBookingInput	true	"CreateBooking payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Booking}
//	@Success		200	{object}	serializer.Response{data=model.Booking}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/manage/projects/{project_id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	opts, ok := bindCreateOpts(c)
	if !ok {
		return
	}
	req := service.CreateBookingInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	b, created, err := h.svc.Create(c.Request.Context(), principal(c), projectID, req, opts.AllowDuplicates)
	if err != nil {
		writeError(c, err, "Project not found")
		return
	}
	c.JSON(createdStatus(created), serializer.Response{Data: b})
}

// ListBookings godoc
//
//	@Summary	List bookings
//	@Tags		bookings
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		skip		query	integer	false	"Rows to skip"
//	@Param		limit		query	integer	false	"Max rows, default 100, max 1000"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Booking}
//	@Router		/manage/projects/{project_id}/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
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

// GetBooking godoc
//
//	@Summary	Get booking
//	@Tags		bookings
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		booking_id	path	integer	true	"Booking ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Booking}
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/bookings/{booking_id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "booking_id")
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), principal(c), projectID, id)
	if err != nil {
		writeError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: b})
}

// UpdateBooking godoc
//
//	@Summary	Update booking
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		project_id	path	integer						true	"Project ID"
//	@Param		booking_id	path	integer						true	"Booking ID"
//	@Param		payload		body	service.UpdateBookingInput	true	"UpdateBooking payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Booking}
//	@Failure	400	{object}	serializer.Response
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/bookings/{booking_id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "booking_id")
	if !ok {
		return
	}
	req := service.UpdateBookingInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	b, err := h.svc.Update(c.Request.Context(), principal(c), projectID, id, req)
	if err != nil {
		writeError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: b})
}

// DeleteBooking godoc
//
//	@Summary	Delete booking
//	@Tags		bookings
//	@Param		project_id	path	integer	true	"Project ID"
//	@Param		booking_id	path	integer	true	"Booking ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	serializer.Response
//	@Router		/manage/projects/{project_id}/bookings/{booking_id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	projectID, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "booking_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), principal(c), projectID, id); err != nil {
		writeError(c, err, "Booking not found")
		return
	}
	c.Status(http.StatusNoContent)
}
