package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serviceflow/serviceflow-api/internal/modules/serializer"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
)

// PublicHandler is the API-key façade a project embeds in its own site.
type PublicHandler struct {
	services    service.CatalogService
	bookings    service.BookingService
	subscribers service.SubscriberService
}

func NewPublicHandler(services service.CatalogService, bookings service.BookingService, subscribers service.SubscriberService) *PublicHandler {
	return &PublicHandler{services: services, bookings: bookings, subscribers: subscribers}
}

// ListServices godoc
//
//	@Summary	List public services
//	@Tags		public
//	@Produce	json
//	@Param		skip	query	integer	false	"Rows to skip"
//	@Param		limit	query	integer	false	"Max rows, default 100, max 1000"
//	@Security	APIKeyAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Service}
//	@Router		/public/v1/services [get]
func (h *PublicHandler) ListServices(c *gin.Context) {
	project, ok := apiProject(c)
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	out, err := h.services.ListInProject(c.Request.Context(), project, page.Skip, page.Limit)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateBooking godoc
//
//	@Summary		Create public booking
//	@Description	Books a service of the API key's project; a repeat of the same service and time returns the existing booking (200)
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			allow_duplicates	query	boolean						false	"Always insert a new row"
//	@Param			payload				body	service.CreateBookingInput	true	"CreateBooking payload"
//	@Security		APIKeyAuth
//	@Success		201	{object}	serializer.Response{data=model.Booking}
//	@Success		200	{object}	serializer.Response{data=model.Booking}
//	@Failure		400	{object}	serializer.Response
//	@Router			/public/v1/bookings [post]
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	project, ok := apiProject(c)
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

	b, created, err := h.bookings.CreateInProject(c.Request.Context(), project, req, opts.AllowDuplicates)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(createdStatus(created), serializer.Response{Data: b})
}

// CreateSubscriber godoc
//
//	@Summary		Subscribe
//	@Description	Adds an email to the project's subscribers; an already subscribed email returns the existing row (200)
//	@Tags			public
//	@Accept			json
//	@Produce		json
//	@Param			allow_duplicates	query	boolean							false	"Skip the lookup before inserting"
//	@Param			payload				body	service.CreateSubscriberInput	true	"CreateSubscriber payload"
//	@Security		APIKeyAuth
//	@Success		201	{object}	serializer.Response{data=model.Subscriber}
//	@Success		200	{object}	serializer.Response{data=model.Subscriber}
//	@Router			/public/v1/subscribers [post]
func (h *PublicHandler) CreateSubscriber(c *gin.Context) {
	project, ok := apiProject(c)
	if !ok {
		return
	}
	opts, ok := bindCreateOpts(c)
	if !ok {
		return
	}
	req := service.CreateSubscriberInput{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, created, err := h.subscribers.CreateInProject(c.Request.Context(), project, req, opts.AllowDuplicates)
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(createdStatus(created), serializer.Response{Data: s})
}
