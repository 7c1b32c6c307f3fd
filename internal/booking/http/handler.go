package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Imaagus/cabin-booking-backend/internal/booking"
	"github.com/Imaagus/cabin-booking-backend/internal/pkg/request"
	"github.com/Imaagus/cabin-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// List returns every booking as a bare JSON array, the shape the frontend's
// data hook expects.
func (h *Handler) List(c *gin.Context) {
	var filter booking.Filter
	filter.CabinID = c.Query("cabin_id")

	if v := c.Query("date_from"); v != "" {
		if d, err := request.ParseDay(v); err == nil {
			filter.DateFrom = &d
		}
	}
	if v := c.Query("date_to"); v != "" {
		if d, err := request.ParseDay(v); err == nil {
			filter.DateTo = &d
		}
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	req := booking.CreateRequest{
		CabinID:    body.CabinID,
		TenantName: body.TenantName,
		DateFrom:   body.DateFrom,
		DateTo:     body.DateTo,
		Payment:    body.Payment,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, booking.ErrInvalidID)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, booking.ErrInvalidID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewDeleteResponse("booking deleted successfully", id))
}

// DayAvailability answers whether a cabin is occupied on a single day and
// returns the bookings covering it (used to paint calendar cells).
func (h *Handler) DayAvailability(c *gin.Context) {
	cabinID := c.Query("cabin_id")
	if cabinID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cabin_id is required"})
		return
	}
	date, err := request.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}

	booked, covering, err := h.service.IsDateBooked(c.Request.Context(), date, cabinID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(covering))
	for i, b := range covering {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, DayAvailabilityResponse{
		Date:     date.Format(request.DayFormat),
		CabinID:  cabinID,
		Booked:   booked,
		Bookings: items,
	})
}

// CheckRange answers the pre-submit check: is [date_from, date_to] free for
// the cabin. exclude_id lets a client re-check an existing booking against
// the rest.
func (h *Handler) CheckRange(c *gin.Context) {
	cabinID := c.Query("cabin_id")
	if cabinID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cabin_id is required"})
		return
	}
	from, err := request.ParseDay(c.Query("date_from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date_from must be YYYY-MM-DD"})
		return
	}
	to, err := request.ParseDay(c.Query("date_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "date_to must be YYYY-MM-DD"})
		return
	}

	available, err := h.service.IsRangeAvailable(c.Request.Context(), from, to, cabinID, c.Query("exclude_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, RangeAvailabilityResponse{
		CabinID:   cabinID,
		DateFrom:  from.Format(request.DayFormat),
		DateTo:    to.Format(request.DayFormat),
		Available: available,
	})
}
