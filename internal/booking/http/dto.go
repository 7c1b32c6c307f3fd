package http

import (
	"time"

	"github.com/Imaagus/cabin-booking-backend/internal/booking"
)

// BookingResponse mirrors the raw record shape the frontend consumes.
type BookingResponse struct {
	ID         string     `json:"id"`
	CabinID    string     `json:"cabinId"`
	TenantName string     `json:"tenantName"`
	DateFrom   *time.Time `json:"dateFrom"`
	DateTo     *time.Time `json:"dateTo"`
	Payment    float64    `json:"payment"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		CabinID:    b.CabinID,
		TenantName: b.TenantName,
		DateFrom:   b.DateFrom,
		DateTo:     b.DateTo,
		Payment:    b.Payment,
		CreatedAt:  b.CreatedAt,
	}
}

type CreateBookingBody struct {
	CabinID    string     `json:"cabinId" binding:"required"`
	TenantName string     `json:"tenantName" binding:"required"`
	DateFrom   *time.Time `json:"dateFrom"`
	DateTo     *time.Time `json:"dateTo"`
	Payment    float64    `json:"payment" binding:"omitempty,gte=0"`
}

// DayAvailabilityResponse answers the calendar-cell query for one day.
type DayAvailabilityResponse struct {
	Date     string            `json:"date"`
	CabinID  string            `json:"cabinId"`
	Booked   bool              `json:"booked"`
	Bookings []BookingResponse `json:"bookings"`
}

// RangeAvailabilityResponse answers the pre-submit range check.
type RangeAvailabilityResponse struct {
	CabinID   string `json:"cabinId"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	Available bool   `json:"available"`
}
