package booking

import (
	"net/http"
	"time"

	"github.com/Imaagus/cabin-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrDateConflict    = apperror.New(http.StatusBadRequest, "cabin already booked for the selected dates")
	ErrInvalidID       = apperror.New(http.StatusBadRequest, "invalid booking id")
	ErrTenantRequired  = apperror.New(http.StatusBadRequest, "tenant name is required")
	ErrNegativePayment = apperror.New(http.StatusBadRequest, "payment must not be negative")
)

// Booking is a reservation of one cabin for an inclusive date range.
// DateFrom and DateTo are calendar days (midnight UTC). Either may be nil for
// incomplete records; such records are excluded from all date-based computation.
type Booking struct {
	ID         string
	CabinID    string
	TenantName string
	DateFrom   *time.Time
	DateTo     *time.Time
	Payment    float64
	CreatedAt  time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CabinID  string
	DateFrom *time.Time // bookings ending on or after this day
	DateTo   *time.Time // bookings starting on or before this day
}
