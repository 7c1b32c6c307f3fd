package stats

import (
	"context"
	"math"
	"time"

	"github.com/Imaagus/cabin-booking-backend/internal/booking"
	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
)

// CabinStats summarizes one cabin over the reporting month.
type CabinStats struct {
	CabinID       string
	Revenue       float64
	BookingCount  int
	OccupancyRate int
}

// Summary is the monthly report: revenue, counts, occupancy, and the change
// against the previous month.
type Summary struct {
	Month            time.Time
	TotalRevenue     float64
	BookingCount     int
	AvgBookingValue  float64
	RevenueChangePct int
	OccupancyRate    int
	Cabins           []CabinStats
}

type Service interface {
	MonthlySummary(ctx context.Context, month time.Time) (*Summary, error)
}

// BookingSource is the slice of the booking service the reports need.
type BookingSource interface {
	List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
}

type service struct {
	bookings BookingSource
	catalog  *cabin.Catalog
}

func NewService(bookings BookingSource, catalog *cabin.Catalog) Service {
	return &service{bookings: bookings, catalog: catalog}
}

// MonthlySummary aggregates the month containing the given time. Bookings are
// attributed to the month their start date falls in; occupied days are clamped
// to the month boundaries.
func (s *service) MonthlySummary(ctx context.Context, month time.Time) (*Summary, error) {
	monthStart, monthEnd := monthBounds(month)
	prevStart, prevEnd := monthBounds(monthStart.AddDate(0, -1, 0))

	// The engine works over the full in-memory collection; one fetch serves
	// both the current and the previous month.
	all, err := s.bookings.List(ctx, booking.Filter{})
	if err != nil {
		return nil, err
	}

	names := s.catalog.Names()
	cur := booking.AggregateForPeriod(all, monthStart, monthEnd, names)
	prev := booking.AggregateForPeriod(all, prevStart, prevEnd, names)

	summary := &Summary{
		Month:            monthStart,
		TotalRevenue:     cur.TotalRevenue,
		BookingCount:     cur.BookingCount,
		RevenueChangePct: revenueChangePct(cur.TotalRevenue, prev.TotalRevenue),
		OccupancyRate:    cur.OverallOccupancyRate(),
		Cabins:           make([]CabinStats, 0, len(names)),
	}
	if cur.BookingCount > 0 {
		summary.AvgBookingValue = math.Round(cur.TotalRevenue / float64(cur.BookingCount))
	}

	for _, name := range names {
		own := filterByCabin(all, name)
		cs := booking.AggregateForPeriod(own, monthStart, monthEnd, []string{name})
		summary.Cabins = append(summary.Cabins, CabinStats{
			CabinID:       name,
			Revenue:       cs.TotalRevenue,
			BookingCount:  cs.BookingCount,
			OccupancyRate: cs.OccupancyRate(name),
		})
	}

	return summary, nil
}

// monthBounds returns the first and last day of the month containing t.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// revenueChangePct follows the dashboard rule: a month with no prior revenue
// reads as a 100% increase.
func revenueChangePct(current, previous float64) int {
	if previous == 0 {
		return 100
	}
	return int(math.Round((current - previous) / previous * 100))
}

func filterByCabin(bookings []*booking.Booking, cabinID string) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range bookings {
		if b.CabinID == cabinID {
			out = append(out, b)
		}
	}
	return out
}
