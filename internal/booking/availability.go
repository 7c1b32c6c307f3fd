package booking

import (
	"math"
	"time"
)

// The availability functions in this file are pure computations over an
// in-memory booking collection. They never return errors: bookings with nil
// dates simply never match, and degenerate ranges (from after to) yield
// empty or zero results.

// Day normalizes a timestamp to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysInclusive returns the number of calendar days in [from, to], both ends
// counted. Returns 0 when from is after to.
func daysInclusive(from, to time.Time) int {
	from, to = Day(from), Day(to)
	if from.After(to) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// covers reports whether the booking's inclusive date range contains the day.
func (b *Booking) covers(date time.Time) bool {
	if b.DateFrom == nil || b.DateTo == nil {
		return false
	}
	d := Day(date)
	return !d.Before(Day(*b.DateFrom)) && !d.After(Day(*b.DateTo))
}

// IsDateBooked reports whether any booking for the cabin covers the given day.
func IsDateBooked(date time.Time, cabinID string, bookings []*Booking) bool {
	for _, b := range bookings {
		if b.CabinID == cabinID && b.covers(date) {
			return true
		}
	}
	return false
}

// HasOverlap reports whether any booking for the cabin shares at least one
// calendar day with the inclusive candidate range [from, to]. A booking whose
// ID equals excludeID is ignored; pass "" for no exclusion.
func HasOverlap(from, to time.Time, cabinID string, bookings []*Booking, excludeID string) bool {
	candFrom, candTo := Day(from), Day(to)
	for _, b := range bookings {
		if b.CabinID != cabinID {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.DateFrom == nil || b.DateTo == nil {
			continue
		}
		// Inclusive interval test: existing.from <= cand.to AND existing.to >= cand.from
		if !Day(*b.DateFrom).After(candTo) && !Day(*b.DateTo).Before(candFrom) {
			return true
		}
	}
	return false
}

// OnDate returns the bookings covering the given day, in input order.
// An empty cabinID matches all cabins.
func OnDate(date time.Time, bookings []*Booking, cabinID string) []*Booking {
	var out []*Booking
	for _, b := range bookings {
		if cabinID != "" && b.CabinID != cabinID {
			continue
		}
		if b.covers(date) {
			out = append(out, b)
		}
	}
	return out
}

// PeriodStats aggregates bookings over an inclusive reporting period.
// Revenue and counts are keyed on a booking's start date falling inside the
// period; occupied days are clamped to the period boundaries.
type PeriodStats struct {
	TotalRevenue        float64
	BookingCount        int
	OccupiedDaysByCabin map[string]int
	DaysInPeriod        int
	NumCabins           int
}

// OccupancyRate returns the cabin's occupied days over the period length as a
// rounded percentage. Returns 0 for a degenerate period.
func (s PeriodStats) OccupancyRate(cabinID string) int {
	if s.DaysInPeriod <= 0 {
		return 0
	}
	return roundPct(float64(s.OccupiedDaysByCabin[cabinID]) / float64(s.DaysInPeriod))
}

// OverallOccupancyRate divides total occupied days across all cabins by the
// total possible cabin-days in the period.
func (s PeriodStats) OverallOccupancyRate() int {
	possible := s.DaysInPeriod * s.NumCabins
	if possible <= 0 {
		return 0
	}
	total := 0
	for _, d := range s.OccupiedDaysByCabin {
		total += d
	}
	return roundPct(float64(total) / float64(possible))
}

func roundPct(frac float64) int {
	return int(math.Round(frac * 100))
}

// AggregateForPeriod computes revenue, booking count, and per-cabin occupied
// days for the inclusive period [start, end]. A booking belongs to the period
// when its start date falls inside it; a booking spanning beyond the period
// contributes only its clamped overlap, never more than the period length.
func AggregateForPeriod(bookings []*Booking, start, end time.Time, cabinIDs []string) PeriodStats {
	stats := PeriodStats{
		OccupiedDaysByCabin: make(map[string]int, len(cabinIDs)),
		DaysInPeriod:        daysInclusive(start, end),
		NumCabins:           len(cabinIDs),
	}
	for _, id := range cabinIDs {
		stats.OccupiedDaysByCabin[id] = 0
	}
	if stats.DaysInPeriod == 0 {
		return stats
	}

	periodStart, periodEnd := Day(start), Day(end)
	for _, b := range bookings {
		if b.DateFrom == nil {
			continue
		}
		from := Day(*b.DateFrom)
		if from.Before(periodStart) || from.After(periodEnd) {
			continue
		}

		stats.TotalRevenue += b.Payment
		stats.BookingCount++

		if b.DateTo == nil {
			continue
		}
		to := Day(*b.DateTo)
		// from is already inside the period; only the tail needs clamping.
		if to.After(periodEnd) {
			to = periodEnd
		}
		stats.OccupiedDaysByCabin[b.CabinID] += daysInclusive(from, to)
	}
	return stats
}
