package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Imaagus/cabin-booking-backend/internal/booking"
	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
	"github.com/Imaagus/cabin-booking-backend/internal/stats"
)

type staticBookings []*booking.Booking

func (s staticBookings) List(_ context.Context, _ booking.Filter) ([]*booking.Booking, error) {
	return s, nil
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMonthlySummarySingleBooking(t *testing.T) {
	catalog := cabin.NewCatalog([]string{"A"})
	svc := stats.NewService(staticBookings{
		{
			ID:       "b1",
			CabinID:  "A",
			Payment:  300000,
			DateFrom: dayPtr(2024, 6, 10),
			DateTo:   dayPtr(2024, 6, 14),
		},
	}, catalog)

	s, err := svc.MonthlySummary(context.Background(), time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), s.Month)
	require.Equal(t, float64(300000), s.TotalRevenue)
	require.Equal(t, 1, s.BookingCount)
	require.Equal(t, float64(300000), s.AvgBookingValue)
	// No revenue in May reads as a 100% increase.
	require.Equal(t, 100, s.RevenueChangePct)
	// 5 occupied days out of 30.
	require.Equal(t, 17, s.OccupancyRate)

	require.Len(t, s.Cabins, 1)
	require.Equal(t, "A", s.Cabins[0].CabinID)
	require.Equal(t, float64(300000), s.Cabins[0].Revenue)
	require.Equal(t, 1, s.Cabins[0].BookingCount)
	require.Equal(t, 17, s.Cabins[0].OccupancyRate)
}

func TestMonthlySummaryRevenueChange(t *testing.T) {
	catalog := cabin.NewCatalog([]string{"A"})
	svc := stats.NewService(staticBookings{
		{ID: "may", CabinID: "A", Payment: 200000, DateFrom: dayPtr(2024, 5, 10), DateTo: dayPtr(2024, 5, 12)},
		{ID: "jun", CabinID: "A", Payment: 300000, DateFrom: dayPtr(2024, 6, 10), DateTo: dayPtr(2024, 6, 14)},
	}, catalog)

	s, err := svc.MonthlySummary(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 50, s.RevenueChangePct)
}

func TestMonthlySummaryPerCabinIsolation(t *testing.T) {
	catalog := cabin.NewCatalog([]string{"A", "B"})
	svc := stats.NewService(staticBookings{
		{ID: "b1", CabinID: "A", Payment: 100, DateFrom: dayPtr(2024, 6, 1), DateTo: dayPtr(2024, 6, 30)},
		{ID: "b2", CabinID: "B", Payment: 50, DateFrom: dayPtr(2024, 6, 1), DateTo: dayPtr(2024, 6, 15)},
	}, catalog)

	s, err := svc.MonthlySummary(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, float64(150), s.TotalRevenue)
	require.Equal(t, 2, s.BookingCount)
	require.Equal(t, float64(75), s.AvgBookingValue)
	// 30 + 15 occupied days over 60 possible cabin-days.
	require.Equal(t, 75, s.OccupancyRate)

	require.Len(t, s.Cabins, 2)
	require.Equal(t, 100, s.Cabins[0].OccupancyRate)
	require.Equal(t, float64(100), s.Cabins[0].Revenue)
	require.Equal(t, 50, s.Cabins[1].OccupancyRate)
	require.Equal(t, float64(50), s.Cabins[1].Revenue)
}

func TestMonthlySummaryEmpty(t *testing.T) {
	catalog := cabin.NewCatalog([]string{"A", "B"})
	svc := stats.NewService(staticBookings{}, catalog)

	s, err := svc.MonthlySummary(context.Background(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Zero(t, s.TotalRevenue)
	require.Zero(t, s.BookingCount)
	require.Zero(t, s.AvgBookingValue)
	require.Zero(t, s.OccupancyRate)
	for _, c := range s.Cabins {
		require.Zero(t, c.Revenue)
		require.Zero(t, c.BookingCount)
		require.Zero(t, c.OccupancyRate)
	}
}
