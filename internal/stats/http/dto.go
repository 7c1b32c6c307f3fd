package http

import (
	"github.com/Imaagus/cabin-booking-backend/internal/stats"
)

type CabinStatsResponse struct {
	CabinID       string  `json:"cabinId"`
	Revenue       float64 `json:"revenue"`
	BookingCount  int     `json:"bookingCount"`
	OccupancyRate int     `json:"occupancyRate"`
}

type SummaryResponse struct {
	Month            string               `json:"month"`
	TotalRevenue     float64              `json:"totalRevenue"`
	BookingCount     int                  `json:"bookingCount"`
	AvgBookingValue  float64              `json:"avgBookingValue"`
	RevenueChangePct int                  `json:"revenueChangePct"`
	OccupancyRate    int                  `json:"occupancyRate"`
	Cabins           []CabinStatsResponse `json:"cabins"`
}

func NewSummaryResponse(s *stats.Summary) SummaryResponse {
	cabins := make([]CabinStatsResponse, len(s.Cabins))
	for i, c := range s.Cabins {
		cabins[i] = CabinStatsResponse{
			CabinID:       c.CabinID,
			Revenue:       c.Revenue,
			BookingCount:  c.BookingCount,
			OccupancyRate: c.OccupancyRate,
		}
	}
	return SummaryResponse{
		Month:            s.Month.Format("2006-01"),
		TotalRevenue:     s.TotalRevenue,
		BookingCount:     s.BookingCount,
		AvgBookingValue:  s.AvgBookingValue,
		RevenueChangePct: s.RevenueChangePct,
		OccupancyRate:    s.OccupancyRate,
		Cabins:           cabins,
	}
}
