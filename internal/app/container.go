package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Imaagus/cabin-booking-backend/internal/api"
	"github.com/Imaagus/cabin-booking-backend/internal/booking"
	bookingHttp "github.com/Imaagus/cabin-booking-backend/internal/booking/http"
	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
	cabinHttp "github.com/Imaagus/cabin-booking-backend/internal/cabin/http"
	"github.com/Imaagus/cabin-booking-backend/internal/stats"
	statsHttp "github.com/Imaagus/cabin-booking-backend/internal/stats/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	CabinNames   []string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	BookingService booking.Service
	Catalog        *cabin.Catalog
}

// NewContainer initializes all modules and returns the container. The store
// handle is constructed once here and reused across requests; there is no
// per-request teardown.
func NewContainer(cfg Config) *Container {
	// Cabin Module
	catalog := cabin.NewCatalog(cfg.CabinNames)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Stats Module
	statsService := stats.NewService(bookingService, catalog)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		BookingHandler: bookingHttp.NewHandler(bookingService),
		CabinHandler:   cabinHttp.NewHandler(catalog),
		StatsHandler:   statsHttp.NewHandler(statsService),
	})

	return &Container{
		Router:         router,
		BookingService: bookingService,
		Catalog:        catalog,
	}
}
