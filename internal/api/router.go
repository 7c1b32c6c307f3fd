package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	bookingHttp "github.com/Imaagus/cabin-booking-backend/internal/booking/http"
	cabinHttp "github.com/Imaagus/cabin-booking-backend/internal/cabin/http"
	statsHttp "github.com/Imaagus/cabin-booking-backend/internal/stats/http"
)

// Config holds the handlers and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	BookingHandler *bookingHttp.Handler
	CabinHandler   *cabinHttp.Handler
	StatsHandler   *statsHttp.Handler
}

// NewRouter assembles the gin engine: global middleware (Logger, Recovery),
// CORS, and the route groups of each module under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		bookingHttp.RegisterRoutes(api, cfg.BookingHandler)
		cabinHttp.RegisterRoutes(api, cfg.CabinHandler)
		statsHttp.RegisterRoutes(api, cfg.StatsHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
