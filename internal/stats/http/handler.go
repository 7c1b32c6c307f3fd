package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Imaagus/cabin-booking-backend/internal/pkg/response"
	"github.com/Imaagus/cabin-booking-backend/internal/stats"
)

type Handler struct {
	service stats.Service
}

func NewHandler(service stats.Service) *Handler {
	return &Handler{service: service}
}

// Summary reports the month given as ?month=YYYY-MM, defaulting to the
// current month.
func (h *Handler) Summary(c *gin.Context) {
	month := time.Now().UTC()
	if v := c.Query("month"); v != "" {
		m, err := time.Parse("2006-01", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "month must be YYYY-MM"})
			return
		}
		month = m
	}

	summary, err := h.service.MonthlySummary(c.Request.Context(), month)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSummaryResponse(summary))
}
