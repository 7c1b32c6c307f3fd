package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Imaagus/cabin-booking-backend/internal/cabin"
)

type Handler struct {
	catalog *cabin.Catalog
}

func NewHandler(catalog *cabin.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns the fixed cabin fleet as a JSON array of names.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Names())
}
