package handler

import (
	"net/http"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger checks whether a backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and system endpoints
type SystemHandler struct {
	BaseHandler
	db      Pinger
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, version string) *SystemHandler {
	return &SystemHandler{
		db:      db,
		version: version,
	}
}

// RegisterRoutes registers system routes on the API group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
	}
}

// Health reports whether the service and its database are up
func (h *SystemHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "database unreachable")
			return
		}
	}

	h.Success(c, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}
