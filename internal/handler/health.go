package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starwars-api/backend/internal/config"
	"github.com/starwars-api/backend/internal/model"
)

type HealthHandler struct {
	cfg config.ServerConfig
}

func NewHealthHandler(cfg config.ServerConfig) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Ok godoc
// @Summary Ok
// @Description Help endpoint to know if the service is operational.
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Ok(c *gin.Context) {
	c.String(http.StatusOK, "Service Running OK")
}

// Info godoc
// @Summary Health
// @Description Endpoint displaying information about the microservice.
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthInfoResponse
// @Router /info [get]
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthInfoResponse{
		Author:      "Preiti Matias",
		Date:        "Mayo 2025",
		Environment: h.cfg.Environment,
		Service:     h.cfg.ServiceName,
		Version:     h.cfg.Version,
	})
}
