package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/app/models/dto"
)

// HealthController reports service liveness
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
