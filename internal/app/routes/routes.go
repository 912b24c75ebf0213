package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	assessmentController *controllers.AssessmentController,
	reportController *controllers.ReportController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)
		api.POST("/submit", assessmentController.Submit)
		api.GET("/report/:student_id", reportController.GetReport)
	}
}
