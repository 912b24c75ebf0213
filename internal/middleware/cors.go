package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/config"
)

// CORS builds the cross-origin policy from configuration. A "*" origin
// admits every origin. With credentials enabled the request origin is echoed
// back instead of "*".
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		ExposeHeaders:    []string{"Content-Disposition", RequestIDHeader},
		MaxAge:           12 * time.Hour,
	}

	switch {
	case cfg.AllowsAllOrigins() && cfg.CORS.AllowCredentials:
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	case cfg.AllowsAllOrigins():
		corsConfig.AllowAllOrigins = true
	default:
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	return cors.New(corsConfig)
}
