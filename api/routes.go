package api

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/DhanushPillay/MailSpectre/api/handlers"
	"github.com/DhanushPillay/MailSpectre/api/middleware"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/repository"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
	"github.com/DhanushPillay/MailSpectre/services"
)

// RegisterRoutes sets up all API endpoints. repos may be nil when
// history persistence is disabled.
func RegisterRoutes(r *gin.Engine, log logger.Logger, s *services.Services, repos *repository.Repositories, apiKey string) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	var records repository.ValidationRecordRepository
	if repos != nil {
		records = repos.ValidationRecordRepository
	}
	validationHandler := handlers.NewValidationHandler(log, s.ValidationService, records)

	// Health check and status endpoints
	r.GET("/health", handlers.HealthCheck)
	r.GET("/", handlers.Index)

	api := r.Group("/api")
	if apiKey != "" {
		api.Use(middleware.APIKeyMiddleware(middleware.APIKeyConfig{
			HeaderName:  "X-MAILSPECTRE-API-KEY",
			ValidAPIKey: apiKey,
		}))
	}
	{
		api.POST("/validate", validationHandler.Validate())
		api.POST("/batch-validate", validationHandler.BatchValidate())
		api.GET("/validations/recent", validationHandler.RecentValidations())
	}
}
