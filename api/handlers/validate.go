package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/DhanushPillay/MailSpectre/dto"
	"github.com/DhanushPillay/MailSpectre/interfaces"
	er "github.com/DhanushPillay/MailSpectre/internal/errors"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/repository"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
)

const defaultRecentLimit = 20

type ValidationHandler struct {
	log               logger.Logger
	validationService interfaces.ValidationService
	records           repository.ValidationRecordRepository
}

// NewValidationHandler creates the handler for the validation endpoints.
// records may be nil when history persistence is disabled.
func NewValidationHandler(log logger.Logger, validationService interfaces.ValidationService, records repository.ValidationRecordRepository) *ValidationHandler {
	return &ValidationHandler{
		log:               log,
		validationService: validationService,
		records:           records,
	}
}

// Validate runs the full check pipeline against a single email address
func (h *ValidationHandler) Validate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ValidationHandler.Validate", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request dto.ValidateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "No data provided",
				Message: "Request body must be JSON with an email field",
			})
			return
		}
		tracing.TagEmail(span, request.Email)

		result, err := h.validationService.Validate(ctx, request.Email)
		if err != nil {
			tracing.TraceErr(span, err)
			if errors.Is(err, er.ErrEmailMissing) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error:   "Missing email field",
					Message: "Please provide an email address to validate",
				})
				return
			}
			h.log.Errorf("(ValidationHandler.Validate) validation failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal server error",
				Message: "An error occurred during validation",
			})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// BatchValidate validates up to 50 email addresses in one request
func (h *ValidationHandler) BatchValidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ValidationHandler.BatchValidate", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request dto.BatchValidateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "No data provided",
				Message: "Request body must be JSON with an emails array",
			})
			return
		}
		span.SetTag("batch.size", len(request.Emails))

		results, err := h.validationService.ValidateBatch(ctx, request.Emails)
		if err != nil {
			tracing.TraceErr(span, err)
			switch {
			case errors.Is(err, er.ErrEmailsMissing):
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error:   "Empty list",
					Message: "Please provide at least one email address",
				})
			case errors.Is(err, er.ErrBatchTooLarge):
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error:   "Too many emails",
					Message: "Maximum 50 emails per request",
				})
			default:
				h.log.Errorf("(ValidationHandler.BatchValidate) batch validation failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "Internal server error",
					Message: "An error occurred during batch validation",
				})
			}
			return
		}

		c.JSON(http.StatusOK, dto.BatchValidateResponse{
			Total:   len(results),
			Results: results,
		})
	}
}

// RecentValidations lists the most recently persisted validation records.
// When history persistence is disabled it degrades to an empty list.
func (h *ValidationHandler) RecentValidations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ValidationHandler.RecentValidations", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		limit := defaultRecentLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error:   "Invalid limit",
					Message: "Limit must be a positive integer",
				})
				return
			}
			limit = parsed
		}

		if h.records == nil {
			c.JSON(http.StatusOK, gin.H{"total": 0, "records": []models.ValidationRecord{}})
			return
		}

		records, err := h.records.ListRecent(ctx, limit)
		if err != nil {
			tracing.TraceErr(span, err)
			h.log.Errorf("(ValidationHandler.RecentValidations) listing records failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal server error",
				Message: "An error occurred while listing validations",
			})
			return
		}
		if records == nil {
			records = []models.ValidationRecord{}
		}

		c.JSON(http.StatusOK, gin.H{"total": len(records), "records": records})
	}
}
