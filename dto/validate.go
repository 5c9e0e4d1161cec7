package dto

import "github.com/DhanushPillay/MailSpectre/internal/models"

// ValidateRequest is the payload for POST /api/validate.
type ValidateRequest struct {
	Email string `json:"email"`
}

// BatchValidateRequest is the payload for POST /api/batch-validate.
type BatchValidateRequest struct {
	Emails []string `json:"emails"`
}

// BatchValidateResponse wraps the per-email results of a batch run.
type BatchValidateResponse struct {
	Total   int                       `json:"total"`
	Results []models.ValidationResult `json:"results"`
}

// ErrorResponse is the uniform error body for client errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
