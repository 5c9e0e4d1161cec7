package interfaces

import (
	"context"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

type ValidationService interface {
	// Validate runs every check against one address and aggregates the
	// result. It returns an error only for malformed input; per-check
	// failures are captured inside the result.
	Validate(ctx context.Context, email string) (*models.ValidationResult, error)

	// ValidateBatch validates up to MaxBatchSize addresses concurrently,
	// preserving input order in the returned slice.
	ValidateBatch(ctx context.Context, emails []string) ([]models.ValidationResult, error)
}
