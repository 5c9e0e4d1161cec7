package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

// ValidationRecordRepository defines the interface for validation history operations
type ValidationRecordRepository interface {
	Create(ctx context.Context, record *models.ValidationRecord) error
	GetByID(ctx context.Context, id string) (*models.ValidationRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.ValidationRecord, error)
	ListByEmail(ctx context.Context, email string, limit int) ([]models.ValidationRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// GormValidationRecordRepository implements ValidationRecordRepository using GORM
type GormValidationRecordRepository struct {
	db *gorm.DB
}

// NewValidationRecordRepository creates a new validation record repository instance
func NewValidationRecordRepository(db *gorm.DB) ValidationRecordRepository {
	return &GormValidationRecordRepository{db: db}
}

func (r *GormValidationRecordRepository) Create(ctx context.Context, record *models.ValidationRecord) error {
	if record == nil {
		return ErrInvalidInput
	}

	record.CreatedAt = time.Now()

	result := r.db.WithContext(ctx).Create(record)
	return result.Error
}

func (r *GormValidationRecordRepository) GetByID(ctx context.Context, id string) (*models.ValidationRecord, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	var record models.ValidationRecord
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormValidationRecordRepository) ListRecent(ctx context.Context, limit int) ([]models.ValidationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var records []models.ValidationRecord
	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (r *GormValidationRecordRepository) ListByEmail(ctx context.Context, email string, limit int) ([]models.ValidationRecord, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}

	var records []models.ValidationRecord
	result := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Limit(limit).Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// DeleteOlderThan prunes history, returning the number of rows removed.
func (r *GormValidationRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.ValidationRecord{})
	return result.RowsAffected, result.Error
}
