package repository

import (
	"gorm.io/gorm"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

type Repositories struct {
	ValidationRecordRepository ValidationRecordRepository
}

func InitRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ValidationRecordRepository: NewValidationRecordRepository(db),
	}
}

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ValidationRecord{},
	)
}
