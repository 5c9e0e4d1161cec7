package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/DhanushPillay/MailSpectre/internal/utils"
)

// ValidationRecord is the persisted outcome of one validation run.
type ValidationRecord struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Email     string     `gorm:"column:email;type:varchar(320);index" json:"email"`
	Valid     bool       `gorm:"column:valid;type:boolean" json:"valid"`
	Score     float64    `gorm:"column:score;type:numeric(5,2)" json:"score"`
	EmailType string     `gorm:"column:email_type;type:varchar(20)" json:"emailType"`
	Summary   string     `gorm:"column:summary;type:text" json:"summary"`
	Checks    JSONChecks `gorm:"column:checks;type:jsonb" json:"checks"`
	CreatedAt time.Time  `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
}

func (ValidationRecord) TableName() string {
	return "validation_records"
}

func (m *ValidationRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.GenerateNanoIDWithPrefix("vald", 16)
	}
	return nil
}
