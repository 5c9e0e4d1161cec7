package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		valid   bool
		message string
	}{
		{
			name:    "valid address",
			email:   "john.smith@gmail.com",
			valid:   true,
			message: "Valid email format",
		},
		{
			name:    "missing at symbol",
			email:   "john.smith.gmail.com",
			valid:   false,
			message: "Missing @ symbol",
		},
		{
			name:    "multiple at symbols",
			email:   "john@smith@gmail.com",
			valid:   false,
			message: "Multiple @ symbols",
		},
		{
			name:    "missing username",
			email:   "@gmail.com",
			valid:   false,
			message: "Missing username",
		},
		{
			name:    "domain without extension",
			email:   "john@gmail",
			valid:   false,
			message: "Invalid domain",
		},
		{
			name:    "illegal characters",
			email:   "john smith@gmail.com",
			valid:   false,
			message: "Invalid email format",
		},
		{
			name:    "single letter tld",
			email:   "john@gmail.c",
			valid:   false,
			message: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checkFormat(tt.email)

			assert.Equal(t, models.CheckFormat, result.Check)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}
