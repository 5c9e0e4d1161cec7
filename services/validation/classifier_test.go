package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhanushPillay/MailSpectre/internal/enum"
	"github.com/DhanushPillay/MailSpectre/internal/models"
)

func TestClassifyEmail(t *testing.T) {
	ref := defaultSnapshot(t)

	tests := []struct {
		name       string
		local      string
		domain     string
		emailType  enum.EmailType
		confidence int
		company    string
		valid      bool
	}{
		{
			name:       "educational domain",
			local:      "s123456",
			domain:     "stanford.edu",
			emailType:  enum.EmailTypeStudent,
			confidence: 95,
			valid:      true,
		},
		{
			name:       "student id on a regular provider",
			local:      "s123456",
			domain:     "gmail.com",
			emailType:  enum.EmailTypeStudent,
			confidence: 85,
			valid:      true,
		},
		{
			name:       "verified company domain",
			local:      "info",
			domain:     "boeing.com",
			emailType:  enum.EmailTypeWork,
			confidence: 100,
			company:    "Boeing",
			valid:      true,
		},
		{
			name:       "role mailbox on a custom domain",
			local:      "sales",
			domain:     "acme-widgets.io",
			emailType:  enum.EmailTypeWork,
			confidence: 75,
			valid:      true,
		},
		{
			name:       "name-like address on a major provider",
			local:      "john.smith",
			domain:     "gmail.com",
			emailType:  enum.EmailTypePersonal,
			confidence: 80,
			valid:      true,
		},
		{
			name:       "opaque address on a major provider",
			local:      "jx9q7k",
			domain:     "gmail.com",
			emailType:  enum.EmailTypePersonal,
			confidence: 60,
			valid:      true,
		},
		{
			name:       "disposable provider",
			local:      "user",
			domain:     "10minutemail.com",
			emailType:  enum.EmailTypeTemporary,
			confidence: 95,
			valid:      false,
		},
		{
			name:       "unknown custom domain leans corporate",
			local:      "jane",
			domain:     "randomcompany.io",
			emailType:  enum.EmailTypeWork,
			confidence: 70,
			valid:      true,
		},
		{
			name:       "misspelled provider is not a known provider",
			local:      "test",
			domain:     "gmial.com",
			emailType:  enum.EmailTypeWork,
			confidence: 70,
			valid:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyEmail(tt.local, tt.domain, ref)

			assert.Equal(t, models.CheckEmailType, result.Check)
			assert.Equal(t, tt.emailType, result.EmailType)
			assert.Equal(t, tt.confidence, result.Confidence)
			assert.Equal(t, tt.company, result.Company)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.emailType.Label(), result.Label)
		})
	}
}

func TestClassifyEmail_RulePriority(t *testing.T) {
	ref := defaultSnapshot(t)

	// A role keyword on an educational domain is still a student address.
	result := classifyEmail("admin", "mit.edu", ref)
	assert.Equal(t, enum.EmailTypeStudent, result.EmailType)
	assert.Equal(t, 95, result.Confidence)

	// A student-shaped username wins over the verified company lookup.
	result = classifyEmail("u123456", "boeing.com", ref)
	assert.Equal(t, enum.EmailTypeStudent, result.EmailType)
	assert.Equal(t, 85, result.Confidence)
}
