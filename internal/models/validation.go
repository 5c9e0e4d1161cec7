package models

import "github.com/DhanushPillay/MailSpectre/internal/enum"

// Check names, stable and unique within one validation run. The order of
// AllChecks is the order checks appear in every ValidationResult.
const (
	CheckFormat        = "format"
	CheckEmailType     = "email_type"
	CheckTypo          = "typo"
	CheckDomainExists  = "domain_exists"
	CheckMXRecords     = "mx_records"
	CheckDisposable    = "disposable"
	CheckSuspiciousTLD = "suspicious_tld"
	CheckUsername      = "username_quality"
	CheckDataBreach    = "data_breach"
	CheckFraudDatabase = "fraud_database"
)

var AllChecks = []string{
	CheckFormat,
	CheckEmailType,
	CheckTypo,
	CheckDomainExists,
	CheckMXRecords,
	CheckDisposable,
	CheckSuspiciousTLD,
	CheckUsername,
	CheckDataBreach,
	CheckFraudDatabase,
}

// CheckResult is the outcome of a single validation check.
type CheckResult struct {
	Check   string `json:"check"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Details string `json:"details"`

	// check-specific fields
	EmailType   enum.EmailType `json:"email_type,omitempty"`
	Label       string         `json:"label,omitempty"`
	Confidence  int            `json:"confidence,omitempty"`
	Company     string         `json:"company,omitempty"`
	Suggestion  string         `json:"suggestion,omitempty"`
	TLD         string         `json:"tld,omitempty"`
	RiskScore   *int           `json:"risk_score,omitempty"`
	RiskBand    enum.RiskBand  `json:"risk_band,omitempty"`
	BreachCount *int           `json:"breach_count,omitempty"`
}

// ValidationResult aggregates all checks for one email address.
type ValidationResult struct {
	Email   string        `json:"email"`
	Valid   bool          `json:"valid"`
	Score   float64       `json:"score"`
	Summary string        `json:"summary"`
	Checks  []CheckResult `json:"checks"`
}

// CheckByName returns the named check result, or nil when absent.
func (r *ValidationResult) CheckByName(name string) *CheckResult {
	for i := range r.Checks {
		if r.Checks[i].Check == name {
			return &r.Checks[i]
		}
	}
	return nil
}
