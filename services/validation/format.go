package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/utils"
)

// Pragmatic RFC 5322 subset: restricted local part, dotted domain,
// alphabetic TLD of two or more characters.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func checkFormat(email string) models.CheckResult {
	result := models.CheckResult{Check: models.CheckFormat}

	local, domain := utils.SplitEmail(email)
	switch {
	case !strings.Contains(email, "@"):
		result.Message = "Missing @ symbol"
		result.Details = "An email address must contain exactly one @"
	case strings.Count(email, "@") > 1:
		result.Message = "Multiple @ symbols"
		result.Details = "An email address must contain exactly one @"
	case local == "":
		result.Message = "Missing username"
		result.Details = "No characters before the @"
	case domain == "" || !strings.Contains(domain, "."):
		result.Message = "Invalid domain"
		result.Details = fmt.Sprintf("Domain %q has no valid extension", domain)
	case !emailRegex.MatchString(email):
		result.Message = "Invalid email format"
		result.Details = "Email does not match RFC 5322 format"
	default:
		result.Valid = true
		result.Message = "Valid email format"
		result.Details = "Email follows standard format"
	}

	return result
}
