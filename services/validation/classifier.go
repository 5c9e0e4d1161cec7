package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DhanushPillay/MailSpectre/internal/enum"
	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
)

// Local parts shaped like university-issued student accounts, e.g. s1234567.
var studentIDRegex = regexp.MustCompile(`^[su]\d{5,}$`)

var alphaOnlyRegex = regexp.MustCompile(`^[a-z]+$`)

// classifyEmail assigns an email type by evaluating an ordered rule list,
// first match wins. Rules are priority-ordered, not additive: a verified
// company domain beats a role keyword, which beats provider heuristics.
func classifyEmail(local, domain string, ref *refdata.Snapshot) models.CheckResult {
	emailType, confidence, company, details := applyTypeRules(local, domain, ref)

	result := models.CheckResult{
		Check:      models.CheckEmailType,
		Valid:      emailType != enum.EmailTypeTemporary,
		EmailType:  emailType,
		Label:      emailType.Label(),
		Confidence: confidence,
		Company:    company,
		Message:    emailType.Label(),
		Details:    details,
	}
	return result
}

func applyTypeRules(local, domain string, ref *refdata.Snapshot) (enum.EmailType, int, string, string) {
	// 1. institutional suffix
	if ref.IsEduDomain(domain) {
		return enum.EmailTypeStudent, 95, "", fmt.Sprintf("Domain %s is an educational institution", domain)
	}

	// 1b. student-ID shaped username on a non-institutional domain
	if studentIDRegex.MatchString(local) {
		return enum.EmailTypeStudent, 85, "", "Username matches a student ID pattern"
	}

	// 2. verified company domain
	if company, ok := ref.CompanyForDomain(domain); ok {
		return enum.EmailTypeWork, 100, company, fmt.Sprintf("Verified company domain (%s)", company)
	}

	// 3. role-style local part
	if ref.MatchesWorkKeyword(local) {
		return enum.EmailTypeWork, 75, "", fmt.Sprintf("Username %q is a typical business mailbox", local)
	}

	// 4. major personal provider
	if ref.IsPersonalProvider(domain) {
		if strings.ContainsAny(local, "._") || alphaOnlyRegex.MatchString(local) {
			return enum.EmailTypePersonal, 80, "", fmt.Sprintf("Major provider %s with a name-like username", domain)
		}
		return enum.EmailTypePersonal, 60, "", fmt.Sprintf("Major provider %s without a clear name pattern", domain)
	}

	// 5. disposable provider
	if ref.IsDisposable(domain) {
		return enum.EmailTypeTemporary, 95, "", fmt.Sprintf("Domain %s is a disposable email provider", domain)
	}

	// 6. unknown custom domains lean corporate
	if domain != "" {
		return enum.EmailTypeWork, 70, "", fmt.Sprintf("Custom domain %s, likely a company address", domain)
	}

	// 7. nothing to go on
	return enum.EmailTypePersonal, 50, "", "Could not determine email type"
}
