package validation

import (
	"fmt"

	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
	"github.com/DhanushPillay/MailSpectre/internal/utils"
)

func checkDisposable(domain string, ref *refdata.Snapshot) models.CheckResult {
	result := models.CheckResult{Check: models.CheckDisposable}

	if ref.IsDisposable(domain) {
		result.Message = "Temporary/disposable email detected"
		result.Details = fmt.Sprintf("Domain %s is a known disposable provider", domain)
		return result
	}

	result.Valid = true
	result.Message = "Not a disposable email"
	result.Details = "Domain not in known disposable providers"
	return result
}

func checkSuspiciousTLD(domain string, ref *refdata.Snapshot) models.CheckResult {
	result := models.CheckResult{Check: models.CheckSuspiciousTLD}

	tld := utils.DomainTLD(domain)
	if tld != "" && ref.IsSuspiciousTLD(tld) {
		result.Message = "High-risk domain extension"
		result.TLD = tld
		result.Details = fmt.Sprintf(".%s domains are frequently used for abuse", tld)
		return result
	}

	result.Valid = true
	result.Message = "Domain extension looks normal"
	result.Details = "TLD is not associated with elevated abuse"
	return result
}

func checkFraudDatabase(email, domain string, ref *refdata.Snapshot) models.CheckResult {
	result := models.CheckResult{Check: models.CheckFraudDatabase}

	if ref.IsFraudEmail(email) {
		result.Message = "Known fraudulent email"
		result.Details = "Address is present in the fraud database"
		return result
	}

	result.Valid = true
	if company, ok := ref.CompanyForDomain(domain); ok {
		result.Company = company
		result.Message = "Verified company domain"
		result.Details = fmt.Sprintf("Domain belongs to %s", company)
		return result
	}

	result.Message = "Not in fraud database"
	result.Details = "Address has no fraud reports on record"
	return result
}
