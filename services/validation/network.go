package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

// DNS-backed checks fail closed: a resolver error of any kind (NXDOMAIN,
// timeout, SERVFAIL) becomes a failing CheckResult, never a returned error.

func (s *validationService) checkDomainExists(ctx context.Context, domain string) models.CheckResult {
	result := models.CheckResult{Check: models.CheckDomainExists}

	if domain == "" {
		result.Message = "Invalid email format"
		result.Details = "Cannot extract domain from email"
		return result
	}

	addrs, err := s.dnsResolver.LookupA(ctx, domain)
	if err != nil || len(addrs) == 0 {
		result.Message = "Domain does not exist"
		result.Details = fmt.Sprintf("Domain %s could not be resolved", domain)
		return result
	}

	result.Valid = true
	result.Message = "Domain exists"
	result.Details = fmt.Sprintf("Domain %s has valid DNS records", domain)
	return result
}

func (s *validationService) checkMXRecords(ctx context.Context, domain string) models.CheckResult {
	result := models.CheckResult{Check: models.CheckMXRecords}

	if domain == "" {
		result.Message = "Invalid email format"
		result.Details = "Cannot extract domain from email"
		return result
	}

	records, err := s.dnsResolver.LookupMX(ctx, domain)
	if err != nil || len(records) == 0 {
		result.Message = "No mail servers configured"
		result.Details = fmt.Sprintf("Domain %s has no MX records", domain)
		return result
	}

	hosts := make([]string, 0, 3)
	for _, mx := range records {
		hosts = append(hosts, strings.TrimSuffix(mx.Host, "."))
		if len(hosts) == 3 {
			break
		}
	}

	result.Valid = true
	result.Message = "MX records found"
	result.Details = fmt.Sprintf("Domain has %d mail server(s): %s", len(records), strings.Join(hosts, ", "))
	return result
}

// checkDataBreach fails open: an unreachable breach index must not block
// validation, it only degrades the signal to "unknown".
func (s *validationService) checkDataBreach(ctx context.Context, email string) models.CheckResult {
	result := models.CheckResult{Check: models.CheckDataBreach}

	count, err := s.breachClient.LookupBreaches(ctx, email)
	if err != nil {
		s.log.Warnf("breach lookup failed for %s: %v", email, err)
		result.Valid = true
		result.Message = "Breach status unknown"
		result.Details = "Could not reach the breach index, treating as neutral"
		return result
	}

	result.BreachCount = &count
	if count > 0 {
		result.Message = "Found in data breaches"
		result.Details = fmt.Sprintf("Address appears in %d known breach record(s)", count)
		return result
	}

	result.Valid = true
	result.Message = "No known breaches"
	result.Details = "Address not found in the breach index"
	return result
}
