package utils

import "strings"

// NormalizeEmail lowercases and trims an email address for matching.
// The caller keeps the original string for display.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitEmail splits an address into local part and domain on the first '@'.
// The split is best effort: a malformed address yields empty parts rather
// than an error so downstream checks can still run and report independently.
func SplitEmail(email string) (local string, domain string) {
	at := strings.Index(email, "@")
	if at < 0 {
		return email, ""
	}
	return email[:at], email[at+1:]
}

// DomainTLD returns the label after the last dot, without the dot.
// Returns "" when the domain has no dot.
func DomainTLD(domain string) string {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 || idx == len(domain)-1 {
		return ""
	}
	return domain[idx+1:]
}
