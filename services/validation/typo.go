package validation

import (
	"fmt"

	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
)

// checkTypo looks the domain up in the misspelling map. Exact-match only;
// a hit fails the check and carries the corrected address as a suggestion.
func checkTypo(local, domain string, ref *refdata.Snapshot) models.CheckResult {
	result := models.CheckResult{Check: models.CheckTypo}

	if canonical, ok := ref.TypoSuggestion(domain); ok {
		result.Message = "Possible typo in domain"
		result.Suggestion = local + "@" + canonical
		result.Details = fmt.Sprintf("Did you mean %s@%s?", local, canonical)
		return result
	}

	result.Valid = true
	result.Message = "No known typos detected"
	result.Details = "Domain does not match any common misspelling"
	return result
}
