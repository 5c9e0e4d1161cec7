package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

const (
	// criticalScoreCap keeps any result with a failed critical check below
	// every "valid"-looking summary band.
	criticalScoreCap = 40.0

	// minNonCriticalPasses is how many of the six non-critical checks must
	// pass for an overall valid verdict.
	minNonCriticalPasses = 4
)

// Checks whose failure forces overall invalidity regardless of the rest.
var criticalChecks = map[string]struct{}{
	models.CheckFormat:        {},
	models.CheckDomainExists:  {},
	models.CheckDisposable:    {},
	models.CheckFraudDatabase: {},
}

// aggregate turns the check list into the overall score, verdict and
// summary. The score is a deterministic function of the check list alone:
// percentage of passed checks, capped at criticalScoreCap when any critical
// check failed. All checks passing yields exactly 100.
func aggregate(checks []models.CheckResult) (float64, bool, string) {
	passed := 0
	criticalFailed := false
	nonCriticalPassed := 0
	var failedNames []string

	for _, check := range checks {
		if check.Valid {
			passed++
			if _, critical := criticalChecks[check.Check]; !critical {
				nonCriticalPassed++
			}
			continue
		}
		failedNames = append(failedNames, check.Check)
		if _, critical := criticalChecks[check.Check]; critical {
			criticalFailed = true
		}
	}

	score := round2(float64(passed) / float64(len(checks)) * 100)
	if criticalFailed && score > criticalScoreCap {
		score = criticalScoreCap
	}

	valid := !criticalFailed && nonCriticalPassed >= minNonCriticalPasses

	return score, valid, summarize(score, failedNames)
}

func summarize(score float64, failedNames []string) string {
	if score == 100 {
		return "Email passed all validation checks"
	}

	failed := strings.Join(failedNames, ", ")
	switch {
	case score >= 90:
		return fmt.Sprintf("Email looks very safe, only minor signals: %s", failed)
	case score >= 70:
		return fmt.Sprintf("Email looks valid with minor concerns: %s", failed)
	case score >= 50:
		return fmt.Sprintf("Email is risky: %s", failed)
	default:
		return fmt.Sprintf("Email appears invalid or dangerous: %s", failed)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
