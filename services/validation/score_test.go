package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DhanushPillay/MailSpectre/internal/models"
)

func checkList(failed ...string) []models.CheckResult {
	failedSet := make(map[string]struct{}, len(failed))
	for _, name := range failed {
		failedSet[name] = struct{}{}
	}

	checks := make([]models.CheckResult, 0, len(models.AllChecks))
	for _, name := range models.AllChecks {
		_, fail := failedSet[name]
		checks = append(checks, models.CheckResult{Check: name, Valid: !fail})
	}
	return checks
}

func TestAggregate(t *testing.T) {
	t.Run("all checks passing", func(t *testing.T) {
		score, valid, summary := aggregate(checkList())

		assert.Equal(t, 100.0, score)
		assert.True(t, valid)
		assert.Equal(t, "Email passed all validation checks", summary)
	})

	t.Run("one non-critical failure", func(t *testing.T) {
		score, valid, summary := aggregate(checkList(models.CheckTypo))

		assert.Equal(t, 90.0, score)
		assert.True(t, valid)
		assert.Contains(t, summary, "only minor signals")
		assert.Contains(t, summary, models.CheckTypo)
	})

	t.Run("two non-critical failures", func(t *testing.T) {
		score, valid, summary := aggregate(checkList(models.CheckTypo, models.CheckUsername))

		assert.Equal(t, 80.0, score)
		assert.True(t, valid)
		assert.Contains(t, summary, "minor concerns")
	})

	t.Run("critical failure caps the score", func(t *testing.T) {
		score, valid, summary := aggregate(checkList(models.CheckDisposable))

		assert.Equal(t, 40.0, score)
		assert.False(t, valid)
		assert.Contains(t, summary, "invalid or dangerous")
	})

	t.Run("every critical check is capped", func(t *testing.T) {
		for _, name := range []string{
			models.CheckFormat,
			models.CheckDomainExists,
			models.CheckDisposable,
			models.CheckFraudDatabase,
		} {
			score, valid, _ := aggregate(checkList(name))
			assert.Equal(t, 40.0, score, "critical check %s", name)
			assert.False(t, valid, "critical check %s", name)
		}
	})

	t.Run("three non-critical failures drop the verdict", func(t *testing.T) {
		// 7/10 checks pass but only 3 of 6 non-critical ones do.
		score, valid, _ := aggregate(checkList(
			models.CheckTypo,
			models.CheckUsername,
			models.CheckSuspiciousTLD,
		))

		assert.Equal(t, 70.0, score)
		assert.False(t, valid)
	})

	t.Run("risky band", func(t *testing.T) {
		score, valid, summary := aggregate(checkList(
			models.CheckTypo,
			models.CheckUsername,
			models.CheckSuspiciousTLD,
			models.CheckMXRecords,
			models.CheckDataBreach,
		))

		assert.Equal(t, 50.0, score)
		assert.False(t, valid)
		assert.Contains(t, summary, "risky")
	})

	t.Run("score already below the cap is untouched", func(t *testing.T) {
		// Seven failures of which one is critical: 30% sits below the cap.
		score, valid, _ := aggregate(checkList(
			models.CheckFormat,
			models.CheckTypo,
			models.CheckUsername,
			models.CheckSuspiciousTLD,
			models.CheckMXRecords,
			models.CheckDataBreach,
			models.CheckEmailType,
		))

		assert.Equal(t, 30.0, score)
		assert.False(t, valid)
	})
}

func TestSummarize_FailedCheckNames(t *testing.T) {
	_, _, summary := aggregate(checkList(models.CheckTypo, models.CheckDataBreach))

	assert.Contains(t, summary, "typo, data_breach")
}
