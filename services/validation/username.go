package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/DhanushPillay/MailSpectre/internal/enum"
	"github.com/DhanushPillay/MailSpectre/internal/models"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
)

const suspiciousRiskThreshold = 26

var (
	trailingDigitsRegex = regexp.MustCompile(`\d{3,}$`)
	allDigitsRegex      = regexp.MustCompile(`^\d+$`)
	shortPrefixRegex    = regexp.MustCompile(`^[a-z]{1,3}\d+$`)
	fourDigitRegex      = regexp.MustCompile(`\d{4}`)
)

// Trigrams that legitimately pack three consonants (ernst, weber-schmidt...).
var consonantWhitelist = map[string]struct{}{
	"nst": {}, "rst": {}, "sch": {}, "str": {}, "tch": {}, "chr": {},
}

var keyboardSequences = []string{
	"abc", "123", "qwerty", "asdf", "zxc", "qwe", "456", "789", "xyz",
}

// scoreUsername sums points from independent pattern detectors over the
// local part. Detectors never suppress each other, with one exception: a
// name separator ('.' or '_') disables the vowel-ratio and
// consecutive-consonant detectors, since firstname.lastname usernames
// trip both constantly.
func scoreUsername(original string, ref *refdata.Snapshot) (int, []string) {
	local := strings.ToLower(original)
	hasSeparator := strings.ContainsAny(local, "._")

	score := 0
	var reasons []string
	hit := func(points int, reason string) {
		score += points
		reasons = append(reasons, reason)
	}

	if n := len(local); n >= 1 && n <= 3 {
		hit(15, "very short username")
	}
	if len(local) >= 20 {
		hit(10, "unusually long username")
	}

	if !hasSeparator {
		if ratio, ok := vowelRatio(local); ok && ratio < 0.25 {
			hit(20, "very few vowels")
		}
		if hasConsonantCluster(local) {
			hit(15, "unpronounceable consonant cluster")
		}
	}

	if trailingDigitsRegex.MatchString(local) {
		hit(15, "ends with a digit block")
	}

	if n := strings.Count(local, "_"); n >= 2 {
		hit(10*n, fmt.Sprintf("%d underscores", n))
	}

	if hasYear(local) {
		hit(8, "contains a year")
	}

	if hasRepeatedChar(local) {
		hit(12, "repeated character run")
	}

	for _, kw := range ref.FraudKeywords() {
		if strings.Contains(local, kw) {
			hit(25, fmt.Sprintf("fraud keyword %q", kw))
		}
	}

	if allDigitsRegex.MatchString(local) {
		hit(30, "entirely numeric")
	} else if len(local) > 0 && unicode.IsDigit(rune(local[0])) {
		hit(10, "starts with a digit")
	}

	if shortPrefixRegex.MatchString(local) {
		hit(18, "short prefix followed by digits")
	}

	for _, seq := range keyboardSequences {
		if strings.Contains(local, seq) {
			hit(20, fmt.Sprintf("keyboard sequence %q", seq))
			break
		}
	}

	if hasIrregularCapitalization(original) {
		hit(5, "irregular capitalization")
	}

	return score, reasons
}

func checkUsername(original string, ref *refdata.Snapshot) models.CheckResult {
	score, reasons := scoreUsername(original, ref)
	band := riskBand(score)

	result := models.CheckResult{
		Check:     models.CheckUsername,
		Valid:     score < suspiciousRiskThreshold,
		RiskScore: &score,
		RiskBand:  band,
	}

	if result.Valid {
		result.Message = "Username looks normal"
	} else {
		result.Message = "Suspicious username pattern"
	}
	if len(reasons) > 0 {
		result.Details = fmt.Sprintf("Risk score %d (%s): %s", score, band, strings.Join(reasons, ", "))
	} else {
		result.Details = fmt.Sprintf("Risk score %d (%s)", score, band)
	}
	return result
}

func riskBand(score int) enum.RiskBand {
	switch {
	case score <= 10:
		return enum.RiskBandClean
	case score <= 25:
		return enum.RiskBandMinor
	case score <= 50:
		return enum.RiskBandSuspicious
	default:
		return enum.RiskBandHigh
	}
}

// vowelRatio is the fraction of vowels among alphabetic characters.
// ok is false when the string has no letters at all.
func vowelRatio(s string) (float64, bool) {
	letters, vowels := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
	}
	if letters == 0 {
		return 0, false
	}
	return float64(vowels) / float64(letters), true
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !strings.ContainsRune("aeiou", rune(b))
}

func hasConsonantCluster(s string) bool {
	for i := 0; i+3 <= len(s); i++ {
		tri := s[i : i+3]
		if isConsonant(tri[0]) && isConsonant(tri[1]) && isConsonant(tri[2]) {
			if _, ok := consonantWhitelist[tri]; !ok {
				return true
			}
		}
	}
	return false
}

func hasYear(s string) bool {
	for _, m := range fourDigitRegex.FindAllString(s, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if (year >= 1900 && year <= 1999) || (year >= 2000 && year <= 2025) {
			return true
		}
	}
	return false
}

func hasRepeatedChar(s string) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasIrregularCapitalization reports mixed case that follows no word
// convention. Words (split on '.' and '_') written as all-lower, all-upper
// or Capitalized are conventional; anything else is flagged. Evaluated on
// the original local part, before lowercasing.
func hasIrregularCapitalization(original string) bool {
	hasUpper := strings.IndexFunc(original, unicode.IsUpper) >= 0
	hasLower := strings.IndexFunc(original, unicode.IsLower) >= 0
	if !hasUpper || !hasLower {
		return false
	}

	for _, word := range strings.FieldsFunc(original, func(r rune) bool { return r == '.' || r == '_' }) {
		if !isConventionalWord(word) {
			return true
		}
	}
	return false
}

func isConventionalWord(word string) bool {
	letters := []rune{}
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return true
	}

	allLower, allUpper, capitalized := true, true, true
	for i, r := range letters {
		if unicode.IsUpper(r) {
			allLower = false
			if i > 0 {
				capitalized = false
			}
		} else {
			allUpper = false
		}
	}
	return allLower || allUpper || capitalized
}
