package enum

type EmailType string

const (
	EmailTypeStudent   EmailType = "student"
	EmailTypeWork      EmailType = "work"
	EmailTypePersonal  EmailType = "personal"
	EmailTypeTemporary EmailType = "temporary"
	EmailTypeUnknown   EmailType = "unknown"
)

func (t EmailType) String() string {
	return string(t)
}

// Label returns the display label shown next to the classification.
func (t EmailType) Label() string {
	switch t {
	case EmailTypeStudent:
		return "🎓 Student Email"
	case EmailTypeWork:
		return "💼 Work Email"
	case EmailTypePersonal:
		return "👤 Personal Email"
	case EmailTypeTemporary:
		return "⚠️ Temporary Email"
	default:
		return "❓ Unknown"
	}
}

type RiskBand string

const (
	RiskBandClean      RiskBand = "clean"
	RiskBandMinor      RiskBand = "minor"
	RiskBandSuspicious RiskBand = "suspicious"
	RiskBandHigh       RiskBand = "high_risk"
)

func (b RiskBand) String() string {
	return string(b)
}
