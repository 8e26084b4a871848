package listing

import "strings"

// Tone is the presentation category of a raw status string.
type Tone int

const (
	// ToneNeutral is used for expired records and any unknown status.
	ToneNeutral Tone = iota
	// ToneSuccess marks healthy or approved records.
	ToneSuccess
	// ToneWarning marks records waiting on work.
	ToneWarning
	// ToneError marks failed or rejected records.
	ToneError
)

// String returns the lower-case name of the tone.
func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneWarning:
		return "warning"
	case ToneError:
		return "error"
	default:
		return "neutral"
	}
}

// Classify maps a status to its tone. Matching is case-insensitive and
// unknown values fall back to ToneNeutral.
func Classify(status string) Tone {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "approved", "success":
		return ToneSuccess
	case "pending", "analyzing":
		return ToneWarning
	case "error", "failed", "rejected":
		return ToneError
	default:
		return ToneNeutral
	}
}

// ComponentTone maps a system component state to its tone.
func ComponentTone(state string) Tone {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "operational":
		return ToneSuccess
	case "maintenance", "degraded":
		return ToneWarning
	case "error", "down":
		return ToneError
	default:
		return ToneNeutral
	}
}
