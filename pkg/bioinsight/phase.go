package bioinsight

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Phase is a menstrual cycle phase. The set of values is closed.
type Phase string

const (
	PhaseMenstrual  Phase = "MENSTRUAL"
	PhaseFollicular Phase = "FOLLICULAR"
	PhaseOvulatory  Phase = "OVULATORY"
	PhaseLuteal     Phase = "LUTEAL"
)

// DefaultPhase is used when an account has not reported a phase yet.
const DefaultPhase = PhaseLuteal

// Phases returns the phases in cycle order.
func Phases() []Phase {
	return []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}
}

func (p Phase) Valid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal:
		return true
	default:
		return false
	}
}

// OrDefault returns p, or DefaultPhase when p is not a known phase.
func (p Phase) OrDefault() Phase {
	if p.Valid() {
		return p
	}
	return DefaultPhase
}

// DisplayName returns the phase in title case, e.g. "Follicular".
func (p Phase) DisplayName() string {
	return cases.Title(language.English).String(strings.ToLower(string(p)))
}

// PhaseInfo is the copy shown next to a phase.
type PhaseInfo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// Info returns the display copy for p. Unknown phases get an empty record with the raw name.
func (p Phase) Info() PhaseInfo {
	info := PhaseInfo{Name: p.DisplayName()}
	switch p {
	case PhaseMenstrual:
		info.Description = "Rest and reflect phase"
		info.Recommendations = []string{"Light movement like yoga", "Reflective work", "Self-care and rest"}
	case PhaseFollicular:
		info.Description = "Rising energy phase"
		info.Recommendations = []string{"Start new projects", "Brainstorming sessions", "Learning new skills"}
	case PhaseOvulatory:
		info.Description = "Peak energy phase"
		info.Recommendations = []string{"Important presentations", "Negotiations and pitches", "High-intensity workouts"}
	case PhaseLuteal:
		info.Description = "Winding down phase"
		info.Recommendations = []string{"Detail-oriented tasks", "Organizing and admin", "Gentle exercise"}
	}
	return info
}
