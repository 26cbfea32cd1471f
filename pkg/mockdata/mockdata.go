// Package mockdata holds the seeded account and the calendar, suggestion, family
// and billing fixtures served by the API in place of real integrations.
//
// Fixture functions return fresh values, so callers may mutate them freely.
// SuggestionBoard and FamilyCircle keep in-memory state for the process lifetime.
package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/subscription"
)

// SeedAccountID identifies the single seeded account.
var SeedAccountID = uuid.MustParse("5f1c0a9e-3b7d-4c2a-9e61-2d8f4b7a1c01")

// NewSeedAccount returns the demo account: a parent on the free plan who has not
// used her trial and is halfway through onboarding.
func NewSeedAccount() subscription.Account {
	return subscription.Account{
		ID:                 SeedAccountID,
		Name:               "Elena Fisher",
		Email:              "elena@luna.app",
		Type:               subscription.AccountParent,
		Plan:               subscription.PlanFree,
		Status:             subscription.StatusFree,
		HasUsedTrial:       false,
		Phase:              bioinsight.PhaseLuteal,
		OnboardingComplete: false,
		OnboardingStep:     2,
	}
}

type EventType string

const (
	EventDeepFocus      EventType = "DEEP_FOCUS"
	EventPresenting     EventType = "PRESENTING"
	EventCollaborative  EventType = "COLLABORATIVE"
	EventHighStakes     EventType = "HIGH_STAKES"
	EventAdminLight     EventType = "ADMIN_LIGHT"
	EventIntenseWorkout EventType = "INTENSE_WORKOUT"
	EventLightMovement  EventType = "LIGHT_MOVEMENT"
	EventSocial         EventType = "SOCIAL"
	EventRest           EventType = "REST"
	EventOther          EventType = "OTHER"
)

// Event is a calendar entry scored against the current phase.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Type      EventType `json:"eventType"`
	FitScore  int       `json:"fitScore"` // 0-100
}

// Events returns the demo calendar placed on the day of now, in now's location.
func Events(now time.Time) []Event {
	at := func(hour, minute int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}
	return []Event{
		{ID: "e1", Title: "Q3 Strategy Review", StartTime: at(10, 0), EndTime: at(11, 30), Type: EventHighStakes, FitScore: 85},
		{ID: "e2", Title: "Team Sync", StartTime: at(14, 0), EndTime: at(15, 0), Type: EventCollaborative, FitScore: 92},
		{ID: "e3", Title: "HIIT Workout", StartTime: at(17, 30), EndTime: at(18, 30), Type: EventIntenseWorkout, FitScore: 60},
	}
}

type SuggestionType string

const (
	SuggestionReschedule  SuggestionType = "RESCHEDULE"
	SuggestionPrepare     SuggestionType = "PREPARE"
	SuggestionAddRest     SuggestionType = "ADD_REST"
	SuggestionWorkoutSwap SuggestionType = "WORKOUT_SWAP"
)

type Suggestion struct {
	ID     string         `json:"id"`
	Type   SuggestionType `json:"type"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Reason string         `json:"reason"`
}

func Suggestions() []Suggestion {
	return []Suggestion{
		{
			ID:     "s1",
			Type:   SuggestionReschedule,
			Title:  "Reschedule HIIT Workout",
			Body:   "Your energy is naturally lower today during the Luteal phase. Consider a lighter activity.",
			Reason: "Energy Conservation",
		},
		{
			ID:     "s2",
			Type:   SuggestionPrepare,
			Title:  "Prepare for Q3 Strategy",
			Body:   "You are in a phase great for detail, but watch out for brain fog. Take notes early.",
			Reason: "Cognitive Optimization",
		},
	}
}

// FamilyMember is a linked daughter account as seen by the parent.
type FamilyMember struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Relationship  string           `json:"relationship"`
	Phase         bioinsight.Phase `json:"phase"`
	StatusMessage string           `json:"statusMessage,omitempty"`
	LastCheckIn   time.Time        `json:"lastCheckIn"`
	AvatarURL     string           `json:"avatarUrl,omitempty"`
}

// FamilyMembers returns the linked members; their last check-in is now.
func FamilyMembers(now time.Time) []FamilyMember {
	return []FamilyMember{
		{
			ID:            "f1",
			Name:          "Sophie",
			Relationship:  "Daughter",
			Phase:         bioinsight.PhaseMenstrual,
			StatusMessage: "Cramps 😫",
			LastCheckIn:   now,
			AvatarURL:     "https://picsum.photos/100/100",
		},
	}
}
