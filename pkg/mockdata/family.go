package mockdata

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AlertType identifies a quick nudge a parent can send.
type AlertType string

const (
	AlertJustSayingHi AlertType = "JUST_SAYING_HI"
	AlertHaveGoodDay  AlertType = "HAVE_GOOD_DAY"
)

type Alert struct {
	Type  AlertType `json:"type"`
	Label string    `json:"label"`
	Icon  string    `json:"icon"`
}

var alerts = []Alert{
	{Type: AlertJustSayingHi, Label: "Just saying hi", Icon: "👋"},
	{Type: AlertHaveGoodDay, Label: "Have a good day", Icon: "🌟"},
}

// Alerts returns the nudge types in display order.
func Alerts() []Alert {
	return slices.Clone(alerts)
}

// LookupAlert returns the alert for t.
func LookupAlert(t AlertType) (Alert, bool) {
	i := slices.IndexFunc(alerts, func(a Alert) bool { return a.Type == t })
	if i < 0 {
		return Alert{}, false
	}
	return alerts[i], true
}

// Nudge is a delivered alert. Nothing leaves the process.
type Nudge struct {
	ID         uuid.UUID `json:"id"`
	MemberID   string    `json:"memberId"`
	MemberName string    `json:"memberName"`
	Alert      Alert     `json:"alert"`
	SentAt     time.Time `json:"sentAt"`
}

// Message is the confirmation shown to the parent, e.g. `Sent "Just saying hi" to Sophie.`
func (n Nudge) Message() string {
	return fmt.Sprintf("Sent %q to %s.", n.Alert.Label, n.MemberName)
}

// Invitation is a pending request for a new member to join the family plan.
type Invitation struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	SentAt time.Time `json:"sentAt"`
}

// FamilyCircle is the parent's linked members and the invitations they sent.
// A FamilyCircle is safe for concurrent use.
type FamilyCircle struct {
	mu      sync.Mutex
	members []FamilyMember
	invites []Invitation
}

func NewFamilyCircle(members ...FamilyMember) *FamilyCircle {
	return &FamilyCircle{members: slices.Clone(members)}
}

func (c *FamilyCircle) Members() []FamilyMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]FamilyMember{}, c.members...)
}

func (c *FamilyCircle) Invitations() []Invitation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Invitation{}, c.invites...)
}

// Nudge sends the alert of type t to the member with memberID.
func (c *FamilyCircle) Nudge(memberID string, t AlertType, at time.Time) (Nudge, error) {
	alert, ok := LookupAlert(t)
	if !ok {
		return Nudge{}, ErrUnknownAlert
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.members, func(m FamilyMember) bool { return m.ID == memberID })
	if i < 0 {
		return Nudge{}, ErrMemberNotFound
	}
	return Nudge{
		ID:         uuid.New(),
		MemberID:   memberID,
		MemberName: c.members[i].Name,
		Alert:      alert,
		SentAt:     at,
	}, nil
}

// Invite records a pending invitation for email. Members and pending invitations
// together may not exceed seats.
func (c *FamilyCircle) Invite(email string, seats int, at time.Time) (Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return Invitation{}, ErrInvalidEmail
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.invites, func(inv Invitation) bool { return inv.Email == email }) {
		return Invitation{}, ErrAlreadyInvited
	}
	if len(c.members)+len(c.invites) >= seats {
		return Invitation{}, ErrFamilyCircleFull
	}

	inv := Invitation{ID: uuid.New(), Email: email, SentAt: at}
	c.invites = append(c.invites, inv)
	return inv, nil
}
