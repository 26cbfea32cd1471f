package subscription

// ChangeKind classifies a requested move from one plan to another.
type ChangeKind string

const (
	ChangeCurrent   ChangeKind = "current"
	ChangeSubscribe ChangeKind = "subscribe"
	ChangeUpgrade   ChangeKind = "upgrade"
	ChangeDowngrade ChangeKind = "downgrade"
	ChangeSwitch    ChangeKind = "switch"
)

// Classify returns the kind of change from current to target.
// Tier moves are checked before the free-plan case, so order matters.
// Unknown identifiers are read as the free plan.
func Classify(current, target PlanID) ChangeKind {
	current, target = Lookup(current).ID, Lookup(target).ID

	switch {
	case current == target:
		return ChangeCurrent
	case current.IsIndividual() && target.IsFamily():
		return ChangeUpgrade
	case current.IsFamily() && target.IsIndividual():
		return ChangeDowngrade
	case current == PlanFree:
		return ChangeSubscribe
	default:
		return ChangeSwitch
	}
}

// ActionLabel is the call to action shown next to a plan for this kind of change.
func (k ChangeKind) ActionLabel() string {
	switch k {
	case ChangeCurrent:
		return "Current Plan"
	case ChangeUpgrade:
		return "Upgrade Plan"
	case ChangeDowngrade, ChangeSwitch:
		return "Switch Plan"
	default:
		return "Subscribe"
	}
}
