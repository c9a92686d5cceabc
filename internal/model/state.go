package model

// GoalState is the decoded goal/D-Day half of a snapshot.
type GoalState struct {
	Title       string
	DDay        string
	Percent     string
	Progress    int
	StartDate   string
	TargetDate  string
	PresetIndex int
}

// Fraction is Progress as a bar fill in [0, 1].
func (g GoalState) Fraction() float64 {
	f := float64(g.Progress) / 100
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// TodoState is the decoded to-do half of a snapshot. VisibleCount and
// TotalCount come from the host as-is and are not derived from Items.
type TodoState struct {
	Items         []TaskItem
	VisibleCount  int
	TotalCount    int
	ItemsDegraded bool
}

type DecodedState struct {
	Goal GoalState
	Todo TodoState
}
