package widget

import "fmt"

// DeepLink is the activation URL shared by every widget instance.
const DeepLink = "baringapp://open"

type Family string

const (
	FamilyGoalMedium Family = "BaringWidget"
	FamilyGoalSmall  Family = "BaringSmallWidget"
	FamilyTodo       Family = "TodoWidget"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
)

// Descriptor is the static registration info for one widget family.
type Descriptor struct {
	Family      Family
	DisplayName string
	Description string
	Size        Size
}

var catalog = []Descriptor{
	{Family: FamilyGoalMedium, DisplayName: "Baring D-Day", Description: "목표까지 남은 날을 확인하세요", Size: SizeMedium},
	{Family: FamilyGoalSmall, DisplayName: "Baring 목표", Description: "목표와 D-Day를 한눈에 확인하세요", Size: SizeSmall},
	{Family: FamilyTodo, DisplayName: "Baring 할 일", Description: "오늘의 할 일과 루틴을 확인하세요", Size: SizeSmall},
}

func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

func (f Family) IsValid() bool {
	switch f {
	case FamilyGoalMedium, FamilyGoalSmall, FamilyTodo:
		return true
	default:
		return false
	}
}

func (f Family) IsGoal() bool {
	return f == FamilyGoalMedium || f == FamilyGoalSmall
}

func (f Family) Descriptor() (Descriptor, bool) {
	for _, d := range catalog {
		if d.Family == f {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ParseFamily accepts the family kind or a short alias.
func ParseFamily(raw string) (Family, error) {
	switch raw {
	case string(FamilyGoalMedium), "goal", "dday":
		return FamilyGoalMedium, nil
	case string(FamilyGoalSmall), "goal-small", "small":
		return FamilyGoalSmall, nil
	case string(FamilyTodo), "todo":
		return FamilyTodo, nil
	default:
		return "", fmt.Errorf("widget: unknown family %q", raw)
	}
}
