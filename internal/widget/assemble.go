// Package widget assembles decoded snapshot state into the immutable render
// models handed to a drawing layer, and runs the per-family refresh pipeline.
package widget

import (
	"fmt"

	"github.com/sandeepkv93/baringwidget/internal/layout"
	"github.com/sandeepkv93/baringwidget/internal/model"
	"github.com/sandeepkv93/baringwidget/internal/preset"
)

const (
	GoalBadge = "목표"
	TodoBadge = "할 일"

	EmptyTodoMessage = "할 일을 모두\n완료했어요!"
)

// TodoBackground is the fixed fill of the to-do widget.
var TodoBackground = preset.ParseHex("1A2332")

type GoalModel struct {
	Family     Family
	Badge      string
	Title      string
	DDay       string
	Percent    string
	Progress   float64
	StartDate  string
	TargetDate string
	Preset     preset.StylePreset
	DeepLink   string
}

type TodoModel struct {
	Family       Family
	Badge        string
	Counter      string
	Plan         layout.RenderPlan
	EmptyMessage string
	Background   preset.Color
	DeepLink     string
	Degraded     bool
}

// Empty reports whether the widget shows the all-done message instead of rows.
func (m TodoModel) Empty() bool { return m.Plan.Empty }

func AssembleGoal(g model.GoalState, family Family) GoalModel {
	if !family.IsGoal() {
		family = FamilyGoalMedium
	}
	return GoalModel{
		Family:     family,
		Badge:      GoalBadge,
		Title:      g.Title,
		DDay:       g.DDay,
		Percent:    g.Percent,
		Progress:   g.Fraction(),
		StartDate:  g.StartDate,
		TargetDate: g.TargetDate,
		Preset:     preset.Resolve(g.PresetIndex),
		DeepLink:   DeepLink,
	}
}

func AssembleTodo(t model.TodoState, maxSlots int) TodoModel {
	return TodoModel{
		Family:       FamilyTodo,
		Badge:        TodoBadge,
		Counter:      Counter(t.VisibleCount, t.TotalCount),
		Plan:         layout.Truncate(t.Items, maxSlots),
		EmptyMessage: EmptyTodoMessage,
		Background:   TodoBackground,
		DeepLink:     DeepLink,
		Degraded:     t.ItemsDegraded,
	}
}

// Counter is "visible/total" when the host reports any items, else "".
// A negative visible count reads as 0; visible above total is shown as written.
func Counter(visible, total int) string {
	if total <= 0 {
		return ""
	}
	if visible < 0 {
		visible = 0
	}
	return fmt.Sprintf("%d/%d", visible, total)
}

func OverflowLabel(hidden int) string {
	return fmt.Sprintf("... 외 %d개", hidden)
}
