package widget

import (
	"github.com/sandeepkv93/baringwidget/internal/model"
	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

// PlaceholderGoal is shown before the first successful refresh.
func PlaceholderGoal(family Family) GoalModel {
	return AssembleGoal(model.GoalState{
		Title:      snapshot.DefaultTitle,
		DDay:       snapshot.DefaultDDay,
		Percent:    snapshot.DefaultPercent,
		StartDate:  snapshot.DefaultStartDate,
		TargetDate: snapshot.DefaultTargetDate,
	}, family)
}

func PlaceholderTodo(maxSlots int) TodoModel {
	return AssembleTodo(model.TodoState{
		Items: []model.TaskItem{
			{Kind: model.ItemKindTask, Title: "할 일 1"},
			{Kind: model.ItemKindRoutine, Title: "루틴 1"},
		},
		VisibleCount: 2,
		TotalCount:   3,
	}, maxSlots)
}
