package model

import (
	"errors"
	"fmt"
)

var ErrInvalidKind = errors.New("model: invalid item kind")

type ItemKind string

const (
	ItemKindTask    ItemKind = "task"
	ItemKindRoutine ItemKind = "routine"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindTask, ItemKindRoutine:
		return true
	default:
		return false
	}
}

// KindFromType maps the host's "type" field. Only "routine" selects the
// routine kind; every other value, including empty, is a task.
func KindFromType(raw string) ItemKind {
	if raw == string(ItemKindRoutine) {
		return ItemKindRoutine
	}
	return ItemKindTask
}

type TaskItem struct {
	Kind  ItemKind
	Title string
	Time  string
}

// HasTime reports whether the item carries a time label worth drawing.
func (t TaskItem) HasTime() bool {
	return t.Kind == ItemKindTask && t.Time != ""
}

func (t TaskItem) Validate() error {
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, t.Kind)
	}
	if t.Kind == ItemKindRoutine && t.Time != "" {
		return errors.New("model: routine items carry no time")
	}
	return nil
}
