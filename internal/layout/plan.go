// Package layout fits an ordered item list into a fixed number of widget
// rows, reserving the last row for a "N more" indicator when it overflows.
package layout

import "github.com/sandeepkv93/baringwidget/internal/model"

// DefaultMaxSlots is the row count of the to-do widget.
const DefaultMaxSlots = 7

type RowKind int

const (
	RowTask RowKind = iota + 1
	RowOverflow
)

type Row struct {
	Kind   RowKind
	Item   model.TaskItem
	Hidden int
}

// RenderPlan is the bounded set of rows for one render pass. Empty marks
// the no-items state and is distinct from a plan with rows.
type RenderPlan struct {
	Rows  []Row
	Empty bool
}

// Items returns the visible task rows in order.
func (p RenderPlan) Items() []model.TaskItem {
	out := make([]model.TaskItem, 0, len(p.Rows))
	for _, row := range p.Rows {
		if row.Kind == RowTask {
			out = append(out, row.Item)
		}
	}
	return out
}

// Overflow reports the hidden item count when the plan ends in an overflow row.
func (p RenderPlan) Overflow() (int, bool) {
	if len(p.Rows) == 0 {
		return 0, false
	}
	last := p.Rows[len(p.Rows)-1]
	if last.Kind != RowOverflow {
		return 0, false
	}
	return last.Hidden, true
}

// Truncate keeps the front of items. When len(items) > maxSlots only
// maxSlots-1 items are shown and one overflow row counts the rest.
// A non-positive maxSlots hides every item behind a single overflow row.
func Truncate(items []model.TaskItem, maxSlots int) RenderPlan {
	if len(items) == 0 {
		return RenderPlan{Rows: []Row{}, Empty: true}
	}
	if maxSlots < 0 {
		maxSlots = 0
	}
	if len(items) <= maxSlots {
		return RenderPlan{Rows: taskRows(items)}
	}

	shown := maxSlots - 1
	if shown < 0 {
		shown = 0
	}
	rows := taskRows(items[:shown])
	rows = append(rows, Row{Kind: RowOverflow, Hidden: len(items) - shown})
	return RenderPlan{Rows: rows}
}

func taskRows(items []model.TaskItem) []Row {
	rows := make([]Row, 0, len(items)+1)
	for _, item := range items {
		rows = append(rows, Row{Kind: RowTask, Item: item})
	}
	return rows
}
