package snapshot

import (
	"bytes"
	"encoding/json"

	"github.com/sandeepkv93/baringwidget/internal/model"
)

// Fallbacks used when the host has not written a key.
const (
	DefaultTitle      = "목표 설정"
	DefaultDDay       = "D-0"
	DefaultPercent    = "0%"
	DefaultStartDate  = "2024/01/01"
	DefaultTargetDate = "2024/12/31"
	DefaultItemsJSON  = "[]"
)

// Decode never fails. Bad item JSON yields an empty list with
// TodoState.ItemsDegraded set.
func Decode(r Reader) model.DecodedState {
	return model.DecodedState{
		Goal: DecodeGoal(r),
		Todo: DecodeTodo(r),
	}
}

func DecodeGoal(r Reader) model.GoalState {
	return model.GoalState{
		Title:       r.String(KeyTitle, DefaultTitle),
		DDay:        r.String(KeyDDay, DefaultDDay),
		Percent:     r.String(KeyPercent, DefaultPercent),
		Progress:    r.Int(KeyProgress, 0),
		StartDate:   r.String(KeyStartDate, DefaultStartDate),
		TargetDate:  r.String(KeyTargetDate, DefaultTargetDate),
		PresetIndex: r.Int(KeyPreset, 0),
	}
}

func DecodeTodo(r Reader) model.TodoState {
	items, ok := DecodeItems(r.String(KeyItemsJSON, DefaultItemsJSON))
	return model.TodoState{
		Items:         items,
		VisibleCount:  r.Int(KeyItemsVisible, 0),
		TotalCount:    r.Int(KeyItemsTotal, 0),
		ItemsDegraded: !ok,
	}
}

// DecodeItems parses the host's item array. Any structural problem (bad
// JSON, a non-array document, a non-object element, a non-string field)
// discards the whole list and reports false.
func DecodeItems(raw string) ([]model.TaskItem, bool) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 || data[0] != '[' {
		return []model.TaskItem{}, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return []model.TaskItem{}, false
	}
	out := make([]model.TaskItem, 0, len(elems))
	for _, elem := range elems {
		item, ok := decodeItem(elem)
		if !ok {
			return []model.TaskItem{}, false
		}
		out = append(out, item)
	}
	return out, true
}

func decodeItem(elem json.RawMessage) (model.TaskItem, bool) {
	trimmed := bytes.TrimSpace(elem)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.TaskItem{}, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return model.TaskItem{}, false
	}
	typ, _, ok := stringField(fields, "type")
	if !ok {
		return model.TaskItem{}, false
	}
	title, _, ok := stringField(fields, "title")
	if !ok {
		return model.TaskItem{}, false
	}
	tm, hasTime, ok := stringField(fields, "time")
	if !ok {
		return model.TaskItem{}, false
	}

	item := model.TaskItem{Kind: model.KindFromType(typ), Title: title}
	if hasTime && tm != "" && item.Kind == model.ItemKindTask {
		item.Time = tm
	}
	if item.Validate() != nil {
		return model.TaskItem{}, false
	}
	return item, true
}

// stringField returns (value, present, wellTyped). JSON null counts as absent.
func stringField(fields map[string]json.RawMessage, key string) (string, bool, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false, true
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return "", false, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, false
	}
	return s, true, true
}
