// Package snapshot holds the host-written key/value bag the widgets read and
// the decoder that turns it into typed widget state.
package snapshot

import "sort"

// Store keys written by the host app.
const (
	KeyTitle        = "title_text"
	KeyDDay         = "dday_text"
	KeyPercent      = "percent_text"
	KeyProgress     = "progress"
	KeyStartDate    = "start_date"
	KeyTargetDate   = "target_date"
	KeyPreset       = "selected_preset"
	KeyItemsJSON    = "widget_items_json"
	KeyItemsVisible = "widget_items_count"
	KeyItemsTotal   = "widget_items_total"
)

// Reader is the read-only capability the decoder needs. Missing keys and
// values of the wrong type resolve to the caller's default.
type Reader interface {
	String(key, def string) string
	Int(key string, def int) int
}

type ValueKind int

const (
	KindString ValueKind = iota + 1
	KindInt
)

type Value struct {
	Kind ValueKind
	Str  string
	Int  int
}

func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

func IntValue(v int) Value { return Value{Kind: KindInt, Int: v} }

// Snapshot is an immutable bag of values. The zero value is an empty bag.
type Snapshot struct {
	values map[string]Value
}

func New(values map[string]Value) Snapshot {
	cp := make(map[string]Value, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Snapshot{values: cp}
}

func (s Snapshot) String(key, def string) string {
	v, ok := s.values[key]
	if !ok || v.Kind != KindString {
		return def
	}
	return v.Str
}

func (s Snapshot) Int(key string, def int) int {
	v, ok := s.values[key]
	if !ok || v.Kind != KindInt {
		return def
	}
	return v.Int
}

func (s Snapshot) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s Snapshot) Len() int { return len(s.values) }

// Keys returns the stored keys in sorted order.
func (s Snapshot) Keys() []string {
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Builder collects values for a new Snapshot.
type Builder struct {
	values map[string]Value
}

func NewBuilder() *Builder {
	return &Builder{values: make(map[string]Value)}
}

func (b *Builder) SetString(key, v string) *Builder {
	b.values[key] = StringValue(v)
	return b
}

func (b *Builder) SetInt(key string, v int) *Builder {
	b.values[key] = IntValue(v)
	return b
}

func (b *Builder) Set(key string, v Value) *Builder {
	b.values[key] = v
	return b
}

func (b *Builder) Build() Snapshot {
	return New(b.values)
}
