package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotTypedAccessors(t *testing.T) {
	snap := NewBuilder().
		SetString(KeyTitle, "전기기사").
		SetInt(KeyProgress, 70).
		Build()

	assert.Equal(t, "전기기사", snap.String(KeyTitle, "x"))
	assert.Equal(t, 70, snap.Int(KeyProgress, 0))
	assert.Equal(t, "fallback", snap.String(KeyDDay, "fallback"))
	assert.Equal(t, 3, snap.Int(KeyPreset, 3))
	assert.Equal(t, []string{KeyProgress, KeyTitle}, snap.Keys())
}

func TestSnapshotTypeMismatchUsesDefault(t *testing.T) {
	snap := NewBuilder().
		SetInt(KeyTitle, 5).
		SetString(KeyProgress, "70").
		Build()

	assert.Equal(t, DefaultTitle, snap.String(KeyTitle, DefaultTitle))
	assert.Equal(t, 0, snap.Int(KeyProgress, 0))
}

func TestSnapshotIsolatedFromSource(t *testing.T) {
	src := map[string]Value{KeyTitle: StringValue("before")}
	snap := New(src)
	src[KeyTitle] = StringValue("after")

	assert.Equal(t, "before", snap.String(KeyTitle, ""))
}

func TestZeroSnapshotIsEmpty(t *testing.T) {
	var snap Snapshot
	assert.Equal(t, 0, snap.Len())
	assert.Equal(t, "d", snap.String(KeyTitle, "d"))
}
