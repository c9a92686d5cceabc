package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

func TestParseSnapshotDocumentYAML(t *testing.T) {
	doc := `
title_text: 전기기사
dday_text: D-30
progress: 70
selected_preset: 2
widget_items_count: 2
widget_items_total: 5
widget_items_json:
  - type: todo
    title: 공부하기
    time: "09:00"
  - type: routine
    title: 운동
`
	snap, err := ParseSnapshotDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if snap.String(snapshot.KeyTitle, "") != "전기기사" {
		t.Fatalf("unexpected title %q", snap.String(snapshot.KeyTitle, ""))
	}
	if snap.Int(snapshot.KeyProgress, 0) != 70 || snap.Int(snapshot.KeyPreset, 0) != 2 {
		t.Fatal("expected integer fields to stay integers")
	}
	items, ok := snapshot.DecodeItems(snap.String(snapshot.KeyItemsJSON, ""))
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 items re-encoded as JSON, got %d ok=%v", len(items), ok)
	}
	if items[0].Time != "09:00" || items[1].Title != "운동" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestParseSnapshotDocumentJSON(t *testing.T) {
	doc := `{"title_text":"토익 900","progress":95,"widget_items_json":"[]"}`
	snap, err := ParseSnapshotDocument([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if snap.Int(snapshot.KeyProgress, 0) != 95 || snap.String(snapshot.KeyItemsJSON, "") != "[]" {
		t.Fatalf("unexpected snapshot keys: %v", snap.Keys())
	}
}

func TestParseSnapshotDocumentRejectsNesting(t *testing.T) {
	_, err := ParseSnapshotDocument([]byte("title_text:\n  nested: true\n"))
	if err == nil || !strings.Contains(err.Error(), "title_text") {
		t.Fatalf("expected nested value error naming the key, got %v", err)
	}
}

func TestParseSnapshotDocumentRejectsFraction(t *testing.T) {
	if _, err := ParseSnapshotDocument([]byte("progress: 70.5\n")); err == nil {
		t.Fatal("expected error for fractional number")
	}
}

func TestLoadSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte("dday_text: D-5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	snap, err := LoadSnapshotFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.String(snapshot.KeyDDay, "") != "D-5" {
		t.Fatalf("unexpected dday %q", snap.String(snapshot.KeyDDay, ""))
	}
	if _, err := LoadSnapshotFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSnapshotDocumentNullIsAbsent(t *testing.T) {
	snap, err := ParseSnapshotDocument([]byte("title_text: null\ndday_text: D-3\nprogress: ~\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := snap.Lookup(snapshot.KeyTitle); ok {
		t.Fatal("expected null title to be absent")
	}
	if _, ok := snap.Lookup(snapshot.KeyProgress); ok {
		t.Fatal("expected null progress to be absent")
	}
	if snap.Len() != 1 || snap.String(snapshot.KeyDDay, "") != "D-3" {
		t.Fatalf("unexpected snapshot keys: %v", snap.Keys())
	}
}

func TestParseSnapshotDocumentRejectsOutOfRange(t *testing.T) {
	for _, doc := range []string{"progress: 1e300\n", `{"progress": -1e300}`} {
		_, err := ParseSnapshotDocument([]byte(doc))
		if err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Fatalf("doc %q: expected out of range error, got %v", doc, err)
		}
	}
	snap, err := ParseSnapshotDocument([]byte(`{"progress": 1e2}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if snap.Int(snapshot.KeyProgress, 0) != 100 {
		t.Fatalf("expected integral float kept, got %d", snap.Int(snapshot.KeyProgress, 0))
	}
}
