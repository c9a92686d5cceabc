package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/baringwidget/internal/snapshot"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up must be idempotent: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	snap := snapshot.NewBuilder().SetString(snapshot.KeyTitle, "Roundtrip").Build()
	if err := repo.Replace(context.Background(), snap); err != nil {
		t.Fatalf("replace after roundtrip failed: %v", err)
	}
	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load after roundtrip failed: %v", err)
	}
	if got.String(snapshot.KeyTitle, "") != "Roundtrip" {
		t.Fatalf("unexpected title after roundtrip: %q", got.String(snapshot.KeyTitle, ""))
	}
}
