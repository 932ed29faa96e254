package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResetDatabaseRemovesFileAndSidecars(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "bloodbank.db")

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := ApplyEmbeddedMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}
	if err := os.WriteFile(dbPath+"-journal", nil, 0o600); err != nil {
		t.Fatalf("write journal: %v", err)
	}

	removed, err := ResetDatabase(dbPath)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !removed {
		t.Fatalf("expected existing database to be reported as removed")
	}
	if Exists(dbPath) {
		t.Fatalf("expected %s to be gone", dbPath)
	}
	if _, err := os.Stat(dbPath + "-journal"); !os.IsNotExist(err) {
		t.Fatalf("expected journal to be gone, stat err=%v", err)
	}
}

func TestResetDatabaseMissingFileIsNoop(t *testing.T) {
	removed, err := ResetDatabase(filepath.Join(t.TempDir(), "absent.db"))
	if err != nil {
		t.Fatalf("reset missing: %v", err)
	}
	if removed {
		t.Fatalf("expected nothing removed")
	}
}

func TestResetDatabaseRequiresPath(t *testing.T) {
	if _, err := ResetDatabase(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMissingTablesReportsAbsent(t *testing.T) {
	db := openTestDB(t)

	missing, err := MissingTables(context.Background(), db, "inventory", "blood_requests")
	if err != nil {
		t.Fatalf("missing tables: %v", err)
	}
	if len(missing) != 1 || missing[0] != "blood_requests" {
		t.Fatalf("expected [blood_requests], got %v", missing)
	}
}
