package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/uptrace/bun"
)

// sidecars are the files SQLite may leave next to the main database file.
var sidecars = []string{"-journal", "-wal", "-shm"}

// Exists reports whether a database artifact is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ResetDatabase deletes the database at path together with its journal files.
// It is destructive and must only be called while no handle is open on path.
// The returned flag is false when there was nothing to remove.
func ResetDatabase(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("sqlite path is required")
	}

	removed := false
	for _, name := range append([]string{path}, sidecarPaths(path)...) {
		err := os.Remove(name)
		switch {
		case err == nil:
			if name == path {
				removed = true
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return removed, nil
}

func sidecarPaths(path string) []string {
	out := make([]string, 0, len(sidecars))
	for _, suffix := range sidecars {
		out = append(out, path+suffix)
	}
	return out
}

// MissingTables returns the names from want that are not tables in the schema.
func MissingTables(ctx context.Context, db *DB, want ...string) ([]string, error) {
	missing := make([]string, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		for _, name := range want {
			var count int
			if err := tx.NewRaw(
				`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name,
			).Scan(ctx, &count); err != nil {
				return err
			}
			if count == 0 {
				missing = append(missing, name)
			}
		}
		return nil
	})
	return missing, err
}
