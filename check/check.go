// Package check validates an already seeded database without modifying it.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/uptrace/bun"

	"bloodbank/infrastructure/sqlite"
	"bloodbank/report"
)

// Result lists what the integrity check found.
type Result struct {
	OK            bool
	Missing       bool
	MissingTables []string
	NullExpiry    int
	Err           error
}

// Verify checks that the artifact at path exists, holds every seeded table and
// reports donations without an expiry date. Problems are returned in Result,
// never as an error.
func Verify(ctx context.Context, path string) Result {
	if !sqlite.Exists(path) {
		return Result{Missing: true}
	}

	db, err := sqlite.OpenDB(path)
	if err != nil {
		return Result{Err: err}
	}
	defer db.Close()

	missing, err := sqlite.MissingTables(ctx, db, report.Tables...)
	if err != nil {
		return Result{Err: err}
	}
	if len(missing) > 0 {
		return Result{MissingTables: missing}
	}

	var nullExpiry int
	err = db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT COUNT(*) FROM donation_history
WHERE expiry_date IS NULL OR TRIM(expiry_date) = ''`).Scan(ctx, &nullExpiry)
	})
	if err != nil {
		return Result{Err: err}
	}
	return Result{OK: true, NullExpiry: nullExpiry}
}

// Print writes the diagnostics for r and returns r.OK.
func Print(w io.Writer, path string, r Result) bool {
	switch {
	case r.Missing:
		fmt.Fprintf(w, "[FAIL] database file %s not found\n", path)
	case r.Err != nil:
		fmt.Fprintf(w, "[FAIL] database error: %v\n", r.Err)
	case len(r.MissingTables) > 0:
		for _, table := range r.MissingTables {
			fmt.Fprintf(w, "[FAIL] table '%s' not found in database\n", table)
		}
	default:
		if r.NullExpiry > 0 {
			fmt.Fprintf(w, "[WARN] found %d donations without an expiry date\n", r.NullExpiry)
		}
		fmt.Fprintln(w, "[ OK ] database check passed")
	}
	return r.OK
}

// Run verifies path and prints the outcome to w.
func Run(ctx context.Context, w io.Writer, path string) bool {
	return Print(w, path, Verify(ctx, path))
}
