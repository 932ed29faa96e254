package seeding

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"bloodbank/infrastructure/argon"
	"bloodbank/infrastructure/sqlite"
	"bloodbank/models"
)

var (
	testNow    = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	testParams = &argon.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
)

func openSeedTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "bloodbank-test.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestSeeder(db *sqlite.DB, seed uint64) *Seeder {
	return New(db, nil,
		WithRand(rand.New(rand.NewPCG(seed, seed^0x5eed))),
		WithClock(func() time.Time { return testNow }),
		WithHashParams(testParams),
	)
}

func runSeeder(t *testing.T, seed uint64) (*sqlite.DB, Result) {
	t.Helper()
	db := openSeedTestDB(t)
	res, err := newTestSeeder(db, seed).Run(context.Background(), "")
	if err != nil {
		t.Fatalf("run seeder: %v", err)
	}
	return db, res
}

func loadAll[T any](t *testing.T, db *sqlite.DB, order string) []T {
	t.Helper()
	rows := make([]T, 0)
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).Order(order).Scan(ctx)
	})
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	return rows
}

func TestRunSeedsEveryTable(t *testing.T) {
	db, res := runSeeder(t, 1)

	if res.Users != 2 || res.Inventory != 8 || res.Donors != 8 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Donations.Err != nil {
		t.Fatalf("unexpected donation batch error: %v", res.Donations.Err)
	}
	if res.Donations.Inserted != 15 {
		t.Fatalf("expected 15 donations, got %d", res.Donations.Inserted)
	}

	donations := loadAll[models.DonationRecord](t, db, "donation_id ASC")
	if len(donations) != 15 {
		t.Fatalf("expected 15 stored donations, got %d", len(donations))
	}
}

func TestRunStoresHashedUsers(t *testing.T) {
	db, _ := runSeeder(t, 2)

	users := loadAll[models.User](t, db, "id ASC")
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	want := []struct{ email, password, name, role string }{
		{"admin@bloodbank.com", "admin123", "System Administrator", models.RoleAdmin},
		{"staff@bloodbank.com", "staff123", "John Doe", models.RoleStaff},
	}
	for i, w := range want {
		u := users[i]
		if u.Email != w.email || u.Name != w.name || u.Role != w.role {
			t.Fatalf("user %d: got %+v", i, u)
		}
		if u.Password == w.password {
			t.Fatalf("expected password of %s to be hashed", u.Email)
		}
		ok, err := argon.ComparePasswordAndHash(w.password, u.Password)
		if err != nil || !ok {
			t.Fatalf("expected stored hash of %s to match (ok=%v err=%v)", u.Email, ok, err)
		}
	}
}

func TestRunInventoryStatusMatchesUnits(t *testing.T) {
	db, _ := runSeeder(t, 3)

	entries := loadAll[models.InventoryEntry](t, db, "id ASC")
	if len(entries) != len(models.BloodGroups) {
		t.Fatalf("expected %d inventory rows, got %d", len(models.BloodGroups), len(entries))
	}
	for i, e := range entries {
		if e.BloodGroup != models.BloodGroups[i] {
			t.Fatalf("row %d: expected %s, got %s", i, models.BloodGroups[i], e.BloodGroup)
		}
		if e.Status != models.StockStatus(e.UnitsAvailable) {
			t.Fatalf("%s: status %q inconsistent with %d units", e.BloodGroup, e.Status, e.UnitsAvailable)
		}
	}
}

func TestRunInventoryEqualsPassedDonationTotals(t *testing.T) {
	for seed := uint64(10); seed < 15; seed++ {
		db, res := runSeeder(t, seed)

		totals := map[string]int{}
		for _, d := range loadAll[models.DonationRecord](t, db, "id ASC") {
			if d.TestResult == models.TestPassed {
				totals[d.BloodGroup] += d.UnitsDonated
			}
		}
		if len(res.Recomputed) != len(totals) {
			t.Fatalf("seed %d: recomputed %v, passed totals %v", seed, res.Recomputed, totals)
		}

		for _, e := range loadAll[models.InventoryEntry](t, db, "id ASC") {
			total, ok := totals[e.BloodGroup]
			if !ok {
				if e.UnitsAvailable < provisionalMinUnits || e.UnitsAvailable > provisionalMaxUnits {
					t.Fatalf("seed %d: %s kept %d units outside provisional range", seed, e.BloodGroup, e.UnitsAvailable)
				}
				continue
			}
			if e.UnitsAvailable != total {
				t.Fatalf("seed %d: %s has %d units, passed donations sum to %d", seed, e.BloodGroup, e.UnitsAvailable, total)
			}
		}
	}
}

func TestRunDonationsAreWellFormed(t *testing.T) {
	db, _ := runSeeder(t, 4)

	donors := map[string]models.Donor{}
	for _, d := range loadAll[models.Donor](t, db, "donor_id ASC") {
		donors[d.DonorID] = d
	}

	seen := map[string]bool{}
	for _, d := range loadAll[models.DonationRecord](t, db, "id ASC") {
		if seen[d.DonationID] {
			t.Fatalf("duplicate donation id %s", d.DonationID)
		}
		seen[d.DonationID] = true

		donated, err := time.Parse(models.DateLayout, d.DonationDate)
		if err != nil {
			t.Fatalf("%s: bad donation date %q", d.DonationID, d.DonationDate)
		}
		if want := donated.AddDate(0, 0, 42).Format(models.DateLayout); d.ExpiryDate != want {
			t.Fatalf("%s: expiry %s, want %s", d.DonationID, d.ExpiryDate, want)
		}
		if !models.IsBloodGroup(d.BloodGroup) {
			t.Fatalf("%s: non-canonical blood group %q", d.DonationID, d.BloodGroup)
		}
		donor, ok := donors[d.DonorID]
		if !ok {
			t.Fatalf("%s: unknown donor %s", d.DonationID, d.DonorID)
		}
		if donor.Name != d.DonorName || donor.BloodGroup != d.BloodGroup {
			t.Fatalf("%s: denormalized donor data %s/%s does not match %s/%s", d.DonationID, d.DonorName, d.BloodGroup, donor.Name, donor.BloodGroup)
		}
		if d.UnitsDonated != 1 && d.UnitsDonated != 2 {
			t.Fatalf("%s: units %d", d.DonationID, d.UnitsDonated)
		}
		if d.TestResult != models.TestPassed && d.TestResult != models.TestFailed {
			t.Fatalf("%s: test result %q", d.DonationID, d.TestResult)
		}
	}
	for _, id := range []string{"DONATION2000", "DONATION2001", "DONATION2002", "DONATION1000", "DONATION1011"} {
		if !seen[id] {
			t.Fatalf("expected donation %s", id)
		}
	}
}

func TestRunFindsONegativeAndJamesWilson(t *testing.T) {
	db, _ := runSeeder(t, 5)

	var inventoryRows, donorRows int
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewRaw(`SELECT COUNT(*) FROM inventory WHERE blood_group = ?`, "O-").Scan(ctx, &inventoryRows); err != nil {
			return err
		}
		return tx.NewRaw(`SELECT COUNT(*) FROM donors WHERE name = ? AND blood_group = ?`, "James Wilson", "O-").Scan(ctx, &donorRows)
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if inventoryRows < 1 || donorRows != 1 {
		t.Fatalf("expected O- inventory and James Wilson, got inventory=%d donors=%d", inventoryRows, donorRows)
	}
}

func TestRunDonorsAndUsersAreDeterministic(t *testing.T) {
	dbA, _ := runSeeder(t, 6)
	dbB, _ := runSeeder(t, 7)

	donorsA := loadAll[models.Donor](t, dbA, "donor_id ASC")
	donorsB := loadAll[models.Donor](t, dbB, "donor_id ASC")
	if len(donorsA) != 8 || len(donorsB) != 8 {
		t.Fatalf("expected 8 donors in both runs, got %d and %d", len(donorsA), len(donorsB))
	}
	groups := map[string]bool{}
	for i := range donorsA {
		a, b := donorsA[i], donorsB[i]
		a.CreatedAt, b.CreatedAt = time.Time{}, time.Time{}
		if a != b {
			t.Fatalf("donor %d differs between runs: %+v vs %+v", i, a, b)
		}
		groups[a.BloodGroup] = true
	}
	if len(groups) != 8 {
		t.Fatalf("expected donors to span 8 groups, got %v", groups)
	}
	if donorsA[5].LastDonationDate != "" || donorsA[5].Email != "maria@email.com" {
		t.Fatalf("expected Maria Garcia without a last donation date, got %+v", donorsA[5])
	}

	usersA := loadAll[models.User](t, dbA, "id ASC")
	usersB := loadAll[models.User](t, dbB, "id ASC")
	for i := range usersA {
		if usersA[i].Email != usersB[i].Email || usersA[i].Role != usersB[i].Role {
			t.Fatalf("user %d differs between runs", i)
		}
	}
}

func TestBuildDonationHistoryIsReproducibleForSeed(t *testing.T) {
	a := newTestSeeder(nil, 99).BuildDonationHistory(SampleDonors())
	b := newTestSeeder(nil, 99).BuildDonationHistory(SampleDonors())
	if len(a) != 15 || len(b) != 15 {
		t.Fatalf("expected 15 records, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs for the same seed: %+v vs %+v", i, a[i], b[i])
		}
	}
	for i, date := range historicalDates {
		if got := a[len(recentDonations)+i].DonationDate; got != date {
			t.Fatalf("generated record %d: date %s, want %s", i, got, date)
		}
	}
}

func TestBuildDonationHistoryWithoutDonors(t *testing.T) {
	records := newTestSeeder(nil, 1).BuildDonationHistory(nil)
	if len(records) != len(recentDonations) {
		t.Fatalf("expected only the fixed recent donations, got %d", len(records))
	}
}

func TestRunTwiceOnSameFileFails(t *testing.T) {
	db, _ := runSeeder(t, 8)

	if _, err := newTestSeeder(db, 8).Run(context.Background(), ""); err == nil {
		t.Fatalf("expected schema creation on an existing artifact to fail")
	}
}

func TestInsertDonationsIsAllOrNothing(t *testing.T) {
	db := openSeedTestDB(t)
	s := newTestSeeder(db, 9)
	ctx := context.Background()
	if err := s.DefineSchema(ctx, ""); err != nil {
		t.Fatalf("define schema: %v", err)
	}

	existing := []models.DonationRecord{{
		DonationID: "DONATION1005", DonorID: "DON10001", DonorName: "Michael Johnson", BloodGroup: "O+",
		UnitsDonated: 1, DonationDate: "2025-01-01", ExpiryDate: "2025-02-12", TestResult: models.TestPassed,
	}}
	if first := s.InsertDonations(ctx, existing); first.Err != nil {
		t.Fatalf("seed existing donation: %v", first.Err)
	}

	batch := s.SeedDonationHistory(ctx, SampleDonors())
	if batch.Err == nil {
		t.Fatalf("expected duplicate donation id to fail the batch")
	}
	if batch.Inserted != 0 {
		t.Fatalf("expected nothing inserted, got %d", batch.Inserted)
	}
	if len(batch.Problems) != 0 {
		t.Fatalf("expected no records with missing values, got %+v", batch.Problems)
	}

	var count int
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM donation_history`).Scan(ctx, &count)
	})
	if err != nil {
		t.Fatalf("count donations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected failed batch to leave 1 row, got %d", count)
	}

	updated, err := s.RecomputeInventory(ctx)
	if err != nil {
		t.Fatalf("recompute after failed batch: %v", err)
	}
	if len(updated) != 0 {
		t.Fatalf("expected no inventory rows to update without inventory seeded, got %v", updated)
	}
}

func TestFindProblemsListsMissingFields(t *testing.T) {
	records := []models.DonationRecord{
		{DonationID: "DONATION1", DonorID: "DON1", DonorName: "A", BloodGroup: "A+", UnitsDonated: 1, DonationDate: "2025-01-01", ExpiryDate: "2025-02-12", TestResult: models.TestPassed},
		{DonationID: "DONATION2", DonorID: "DON2", BloodGroup: "B+", DonationDate: "2025-01-01", TestResult: models.TestPassed},
	}
	problems := findProblems(records)
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem, got %+v", problems)
	}
	p := problems[0]
	if p.Index != 1 || p.DonationID != "DONATION2" {
		t.Fatalf("unexpected problem: %+v", p)
	}
	want := []string{"donor_name", "expiry_date", "units_donated"}
	if len(p.Fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, p.Fields)
	}
	for i := range want {
		if p.Fields[i] != want[i] {
			t.Fatalf("expected fields %v, got %v", want, p.Fields)
		}
	}
}
