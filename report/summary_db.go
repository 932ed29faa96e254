package report

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"bloodbank/infrastructure/sqlite"
	"bloodbank/models"
)

// LoadSummary reads counts, inventory, donor distribution and the latest donations.
func LoadSummary(ctx context.Context, db *sqlite.DB) (Summary, error) {
	var s Summary
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		s.Counts = make([]TableCount, 0, len(Tables))
		for _, table := range Tables {
			var n int
			if err := tx.NewRaw(`SELECT COUNT(*) FROM ?`, bun.Ident(table)).Scan(ctx, &n); err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			s.Counts = append(s.Counts, TableCount{Table: table, Rows: n})
		}

		s.Inventory = make([]InventoryLine, 0)
		if err := tx.NewRaw(`
SELECT blood_group, units_available, status
FROM inventory
ORDER BY blood_group`).Scan(ctx, &s.Inventory); err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}

		s.Distribution = make([]DonorGroupCount, 0)
		if err := tx.NewRaw(`
SELECT blood_group, COUNT(*) AS donors
FROM donors
GROUP BY blood_group
ORDER BY blood_group`).Scan(ctx, &s.Distribution); err != nil {
			return fmt.Errorf("load donor distribution: %w", err)
		}

		s.Recent = make([]RecentDonation, 0, recentLimit)
		if err := tx.NewRaw(`
SELECT donation_id, donor_name, blood_group, units_donated, donation_date
FROM donation_history
ORDER BY donation_date DESC, donation_id DESC
LIMIT ?`, recentLimit).Scan(ctx, &s.Recent); err != nil {
			return fmt.Errorf("load recent donations: %w", err)
		}
		return nil
	})
	return s, err
}

// ListDonations returns the full donation history, newest first.
func ListDonations(ctx context.Context, db *sqlite.DB) ([]models.DonationRecord, error) {
	rows := make([]models.DonationRecord, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Order("donation_date DESC", "donation_id DESC").
			Scan(ctx)
	})
	return rows, err
}
