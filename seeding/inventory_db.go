package seeding

import (
	"context"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"bloodbank/models"
)

const (
	provisionalMinUnits = 5
	provisionalMaxUnits = 30
)

// SeedInventory creates one row per canonical blood group with a provisional
// random unit count in [5, 30]. RecomputeInventory later overwrites groups
// that received passed donations.
func (s *Seeder) SeedInventory(ctx context.Context) ([]models.InventoryEntry, error) {
	now := s.nowUTC()
	entries := make([]models.InventoryEntry, 0, len(models.BloodGroups))
	for _, bg := range models.BloodGroups {
		units := provisionalMinUnits + s.rng.IntN(provisionalMaxUnits-provisionalMinUnits+1)
		entries = append(entries, models.InventoryEntry{
			BloodGroup:     bg,
			UnitsAvailable: units,
			Status:         models.StockStatus(units),
			LastUpdated:    now,
		})
	}

	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&entries).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type groupTotal struct {
	BloodGroup string `bun:"blood_group"`
	TotalUnits int    `bun:"total_units"`
}

// RecomputeInventory sets units and status of every group with passed donations
// to the sum of those donations. It returns the groups it changed.
func (s *Seeder) RecomputeInventory(ctx context.Context) ([]string, error) {
	now := s.nowUTC()
	updated := make([]string, 0, len(models.BloodGroups))
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		totals := make([]groupTotal, 0)
		if err := tx.NewRaw(`
SELECT blood_group, SUM(units_donated) AS total_units
FROM donation_history
WHERE test_result = ?
GROUP BY blood_group
ORDER BY blood_group`, models.TestPassed).Scan(ctx, &totals); err != nil {
			return err
		}

		for _, t := range totals {
			if t.TotalUnits <= 0 {
				continue
			}
			res, err := tx.NewUpdate().
				Model((*models.InventoryEntry)(nil)).
				Set("units_available = ?", t.TotalUnits).
				Set("status = ?", models.StockStatus(t.TotalUnits)).
				Set("last_updated = ?", now).
				Where("blood_group = ?", t.BloodGroup).
				Exec(ctx)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				s.log.Warn("donations reference a blood group missing from inventory", zap.String("blood_group", t.BloodGroup))
				continue
			}
			updated = append(updated, t.BloodGroup)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
