package seeding

import (
	"context"

	"github.com/uptrace/bun"

	"bloodbank/models"
)

// SeedDonors inserts the fixed sample donors; the rows are identical on every run.
func (s *Seeder) SeedDonors(ctx context.Context) ([]models.Donor, error) {
	now := s.nowUTC()
	donors := SampleDonors()
	for i := range donors {
		donors[i].CreatedAt = now
	}

	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&donors).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return donors, nil
}
