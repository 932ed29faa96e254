package seeding

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"bloodbank/infrastructure/argon"
	"bloodbank/models"
)

// SeedUsers inserts the admin and staff logins with salted password hashes.
// A duplicate email aborts the whole insert.
func (s *Seeder) SeedUsers(ctx context.Context) ([]models.User, error) {
	now := s.nowUTC()
	users := make([]models.User, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := argon.CreateHash(u.Password, s.hashParams)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		users = append(users, models.User{
			Email:     u.Email,
			Password:  hash,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: now,
		})
	}

	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&users).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
