// Package seeding builds the blood bank schema and fills it with demo data.
package seeding

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"bloodbank/infrastructure/argon"
	"bloodbank/infrastructure/sqlite"
)

// Seeder runs every seeding step against one database. It never removes the
// database file; callers wanting a fresh artifact use sqlite.ResetDatabase first.
type Seeder struct {
	db         *sqlite.DB
	log        *zap.Logger
	rng        *rand.Rand
	now        func() time.Time
	hashParams *argon.Params
}

type Option func(*Seeder)

// WithRand fixes the random source, making generated rows reproducible.
func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) { s.rng = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func WithHashParams(p *argon.Params) Option {
	return func(s *Seeder) { s.hashParams = p }
}

func New(db *sqlite.DB, logger *zap.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		db:         db,
		log:        logger,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:        time.Now,
		hashParams: argon.DefaultParams,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Result summarises a completed run.
type Result struct {
	Users      int
	Inventory  int
	Donors     int
	Donations  DonationBatch
	Recomputed []string
}

// Run executes schema creation, reference data, donors, donation history and
// inventory recomputation in that order. Only a donation batch failure is
// tolerated; it is reported in Result.Donations.Err.
func (s *Seeder) Run(ctx context.Context, migrationsDir string) (Result, error) {
	var res Result

	s.log.Info("creating tables")
	if err := s.DefineSchema(ctx, migrationsDir); err != nil {
		return res, fmt.Errorf("define schema: %w", err)
	}

	s.log.Info("creating default users")
	users, err := s.SeedUsers(ctx)
	if err != nil {
		return res, fmt.Errorf("seed users: %w", err)
	}
	res.Users = len(users)
	for _, u := range defaultUsers {
		s.log.Info("default login", zap.String("email", u.Email), zap.String("password", u.Password))
	}

	s.log.Info("initializing blood inventory")
	inventory, err := s.SeedInventory(ctx)
	if err != nil {
		return res, fmt.Errorf("seed inventory: %w", err)
	}
	res.Inventory = len(inventory)

	s.log.Info("creating sample donors")
	donors, err := s.SeedDonors(ctx)
	if err != nil {
		return res, fmt.Errorf("seed donors: %w", err)
	}
	res.Donors = len(donors)

	s.log.Info("creating sample donation history")
	res.Donations = s.SeedDonationHistory(ctx, donors)

	s.log.Info("updating inventory based on donations")
	res.Recomputed, err = s.RecomputeInventory(ctx)
	if err != nil {
		return res, fmt.Errorf("recompute inventory: %w", err)
	}
	return res, nil
}

// DefineSchema applies the migrations; it fails if the tables already exist.
func (s *Seeder) DefineSchema(ctx context.Context, migrationsDir string) error {
	return sqlite.ApplyMigrations(ctx, s.db, migrationsDir)
}

func (s *Seeder) nowUTC() time.Time {
	return s.now().UTC().Truncate(time.Second)
}
