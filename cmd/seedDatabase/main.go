package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"bloodbank/check"
	"bloodbank/infrastructure/config"
	"bloodbank/infrastructure/logging"
	"bloodbank/infrastructure/sqlite"
	"bloodbank/models"
	"bloodbank/report"
	"bloodbank/seeding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, "seed")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ok, err := run(context.Background(), cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	if !ok {
		os.Exit(1)
	}
}

// run rebuilds the database, prints the summary and returns the result of the
// post-seed integrity check.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) (bool, error) {
	if cfg.Reset {
		removed, err := sqlite.ResetDatabase(cfg.SQLitePath)
		if err != nil {
			return false, fmt.Errorf("reset database: %w", err)
		}
		if removed {
			logger.Info("removed existing database", zap.String("path", cfg.SQLitePath))
		}
	}

	if err := seed(ctx, cfg, logger, out); err != nil {
		return false, err
	}

	fmt.Fprintln(out, "\nDATABASE INITIALIZATION COMPLETED")
	return check.Run(ctx, out, cfg.SQLitePath), nil
}

func seed(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	db, err := sqlite.OpenDB(cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	var opts []seeding.Option
	if cfg.RandomSeed != nil {
		opts = append(opts, seeding.WithRand(rand.New(rand.NewPCG(*cfg.RandomSeed, *cfg.RandomSeed))))
	}

	res, err := seeding.New(db, logger, opts...).Run(ctx, cfg.MigrationsDir)
	if err != nil {
		return err
	}
	logger.Info("seeding finished",
		zap.Int("users", res.Users),
		zap.Int("inventory", res.Inventory),
		zap.Int("donors", res.Donors),
		zap.Int("donations", res.Donations.Inserted),
		zap.Strings("recomputed_groups", res.Recomputed),
		zap.Bool("donation_batch_failed", res.Donations.Err != nil))

	summary, err := report.LoadSummary(ctx, db)
	if err != nil {
		return fmt.Errorf("load summary: %w", err)
	}
	if err := report.WriteText(out, summary); err != nil {
		return fmt.Errorf("print summary: %w", err)
	}

	if cfg.ExportXLSX == "" && cfg.LabelsPDF == "" {
		return nil
	}
	donations, err := report.ListDonations(ctx, db)
	if err != nil {
		return fmt.Errorf("list donations: %w", err)
	}

	if cfg.ExportXLSX != "" {
		if err := writeWorkbook(cfg.ExportXLSX, summary, donations); err != nil {
			return err
		}
		logger.Info("wrote summary workbook", zap.String("path", cfg.ExportXLSX))
	}
	if cfg.LabelsPDF != "" {
		if len(donations) == 0 {
			logger.Warn("no donations stored, skipping labels", zap.String("path", cfg.LabelsPDF))
			return nil
		}
		pdf, err := report.RenderDonationLabelsPDF(donations, time.Now())
		if err != nil {
			return fmt.Errorf("render labels: %w", err)
		}
		if err := os.WriteFile(cfg.LabelsPDF, pdf, 0o644); err != nil {
			return fmt.Errorf("write labels: %w", err)
		}
		logger.Info("wrote donation labels", zap.String("path", cfg.LabelsPDF), zap.Int("labels", len(donations)))
	}
	return nil
}

func writeWorkbook(path string, summary report.Summary, donations []models.DonationRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	if err := report.WriteWorkbook(f, summary, donations); err != nil {
		f.Close()
		return fmt.Errorf("write workbook: %w", err)
	}
	return f.Close()
}
