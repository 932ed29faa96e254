package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"bloodbank/models"
)

// BuildDonationHistory returns the fixed recent donations followed by one
// generated donation per historical date. Generated donors are drawn with
// replacement from donors.
func (s *Seeder) BuildDonationHistory(donors []models.Donor) []models.DonationRecord {
	now := s.nowUTC()
	records := make([]models.DonationRecord, 0, len(recentDonations)+len(historicalDates))

	for i, d := range recentDonations {
		records = append(records, s.newRecord(now, models.DonationRecord{
			DonationID:   fmt.Sprintf("DONATION%d", recentDonationBase+i),
			DonorID:      d.DonorID,
			DonorName:    d.DonorName,
			BloodGroup:   d.BloodGroup,
			UnitsDonated: d.Units,
			DonationDate: d.DonationDate,
			ReceivedBy:   "System Administrator",
			TestResult:   models.TestPassed,
			Notes:        "Regular donation",
		}))
	}

	if len(donors) == 0 {
		return records
	}
	for i, date := range historicalDates {
		donor := pick(s.rng, donors)
		records = append(records, s.newRecord(now, models.DonationRecord{
			DonationID:   fmt.Sprintf("DONATION%d", historicalDonationBase+i),
			DonorID:      donor.DonorID,
			DonorName:    donor.Name,
			BloodGroup:   donor.BloodGroup,
			UnitsDonated: pick(s.rng, donationUnits),
			DonationDate: date,
			ReceivedBy:   pick(s.rng, receivingStaff),
			TestResult:   weightedChoice(s.rng, testResultWeights),
			Notes:        pick(s.rng, donationNotes),
		}))
	}
	return records
}

func (s *Seeder) newRecord(now time.Time, rec models.DonationRecord) models.DonationRecord {
	expiry, fellBack := expiryFor(rec.DonationDate, now)
	if fellBack {
		s.log.Warn("unparseable donation date, expiry counted from now",
			zap.String("donation_id", rec.DonationID),
			zap.String("donation_date", rec.DonationDate),
			zap.String("expiry_date", expiry))
	}
	rec.ExpiryDate = expiry
	rec.CreatedAt = now
	return rec
}

// SeedDonationHistory builds and inserts the donation history.
func (s *Seeder) SeedDonationHistory(ctx context.Context, donors []models.Donor) DonationBatch {
	return s.InsertDonations(ctx, s.BuildDonationHistory(donors))
}

// InsertDonations stores records in a single transaction. A failure is logged
// with every candidate missing a required value and returned in the batch,
// leaving the table as it was.
func (s *Seeder) InsertDonations(ctx context.Context, records []models.DonationRecord) DonationBatch {
	batch := DonationBatch{Records: records}
	if len(records) == 0 {
		return batch
	}

	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&records).Exec(ctx)
		return err
	})
	if err != nil {
		batch.Err = err
		batch.Problems = findProblems(records)
		s.log.Error("creating donation history failed", zap.Error(err), zap.Int("candidates", len(records)))
		for _, p := range batch.Problems {
			s.log.Error("problematic donation",
				zap.Int("index", p.Index),
				zap.String("donation_id", p.DonationID),
				zap.Strings("missing", p.Fields))
		}
		return batch
	}

	batch.Inserted = len(records)
	return batch
}
