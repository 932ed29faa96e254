package seeding

import "bloodbank/models"

const (
	recentDonationBase     = 2000
	historicalDonationBase = 1000
)

type recentDonation struct {
	DonorID      string
	DonorName    string
	BloodGroup   string
	DonationDate string
	Units        int
}

// recentDonations feed the downstream dashboard's "recent donations" panel.
var recentDonations = []recentDonation{
	{DonorID: "DON10007", DonorName: "Robert Miller", BloodGroup: "B-", DonationDate: "2026-01-22", Units: 1},
	{DonorID: "DON10005", DonorName: "James Wilson", BloodGroup: "O-", DonationDate: "2026-01-07", Units: 1},
	{DonorID: "DON10001", DonorName: "Michael Johnson", BloodGroup: "O+", DonationDate: "2025-12-20", Units: 1},
}

// historicalDates are consumed in order, one per generated donation.
var historicalDates = []string{
	"2025-11-15", "2025-10-28", "2025-09-10", "2025-08-05",
	"2025-07-20", "2025-06-12", "2025-05-08", "2025-04-01",
	"2025-03-15", "2025-02-20", "2025-01-10", "2024-12-05",
}

var (
	receivingStaff = []string{"System Administrator", "John Doe"}
	donationNotes  = []string{"Regular donation", "Emergency donation", "Blood drive"}
	donationUnits  = []int{1, 2}
)

// testResultWeights makes a passed screening three times as likely as a failed one.
var testResultWeights = []Weighted[string]{
	{Value: models.TestPassed, Weight: 3},
	{Value: models.TestFailed, Weight: 1},
}

// Problem describes a candidate donation with required values left empty.
type Problem struct {
	Index      int
	DonationID string
	Fields     []string
}

// DonationBatch is the outcome of inserting the donation history.
// The batch is all-or-nothing: when Err is set, none of Records were stored.
type DonationBatch struct {
	Records  []models.DonationRecord
	Inserted int
	Err      error
	Problems []Problem
}

// missingFields lists the required columns rec leaves empty.
func missingFields(rec models.DonationRecord) []string {
	var fields []string
	check := func(name, v string) {
		if v == "" {
			fields = append(fields, name)
		}
	}
	check("donation_id", rec.DonationID)
	check("donor_id", rec.DonorID)
	check("donor_name", rec.DonorName)
	check("blood_group", rec.BloodGroup)
	check("donation_date", rec.DonationDate)
	check("expiry_date", rec.ExpiryDate)
	check("test_result", rec.TestResult)
	if rec.UnitsDonated <= 0 {
		fields = append(fields, "units_donated")
	}
	return fields
}

func findProblems(records []models.DonationRecord) []Problem {
	var problems []Problem
	for i, rec := range records {
		if fields := missingFields(rec); len(fields) > 0 {
			problems = append(problems, Problem{Index: i, DonationID: rec.DonationID, Fields: fields})
		}
	}
	return problems
}
