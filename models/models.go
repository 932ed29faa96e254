package models

import (
	"slices"
	"time"

	"github.com/uptrace/bun"
)

// Roles accepted by the users table.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Inventory status labels derived from a unit count.
const (
	StatusLowStock  = "Low Stock"
	StatusNormal    = "Normal"
	StatusHighStock = "High Stock"
)

// Donation test outcomes.
const (
	TestPassed = "Passed"
	TestFailed = "Failed"
)

// DateLayout is the on-disk format of every date column.
const DateLayout = "2006-01-02"

// ShelfLifeDays is how many calendar days a donated unit stays usable.
const ShelfLifeDays = 42

// BloodGroups lists the canonical ABO/Rh types in inventory order.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// IsBloodGroup reports whether bg is one of the canonical types.
func IsBloodGroup(bg string) bool {
	return slices.Contains(BloodGroups, bg)
}

// StockStatus classifies a unit count: below 10 is low, below 20 normal, else high.
func StockStatus(units int) string {
	switch {
	case units < 10:
		return StatusLowStock
	case units < 20:
		return StatusNormal
	default:
		return StatusHighStock
	}
}

// User is a login account of the downstream application.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Email     string    `bun:"email,unique,notnull"`
	Password  string    `bun:"password,notnull"`
	Name      string    `bun:"name,notnull"`
	Role      string    `bun:"role,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// Donor is a registered blood donor. Age is stored alongside the date of birth as given.
type Donor struct {
	bun.BaseModel `bun:"table:donors,alias:d"`

	DonorID          string    `bun:"donor_id,pk"`
	Name             string    `bun:"name,notnull"`
	DateOfBirth      string    `bun:"date_of_birth,notnull"`
	Age              int       `bun:"age,notnull"`
	Gender           string    `bun:"gender,notnull"`
	BloodGroup       string    `bun:"blood_group,notnull"`
	City             string    `bun:"city,notnull"`
	Phone            string    `bun:"phone,notnull"`
	Email            string    `bun:"email,nullzero"`
	MedicalDetails   string    `bun:"medical_details,nullzero"`
	Eligible         bool      `bun:"eligible,notnull"`
	LastDonationDate string    `bun:"last_donation_date,nullzero"`
	CreatedAt        time.Time `bun:"created_at,notnull"`
}

// InventoryEntry holds the stock of one blood group.
type InventoryEntry struct {
	bun.BaseModel `bun:"table:inventory,alias:i"`

	ID             int64     `bun:"id,pk,autoincrement"`
	BloodGroup     string    `bun:"blood_group,unique,notnull"`
	UnitsAvailable int       `bun:"units_available,notnull"`
	LastUpdated    time.Time `bun:"last_updated,notnull"`
	Status         string    `bun:"status,notnull"`
}

// DonationRecord is one collected donation. DonorName is a copy taken at collection time.
type DonationRecord struct {
	bun.BaseModel `bun:"table:donation_history,alias:dh"`

	ID           int64     `bun:"id,pk,autoincrement"`
	DonationID   string    `bun:"donation_id,unique,notnull"`
	DonorID      string    `bun:"donor_id,notnull"`
	DonorName    string    `bun:"donor_name,notnull"`
	BloodGroup   string    `bun:"blood_group,notnull"`
	UnitsDonated int       `bun:"units_donated,notnull"`
	DonationDate string    `bun:"donation_date,notnull"`
	ExpiryDate   string    `bun:"expiry_date,notnull"`
	ReceivedBy   string    `bun:"received_by,nullzero"`
	TestResult   string    `bun:"test_result,notnull"`
	Notes        string    `bun:"notes,nullzero"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

// Expired returns true when the unit is past its expiry date at now.
func (d DonationRecord) Expired(now time.Time) bool {
	expiry, err := time.Parse(DateLayout, d.ExpiryDate)
	if err != nil {
		return false
	}
	return !now.Before(expiry)
}
