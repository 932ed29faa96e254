package report

// TableCount is the row count of one seeded table.
type TableCount struct {
	Table string
	Rows  int
}

type InventoryLine struct {
	BloodGroup     string `bun:"blood_group"`
	UnitsAvailable int    `bun:"units_available"`
	Status         string `bun:"status"`
}

type DonorGroupCount struct {
	BloodGroup string `bun:"blood_group"`
	Donors     int    `bun:"donors"`
}

type RecentDonation struct {
	DonationID   string `bun:"donation_id"`
	DonorName    string `bun:"donor_name"`
	BloodGroup   string `bun:"blood_group"`
	UnitsDonated int    `bun:"units_donated"`
	DonationDate string `bun:"donation_date"`
}

// Summary is a read-only snapshot of a seeded database.
type Summary struct {
	Counts       []TableCount
	Inventory    []InventoryLine
	Distribution []DonorGroupCount
	Recent       []RecentDonation
}

// Tables lists the seeded tables in report order.
var Tables = []string{"users", "donors", "inventory", "donation_history"}

const recentLimit = 5
