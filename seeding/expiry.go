package seeding

import (
	"strings"
	"time"

	"bloodbank/models"
)

// CalculateExpiryDate returns donationDate plus the shelf life as YYYY-MM-DD.
// A date that does not parse is replaced by now, so the result is never empty.
func CalculateExpiryDate(donationDate string, now time.Time) string {
	expiry, _ := expiryFor(donationDate, now)
	return expiry
}

// expiryFor also reports whether the fallback to now was taken.
func expiryFor(donationDate string, now time.Time) (string, bool) {
	donated, err := time.Parse(models.DateLayout, strings.TrimSpace(donationDate))
	if err != nil {
		return now.AddDate(0, 0, models.ShelfLifeDays).Format(models.DateLayout), true
	}
	return donated.AddDate(0, 0, models.ShelfLifeDays).Format(models.DateLayout), false
}
