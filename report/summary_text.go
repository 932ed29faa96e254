package report

import (
	"fmt"
	"io"
	"strings"

	"bloodbank/models"
)

var rule = strings.Repeat("=", 60)

// WriteText prints the human-readable seeding summary.
func WriteText(w io.Writer, s Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nDATABASE SUMMARY\n%s\n", rule, rule)
	for _, c := range s.Counts {
		fmt.Fprintf(&b, "%-20s : %3d records\n", strings.ToUpper(c.Table), c.Rows)
	}

	b.WriteString("\nBLOOD INVENTORY STATUS:\n")
	for _, line := range s.Inventory {
		fmt.Fprintf(&b, "   %-4s : %3d units %s %s\n", line.BloodGroup, line.UnitsAvailable, statusMarker(line.Status), line.Status)
	}

	b.WriteString("\nDONOR DISTRIBUTION:\n")
	for _, d := range s.Distribution {
		fmt.Fprintf(&b, "   %-4s : %3d donors\n", d.BloodGroup, d.Donors)
	}

	b.WriteString("\nRECENT DONATIONS:\n")
	if len(s.Recent) == 0 {
		b.WriteString("   (none)\n")
	}
	for _, d := range s.Recent {
		fmt.Fprintf(&b, "   %-20s %-4s %d unit(s) on %s\n", d.DonorName, d.BloodGroup, d.UnitsDonated, d.DonationDate)
	}
	fmt.Fprintf(&b, "%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func statusMarker(status string) string {
	switch status {
	case models.StatusLowStock:
		return "[!]"
	case models.StatusNormal:
		return "[~]"
	case models.StatusHighStock:
		return "[+]"
	default:
		return "[?]"
	}
}
