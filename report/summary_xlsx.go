package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bloodbank/models"
)

const (
	sheetInventory = "Inventory"
	sheetDonors    = "Donors"
	sheetDonations = "Donations"
)

// WriteWorkbook exports the summary and the full donation history as an xlsx workbook.
func WriteWorkbook(w io.Writer, s Summary, donations []models.DonationRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F4CCCC"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	inventoryRows := make([][]any, 0, len(s.Inventory))
	for _, line := range s.Inventory {
		inventoryRows = append(inventoryRows, []any{line.BloodGroup, line.UnitsAvailable, line.Status})
	}
	donorRows := make([][]any, 0, len(s.Distribution))
	for _, d := range s.Distribution {
		donorRows = append(donorRows, []any{d.BloodGroup, d.Donors})
	}
	donationRows := make([][]any, 0, len(donations))
	for _, d := range donations {
		donationRows = append(donationRows, []any{
			d.DonationID, d.DonorID, d.DonorName, d.BloodGroup, d.UnitsDonated,
			d.DonationDate, d.ExpiryDate, d.ReceivedBy, d.TestResult, d.Notes,
		})
	}

	sheets := []struct {
		name    string
		headers []string
		widths  []float64
		rows    [][]any
	}{
		{sheetInventory, []string{"Blood Group", "Units Available", "Status"}, []float64{14, 16, 14}, inventoryRows},
		{sheetDonors, []string{"Blood Group", "Donors"}, []float64{14, 10}, donorRows},
		{sheetDonations, []string{
			"Donation ID", "Donor ID", "Donor Name", "Blood Group", "Units",
			"Donation Date", "Expiry Date", "Received By", "Test Result", "Notes",
		}, []float64{16, 12, 22, 12, 8, 14, 14, 22, 12, 22}, donationRows},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("rename default sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sh.name, err)
		}
		if err := writeSheet(f, sh.name, sh.headers, sh.widths, sh.rows, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, widths []float64, rows [][]any, headerStyle int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header %s!%s: %w", sheet, cell, err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("convert column number: %w", err)
		}
		if col < len(widths) {
			if err := f.SetColWidth(sheet, name, name, widths[col]); err != nil {
				return fmt.Errorf("set column width: %w", err)
			}
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
