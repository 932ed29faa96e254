package report

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"bloodbank/models"
)

// RenderDonationLabelsPDF renders one A6 bag label per donation with a Code128 barcode of its id.
func RenderDonationLabelsPDF(donations []models.DonationRecord, printedAt time.Time) ([]byte, error) {
	if len(donations) == 0 {
		return nil, fmt.Errorf("no donation labels to render")
	}

	pdf := gofpdf.New("L", "mm", "A6", "")
	pdf.SetTitle("Donation Labels", false)
	pdf.SetAutoPageBreak(false, 0)

	for i, d := range donations {
		if err := addDonationLabelPage(pdf, d, printedAt, i); err != nil {
			return nil, fmt.Errorf("label %s: %w", d.DonationID, err)
		}
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func addDonationLabelPage(pdf *gofpdf.Fpdf, d models.DonationRecord, printedAt time.Time, pageIndex int) error {
	donationID := strings.TrimSpace(d.DonationID)
	if donationID == "" {
		return fmt.Errorf("donation id is required")
	}
	barcodePNG, err := renderCode128PNG(donationID, 900, 200)
	if err != nil {
		return err
	}

	donorName := orDash(d.DonorName)
	result := orDash(d.TestResult)

	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	margin := 5.0
	pdf.SetLineWidth(0.4)
	pdf.Rect(margin, margin, pageW-2*margin, pageH-2*margin, "")

	pdf.SetFont("Helvetica", "B", 40)
	pdf.SetXY(margin+3, margin+3)
	pdf.CellFormat(40, 18, orDash(d.BloodGroup), "1", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(margin+46, margin+3)
	pdf.CellFormat(pageW-2*margin-49, 6, donorName, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(pageW-2*margin-49, 5, "Donor: "+orDash(d.DonorID), "", 2, "L", false, 0, "")
	pdf.CellFormat(pageW-2*margin-49, 5, fmt.Sprintf("Units: %d   Test: %s", d.UnitsDonated, result), "", 2, "L", false, 0, "")

	pdf.SetXY(margin+3, margin+25)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 5, "Collected", "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 5, "Expires", "", 1, "L", false, 0, "")
	pdf.SetX(margin + 3)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(45, 8, orDash(d.DonationDate), "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 8, orDash(d.ExpiryDate), "", 1, "L", false, 0, "")

	if d.TestResult == models.TestFailed {
		pdf.SetTextColor(200, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(pageW-margin-43, margin+25)
		pdf.CellFormat(40, 13, "DO NOT ISSUE", "1", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := fmt.Sprintf("donation-barcode-%d", pageIndex)
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	imgW := pageW - 2*margin - 16
	imgH := 22.0
	y := margin + 45
	pdf.ImageOptions(imageName, (pageW-imgW)/2, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 1)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5, donationID, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(0, 4, "Printed "+printedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	return pdf.Error()
}

func orDash(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "-"
	}
	return s
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
