package quote

import (
	"bytes"
	"fmt"
	"time"

	"tripcraft/models"

	"github.com/jung-kurt/gofpdf"
)

// PDFData bundles everything the quote document needs.
type PDFData struct {
	ClientName  string
	Trip        models.TripDetails
	Components  []models.PackageComponent
	TotalPrice  float64
	Currency    string
	AgencyNotes string
}

// GeneratePDFBytes renders the quote document and returns raw bytes, so the
// caller can stream or upload it without touching the filesystem.
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripCraft", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel Package Quote", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(120, 6, value, "", "L", false)
	}

	sectionHeader("Trip Overview")
	row("Client", data.ClientName)
	row("Destination", data.Trip.Destination)
	row("Travel dates", fmt.Sprintf("%s – %s", data.Trip.DepartureDate, data.Trip.ReturnDate))
	row("Travelers", fmt.Sprintf("%d adult(s), %d child(ren)", data.Trip.Adults, data.Trip.Children))
	pdf.Ln(4)

	sectionHeader("Package Components")
	for _, c := range data.Components {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 7, c.Title, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f %s", c.TotalPrice, c.Currency), "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(170, 4, c.Description, "", "L", false)
		if !c.IsSmartRecommendation {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.CellFormat(170, 4, "Selected manually by your travel advisor", "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	pdf.Ln(2)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetLineWidth(0.4)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Total", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f %s", data.TotalPrice, data.Currency), "", 1, "R", false, 0, "")

	if data.AgencyNotes != "" {
		pdf.Ln(4)
		sectionHeader("Notes")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(170, 5, data.AgencyNotes, "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(130, 130, 130)
	pdf.MultiCell(170, 4, fmt.Sprintf(
		"Generated %s. Prices are estimates and subject to availability; this document is not a booking confirmation.",
		time.Now().Format("2006-01-02 15:04")), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote PDF: %w", err)
	}
	return buf.Bytes(), nil
}
