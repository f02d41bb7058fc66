package services

import (
	"fmt"
	"io"
	"os"

	"conference-management-api/models"

	"github.com/jung-kurt/gofpdf"
)

// WriteReceiptPDF renders a registration-fee receipt for a verified payment.
// Callers must check the payment status first; this only formats.
func WriteReceiptPDF(w io.Writer, payment *models.Payment) error {
	conferenceName := os.Getenv("CONFERENCE_NAME")
	if conferenceName == "" {
		conferenceName = "International Conference"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, conferenceName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 8, "Registration Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	rows := [][2]string{
		{"Receipt No.", fmt.Sprintf("RCPT-%06d", payment.PaymentID)},
		{"Participant", payment.Owner.FullName},
		{"Email", payment.Owner.Email},
		{"Category", payment.Category},
		{"Amount", fmt.Sprintf("%s %.2f", payment.Currency, payment.Amount)},
	}
	if payment.TransactionRef != nil && *payment.TransactionRef != "" {
		rows = append(rows, [2]string{"Transaction Ref", *payment.TransactionRef})
	}
	if payment.Paper != nil && payment.Paper.PaperNumber != "" {
		rows = append(rows, [2]string{"Paper", payment.Paper.PaperNumber})
	}
	if payment.VerifiedAt != nil {
		rows = append(rows, [2]string{"Verified On", payment.VerifiedAt.Format("02 Jan 2006")})
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 9, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(130, 9, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "This is a system-generated receipt and does not require a signature.", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
