package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"conference-management-api/models"

	"github.com/xuri/excelize/v2"
)

const exportTimeFormat = "2006-01-02 15:04:05"

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportTimeFormat)
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WritePapersCSV streams the admin paper list as CSV.
func WritePapersCSV(w io.Writer, papers []models.Paper) error {
	writer := csv.NewWriter(w)

	header := []string{"paper_number", "title", "subject_area", "authors", "owner_name", "owner_email", "status", "approval_notes", "created_at"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range papers {
		p := &papers[i]
		record := []string{
			p.PaperNumber,
			p.Title,
			p.SubjectArea,
			p.Authors,
			p.Owner.FullName,
			p.Owner.Email,
			p.Status,
			strPtr(p.ApprovalNotes),
			formatTimePtr(p.CreateAt),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePaymentsCSV streams the admin payment list as CSV.
func WritePaymentsCSV(w io.Writer, payments []models.Payment) error {
	writer := csv.NewWriter(w)

	header := []string{"payment_id", "owner_name", "owner_email", "amount", "currency", "category", "transaction_ref", "status", "verification_notes", "created_at"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range payments {
		p := &payments[i]
		record := []string{
			fmt.Sprintf("%d", p.PaymentID),
			p.Owner.FullName,
			p.Owner.Email,
			fmt.Sprintf("%.2f", p.Amount),
			p.Currency,
			p.Category,
			strPtr(p.TransactionRef),
			p.Status,
			strPtr(p.VerificationNotes),
			formatTimePtr(p.CreateAt),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteRegistrationsXLSX builds the registration workbook: one row per
// verified payment with the participant and paper context the registration
// desk needs.
func WriteRegistrationsXLSX(w io.Writer, payments []models.Payment) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"Name", "Email", "Category", "Amount", "Currency", "Transaction Ref", "Paper Number", "Verified At"}
	for col, title := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	row := 2
	for i := range payments {
		p := &payments[i]
		paperNumber := ""
		if p.Paper != nil {
			paperNumber = p.Paper.PaperNumber
		}
		values := []interface{}{
			p.Owner.FullName,
			p.Owner.Email,
			p.Category,
			p.Amount,
			p.Currency,
			strPtr(p.TransactionRef),
			paperNumber,
			formatTimePtr(p.VerifiedAt),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
	}

	return f.Write(w)
}
