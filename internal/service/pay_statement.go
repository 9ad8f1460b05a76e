package service

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

type PayStatement struct {
	FullName       string
	Email          string
	PeriodLabel    string
	NextPayDate    string
	SubmittedHours float64
	ApprovedHours  float64
	EstimatedPay   int
	GeneratedAt    time.Time
}

// CreatePayStatementPDF renders a one-page statement and writes it to fileName.
func CreatePayStatementPDF(statement PayStatement, fileName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Pay Statement")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", statement.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", statement.Email))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Pay period: %s", statement.PeriodLabel))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Next pay date: %s", statement.NextPayDate))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Submitted hours", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Approved hours", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Estimated pay", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", statement.SubmittedHours), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", statement.ApprovedHours), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("$%d", statement.EstimatedPay), "1", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s. Amounts are estimates until payroll is processed.",
		statement.GeneratedAt.Format("2006-01-02 15:04")))

	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return fmt.Errorf("error saving statement: %w", err)
	}
	return nil
}
