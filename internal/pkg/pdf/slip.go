package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/payroll"
)

// RenderSalarySlip renders a slip snapshot as a single-page A4 PDF.
func RenderSalarySlip(slip payroll.SalarySlip) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, slip.CompanyName)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Salary Slip - %s", slip.PeriodLabel))
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, fmt.Sprintf("Employee: %s (%s)", slip.Profile.Name, slip.Profile.EmployeeCode))
	doc.Ln(6)
	doc.Cell(0, 7, fmt.Sprintf("Department: %s    Designation: %s", slip.Profile.Department, slip.Profile.Designation))
	doc.Ln(6)
	doc.Cell(0, 7, fmt.Sprintf("Working Days: %d    Paid Days: %.1f    LOP Days: %.1f",
		slip.Attendance.WorkingDays, slip.Attendance.PaidDays, slip.Attendance.LossOfPayDays))
	doc.Ln(10)

	section(doc, "Earnings")
	line(doc, "Basic", slip.Earnings.Basic, slip.Currency)
	line(doc, "HRA", slip.Earnings.HRA, slip.Currency)
	line(doc, "Conveyance", slip.Earnings.Conveyance, slip.Currency)
	line(doc, "Medical", slip.Earnings.Medical, slip.Currency)
	line(doc, "Special Allowance", slip.Earnings.SpecialAllowance, slip.Currency)
	line(doc, "Other Allowance", slip.Earnings.OtherAllowance, slip.Currency)
	doc.SetFont("Helvetica", "B", 11)
	line(doc, "Gross", slip.Earnings.Gross, slip.Currency)
	doc.Ln(4)

	section(doc, "Deductions")
	line(doc, "PF", slip.Deductions.PF, slip.Currency)
	line(doc, "ESI", slip.Deductions.ESI, slip.Currency)
	line(doc, "Professional Tax", slip.Deductions.ProfessionalTax, slip.Currency)
	line(doc, "TDS", slip.Deductions.TDS, slip.Currency)
	line(doc, "Loan", slip.Deductions.LoanDeduction, slip.Currency)
	doc.SetFont("Helvetica", "B", 11)
	line(doc, "Total Deductions", slip.Deductions.Total, slip.Currency)
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 13)
	line(doc, "Net Pay", slip.NetPay, slip.Currency)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render salary slip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, title)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
}

func line(doc *gofpdf.Fpdf, label string, amount decimal.Decimal, currency string) {
	doc.Cell(90, 6, label)
	doc.Cell(0, 6, fmt.Sprintf("%s %s", amount.StringFixed(0), currency))
	doc.Ln(6)
}
