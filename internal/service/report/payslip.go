package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/payroll"
	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// GeneratePayslip implements report.ReportService. The PDF is built with
// the core Helvetica font, which cannot encode the peso sign, so amounts
// are printed in the PHP 1,234.56 form.
func (s *ReportServiceImpl) GeneratePayslip(ctx context.Context, payrollID string) (report.PayslipFileResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, payroll.ErrPeriodNotFound) {
			return report.PayslipFileResponse{}, payroll.ErrPeriodNotFound
		}
		return report.PayslipFileResponse{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	incentives, err := s.payrollRepo.ListIncentives(ctx, payrollID)
	if err != nil {
		return report.PayslipFileResponse{}, fmt.Errorf("failed to list incentives: %w", err)
	}
	deductions, err := s.payrollRepo.ListDeductions(ctx, payrollID)
	if err != nil {
		return report.PayslipFileResponse{}, fmt.Errorf("failed to list deductions: %w", err)
	}

	// Resolve display names for the incentive lines up front so the
	// renderer stays free of repository calls.
	labels := make(map[string]string, len(incentives))
	for _, inc := range incentives {
		labels[inc.IncentiveType] = inc.IncentiveType
		config, found, err := s.effectiveTypeConfig(ctx, inc.IncentiveType)
		if err != nil {
			return report.PayslipFileResponse{}, err
		}
		if found {
			labels[inc.IncentiveType] = config.DisplayName
		}
	}

	var buf bytes.Buffer
	if err := renderPayslipPDF(&buf, period, incentives, deductions, labels); err != nil {
		return report.PayslipFileResponse{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	// Generate unique filename
	uniqueID := uuid.New().String()
	fileName := fmt.Sprintf("%s-%s.pdf", payrollID, uniqueID)

	path, err := s.store.Save(ctx, &buf, "payslips/"+fileName)
	if err != nil {
		return report.PayslipFileResponse{}, fmt.Errorf("failed to store payslip: %w", err)
	}

	return report.PayslipFileResponse{
		PayrollID:   payrollID,
		FileName:    fileName,
		URL:         s.store.URL(path),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func renderPayslipPDF(w io.Writer, period payroll.PayrollPeriod, incentives []payroll.Incentive, deductions []payroll.Deduction, labels map[string]string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	name := period.EmployeeID
	if period.EmployeeName != nil {
		name = *period.EmployeeName
	}
	if period.EmployeeCode != nil {
		name = fmt.Sprintf("%s (%s)", name, *period.EmployeeCode)
	}
	pdf.Cell(0, 6, "Employee: "+name)
	pdf.Ln(5)
	if period.Position != nil {
		pdf.Cell(0, 6, "Position: "+employee.Position(*period.Position).DisplayName())
		pdf.Ln(5)
	}
	if period.BranchName != nil {
		pdf.Cell(0, 6, "Branch: "+*period.BranchName)
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Days present: %d of %d", period.TotalDaysPresent, period.WorkingDays))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Status: "+string(period.Status))
	pdf.Ln(10)

	payslipSection(pdf, "Earnings")
	payslipLine(pdf, tr, fmt.Sprintf("Basic Pay (%d days × %s)", period.TotalDaysPresent, money.PesosText(period.RatePerDay)), period.BasicPay)
	if !period.HolidayPay.IsZero() {
		payslipLine(pdf, tr, fmt.Sprintf("Holiday Pay (%s days)", money.Count(period.Holidays)), period.HolidayPay)
	}
	if !period.OvertimePay.IsZero() {
		payslipLine(pdf, tr, fmt.Sprintf("Overtime (%s hours)", money.Count(period.OvertimeHours)), period.OvertimePay)
	}
	if !period.MealAllowance.IsZero() {
		payslipLine(pdf, tr, "Meal Allowance", period.MealAllowance)
	}
	if !period.SilPay.IsZero() {
		payslipLine(pdf, tr, "SIL Pay", period.SilPay)
	}
	if !period.BirthdayLeave.IsZero() {
		payslipLine(pdf, tr, "Birthday Leave", period.BirthdayLeave)
	}

	if len(incentives) > 0 {
		pdf.Ln(4)
		payslipSection(pdf, "Incentives")
		for _, inc := range incentives {
			label := labels[inc.IncentiveType]
			if inc.Formula != "" {
				label = fmt.Sprintf("%s  (%s)", label, pesoText(inc.Formula))
			}
			payslipLine(pdf, tr, label, inc.Amount)
		}
		payslipLine(pdf, tr, "Total Incentives", period.TotalIncentives)
	}

	if len(deductions) > 0 || !period.LateDeduction.IsZero() {
		pdf.Ln(4)
		payslipSection(pdf, "Deductions")
		for _, d := range deductions {
			label := d.DeductionType
			if d.Notes != nil && *d.Notes != "" {
				label = fmt.Sprintf("%s (%s)", d.DeductionType, *d.Notes)
			}
			payslipLine(pdf, tr, label, d.Amount)
		}
		if !period.LateDeduction.IsZero() {
			payslipLine(pdf, tr, fmt.Sprintf("Late (%s minutes)", money.Count(period.LateMinutes)), period.LateDeduction)
		}
	}

	pdf.Ln(4)
	payslipSection(pdf, "Summary")
	payslipLine(pdf, tr, "Gross Pay", period.GrossPay)
	payslipLine(pdf, tr, "Total Deductions", period.TotalDeductions.Add(period.LateDeduction))

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Net Pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, money.PesosText(period.NetPay), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func payslipSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func payslipLine(pdf *gofpdf.Fpdf, tr func(string) string, label string, amount decimal.Decimal) {
	pdf.CellFormat(130, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, money.PesosText(amount), "", 1, "R", false, 0, "")
}

// pesoText rewrites the peso sign into a form the core fonts can encode.
// The × and ÷ in formula traces survive the cp1252 translation as is.
func pesoText(s string) string {
	return strings.ReplaceAll(s, "₱", "PHP ")
}
