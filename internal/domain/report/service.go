package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// GeneratePayslip renders one period as a PDF payslip and stores it
	GeneratePayslip(ctx context.Context, payrollID string) (PayslipFileResponse, error)

	// ExportSheet renders one incentive sheet as an XLSX workbook and
	// stores it
	ExportSheet(ctx context.Context, sheetID string) (SheetExportResponse, error)

	// PayrollRegister aggregates periods in a range into a register
	PayrollRegister(ctx context.Context, req PayrollRegisterRequest) (PayrollRegisterReport, error)
}
