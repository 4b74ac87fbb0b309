package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/primovet/vetpay-backend-go/internal/domain/report"
	"github.com/primovet/vetpay-backend-go/internal/domain/sheet"
	"github.com/primovet/vetpay-backend-go/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	exportGridSheet    = "Daily Inputs"
	exportPreviewSheet = "Distribution Preview"
)

// ExportSheet implements report.ReportService.
func (s *ReportServiceImpl) ExportSheet(ctx context.Context, sheetID string) (report.SheetExportResponse, error) {
	sh, err := s.sheetRepo.GetByID(ctx, sheetID)
	if err != nil {
		if errors.Is(err, sheet.ErrSheetNotFound) {
			return report.SheetExportResponse{}, sheet.ErrSheetNotFound
		}
		return report.SheetExportResponse{}, fmt.Errorf("failed to get sheet: %w", err)
	}

	inputs, err := s.inputRepo.ListBySheetID(ctx, sheetID)
	if err != nil {
		return report.SheetExportResponse{}, fmt.Errorf("failed to list daily inputs: %w", err)
	}
	totals, err := s.inputRepo.TotalsBySheetID(ctx, sheetID)
	if err != nil {
		return report.SheetExportResponse{}, fmt.Errorf("failed to get sheet totals: %w", err)
	}

	totalByType := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		totalByType[total.IncentiveType] = total.Total
	}

	f := excelize.NewFile()
	defer f.Close()

	writeSheetGrid(f, sh, inputs, totalByType)
	if err := s.writeDistributionPreview(ctx, f, totalByType); err != nil {
		return report.SheetExportResponse{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.SheetExportResponse{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	// Generate unique filename
	uniqueID := uuid.New().String()
	fileName := fmt.Sprintf("%s-%s.xlsx", sheetID, uniqueID)

	path, err := s.store.Save(ctx, buf, "sheet-exports/"+fileName)
	if err != nil {
		return report.SheetExportResponse{}, fmt.Errorf("failed to store sheet export: %w", err)
	}

	return report.SheetExportResponse{
		SheetID:     sheetID,
		FileName:    fileName,
		URL:         s.store.URL(path),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// writeSheetGrid lays the sheet out as entered: one row per day in the
// range, one column per source type, a totals row at the bottom. Days
// without an input stay blank; zero-valued cells are never stored.
func writeSheetGrid(f *excelize.File, sh sheet.IncentiveSheet, inputs []sheet.DailyIncentiveInput, totalByType map[string]decimal.Decimal) {
	f.SetSheetName("Sheet1", exportGridSheet)

	branchName := sh.BranchID
	if sh.BranchName != nil {
		branchName = *sh.BranchName
	}
	f.SetCellValue(exportGridSheet, "A1", "Incentive Sheet - "+branchName)
	f.SetCellValue(exportGridSheet, "A2", fmt.Sprintf("Period: %s to %s", sh.StartDate.Format("2006-01-02"), sh.EndDate.Format("2006-01-02")))

	sourceTypes := fixtures.GetSheetSourceTypes()

	f.SetCellValue(exportGridSheet, "A4", "Date")
	for i, typeCode := range sourceTypes {
		cell, _ := excelize.CoordinatesToCellName(i+2, 4)
		f.SetCellValue(exportGridSheet, cell, typeCode)
	}

	values := make(map[string]map[string]decimal.Decimal)
	for _, input := range inputs {
		day := input.Date.Format("2006-01-02")
		if values[day] == nil {
			values[day] = make(map[string]decimal.Decimal)
		}
		values[day][input.IncentiveType] = input.Value
	}

	row := 5
	for d := sh.StartDate; !d.After(sh.EndDate); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(exportGridSheet, cell, day)
		for i, typeCode := range sourceTypes {
			if v, ok := values[day][typeCode]; ok {
				cell, _ := excelize.CoordinatesToCellName(i+2, row)
				f.SetCellValue(exportGridSheet, cell, v.InexactFloat64())
			}
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(exportGridSheet, cell, "Total")
	for i, typeCode := range sourceTypes {
		if total, ok := totalByType[typeCode]; ok {
			cell, _ := excelize.CoordinatesToCellName(i+2, row)
			f.SetCellValue(exportGridSheet, cell, total.InexactFloat64())
		}
	}

	f.SetColWidth(exportGridSheet, "A", "A", 14)
}

// writeDistributionPreview adds a second worksheet estimating what a
// distribution run would pay out per rule. The divisor and per-person
// amounts depend on the roster at run time, so only rule-level totals
// are shown.
func (s *ReportServiceImpl) writeDistributionPreview(ctx context.Context, f *excelize.File, totalByType map[string]decimal.Decimal) error {
	if _, err := f.NewSheet(exportPreviewSheet); err != nil {
		return fmt.Errorf("failed to add preview sheet: %w", err)
	}

	headers := []string{"Source Type", "Derived Type", "Display Name", "Sheet Total", "Rate", "Total Pay"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportPreviewSheet, cell, header)
	}

	row := 2
	for _, rule := range fixtures.GetDefaultDistributionRules() {
		total, ok := totalByType[rule.SourceType]
		if !ok || total.IsZero() {
			continue
		}

		config, found, err := s.effectiveTypeConfig(ctx, rule.DerivedType)
		if err != nil {
			return err
		}
		if !found || !config.IsActive {
			continue
		}

		totalPay := total.Mul(config.Rate).Round(2)
		for i, v := range []interface{}{
			rule.SourceType,
			rule.DerivedType,
			config.DisplayName,
			total.InexactFloat64(),
			config.Rate.InexactFloat64(),
			totalPay.InexactFloat64(),
		} {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(exportPreviewSheet, cell, v)
		}
		row++
	}

	return nil
}
