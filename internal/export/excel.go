package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cloud-ru/mcp-financing-go/pkg/utils"
)

const (
	summarySheet  = "Summary"
	scheduleSheet = "Schedule"
	yearlySheet   = "Yearly"
)

// ExcelExporter формирует книгу Excel со сводкой, помесячным и годовым графиком
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

func (e *ExcelExporter) Format() string { return "xlsx" }

func (e *ExcelExporter) Export(ctx context.Context, snap Snapshot) (*Document, error) {
	if err := validate(snap); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{scheduleSheet, yearlySheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeSummary(f, snap, bold); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := snap.Result
	scheduleRows := make([][]interface{}, 0, len(res.Schedule))
	for _, r := range res.Schedule {
		scheduleRows = append(scheduleRows, []interface{}{
			r.Month, r.Year, r.Payment, r.Interest, r.Principal, r.ExtraPayment,
			r.RemainingDebt, r.CumulativeInterest, r.CumulativePrincipal,
		})
	}
	if err := writeTable(f, scheduleSheet, bold, []interface{}{
		"Month", "Year", "Payment", "Interest", "Principal", "Extra payment",
		"Remaining debt", "Cumulative interest", "Cumulative principal",
	}, scheduleRows); err != nil {
		return nil, err
	}

	yearlyRows := make([][]interface{}, 0, len(res.YearlyData))
	for _, p := range res.YearlyData {
		yearlyRows = append(yearlyRows, []interface{}{
			p.Year, p.Interest, p.Principal, p.RemainingDebt, p.CumulativeInterest, p.CumulativePrincipal,
		})
	}
	if err := writeTable(f, yearlySheet, bold, []interface{}{
		"Year", "Interest", "Principal", "Remaining debt", "Cumulative interest", "Cumulative principal",
	}, yearlyRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return newDocument(snap, e.Format(), "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes()), nil
}

func writeSummary(f *excelize.File, snap Snapshot, bold int) error {
	res := snap.Result
	rows := [][]interface{}{
		{"Customer", snap.Metadata.CustomerName},
		{"Bank", snap.Metadata.BankName},
		{"Property price", snap.Parameters.PropertyPrice},
		{"Equity", snap.Parameters.Equity},
		{"Additional costs", snap.Parameters.AdditionalCosts},
		{"Interest rate %", snap.Parameters.InterestRate},
		{"Loan term (years)", snap.Parameters.LoanTerm},
		{"Loan amount", res.LoanAmount},
		{"Annuity payment", utils.Round2(res.AnnuityPayment)},
		{"Monthly insurance", res.MonthlyInsurance},
		{"Monthly maintenance", res.MonthlyMaintenance},
		{"Monthly payment", res.MonthlyPayment},
		{"Total interest", res.TotalInterest},
		{"Total cost", res.TotalCost},
		{"Effective interest rate %", res.EffectiveInterestRate},
		{"Loan to value %", res.LoanToValue},
		{"Months", res.Months},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "B", 28)
}

func writeTable(f *excelize.File, sheet string, bold int, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
