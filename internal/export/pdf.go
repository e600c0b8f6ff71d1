package export

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// PDFExporter формирует PDF с ключевыми показателями и годовым графиком погашения
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func (e *PDFExporter) Format() string { return "pdf" }

func (e *PDFExporter) Export(ctx context.Context, snap Snapshot) (*Document, error) {
	if err := validate(snap); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := snap.Result
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Financing overview", true)
	if snap.Metadata.BankName != "" {
		pdf.SetAuthor(snap.Metadata.BankName, true)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Financing overview", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if snap.Metadata.CustomerName != "" {
		pdf.CellFormat(0, 6, tr("Customer: "+snap.Metadata.CustomerName), "", 1, "L", false, 0, "")
	}
	if snap.Metadata.BankName != "" {
		pdf.CellFormat(0, 6, tr("Bank: "+snap.Metadata.BankName), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	figures := [][2]string{
		{"Property price", money(snap.Parameters.PropertyPrice)},
		{"Loan amount", money(res.LoanAmount)},
		{"Interest rate", percent(snap.Parameters.InterestRate)},
		{"Loan term", fmt.Sprintf("%d years", snap.Parameters.LoanTerm)},
		{"Annuity payment", money(res.AnnuityPayment)},
		{"Monthly payment (total)", money(res.MonthlyPayment)},
		{"Total interest", money(res.TotalInterest)},
		{"Total cost", money(res.TotalCost)},
		{"Effective interest rate", percent(res.EffectiveInterestRate)},
		{"Loan to value", percent(res.LoanToValue)},
		{"Months until payoff", strconv.Itoa(res.Months)},
	}
	for _, f := range figures {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 6, f[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, f[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	header := []string{"Year", "Interest", "Principal", "Remaining debt"}
	widths := []float64{20, 50, 50, 60}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, point := range res.YearlyData {
		cells := []string{strconv.Itoa(point.Year), money(point.Interest), money(point.Principal), money(point.RemainingDebt)}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return newDocument(snap, e.Format(), "pdf", "application/pdf", buf.Bytes()), nil
}
