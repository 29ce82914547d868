package report

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"BharatYield/internal/calc/profit"
	"BharatYield/internal/httpx"
)

type Handler struct {
	Now func() time.Time
}

// Render writes a one-page PDF summary of a profit calculation.
func Render(out io.Writer, in profit.FarmInputs, res profit.Result, now time.Time) error {
	title := "Farm Profit Report"
	if res.Crop != "" {
		title = fmt.Sprintf("Farm Profit Report: %s", res.Crop)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Land size (acres)", number(in.LandSizeAcres, 2)},
		{"Expected yield (quintal/acre)", number(in.ExpectedYieldPerAcre, 2)},
		{"Market price (Rs/quintal)", number(in.MarketPricePerQuintal, 2)},
		{"Seed cost (Rs)", number(in.Costs.Seed, 0)},
		{"Fertilizer cost (Rs)", number(in.Costs.Fertilizer, 0)},
		{"Labor cost (Rs)", number(in.Costs.Labor, 0)},
		{"Irrigation cost (Rs)", number(in.Costs.Irrigation, 0)},
		{"Other costs (Rs)", number(in.Costs.Other, 0)},
	}
	table(pdf, rows)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	table(pdf, [][2]string{
		{"Total revenue (Rs)", number(res.TotalRevenue, 0)},
		{"Total cost (Rs)", number(res.TotalCost, 0)},
		{"Net profit (Rs)", number(res.NetProfit, 0)},
		{"Net profit per acre (Rs)", number(res.NetProfitPerAcre, 0)},
		{"Profit margin (%)", number(res.ProfitMarginPercent, 1)},
		{"ROI (%)", number(res.ROIPercent, 1)},
		{"Break-even yield (quintal/acre)", number(res.BreakEvenYieldPerAcre, 2)},
	})

	return pdf.Output(out)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, row := range rows {
		pdf.CellFormat(90, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}
}

// number prints non-finite values as n/a.
func number(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	in, ok := profit.Decode(w, r)
	if !ok {
		return
	}
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"profit-report.pdf\"")
	if err := Render(w, in, profit.Calculate(in), now); err != nil {
		httpx.Error(w, http.StatusInternalServerError, "REPORT_FAILED", "Report generation error")
		return
	}
}
