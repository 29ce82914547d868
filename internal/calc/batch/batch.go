package batch

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"BharatYield/internal/calc/profit"
	"BharatYield/internal/calc/validate"
)

// Column order shared by import and export. Column 0 is the crop.
var columns = []validate.FieldKey{
	validate.LandSize,
	validate.ExpectedYield,
	validate.MarketPrice,
	validate.SeedCost,
	validate.FertilizerCost,
	validate.LaborCost,
	validate.IrrigationCost,
	validate.OtherCosts,
}

type Item struct {
	Crop   string            `json:"crop"`
	Fields map[string]string `json:"fields"`
}

type RowError struct {
	Row    int               `json:"row"`
	Fields map[string]string `json:"fields"`
}

type Result struct {
	Count   int             `json:"count"`
	Results []profit.Result `json:"results"`
	Errors  []RowError      `json:"errors,omitempty"`
}

var ErrEmptySheet = errors.New("empty sheet")

// Calculate runs every item through the form path. row is the 1-based
// position reported in errors; offset shifts it (the header row on import).
func Calculate(items []Item, offset int) Result {
	out := Result{Results: make([]profit.Result, 0, len(items))}
	for i, item := range items {
		in, err := profit.FromForm(item.Crop, item.Fields)
		if err != nil {
			re := RowError{Row: i + 1 + offset}
			var verrs validate.Errors
			if errors.As(err, &verrs) {
				re.Fields = verrs.Strings()
			} else {
				re.Fields = map[string]string{"row": err.Error()}
			}
			out.Errors = append(out.Errors, re)
			continue
		}
		out.Results = append(out.Results, profit.Calculate(in))
	}
	out.Count = len(out.Results)
	return out
}

// ReadItems parses the first sheet of an XLSX workbook. The header row is skipped.
func ReadItems(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	items := make([]Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item := Item{Fields: make(map[string]string, len(columns))}
		if len(row) > 0 {
			item.Crop = row[0]
		}
		for i, key := range columns {
			if i+1 < len(row) {
				item.Fields[string(key)] = row[i+1]
			}
		}
		items = append(items, item)
	}
	return items, nil
}

var exportHeader = []any{
	"Crop", "Land size (acres)", "Expected yield (q/acre)", "Market price (Rs/q)",
	"Total revenue", "Total cost", "Net profit", "Net profit per acre",
	"Profit margin %", "ROI %", "Break-even yield (q/acre)",
}

// WriteWorkbook writes one row per calculated item. Non-finite metrics are
// written as text so the cell keeps the value.
func WriteWorkbook(w io.Writer, inputs []profit.FarmInputs) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, in := range inputs {
		res := profit.Calculate(in)
		row := []any{
			in.Crop, in.LandSizeAcres, in.ExpectedYieldPerAcre, in.MarketPricePerQuintal,
			cell(res.TotalRevenue), cell(res.TotalCost), cell(res.NetProfit), cell(res.NetProfitPerAcre),
			cell(res.ProfitMarginPercent), cell(res.ROIPercent), cell(res.BreakEvenYieldPerAcre),
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func cell(v float64) any {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return v
}
