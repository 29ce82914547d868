package profit

import (
	"encoding/json"
	"math"
	"strconv"
)

type Costs struct {
	Seed       float64 `json:"seed"`
	Fertilizer float64 `json:"fertilizer"`
	Labor      float64 `json:"labor"`
	Irrigation float64 `json:"irrigation"`
	Other      float64 `json:"other"`
}

func (c Costs) Total() float64 {
	return c.Seed + c.Fertilizer + c.Labor + c.Irrigation + c.Other
}

type FarmInputs struct {
	Crop                  string  `json:"crop,omitempty"`
	LandSizeAcres         float64 `json:"land_size_acres"`
	ExpectedYieldPerAcre  float64 `json:"expected_yield_per_acre"` // quintal/acre
	MarketPricePerQuintal float64 `json:"market_price_per_quintal"`
	Costs                 Costs   `json:"costs"`
}

// Result holds derived metrics. Percentages are plain numbers (23.4 means 23.4%).
type Result struct {
	Crop                  string
	TotalRevenue          float64
	TotalCost             float64
	NetProfit             float64
	NetProfitPerAcre      float64
	ProfitMarginPercent   float64
	ROIPercent            float64
	BreakEvenYieldPerAcre float64
}

// Calculate derives a Result from already validated inputs. It does not guard
// denominators: zero land size, cost or revenue yields NaN or ±Inf in the
// affected fields only.
func Calculate(in FarmInputs) Result {
	revenue := in.LandSizeAcres * in.ExpectedYieldPerAcre * in.MarketPricePerQuintal
	cost := in.Costs.Total()
	net := revenue - cost

	return Result{
		Crop:                  in.Crop,
		TotalRevenue:          revenue,
		TotalCost:             cost,
		NetProfit:             net,
		NetProfitPerAcre:      net / in.LandSizeAcres,
		ProfitMarginPercent:   net / revenue * 100,
		ROIPercent:            net / cost * 100,
		BreakEvenYieldPerAcre: cost / (in.MarketPricePerQuintal * in.LandSizeAcres),
	}
}

// Number encodes non-finite floats as "NaN", "Infinity" and "-Infinity"
// since JSON has no literal for them.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch s {
		case "NaN":
			*n = Number(math.NaN())
		case "Infinity":
			*n = Number(math.Inf(1))
		case "-Infinity":
			*n = Number(math.Inf(-1))
		default:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*n = Number(f)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

type resultJSON struct {
	Crop                  string `json:"crop,omitempty"`
	TotalRevenue          Number `json:"total_revenue"`
	TotalCost             Number `json:"total_cost"`
	NetProfit             Number `json:"net_profit"`
	NetProfitPerAcre      Number `json:"net_profit_per_acre"`
	ProfitMarginPercent   Number `json:"profit_margin_percent"`
	ROIPercent            Number `json:"roi_percent"`
	BreakEvenYieldPerAcre Number `json:"break_even_yield_per_acre"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Crop:                  r.Crop,
		TotalRevenue:          Number(r.TotalRevenue),
		TotalCost:             Number(r.TotalCost),
		NetProfit:             Number(r.NetProfit),
		NetProfitPerAcre:      Number(r.NetProfitPerAcre),
		ProfitMarginPercent:   Number(r.ProfitMarginPercent),
		ROIPercent:            Number(r.ROIPercent),
		BreakEvenYieldPerAcre: Number(r.BreakEvenYieldPerAcre),
	})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var w resultJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Result{
		Crop:                  w.Crop,
		TotalRevenue:          float64(w.TotalRevenue),
		TotalCost:             float64(w.TotalCost),
		NetProfit:             float64(w.NetProfit),
		NetProfitPerAcre:      float64(w.NetProfitPerAcre),
		ProfitMarginPercent:   float64(w.ProfitMarginPercent),
		ROIPercent:            float64(w.ROIPercent),
		BreakEvenYieldPerAcre: float64(w.BreakEvenYieldPerAcre),
	}
	return nil
}
