package profit

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BharatYield/internal/calc/validate"
)

func sampleInputs() FarmInputs {
	return FarmInputs{
		Crop:                  "rice",
		LandSizeAcres:         2,
		ExpectedYieldPerAcre:  40,
		MarketPricePerQuintal: 2100,
		Costs: Costs{
			Seed:       5000,
			Fertilizer: 8000,
			Labor:      12000,
			Irrigation: 3000,
			Other:      5000,
		},
	}
}

func TestCalculateScenario(t *testing.T) {
	res := Calculate(sampleInputs())

	assert.Equal(t, 168000.0, res.TotalRevenue)
	assert.Equal(t, 33000.0, res.TotalCost)
	assert.Equal(t, 135000.0, res.NetProfit)
	assert.Equal(t, 67500.0, res.NetProfitPerAcre)
	assert.InDelta(t, 80.36, res.ProfitMarginPercent, 0.01)
	assert.InDelta(t, 409.09, res.ROIPercent, 0.01)
	assert.InDelta(t, 7.857, res.BreakEvenYieldPerAcre, 0.001)
	assert.Equal(t, "rice", res.Crop)
}

func TestCalculateIdempotent(t *testing.T) {
	in := sampleInputs()
	a := Calculate(in)
	b := Calculate(in)
	assert.Equal(t, math.Float64bits(a.ROIPercent), math.Float64bits(b.ROIPercent))
	assert.Equal(t, math.Float64bits(a.ProfitMarginPercent), math.Float64bits(b.ProfitMarginPercent))
	assert.Equal(t, math.Float64bits(a.BreakEvenYieldPerAcre), math.Float64bits(b.BreakEvenYieldPerAcre))
	assert.Equal(t, a, b)
}

func TestCalculateZeroCost(t *testing.T) {
	in := sampleInputs()
	in.Costs = Costs{}
	res := Calculate(in)

	assert.True(t, math.IsInf(res.ROIPercent, 1), "positive net over zero cost")
	assert.Equal(t, 0.0, res.BreakEvenYieldPerAcre)
	assert.Equal(t, 100.0, res.ProfitMarginPercent)

	in.ExpectedYieldPerAcre = 0
	res = Calculate(in)
	assert.True(t, math.IsNaN(res.ROIPercent), "zero net over zero cost")
	assert.True(t, math.IsNaN(res.ProfitMarginPercent))
	assert.Equal(t, 0.0, res.NetProfitPerAcre)
}

func TestCalculateZeroRevenueKeepsOtherFields(t *testing.T) {
	in := sampleInputs()
	in.MarketPricePerQuintal = 0
	res := Calculate(in)

	assert.True(t, math.IsInf(res.ProfitMarginPercent, -1))
	assert.True(t, math.IsInf(res.BreakEvenYieldPerAcre, 1))
	assert.Equal(t, -100.0, res.ROIPercent)
	assert.Equal(t, -16500.0, res.NetProfitPerAcre)
}

func TestResultJSONNonFinite(t *testing.T) {
	in := sampleInputs()
	in.Costs = Costs{}
	in.ExpectedYieldPerAcre = 0
	b, err := json.Marshal(Calculate(in))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "NaN", raw["roi_percent"])
	assert.Equal(t, "NaN", raw["profit_margin_percent"])
	assert.Equal(t, float64(0), raw["total_revenue"])

	var back Result
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, math.IsNaN(back.ROIPercent))

	b, err = json.Marshal(Number(math.Inf(-1)))
	require.NoError(t, err)
	assert.Equal(t, `"-Infinity"`, string(b))
}

func TestFromForm(t *testing.T) {
	in, err := FromForm("rice", map[string]string{
		"landSize":       "2",
		"expectedYield":  "40",
		"seedCost":       "5000",
		"fertilizerCost": "8000",
		"laborCost":      "12000",
		"irrigationCost": "3000",
		"otherCosts":     "5000",
	})
	require.NoError(t, err)
	assert.Equal(t, 2100.0, in.MarketPricePerQuintal, "preset fills empty price")
	assert.Equal(t, sampleInputs(), in)

	in, err = FromForm("", map[string]string{"landSize": "1", "expectedYield": "10", "marketPrice": "100"})
	require.NoError(t, err)
	assert.Equal(t, Costs{}, in.Costs)
}

func TestFromFormErrors(t *testing.T) {
	_, err := FromForm("", map[string]string{"landSize": "0", "expectedYield": "-3", "pH": "15"})
	require.Error(t, err)

	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Land size must be greater than 0", errs[validate.LandSize])
	assert.Equal(t, "Expected yield must be 0 or greater", errs[validate.ExpectedYield])
	assert.Equal(t, "Market price is required", errs[validate.MarketPrice])
	assert.Contains(t, errs[validate.PH], "between 0 and 14")
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(Request{Crop: "wheat", Fields: map[string]string{
		"landSize": "1", "expectedYield": "20",
	}})
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 41000.0, res.TotalRevenue)
	assert.True(t, math.IsInf(res.ROIPercent, 1))

	body, _ = json.Marshal(Request{Fields: map[string]string{"landSize": "abc"}})
	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "landSize")
}

func TestCrops(t *testing.T) {
	crops := Crops()
	require.Len(t, crops, 4)
	assert.Equal(t, "maize", crops[0].Value)
	p, ok := PresetPrice(" Sugarcane ")
	assert.True(t, ok)
	assert.Equal(t, 350.0, p.Price)
}
