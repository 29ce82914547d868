package profit

import (
	"sort"
	"strconv"
	"strings"

	"BharatYield/internal/calc/validate"
)

type CropPrice struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

var cropPrices = map[string]CropPrice{
	"rice":      {Value: "rice", Label: "Rice", Price: 2100, Unit: "per quintal"},
	"wheat":     {Value: "wheat", Label: "Wheat", Price: 2050, Unit: "per quintal"},
	"sugarcane": {Value: "sugarcane", Label: "Sugarcane", Price: 350, Unit: "per quintal"},
	"maize":     {Value: "maize", Label: "Maize", Price: 1850, Unit: "per quintal"},
}

// PresetPrice returns the reference market price for a crop.
func PresetPrice(crop string) (CropPrice, bool) {
	p, ok := cropPrices[strings.ToLower(strings.TrimSpace(crop))]
	return p, ok
}

func Crops() []CropPrice {
	out := make([]CropPrice, 0, len(cropPrices))
	for _, p := range cropPrices {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

var required = []validate.FieldKey{validate.LandSize, validate.ExpectedYield, validate.MarketPrice}

// FromForm turns raw form values into FarmInputs. Land size, expected yield
// and market price are required; an empty market price is filled from the
// crop preset when one exists. Empty cost fields count as zero.
func FromForm(crop string, form map[string]string) (FarmInputs, error) {
	fields := make(map[string]string, len(form)+1)
	for k, v := range form {
		fields[k] = v
	}
	if strings.TrimSpace(fields[string(validate.MarketPrice)]) == "" {
		if p, ok := PresetPrice(crop); ok {
			fields[string(validate.MarketPrice)] = strconv.FormatFloat(p.Price, 'f', -1, 64)
		}
	}

	errs := validate.ValidateForm(fields)
	if errs == nil {
		errs = validate.Errors{}
	}
	for _, key := range required {
		if _, bad := errs[key]; bad {
			continue
		}
		if strings.TrimSpace(fields[string(key)]) == "" {
			rule, _ := validate.RuleFor(key)
			errs[key] = rule.Label + " is required"
		}
	}
	get := func(key validate.FieldKey) float64 {
		v, _, _ := validate.Parse(key, fields[string(key)])
		return v
	}
	if _, bad := errs[validate.LandSize]; !bad && get(validate.LandSize) <= 0 {
		errs[validate.LandSize] = "Land size must be greater than 0"
	}
	if len(errs) > 0 {
		return FarmInputs{}, errs
	}

	return FarmInputs{
		Crop:                  crop,
		LandSizeAcres:         get(validate.LandSize),
		ExpectedYieldPerAcre:  get(validate.ExpectedYield),
		MarketPricePerQuintal: get(validate.MarketPrice),
		Costs: Costs{
			Seed:       get(validate.SeedCost),
			Fertilizer: get(validate.FertilizerCost),
			Labor:      get(validate.LaborCost),
			Irrigation: get(validate.IrrigationCost),
			Other:      get(validate.OtherCosts),
		},
	}, nil
}
