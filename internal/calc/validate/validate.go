// Package validate checks raw form values for the calculator and the crop
// advisor. Every function here is pure: a value is either accepted or a
// message naming the allowed range is returned.
package validate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type FieldKey string

const (
	LandSize       FieldKey = "landSize"
	Budget         FieldKey = "budget"
	PH             FieldKey = "pH"
	Nitrogen       FieldKey = "nitrogen"
	Phosphorus     FieldKey = "phosphorus"
	Potassium      FieldKey = "potassium"
	ExpectedYield  FieldKey = "expectedYield"
	MarketPrice    FieldKey = "marketPrice"
	SeedCost       FieldKey = "seedCost"
	FertilizerCost FieldKey = "fertilizerCost"
	LaborCost      FieldKey = "laborCost"
	IrrigationCost FieldKey = "irrigationCost"
	OtherCosts     FieldKey = "otherCosts"
)

// Rule is the inclusive domain of a field. Max is +Inf for unbounded fields.
type Rule struct {
	Label string
	Unit  string
	Min   float64
	Max   float64
}

var rules = map[FieldKey]Rule{
	PH:             {Label: "pH", Min: 0, Max: 14},
	Nitrogen:       {Label: "Nitrogen", Unit: "kg/ha", Min: 0, Max: 30000},
	Phosphorus:     {Label: "Phosphorus", Unit: "kg/ha", Min: 2, Max: 80},
	Potassium:      {Label: "Potassium", Unit: "kg/ha", Min: 50, Max: 900},
	LandSize:       {Label: "Land size", Min: 0, Max: math.Inf(1)},
	Budget:         {Label: "Budget", Min: 0, Max: math.Inf(1)},
	ExpectedYield:  {Label: "Expected yield", Min: 0, Max: math.Inf(1)},
	MarketPrice:    {Label: "Market price", Min: 0, Max: math.Inf(1)},
	SeedCost:       {Label: "Seed cost", Min: 0, Max: math.Inf(1)},
	FertilizerCost: {Label: "Fertilizer cost", Min: 0, Max: math.Inf(1)},
	LaborCost:      {Label: "Labor cost", Min: 0, Max: math.Inf(1)},
	IrrigationCost: {Label: "Irrigation cost", Min: 0, Max: math.Inf(1)},
	OtherCosts:     {Label: "Other costs", Min: 0, Max: math.Inf(1)},
}

// RuleFor returns the rule for a known field.
func RuleFor(field FieldKey) (Rule, bool) {
	r, ok := rules[field]
	return r, ok
}

// Fields lists every known key in a stable order.
func Fields() []FieldKey {
	out := make([]FieldKey, 0, len(rules))
	for k := range rules {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r Rule) rangeText() string {
	unit := ""
	if r.Unit != "" {
		unit = " " + r.Unit
	}
	if math.IsInf(r.Max, 1) {
		return fmt.Sprintf("%s or greater%s", formatBound(r.Min), unit)
	}
	return fmt.Sprintf("between %s and %s%s", formatBound(r.Min), formatBound(r.Max), unit)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Parse checks raw against the field's rule. present is false for an empty
// value, which is never an error. msg is empty when the value is usable.
func Parse(field FieldKey, raw string) (value float64, present bool, msg string) {
	rule, ok := rules[field]
	if !ok {
		return 0, false, fmt.Sprintf("unknown field %q", string(field))
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, fmt.Sprintf("%s must be a valid number %s", rule.Label, rule.rangeText())
	}
	if v < 0 || v < rule.Min || v > rule.Max {
		return v, true, fmt.Sprintf("%s must be %s", rule.Label, rule.rangeText())
	}
	return v, true, ""
}

// Validate returns "" for a valid (or empty) value and a user-facing message
// otherwise.
func Validate(field FieldKey, raw string) string {
	_, _, msg := Parse(field, raw)
	return msg
}

// Errors maps fields to their validation messages.
type Errors map[FieldKey]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[FieldKey(k)])
	}
	return strings.Join(parts, "; ")
}

// Strings converts e into a plain map for JSON responses.
func (e Errors) Strings() map[string]string {
	out := make(map[string]string, len(e))
	for k, v := range e {
		out[string(k)] = v
	}
	return out
}

// ValidateForm validates every known key present in form. Unknown keys are
// ignored. The result is nil when everything is valid.
func ValidateForm(form map[string]string) Errors {
	var errs Errors
	for k, raw := range form {
		key := FieldKey(k)
		if _, ok := rules[key]; !ok {
			continue
		}
		if msg := Validate(key, raw); msg != "" {
			if errs == nil {
				errs = Errors{}
			}
			errs[key] = msg
		}
	}
	return errs
}
