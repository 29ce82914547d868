package validate

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestBoundsInclusive(t *testing.T) {
	const eps = 1e-6
	for _, field := range Fields() {
		rule, _ := RuleFor(field)
		t.Run(string(field), func(t *testing.T) {
			assert.Empty(t, Validate(field, fmtFloat(rule.Min)), "min is valid")
			assert.NotEmpty(t, Validate(field, fmtFloat(rule.Min-eps)), "below min is rejected")
			if !math.IsInf(rule.Max, 1) {
				assert.Empty(t, Validate(field, fmtFloat(rule.Max)), "max is valid")
				assert.NotEmpty(t, Validate(field, fmtFloat(rule.Max+eps)), "above max is rejected")
			} else {
				assert.Empty(t, Validate(field, "1e12"))
			}
		})
	}
}

func TestEmptyIsValid(t *testing.T) {
	for _, field := range Fields() {
		assert.Empty(t, Validate(field, ""), field)
		assert.Empty(t, Validate(field, "   "), field)
	}
}

func TestNonNumericIsRejected(t *testing.T) {
	for _, field := range Fields() {
		for _, raw := range []string{"abc", "12abc", "NaN", "Inf", "-Infinity"} {
			assert.NotEmpty(t, Validate(field, raw), "%s=%q", field, raw)
		}
	}
}

func TestPHScenario(t *testing.T) {
	msg := Validate(PH, "15")
	assert.Equal(t, "pH must be between 0 and 14", msg)
	assert.Empty(t, Validate(PH, "14"))
	assert.Empty(t, Validate(PH, "0"))
	assert.NotEmpty(t, Validate(PH, "-0.01"))
}

func TestMessagesNameRange(t *testing.T) {
	assert.Equal(t, "Nitrogen must be between 0 and 30000 kg/ha", Validate(Nitrogen, "30001"))
	assert.Equal(t, "Phosphorus must be between 2 and 80 kg/ha", Validate(Phosphorus, "1.99"))
	assert.Equal(t, "Potassium must be a valid number between 50 and 900 kg/ha", Validate(Potassium, "lots"))
	assert.Equal(t, "Land size must be 0 or greater", Validate(LandSize, "-1"))
}

func TestUnknownField(t *testing.T) {
	assert.Contains(t, Validate("acreage", "3"), "unknown field")
}

func TestParseNoClamping(t *testing.T) {
	v, present, msg := Parse(Potassium, "901")
	assert.True(t, present)
	assert.Equal(t, 901.0, v)
	assert.NotEmpty(t, msg)

	v, present, msg = Parse(Potassium, " 180 ")
	assert.True(t, present)
	assert.Equal(t, 180.0, v)
	assert.Empty(t, msg)
}

func TestValidateForm(t *testing.T) {
	errs := ValidateForm(map[string]string{
		"pH":       "15",
		"nitrogen": "280",
		"landSize": "",
		"seedCost": "x",
		"cropName": "rice",
	})
	require.Len(t, errs, 2)
	assert.Contains(t, errs, PH)
	assert.Contains(t, errs, SeedCost)
	assert.Contains(t, errs.Error(), "pH: ")

	assert.Nil(t, ValidateForm(map[string]string{"pH": "7"}))
}

func TestHandlerCheck(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(Request{Field: "pH", Value: "15"})
	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "pH must be between 0 and 14", resp.Error)

	rec = httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
