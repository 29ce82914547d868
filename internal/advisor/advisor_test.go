package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func sampleRequest() Request {
	req := Request{ExtractedDocumentText: "Soil Health Card no. 42"}
	req.FarmProfile = FarmProfile{Location: "Patna, Bihar", LandSize: "2.5", Season: "kharif", Budget: "40000", PreviousCrop: "Wheat"}
	req.SoilSample = SoilSample{PH: "6.5", Nitrogen: "300", Phosphorus: "20", Potassium: "200", OrganicCarbon: "0.7"}
	return req
}

const modelReply = "```json\n" + `{
  "soilHealth": {"pH": "6.5", "nitrogen": "300", "phosphorus": "20", "potassium": "200", "organicCarbon": "0.7",
    "summary": "Moderate fertility.", "recommendations": ["Add compost"]},
  "cropRecommendation": {"crop": "Maize", "yield": "5 tons/hectare", "profit": "₹60,000 per hectare",
    "irrigation": "Furrow, 10 day interval", "fertilizer": "NPK 150:75:40 kg/ha", "confidence": 88},
  "detailedAnalysis": "Maize suits the season.",
  "implementationPlan": ["Plough", "Sow"]
}` + "\n```"

func TestBuildPromptDeterministic(t *testing.T) {
	req := sampleRequest()
	p := BuildPrompt(req)
	assert.Equal(t, p, BuildPrompt(req))
	assert.Contains(t, p, "- Location: Patna, Bihar")
	assert.Contains(t, p, "- Land Size: 2.5 hectares")
	assert.Contains(t, p, "- Budget: ₹40000 per hectare")
	assert.Contains(t, p, "- Organic Carbon: 0.7%")
	assert.Contains(t, p, "Soil Health Card no. 42")
}

func TestParseAnalysis(t *testing.T) {
	a, err := ParseAnalysis(modelReply)
	require.NoError(t, err)
	assert.Equal(t, "Maize", a.CropRecommendation.Crop)
	assert.Equal(t, 88.0, a.CropRecommendation.Confidence)
	assert.Equal(t, []string{"Plough", "Sow"}, a.ImplementationPlan)
	assert.False(t, a.Fallback)

	_, err = ParseAnalysis("sorry, I cannot help")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = ParseAnalysis(`{"cropRecommendation": {"crop": ""}}`)
	assert.Error(t, err)

	_, err = ParseAnalysis(`{"cropRecommendation": {`)
	assert.Error(t, err)
}

func TestAnalyzeUsesModel(t *testing.T) {
	gen := &fakeGenerator{reply: modelReply}
	svc := NewService(gen, zaptest.NewLogger(t))

	a := svc.Analyze(context.Background(), sampleRequest())
	assert.Equal(t, "Maize", a.CropRecommendation.Crop)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, BuildPrompt(sampleRequest()), gen.prompts[0])
}

func TestAnalyzeFallsBack(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"generator error": {err: errors.New("quota exceeded")},
		"unparseable":     {reply: "not json"},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			a := NewService(gen, zaptest.NewLogger(t)).Analyze(context.Background(), sampleRequest())
			assert.True(t, a.Fallback)
			assert.Equal(t, "Rice (Basmati)", a.CropRecommendation.Crop)
			assert.Equal(t, 75.0, a.CropRecommendation.Confidence)
			assert.Equal(t, "6.5", a.SoilHealth.PH, "sample values are echoed")
		})
	}

	a := NewService(nil, nil).Analyze(context.Background(), Request{})
	assert.True(t, a.Fallback)
	assert.Equal(t, "6.8", a.SoilHealth.PH)
	assert.Equal(t, "NPK 120:60:40 kg/ha", a.CropRecommendation.Fertilizer)
}

func TestAnalyzeSoilCard(t *testing.T) {
	gen := &fakeGenerator{reply: `Here you go: {"pH": "7.1", "nitrogen": "N/A", "summary": "ok", "recommendations": []}`}
	sh := NewService(gen, nil).AnalyzeSoilCard(context.Background(), "pH 7.1")
	assert.Equal(t, "7.1", sh.PH)
	assert.Equal(t, "N/A", sh.Nitrogen)
	assert.Contains(t, gen.prompts[0], "pH 7.1")

	sh = NewService(&fakeGenerator{err: errors.New("down")}, nil).AnalyzeSoilCard(context.Background(), "x")
	assert.Equal(t, SoilCardFallback(), sh)
}

func TestHandlerAnalyze(t *testing.T) {
	h := &Handler{Service: NewService(&fakeGenerator{reply: modelReply}, nil)}

	body, _ := json.Marshal(sampleRequest())
	rec := httptest.NewRecorder()
	h.Analyze(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	var a ComprehensiveAnalysis
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&a))
	assert.Equal(t, "Maize", a.CropRecommendation.Crop)

	bad := sampleRequest()
	bad.SoilSample.PH = "15"
	bad.SoilSample.Phosphorus = "1"
	body, _ = json.Marshal(bad)
	rec = httptest.NewRecorder()
	h.Analyze(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "pH must be between 0 and 14")
	assert.Contains(t, rec.Body.String(), "phosphorus")
}

func TestHandlerSoilCard(t *testing.T) {
	h := &Handler{Service: NewService(nil, nil)}
	rec := httptest.NewRecorder()
	h.SoilCard(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"documentText":""}`))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.SoilCard(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"documentText":"card"}`))))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pH":"6.8"`)
}

func TestTruncateTextKeepsCharacters(t *testing.T) {
	assert.Equal(t, "abc", truncateText("abc", 10))
	// "ा" is three bytes; a cut at 4 lands inside the second one.
	assert.Equal(t, "xा", truncateText("xाा", 5))
	assert.Equal(t, "", truncateText("ाा", 2))
}

func TestSoilCardTruncatesLongDevanagariText(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unused")}
	h := &Handler{Service: NewService(gen, zaptest.NewLogger(t))}

	text := "xx" + strings.Repeat("ा", 30000)
	require.Greater(t, len(text), maxDocumentText)
	body, err := json.Marshal(SoilCardRequest{DocumentText: text})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.SoilCard(rec, httptest.NewRequest(http.MethodPost, "/api/user/advisor/soil-card", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.prompts, 1)
	assert.True(t, utf8.ValidString(gen.prompts[0]))
}

func TestAnalyzeTruncatesLongDocumentText(t *testing.T) {
	gen := &fakeGenerator{reply: modelReply}
	h := &Handler{Service: NewService(gen, zaptest.NewLogger(t))}

	req := sampleRequest()
	req.ExtractedDocumentText = "xx" + strings.Repeat("ा", 30000)
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Analyze(rec, httptest.NewRequest(http.MethodPost, "/api/user/advisor/analyze", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gen.prompts, 1)
	assert.True(t, utf8.ValidString(gen.prompts[0]))
}
