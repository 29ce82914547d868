package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object in model output")

// extractJSON returns the outermost {...} span of text, which also strips
// markdown fences and any prose the model adds around the object.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

func ParseAnalysis(text string) (ComprehensiveAnalysis, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return ComprehensiveAnalysis{}, err
	}
	var a ComprehensiveAnalysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return ComprehensiveAnalysis{}, fmt.Errorf("decode analysis: %w", err)
	}
	if a.CropRecommendation.Crop == "" {
		return ComprehensiveAnalysis{}, errors.New("analysis has no crop recommendation")
	}
	a.Fallback = false
	return a, nil
}

func ParseSoilHealth(text string) (SoilHealthAnalysis, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return SoilHealthAnalysis{}, err
	}
	var s SoilHealthAnalysis
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return SoilHealthAnalysis{}, fmt.Errorf("decode soil health: %w", err)
	}
	return s, nil
}
