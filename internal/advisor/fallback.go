package advisor

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Fallback is returned whenever the model cannot be reached or its reply
// cannot be used. Soil values echo the sample where one was given.
func Fallback(s SoilSample) ComprehensiveAnalysis {
	return ComprehensiveAnalysis{
		SoilHealth: SoilHealthAnalysis{
			PH:            orDefault(s.PH, "6.8"),
			Nitrogen:      orDefault(s.Nitrogen, "280"),
			Phosphorus:    orDefault(s.Phosphorus, "15"),
			Potassium:     orDefault(s.Potassium, "180"),
			OrganicCarbon: orDefault(s.OrganicCarbon, "0.65"),
			Summary:       "Soil health data processed. Please verify values and consult local agriculture experts.",
			Recommendations: []string{
				"Test soil regularly for accurate nutrient levels",
				"Add organic matter to improve soil structure",
				"Maintain proper pH levels for optimal crop growth",
			},
		},
		CropRecommendation: CropRecommendation{
			Crop:       "Rice (Basmati)",
			Yield:      "4.2 tons/hectare",
			Profit:     "₹85,000 per hectare",
			Irrigation: "SRI Method - 7 day interval",
			Fertilizer: "NPK 120:60:40 kg/ha",
			Confidence: 75,
		},
		DetailedAnalysis: "Based on the provided data, the soil shows moderate fertility levels. " +
			"The recommended crop is suitable for the current season and soil conditions. " +
			"Regular monitoring and proper management practices will ensure optimal yields.",
		ImplementationPlan: []string{
			"Prepare land with proper tillage",
			"Select certified seeds",
			"Implement irrigation schedule",
			"Apply fertilizers as recommended",
			"Monitor for pests and diseases",
			"Plan harvest timing",
		},
		Fallback: true,
	}
}

func SoilCardFallback() SoilHealthAnalysis {
	return SoilHealthAnalysis{
		PH:            "6.8",
		Nitrogen:      "280",
		Phosphorus:    "15",
		Potassium:     "180",
		OrganicCarbon: "0.65",
		Summary:       "Unable to process the document with AI. Please verify it contains soil health data or enter values manually.",
		Recommendations: []string{
			"Verify the document contains valid soil health data",
			"Try uploading a clearer document",
			"Enter soil parameters manually if needed",
		},
	}
}
