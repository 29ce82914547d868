// Package advisor builds crop and soil advisory requests for a text
// generation model and turns its replies into structured analyses. Every
// failure degrades to a fixed fallback recommendation.
package advisor

type FarmProfile struct {
	Location     string `json:"location"`
	LandSize     string `json:"landSize"`
	Season       string `json:"season"`
	Budget       string `json:"budget"`
	PreviousCrop string `json:"previousCrop"`
}

type SoilSample struct {
	PH            string `json:"pH"`
	Nitrogen      string `json:"nitrogen"`
	Phosphorus    string `json:"phosphorus"`
	Potassium     string `json:"potassium"`
	OrganicCarbon string `json:"organicCarbon"`
}

type Request struct {
	FarmProfile           FarmProfile `json:"farmProfile"`
	SoilSample            SoilSample  `json:"soilSample"`
	ExtractedDocumentText string      `json:"extractedDocumentText"`
}

type SoilHealthAnalysis struct {
	PH              string   `json:"pH"`
	Nitrogen        string   `json:"nitrogen"`
	Phosphorus      string   `json:"phosphorus"`
	Potassium       string   `json:"potassium"`
	OrganicCarbon   string   `json:"organicCarbon"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

type CropRecommendation struct {
	Crop       string  `json:"crop"`
	Yield      string  `json:"yield"`
	Profit     string  `json:"profit"`
	Irrigation string  `json:"irrigation"`
	Fertilizer string  `json:"fertilizer"`
	Confidence float64 `json:"confidence"`
}

type ComprehensiveAnalysis struct {
	SoilHealth         SoilHealthAnalysis `json:"soilHealth"`
	CropRecommendation CropRecommendation `json:"cropRecommendation"`
	DetailedAnalysis   string             `json:"detailedAnalysis"`
	ImplementationPlan []string           `json:"implementationPlan"`
	// Fallback is set when the analysis did not come from the model.
	Fallback bool `json:"fallback"`
}
