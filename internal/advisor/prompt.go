package advisor

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the comprehensive analysis prompt. Output depends only
// on req.
func BuildPrompt(req Request) string {
	p := req.FarmProfile
	s := req.SoilSample

	var b strings.Builder
	b.WriteString("You are an expert agricultural consultant analyzing a complete farm profile for crop recommendations.\n\n")
	b.WriteString("FARM PROFILE:\n")
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	fmt.Fprintf(&b, "- Land Size: %s hectares\n", p.LandSize)
	fmt.Fprintf(&b, "- Season: %s\n", p.Season)
	fmt.Fprintf(&b, "- Budget: ₹%s per hectare\n", p.Budget)
	fmt.Fprintf(&b, "- Previous Crop: %s\n\n", p.PreviousCrop)

	b.WriteString("SOIL HEALTH DATA:\n")
	fmt.Fprintf(&b, "- pH: %s\n", s.PH)
	fmt.Fprintf(&b, "- Nitrogen: %s kg/ha\n", s.Nitrogen)
	fmt.Fprintf(&b, "- Phosphorus: %s kg/ha\n", s.Phosphorus)
	fmt.Fprintf(&b, "- Potassium: %s kg/ha\n", s.Potassium)
	fmt.Fprintf(&b, "- Organic Carbon: %s%%\n\n", s.OrganicCarbon)

	b.WriteString("SOIL HEALTH CARD CONTENT:\n")
	b.WriteString(req.ExtractedDocumentText)
	b.WriteString("\n\n")

	b.WriteString(`Please provide a comprehensive analysis in the following JSON format:
{
  "soilHealth": {
    "pH": "extracted or provided pH value",
    "nitrogen": "extracted or provided nitrogen value",
    "phosphorus": "extracted or provided phosphorus value",
    "potassium": "extracted or provided potassium value",
    "organicCarbon": "extracted or provided organic carbon value",
    "summary": "2-3 sentence summary of soil health status",
    "recommendations": ["soil improvement recommendation 1", "soil improvement recommendation 2", "soil improvement recommendation 3"]
  },
  "cropRecommendation": {
    "crop": "best crop recommendation based on all data",
    "yield": "expected yield in tons/hectare",
    "profit": "estimated profit in ₹ per hectare",
    "irrigation": "specific irrigation plan and schedule",
    "fertilizer": "detailed fertilizer recommendation with NPK ratios",
    "confidence": 85
  },
  "detailedAnalysis": "Comprehensive 3-4 paragraph analysis covering soil health, crop suitability, market conditions, and risk factors",
  "implementationPlan": ["Step 1: Land preparation", "Step 2: Seed selection and planting", "Step 3: Irrigation management", "Step 4: Fertilizer application", "Step 5: Pest and disease management", "Step 6: Harvest planning"]
}

Guidelines:
1. Consider all provided data (form, soil health, document content)
2. Recommend crops suitable for the specific location and season
3. Provide realistic yield and profit estimates
4. Include specific, actionable recommendations
5. Consider Indian agricultural practices and local conditions
6. Return ONLY valid JSON, no additional text`)
	return b.String()
}

// BuildSoilCardPrompt asks the model to pull nutrient values out of soil
// health card text.
func BuildSoilCardPrompt(documentText string) string {
	return `You are an agricultural expert analyzing soil health data from a soil health card.

Please analyze the following soil health card data and extract key information in a structured format:

Document Content:
` + documentText + `

Please provide your analysis in the following JSON format:
{
  "pH": "extracted pH value or 'N/A' if not found",
  "nitrogen": "extracted nitrogen value in kg/ha or 'N/A' if not found",
  "phosphorus": "extracted phosphorus value in kg/ha or 'N/A' if not found",
  "potassium": "extracted potassium value in kg/ha or 'N/A' if not found",
  "organicCarbon": "extracted organic carbon percentage or 'N/A' if not found",
  "summary": "A comprehensive 2-3 sentence summary of the soil health status",
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"]
}

Guidelines:
1. Extract numerical values for pH, nitrogen, phosphorus, potassium, and organic carbon
2. If values are not found, use "N/A"
3. Provide a clear summary of overall soil health
4. Give 3 practical recommendations for improving soil health
5. Return ONLY valid JSON, no additional text`
}
