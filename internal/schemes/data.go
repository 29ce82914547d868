package schemes

var catalog = []Scheme{
	{
		ID:          1,
		Title:       "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)",
		Description: "Financial support of ₹6,000 per year to all small and marginal farmer families",
		Amount:      "₹6,000/year",
		Eligibility: "All small and marginal farmers",
		Status:      StatusActive,
		Category:    "Financial Support",
		Icon:        TagFinance,
		Documents:   []string{"Aadhaar Card", "Bank Account", "Land Ownership Proof"},
		Benefits:    "Direct cash transfer in 3 installments of ₹2,000 each",
		LastDate:    "Ongoing",
		Link:        "https://pmkisan.gov.in",
	},
	{
		ID:          2,
		Title:       "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
		Description: "Comprehensive crop insurance scheme to protect farmers from production risks",
		Amount:      "Crop loss coverage (input cost)",
		Eligibility: "All farmers growing notified crops",
		Status:      StatusActive,
		Category:    "Insurance",
		Icon:        TagInsurance,
		Documents:   []string{"Aadhaar Card", "Land Records", "Crop Sowing Proof"},
		Benefits:    "Coverage against natural calamities, pests, and diseases",
		LastDate:    "Ongoing",
		Link:        "https://pmfby.gov.in",
	},
	{
		ID:          3,
		Title:       "Pradhan Mantri Krishi Sinchai Yojana (PMKSY)",
		Description: "Irrigation subsidy scheme to improve water use efficiency",
		Amount:      "Irrigation subsidy up to ₹1 lakh",
		Eligibility: "Farmers in water-scarce areas",
		Status:      StatusActive,
		Category:    "Infrastructure",
		Icon:        TagInfrastructure,
		Documents:   []string{"Land Records", "Aadhaar Card", "Project Proposal"},
		Benefits:    "Subsidy for drip, sprinkler and micro-irrigation systems",
		LastDate:    "Ongoing",
		Link:        "https://pmksy.gov.in",
	},
	{
		ID:          4,
		Title:       "Soil Health Card Scheme",
		Description: "Free soil testing and nutrient management recommendations for farmers",
		Amount:      "Free soil testing worth ₹500-1000",
		Eligibility: "All farmers",
		Status:      StatusActive,
		Category:    "Advisory",
		Icon:        TagAdvisory,
		Documents:   []string{"Aadhaar Card", "Land Records"},
		Benefits:    "Soil analysis and customized fertilizer recommendations",
		LastDate:    "Ongoing",
		Link:        "https://soilhealth.dac.gov.in",
	},
	{
		ID:          5,
		Title:       "Kisan Credit Card (KCC)",
		Description: "Easy access to credit for farmers at concessional interest rates",
		Amount:      "Loan up to ₹3 lakh @ 4% interest",
		Eligibility: "All farmers",
		Status:      StatusActive,
		Category:    "Credit",
		Icon:        TagCredit,
		Documents:   []string{"Aadhaar Card", "Land Ownership Proof", "Bank Account"},
		Benefits:    "Low interest rates, flexible repayment terms",
		LastDate:    "Apply anytime",
		Link:        "https://www.myscheme.gov.in/schemes/kcc",
	},
	{
		ID:          6,
		Title:       "eNAM (National Agriculture Market)",
		Description: "Digital trading platform for transparent price discovery",
		Amount:      "Digital trading access",
		Eligibility: "Farmers and traders",
		Status:      StatusActive,
		Category:    "Marketing",
		Icon:        TagMarket,
		Documents:   []string{"Aadhaar Card", "Bank Account", "Mandi License"},
		Benefits:    "Online trading, better price realization, reduced transaction costs",
		LastDate:    "Ongoing",
		Link:        "https://enam.gov.in",
	},
	{
		ID:          7,
		Title:       "Pradhan Mantri Kisan Maan Dhan Yojana (PM-KMY)",
		Description: "Pension scheme for small and marginal farmers",
		Amount:      "₹3,000/month pension after 60",
		Eligibility: "Small & marginal farmers (18–40 years)",
		Status:      StatusActive,
		Category:    "Social Security",
		Icon:        TagPension,
		Documents:   []string{"Aadhaar Card", "Bank Account"},
		Benefits:    "Monthly pension after retirement, life insurance coverage",
		LastDate:    "Ongoing",
		Link:        "https://maandhan.in",
	},
	{
		ID:          8,
		Title:       "Rashtriya Krishi Vikas Yojana (RKVY)",
		Description: "Comprehensive scheme for holistic agricultural development",
		Amount:      "Grant support up to ₹25 lakh",
		Eligibility: "State government projects for farmers",
		Status:      StatusActive,
		Category:    "Development",
		Icon:        TagDevelopment,
		Documents:   []string{"Proposal through State Government"},
		Benefits:    "Infrastructure development, technology adoption, capacity building",
		LastDate:    "Ongoing",
		Link:        "https://share.google/tb8vKjmd5ATs0SxBO",
	},
	{
		ID:          9,
		Title:       "Paramparagat Krishi Vikas Yojana (PKVY)",
		Description: "Support for organic farming practices and certification",
		Amount:      "₹50,000/ha over 3 years",
		Eligibility: "Farmers adopting organic farming",
		Status:      StatusActive,
		Category:    "Organic Farming",
		Icon:        TagOrganic,
		Documents:   []string{"Aadhaar Card", "Land Records"},
		Benefits:    "Financial support for organic inputs, certification assistance",
		LastDate:    "Ongoing",
		Link:        "https://share.google/t4OBahzTUnn7b0kEG",
	},
	{
		ID:          10,
		Title:       "National Mission on Sustainable Agriculture",
		Description: "Climate resilient agriculture and sustainable farming practices",
		Amount:      "Subsidy up to ₹1.5 lakh",
		Eligibility: "Farmers in climate-vulnerable regions",
		Status:      StatusActive,
		Category:    "Sustainability",
		Icon:        TagSustainability,
		Documents:   []string{"Aadhaar Card", "Project Plan", "Land Records"},
		Benefits:    "Support for climate-smart agriculture, water conservation",
		LastDate:    "Ongoing",
		Link:        "https://nmsa.dac.gov.in",
	},
	{
		ID:          11,
		Title:       "National Beekeeping and Honey Mission (NBHM)",
		Description: "Support for beekeeping and honey production activities",
		Amount:      "Support up to ₹2 lakh",
		Eligibility: "Beekeepers and farmers",
		Status:      StatusActive,
		Category:    "Allied Agriculture",
		Icon:        TagAllied,
		Documents:   []string{"Aadhaar Card", "Land Records"},
		Benefits:    "Equipment subsidy, training, market linkage support",
		LastDate:    "Ongoing",
		Link:        "https://nbb.gov.in",
	},
	{
		ID:          12,
		Title:       "National Dairy Plan (Phase II)",
		Description: "Support for dairy farmers and milk production enhancement",
		Amount:      "₹50k–₹5 lakh support",
		Eligibility: "Dairy farmers",
		Status:      StatusActive,
		Category:    "Animal Husbandry",
		Icon:        TagLivestock,
		Documents:   []string{"Aadhaar Card", "Bank Details", "Livestock Proof"},
		Benefits:    "Cattle purchase subsidy, infrastructure development, training",
		LastDate:    "Ongoing",
		Link:        "https://nddb.coop",
	},
	{
		ID:          13,
		Title:       "Digital Agriculture Mission (2021–25)",
		Description: "Support for technology adoption in agriculture including drones and AI",
		Amount:      "Support for drones/AI ~₹5 lakh",
		Eligibility: "Tech-driven farmers & startups",
		Status:      StatusActive,
		Category:    "Technology",
		Icon:        TagTechnology,
		Documents:   []string{"Aadhaar Card", "FPO Registration", "Proposal"},
		Benefits:    "Drone subsidy, AI tools, digital farming solutions",
		LastDate:    "Ongoing",
		Link:        "https://share.google/Y1VCx5LUAn8e9QiIP",
	},
	{
		ID:          14,
		Title:       "Sub-Mission on Agricultural Mechanization (SMAM)",
		Description: "Subsidy on agricultural machinery and equipment purchase",
		Amount:      "Machinery subsidy 40–60%",
		Eligibility: "All farmers",
		Status:      StatusActive,
		Category:    "Mechanization",
		Icon:        TagMachinery,
		Documents:   []string{"Aadhaar Card", "Land Records", "Machinery Invoice"},
		Benefits:    "Tractor subsidy, implement subsidy, custom hiring centers",
		LastDate:    "Ongoing",
		Link:        "https://agrimachinery.nic.in",
	},
	{
		ID:          15,
		Title:       "Mission for Integrated Development of Horticulture (MIDH)",
		Description: "Comprehensive support for horticulture development and production",
		Amount:      "Grant up to ₹75,000/ha",
		Eligibility: "Horticulture farmers",
		Status:      StatusActive,
		Category:    "Horticulture",
		Icon:        TagHorticulture,
		Documents:   []string{"Aadhaar Card", "Land Documents"},
		Benefits:    "Planting material subsidy, infrastructure support, market linkage",
		LastDate:    "Ongoing",
		Link:        "https://midh.gov.in",
	},
	{
		ID:          16,
		Title:       "Pradhan Mantri Matsya Sampada Yojana (PMMSY)",
		Description: "Comprehensive support for fisheries and aquaculture development",
		Amount:      "Support up to ₹40 lakh",
		Eligibility: "Fisherfolk & aquaculture farmers",
		Status:      StatusActive,
		Category:    "Fisheries",
		Icon:        TagFisheries,
		Documents:   []string{"Aadhaar Card", "Waterbody Ownership", "Proposal"},
		Benefits:    "Pond construction, equipment subsidy, marketing support",
		LastDate:    "Ongoing",
		Link:        "https://pmmsy.dof.gov.in",
	},
	{
		ID:          17,
		Title:       "Gramin Bhandaran Yojana",
		Description: "Subsidy for construction of rural warehouses and storage facilities",
		Amount:      "Warehouse subsidy 15–33%",
		Eligibility: "Farmers & cooperatives",
		Status:      StatusActive,
		Category:    "Storage",
		Icon:        TagStorage,
		Documents:   []string{"Aadhaar Card", "Land Documents", "Warehouse Plan"},
		Benefits:    "Storage infrastructure, reduced post-harvest losses",
		LastDate:    "Ongoing",
		Link:        "https://nhb.gov.in",
	},
	{
		ID:          18,
		Title:       "National Food Security Mission (NFSM)",
		Description: "Support for increasing production of staple food crops",
		Amount:      "Input subsidy up to ₹10,000/ha",
		Eligibility: "Farmers growing staples",
		Status:      StatusActive,
		Category:    "Food Security",
		Icon:        TagFoodSecurity,
		Documents:   []string{"Aadhaar Card", "Crop Proof"},
		Benefits:    "Seed subsidy, fertilizer support, technical guidance",
		LastDate:    "Ongoing",
		Link:        "https://nfsm.gov.in",
	},
	{
		ID:          19,
		Title:       "Agri-Infra Fund",
		Description: "Financial support for agricultural infrastructure development",
		Amount:      "Loan up to ₹2 crore @ 3%",
		Eligibility: "FPOs, startups, agri-entrepreneurs",
		Status:      StatusActive,
		Category:    "Infrastructure",
		Icon:        TagInfrastructure,
		Documents:   []string{"Aadhaar Card", "PAN Card", "Business Plan"},
		Benefits:    "Low interest loans, infrastructure development support",
		LastDate:    "Ongoing",
		Link:        "https://agriinfra.dac.gov.in",
	},
	{
		ID:          20,
		Title:       "Digital Agriculture Mission",
		Description: "Support for digital transformation in agriculture sector",
		Amount:      "Grant up to ₹10 lakh",
		Eligibility: "Farmers & agri-tech startups",
		Status:      StatusActive,
		Category:    "Technology",
		Icon:        TagTechnology,
		Documents:   []string{"Aadhaar Card", "Startup Registration", "Proposal"},
		Benefits:    "Digital tools, technology adoption, innovation support",
		LastDate:    "Ongoing",
		Link:        "https://agricoop.gov.in",
	},
}
