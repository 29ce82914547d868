// Package schemes serves the government schemes directory.
package schemes

import (
	"strings"
)

type IconTag string

const (
	TagFinance        IconTag = "finance"
	TagInsurance      IconTag = "insurance"
	TagInfrastructure IconTag = "infrastructure"
	TagAdvisory       IconTag = "advisory"
	TagCredit         IconTag = "credit"
	TagMarket         IconTag = "market"
	TagPension        IconTag = "pension"
	TagDevelopment    IconTag = "development"
	TagOrganic        IconTag = "organic"
	TagSustainability IconTag = "sustainability"
	TagAllied         IconTag = "allied"
	TagLivestock      IconTag = "livestock"
	TagTechnology     IconTag = "technology"
	TagMachinery      IconTag = "machinery"
	TagHorticulture   IconTag = "horticulture"
	TagFisheries      IconTag = "fisheries"
	TagStorage        IconTag = "storage"
	TagFoodSecurity   IconTag = "food-security"
)

// icons maps tags to the asset the client renders. Unknown tags fall back to
// the generic document icon.
var icons = map[IconTag]string{
	TagFinance:        "indian-rupee",
	TagInsurance:      "shield-check",
	TagInfrastructure: "building",
	TagAdvisory:       "file-text",
	TagCredit:         "credit-card",
	TagMarket:         "trending-up",
	TagPension:        "users",
	TagDevelopment:    "sprout",
	TagOrganic:        "leaf",
	TagSustainability: "droplets",
	TagAllied:         "flower",
	TagLivestock:      "milk",
	TagTechnology:     "cpu",
	TagMachinery:      "tractor",
	TagHorticulture:   "apple",
	TagFisheries:      "fish",
	TagStorage:        "warehouse",
	TagFoodSecurity:   "wheat",
}

const defaultIcon = "file-text"

func IconAsset(tag IconTag) string {
	if a, ok := icons[tag]; ok {
		return a
	}
	return defaultIcon
}

type Status string

const (
	StatusActive      Status = "Active"
	StatusClosed      Status = "Closed"
	StatusOpeningSoon Status = "Opening Soon"
)

type Scheme struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      string   `json:"amount"`
	Eligibility string   `json:"eligibility"`
	Status      Status   `json:"status"`
	Category    string   `json:"category"`
	Icon        IconTag  `json:"icon"`
	IconAsset   string   `json:"icon_asset"`
	Documents   []string `json:"documents"`
	Benefits    string   `json:"benefits"`
	LastDate    string   `json:"last_date"`
	Link        string   `json:"link"`
}

const DefaultPerPage = 4

type PageResult struct {
	Items      []Scheme `json:"items"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	TotalItems int      `json:"total_items"`
	TotalPages int      `json:"total_pages"`
	// From and To are the 1-based positions shown as "Showing X to Y of N".
	From int `json:"from"`
	To   int `json:"to"`
}

// Directory is a read-only scheme list.
type Directory struct {
	schemes []Scheme
}

func NewDirectory(list []Scheme) *Directory {
	out := make([]Scheme, len(list))
	for i, s := range list {
		s.IconAsset = IconAsset(s.Icon)
		out[i] = s
	}
	return &Directory{schemes: out}
}

// Default returns the built-in catalog.
func Default() *Directory {
	return NewDirectory(catalog)
}

func (d *Directory) filter(category string) []Scheme {
	if category == "" {
		return d.schemes
	}
	var out []Scheme
	for _, s := range d.schemes {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// Page returns one page of schemes. A page outside 1..TotalPages is clamped
// to the nearest valid page; perPage <= 0 uses DefaultPerPage.
func (d *Directory) Page(category string, page, perPage int) PageResult {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	list := d.filter(category)
	total := len(list)
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if pages == 0 {
		return PageResult{Items: []Scheme{}, Page: 1, PerPage: perPage}
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	return PageResult{
		Items:      list[start:end],
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: pages,
		From:       start + 1,
		To:         end,
	}
}

// Categories lists distinct categories in catalog order.
func (d *Directory) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range d.schemes {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}
