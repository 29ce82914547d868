// Package community serves the farmer community feed.
package community

import "slices"

type AlertType string

const (
	AlertPest    AlertType = "pest"
	AlertDisease AlertType = "disease"
	AlertWeather AlertType = "weather"
)

// Label is the badge text shown next to an alert post.
func (a AlertType) Label() string {
	switch a {
	case AlertPest:
		return "Pest"
	case AlertDisease:
		return "Disease"
	case AlertWeather:
		return "Weather"
	default:
		return "Alert"
	}
}

type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Location  string    `json:"location"`
	Time      string    `json:"time"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	AlertType AlertType `json:"alert_type,omitempty"`
	// AlertLabel is filled for alert posts only.
	AlertLabel string `json:"alert_label,omitempty"`
}

func (p Post) IsAlert() bool { return p.AlertType != "" }

var feed = []Post{
	{
		ID:        "1",
		Author:    "Ram Kumar",
		Location:  "Patna, Bihar",
		Time:      "2 hours ago",
		Content:   "Brown spots appearing on rice crop. What should I do? Has anyone faced this issue before?",
		Likes:     12,
		Comments:  8,
		AlertType: AlertDisease,
	},
	{
		ID:       "2",
		Author:   "Sunita Devi",
		Location: "Muzaffarpur, Bihar",
		Time:     "4 hours ago",
		Content:  "Used SRI method for rice cultivation. Got 30% increase in yield! Highly recommend to everyone.",
		Likes:    45,
		Comments: 15,
	},
	{
		ID:        "3",
		Author:    "Anil Singh",
		Location:  "Gaya, Bihar",
		Time:      "6 hours ago",
		Content:   "Heavy rain with strong winds last night. Wheat crop might be damaged. Any suggestions for recovery?",
		Likes:     23,
		Comments:  12,
		AlertType: AlertWeather,
	},
}

// Posts returns a copy of the feed, newest first. With alertsOnly set, posts
// without an alert are dropped.
func Posts(alertsOnly bool) []Post {
	out := make([]Post, 0, len(feed))
	for _, p := range feed {
		if alertsOnly && !p.IsAlert() {
			continue
		}
		if p.IsAlert() {
			p.AlertLabel = p.AlertType.Label()
		}
		out = append(out, p)
	}
	return slices.Clip(out)
}
