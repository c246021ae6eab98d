package applicationviews

import "college-portal/internal/models"

// Sort keys accepted by Filter.
const (
	SortUpdated = "updated"
	SortCreated = "created"
	SortName    = "name"
	SortStatus  = "status"
)

// StatusAll selects every status in a Query and in StatusCounts.
const StatusAll = "all"

// RecentLimit is how many applications the dashboard lists.
const RecentLimit = 3

type Query struct {
	// Status is StatusAll, empty, or one ApplicationStatus.
	Status string `json:"status"`
	Text   string `json:"q"`
	SortBy string `json:"sort"`
}

type Stats struct {
	Total     int `json:"total"`
	Drafts    int `json:"drafts"`
	Submitted int `json:"submitted"`
	Accepted  int `json:"accepted"`
}

type Dashboard struct {
	Stats  Stats                `json:"stats"`
	Recent []models.Application `json:"recent"`
}

// StatusCounts is keyed by StatusAll and every ApplicationStatus.
type StatusCounts map[string]int

// Presentation is how a status is drawn in any view.
type Presentation struct {
	Status   models.ApplicationStatus `json:"status"`
	Label    string                   `json:"label"`
	Color    string                   `json:"color"`
	Icon     string                   `json:"icon"`
	Editable bool                     `json:"editable"`
}
