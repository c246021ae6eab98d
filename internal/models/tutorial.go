// internal/models/tutorial.go
package models

import "time"

type VideoNote struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Timestamp float64   `json:"timestamp"` // seconds into the video
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type VideoProgress struct {
	VideoID           string  `json:"videoId"`
	CurrentTime       float64 `json:"currentTime"`
	Duration          float64 `json:"duration"`
	Completed         bool    `json:"completed"`
	WatchedPercentage float64 `json:"watchedPercentage"`
}

type TranscriptSegment struct {
	ID    string  `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

type SearchResultType string

const (
	ResultApplication SearchResultType = "application"
	ResultVideo       SearchResultType = "video"
	ResultDocument    SearchResultType = "document"
)

type SearchResult struct {
	ID             string           `json:"id"`
	Type           SearchResultType `json:"type"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	URL            string           `json:"url,omitempty"`
	RelevanceScore int              `json:"relevanceScore"`
}

// CatalogItem is an entry in the static tutorial or document lists.
type CatalogItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
