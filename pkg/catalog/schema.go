// pkg/catalog/schema.go
package catalog

import "college-portal/internal/models"

// Catalog is the static list of tutorials and reference documents the portal
// searches alongside applications.
type Catalog struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Videos      []Video `json:"videos"`
	Documents   []Entry `json:"documents"`
}

type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags,omitempty"`
}

type Video struct {
	Entry
	VideoURL   string                     `json:"videoUrl,omitempty"`
	Duration   float64                    `json:"duration,omitempty"` // seconds
	Transcript []models.TranscriptSegment `json:"transcript,omitempty"`
}

func (e Entry) Item() models.CatalogItem {
	return models.CatalogItem{ID: e.ID, Title: e.Title, Description: e.Description, URL: e.URL}
}

// VideoItems returns the videos as search items.
func (c *Catalog) VideoItems() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.Videos))
	for i, v := range c.Videos {
		out[i] = v.Item()
	}
	return out
}

// DocumentItems returns the documents as search items.
func (c *Catalog) DocumentItems() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.Documents))
	for i, d := range c.Documents {
		out[i] = d.Item()
	}
	return out
}

// Video looks up a video by id.
func (c *Catalog) Video(id string) (Video, bool) {
	for _, v := range c.Videos {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}
