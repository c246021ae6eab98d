package keywordsearch

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"college-portal/internal/common/collation"
	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/metrics"
	"college-portal/internal/models"
)

// Service searches applications and the static catalogs by substring.
type Service struct {
	config    *Config
	logger    logger.Logger
	videos    []models.CatalogItem
	documents []models.CatalogItem
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"component": "keyword-search"}),
		videos:    append([]models.CatalogItem(nil), deps.Videos...),
		documents: append([]models.CatalogItem(nil), deps.Documents...),
	}
}

// Search returns every application, video and document whose text contains
// the query, limited to q.Type. Matching is case-insensitive on the query with
// surrounding whitespace trimmed, so " essay " matches like "essay". A blank
// query returns no results.
func (s *Service) Search(apps []models.Application, q Query) ([]models.SearchResult, error) {
	filter := q.Type
	if filter == "" {
		filter = TypeAll
	}
	switch filter {
	case TypeAll, TypeApplication, TypeVideo, TypeDocument:
	default:
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("unknown result type %q", q.Type))
	}

	results := []models.SearchResult{}
	query := strings.ToLower(strings.TrimSpace(q.Text))
	if query == "" {
		return results, nil
	}
	metrics.SearchQueries.WithLabelValues(filter).Inc()

	if filter == TypeAll || filter == TypeApplication {
		for _, a := range apps {
			text := applicationText(a)
			if !strings.Contains(text, query) {
				continue
			}
			results = append(results, models.SearchResult{
				ID:             a.ID,
				Type:           models.ResultApplication,
				Title:          a.CollegeName + " - " + a.Program,
				Description:    "Application status: " + string(a.Status),
				URL:            "/applications/" + a.ID,
				RelevanceScore: RelevanceScore(text, query),
			})
		}
	}
	if filter == TypeAll || filter == TypeVideo {
		results = appendCatalog(results, s.videos, models.ResultVideo, query)
	}
	if filter == TypeAll || filter == TypeDocument {
		results = appendCatalog(results, s.documents, models.ResultDocument, query)
	}

	switch q.SortBy {
	case SortRelevance, "":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].RelevanceScore > results[j].RelevanceScore
		})
	case SortName:
		collation.SortStable(s.config.Locale, results, func(r models.SearchResult) string { return r.Title })
	}
	// SortDate and unknown orders keep discovery order; catalog items carry no date.

	s.logger.Debug("search completed", map[string]interface{}{
		"query":   query,
		"type":    filter,
		"results": len(results),
	})
	return results, nil
}

// RelevanceScore gives each space-separated word of query one point if text
// contains it and two more if it also appears as a whole word.
func RelevanceScore(text, query string) int {
	score := 0
	for _, word := range strings.Split(query, " ") {
		if word == "" || !strings.Contains(text, word) {
			continue
		}
		score++
		if wholeWord(word).MatchString(text) {
			score += 2
		}
	}
	return score
}

func wholeWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

func applicationText(a models.Application) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{
		a.CollegeName,
		a.Program,
		a.PersonalInfo.FirstName,
		a.PersonalInfo.LastName,
		a.AcademicInfo.CurrentSchool,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func appendCatalog(results []models.SearchResult, items []models.CatalogItem, kind models.SearchResultType, query string) []models.SearchResult {
	for _, it := range items {
		text := strings.ToLower(it.Title + " " + it.Description)
		if !strings.Contains(text, query) {
			continue
		}
		results = append(results, models.SearchResult{
			ID:             it.ID,
			Type:           kind,
			Title:          it.Title,
			Description:    it.Description,
			URL:            it.URL,
			RelevanceScore: RelevanceScore(text, query),
		})
	}
	return results
}
