package keywordsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal/internal/common/errors"
	"college-portal/internal/models"
	"college-portal/pkg/catalog"
)

// ==========================
// Test Helper Functions
// ==========================

func newDefaultService() *Service {
	c := catalog.Default()
	return NewService(ServiceDependencies{
		Videos:    c.VideoItems(),
		Documents: c.DocumentItems(),
	}, nil)
}

func applications() []models.Application {
	return []models.Application{
		{
			ID:           "a1",
			CollegeName:  "Stanford University",
			Program:      "Computer Science",
			Status:       models.StatusSubmitted,
			PersonalInfo: models.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
			AcademicInfo: models.AcademicInfo{CurrentSchool: "Lincoln High"},
		},
		{
			ID:          "a2",
			CollegeName: "MIT",
			Program:     "Physics",
			Status:      models.StatusDraft,
		},
	}
}

func resultIDs(results []models.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

// ==========================
// Search
// ==========================

func TestSearch_BlankQuery(t *testing.T) {
	svc := newDefaultService()
	for _, q := range []string{"", "   "} {
		results, err := svc.Search(applications(), Query{Text: q})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestSearch_ApplicationResult(t *testing.T) {
	svc := newDefaultService()

	results, err := svc.Search(applications(), Query{Text: "  Computer Science "})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "a1", r.ID)
	assert.Equal(t, models.ResultApplication, r.Type)
	assert.Equal(t, "Stanford University - Computer Science", r.Title)
	assert.Equal(t, "Application status: submitted", r.Description)
	assert.Equal(t, "/applications/a1", r.URL)
	assert.Equal(t, 6, r.RelevanceScore)
}

func TestSearch_MatchesApplicantAndSchool(t *testing.T) {
	svc := newDefaultService()

	results, err := svc.Search(applications(), Query{Text: "lincoln"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, resultIDs(results))

	results, err = svc.Search(applications(), Query{Text: "DOE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, resultIDs(results))
}

func TestSearch_CatalogAcrossTypes(t *testing.T) {
	svc := newDefaultService()

	results, err := svc.Search(applications(), Query{Text: "application"})
	require.NoError(t, err)
	// Equal scores keep discovery order: videos before documents.
	assert.Equal(t, []string{"video1", "video2", "doc1"}, resultIDs(results))
	for _, r := range results {
		assert.Equal(t, 3, r.RelevanceScore)
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	svc := newDefaultService()

	results, err := svc.Search(applications(), Query{Text: "application", Type: TypeDocument})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc1"}, resultIDs(results))

	results, err = svc.Search(applications(), Query{Text: "application", Type: TypeVideo})
	require.NoError(t, err)
	assert.Equal(t, []string{"video1", "video2"}, resultIDs(results))

	results, err = svc.Search(applications(), Query{Text: "physics", Type: TypeVideo})
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.Search(applications(), Query{Text: "physics", Type: "podcast"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestSearch_SortByRelevance(t *testing.T) {
	svc := NewService(ServiceDependencies{
		Videos: []models.CatalogItem{
			{ID: "partial", Title: "Essayist interviews"},
			{ID: "whole", Title: "Essays", Description: "essay writing"},
		},
	}, nil)

	results, err := svc.Search(nil, Query{Text: "essay", SortBy: SortRelevance})
	require.NoError(t, err)
	assert.Equal(t, []string{"whole", "partial"}, resultIDs(results))
	assert.Equal(t, 3, results[0].RelevanceScore)
	assert.Equal(t, 1, results[1].RelevanceScore)
}

func TestSearch_SortByName(t *testing.T) {
	svc := NewService(ServiceDependencies{
		Documents: []models.CatalogItem{
			{ID: "z", Title: "Zulu guide"},
			{ID: "e", Title: "Études guide"},
			{ID: "a", Title: "alpha guide"},
		},
	}, nil)

	results, err := svc.Search(nil, Query{Text: "guide", SortBy: SortName})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "e", "z"}, resultIDs(results))

	results, err = svc.Search(nil, Query{Text: "guide", SortBy: SortDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "e", "a"}, resultIDs(results))
}

// ==========================
// Relevance
// ==========================

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		text  string
		query string
		want  int
	}{
		{"computer science", "computer", 3},
		{"computer science", "comp", 1},
		{"computer science", "comp science", 4},
		{"computer science", "history", 0},
		{"computer science", "computer  science", 6},
		{"c++ primer", "c++", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelevanceScore(tt.text, tt.query), "%q in %q", tt.query, tt.text)
	}
}
