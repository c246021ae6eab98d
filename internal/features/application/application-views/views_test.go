package applicationviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func app(id, college, program string, status models.ApplicationStatus, createdDay, updatedDay int) models.Application {
	return models.Application{
		ID:          id,
		CollegeName: college,
		Program:     program,
		Status:      status,
		CreatedAt:   base.AddDate(0, 0, createdDay),
		UpdatedAt:   base.AddDate(0, 0, updatedDay),
		PersonalInfo: models.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Roe-" + id,
		},
	}
}

func fixtures() []models.Application {
	return []models.Application{
		app("a1", "Stanford University", "Computer Science", models.StatusDraft, 1, 5),
		app("a2", "MIT", "Physics", models.StatusSubmitted, 2, 9),
		app("a3", "École Polytechnique", "Mathematics", models.StatusAccepted, 3, 3),
		app("a4", "Yale", "History", models.StatusRejected, 4, 7),
		app("a5", "berkeley", "Computer Engineering", models.StatusUnderReview, 5, 1),
	}
}

func ids(apps []models.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}

// ==========================
// Dashboard
// ==========================

func TestBuildDashboard(t *testing.T) {
	apps := fixtures()
	d := BuildDashboard(apps)

	assert.Equal(t, Stats{Total: 5, Drafts: 1, Submitted: 1, Accepted: 1}, d.Stats)
	assert.Equal(t, []string{"a2", "a4", "a1"}, ids(d.Recent))
	// Input order untouched.
	assert.Equal(t, "a1", apps[0].ID)
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(nil)
	assert.Equal(t, Stats{}, d.Stats)
	assert.Empty(t, d.Recent)
}

// ==========================
// Filter
// ==========================

func TestFilter_Sorts(t *testing.T) {
	tests := []struct {
		sort string
		want []string
	}{
		{SortUpdated, []string{"a2", "a4", "a1", "a3", "a5"}},
		{"", []string{"a2", "a4", "a1", "a3", "a5"}},
		{SortCreated, []string{"a5", "a4", "a3", "a2", "a1"}},
		{SortName, []string{"a5", "a3", "a2", "a1", "a4"}},
		{SortStatus, []string{"a3", "a1", "a4", "a2", "a5"}},
		{"bogus", []string{"a1", "a2", "a3", "a4", "a5"}},
	}
	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			got := Filter(fixtures(), Query{SortBy: tt.sort}, "en")
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Status(t *testing.T) {
	got := Filter(fixtures(), Query{Status: "under-review"}, "en")
	assert.Equal(t, []string{"a5"}, ids(got))

	got = Filter(fixtures(), Query{Status: StatusAll}, "en")
	assert.Len(t, got, 5)
}

func TestFilter_Text(t *testing.T) {
	tests := []struct {
		q    string
		want []string
	}{
		{"computer", []string{"a1", "a5"}},
		{"MIT", []string{"a2"}},
		{"jane roe-a4", []string{"a4"}},
		{"   ", []string{"a1", "a2", "a3", "a4", "a5"}},
		{"nowhere", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			got := Filter(fixtures(), Query{Text: tt.q, SortBy: SortCreated}, "en")
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestFilter_StatusAndText(t *testing.T) {
	got := Filter(fixtures(), Query{Status: "draft", Text: "computer"}, "en")
	assert.Equal(t, []string{"a1"}, ids(got))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(fixtures())
	assert.Equal(t, StatusCounts{
		"all":          5,
		"draft":        1,
		"submitted":    1,
		"under-review": 1,
		"accepted":     1,
		"rejected":     1,
	}, counts)

	empty := CountByStatus(nil)
	assert.Equal(t, 0, empty["all"])
	assert.Equal(t, 0, empty["rejected"])
}

// ==========================
// Presentation
// ==========================

func TestPresentationFor(t *testing.T) {
	tests := []struct {
		status models.ApplicationStatus
		label  string
		color  string
		icon   string
	}{
		{models.StatusDraft, "Draft", "gray", "clock"},
		{models.StatusSubmitted, "Submitted", "green", "check-circle"},
		{models.StatusUnderReview, "Under review", "yellow", "clock"},
		{models.StatusAccepted, "Accepted", "green", "check-circle"},
		{models.StatusRejected, "Rejected", "red", "alert-circle"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := PresentationFor(tt.status)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, tt.color, p.Color)
			assert.Equal(t, tt.icon, p.Icon)
		})
	}

	assert.True(t, PresentationFor(models.StatusDraft).Editable)
	assert.False(t, PresentationFor(models.StatusSubmitted).Editable)

	unknown := PresentationFor("archived")
	assert.Equal(t, "gray", unknown.Color)
	assert.Equal(t, "archived", unknown.Label)
	assert.False(t, unknown.Editable)

	assert.Len(t, Presentations(), len(models.AllStatuses))
}

// ==========================
// Registry
// ==========================

func TestRegistry_AddAndList(t *testing.T) {
	r := NewRegistry(logger.NewTestLogger(t))
	r.ReplaceDrafts([]models.Application{app("draft_1", "Test U", "Art", models.StatusDraft, 0, 0)})

	submitted := app("sub-1", "MIT", "Physics", models.StatusSubmitted, 1, 1)
	require.NoError(t, r.Add(submitted))

	assert.Equal(t, []string{"draft_1", "sub-1"}, ids(r.List()))

	got, err := r.Get("sub-1")
	require.NoError(t, err)
	assert.Equal(t, "MIT", got.CollegeName)

	_, err = r.Get("missing")
	assert.True(t, errors.HasCode(err, errors.ErrCodeApplicationNotFound))
}

func TestRegistry_AddRejects(t *testing.T) {
	r := NewRegistry(nil)

	err := r.Add(app("d", "X", "Y", models.StatusDraft, 0, 0))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatusTransition))

	err = r.Add(app("acc", "X", "Y", models.StatusAccepted, 0, 0))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidStatusTransition))

	err = r.Add(app("", "X", "Y", models.StatusSubmitted, 0, 0))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))

	require.NoError(t, r.Add(app("s", "X", "Y", models.StatusSubmitted, 0, 0)))
	assert.Error(t, r.Add(app("s", "X", "Y", models.StatusSubmitted, 0, 0)))
}

func TestRegistry_ReplaceDraftsKeepsSubmitted(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Add(app("s", "X", "Y", models.StatusSubmitted, 0, 0)))
	r.ReplaceDrafts([]models.Application{app("d1", "A", "B", models.StatusDraft, 0, 0)})
	r.ReplaceDrafts(nil)

	assert.Equal(t, []string{"s"}, ids(r.List()))
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Add(app("s", "X", "Y", models.StatusSubmitted, 0, 0)))

	list := r.List()
	list[0].CollegeName = "changed"
	got, _ := r.Get("s")
	assert.Equal(t, "X", got.CollegeName)
}
