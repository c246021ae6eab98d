// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-portal/internal/api"
	"college-portal/internal/common/config"
	"college-portal/internal/common/errors"
	apphttp "college-portal/internal/common/http"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/storage"
	applicationform "college-portal/internal/features/application/application-form"
	applicationviews "college-portal/internal/features/application/application-views"
	"college-portal/internal/models"
)

// ==========================
// 1. Portal bootstrapping
// ==========================

// startPortal runs the whole server over the backend named by cfg, the way
// cmd/portal-server does, and returns a client for it.
func startPortal(t testing.TB, cfg *config.Config) *apphttp.Client {
	t.Helper()
	ctx := context.Background()
	log := logger.NewTestLogger(t)

	backend, err := storage.Open(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	require.NoError(t, backend.Ping(ctx))

	deps, err := api.Build(ctx, cfg, backend, log, nil)
	require.NoError(t, err)
	deps.Ready = backend.Ping

	srv, err := api.NewServer(deps, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return apphttp.NewClient(ts.URL, 10*time.Second)
}

func redisConfig(addr string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverRedis
	cfg.Storage.KeyPrefix = "e2e:"
	cfg.Database.Redis.Address = addr
	cfg.Form.UserID = "e2e-user"
	return cfg
}

func fileConfig(path string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverFile
	cfg.Storage.FilePath = path
	cfg.Form.UserID = "e2e-user"
	return cfg
}

// ==========================
// 2. Full application journey
// ==========================

func TestFullE2E(t *testing.T) {
	mr := miniredis.RunT(t)
	c := startPortal(t, redisConfig(mr.Addr()))

	t.Log("Starting full application journey over redis storage")
	runJourney(t, c)
	assert.True(t, mr.Exists("e2e:video_notes_video1"))
	t.Log("Journey complete")
}

func TestFullE2E_RealRedis(t *testing.T) {
	addr := os.Getenv("PORTAL_E2E_REDIS_ADDR")
	if addr == "" {
		t.Skip("PORTAL_E2E_REDIS_ADDR not set")
	}
	runJourney(t, startPortal(t, redisConfig(addr)))
}

func TestDraftsSurviveRestart(t *testing.T) {
	cfg := fileConfig(t.TempDir() + "/local-storage.json")
	ctx := context.Background()

	c := startPortal(t, cfg)
	var state applicationform.State
	require.NoError(t, c.Post(ctx, "/api/forms", map[string]string{"collegeName": "Yale", "program": "History"}, &state))
	var saved struct {
		DraftID string `json:"draftId"`
	}
	require.NoError(t, c.Post(ctx, "/api/forms/"+state.ID+"/draft", nil, &saved))

	restarted := startPortal(t, cfg)
	var drafts []models.Application
	require.NoError(t, restarted.Get(ctx, "/api/drafts", &drafts))
	require.Len(t, drafts, 1)
	assert.Equal(t, saved.DraftID, drafts[0].ID)
	assert.Equal(t, "Yale", drafts[0].CollegeName)
}

func runJourney(t *testing.T, c *apphttp.Client) {
	ctx := context.Background()

	var state applicationform.State
	require.NoError(t, c.Post(ctx, "/api/forms", map[string]string{
		"collegeName": "Stanford University",
		"program":     "Computer Science",
	}, &state))
	base := "/api/forms/" + state.ID

	// Blocked step returns the error map with 422.
	status, err := c.JSON(ctx, http.MethodPost, base+"/next", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Error(t, err)

	_, err = c.JSON(ctx, http.MethodPatch, base+"/sections/personalInfo", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "phone": "555-0100",
	}, &state)
	require.NoError(t, err)
	require.NoError(t, c.Post(ctx, base+"/next", nil, nil))

	_, err = c.JSON(ctx, http.MethodPatch, base+"/sections/academicInfo", map[string]interface{}{
		"currentSchool": "Lincoln High", "gpa": 3.9,
	}, &state)
	require.NoError(t, err)
	require.NoError(t, c.Post(ctx, base+"/next", nil, nil))

	var doc models.Document
	require.NoError(t, c.Post(ctx, base+"/documents", map[string]string{"name": "Transcript", "type": "transcript"}, &doc))
	require.NoError(t, c.Post(ctx, base+"/next", nil, nil))

	var saved struct {
		DraftID string `json:"draftId"`
	}
	require.NoError(t, c.Post(ctx, base+"/draft", nil, &saved))
	require.NotEmpty(t, saved.DraftID)

	var app models.Application
	require.NoError(t, c.Post(ctx, base+"/submit", nil, &app))
	assert.Equal(t, models.StatusSubmitted, app.Status)
	assert.Equal(t, "e2e-user", app.UserID)
	assert.Equal(t, 100, app.CompletionPercentage)

	err = c.Get(ctx, "/api/drafts/"+saved.DraftID, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDraftNotFound))

	var dash applicationviews.Dashboard
	require.NoError(t, c.Get(ctx, "/api/dashboard", &dash))
	assert.GreaterOrEqual(t, dash.Stats.Submitted, 1)

	var results []models.SearchResult
	require.NoError(t, c.Get(ctx, "/api/search?q=stanford", &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "/applications/"+app.ID, results[0].URL)

	var note models.VideoNote
	require.NoError(t, c.Post(ctx, "/api/videos/video1/notes", map[string]interface{}{"timestamp": 31.5, "content": "hook ideas"}, &note))
	var notes []models.VideoNote
	require.NoError(t, c.Get(ctx, "/api/videos/video1/notes", &notes))
	assert.Len(t, notes, 1)

	var chat struct {
		Reply models.ChatMessage `json:"reply"`
	}
	require.NoError(t, c.Post(ctx, "/api/chat/e2e/messages", map[string]string{"content": "What GPA do I need?"}, &chat))
	assert.Contains(t, chat.Reply.Content, "GPA is important")

	require.NoError(t, c.Get(ctx, "/ready", nil))
}

// ==========================
// 3. Benchmarks
// ==========================

func BenchmarkHandler_SaveDraft(b *testing.B) {
	mr := miniredis.RunT(b)
	c := startPortal(b, redisConfig(mr.Addr()))
	ctx := context.Background()

	var state applicationform.State
	require.NoError(b, c.Post(ctx, "/api/forms", map[string]string{"collegeName": "MIT"}, &state))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Post(ctx, "/api/forms/"+state.ID+"/draft", nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHandler_Search(b *testing.B) {
	c := startPortal(b, fileConfig(b.TempDir()+"/local-storage.json"))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		var state applicationform.State
		require.NoError(b, c.Post(ctx, "/api/forms", map[string]string{
			"collegeName": fmt.Sprintf("College %d", i), "program": "Computer Science",
		}, &state))
		require.NoError(b, c.Post(ctx, "/api/forms/"+state.ID+"/draft", nil, nil))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Get(ctx, "/api/search?q=computer+science&sort=name", nil); err != nil {
			b.Fatal(err)
		}
	}
}
