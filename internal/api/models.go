package api

import (
	"context"
	"time"

	"college-portal/internal/common/logger"
	"college-portal/internal/common/observability"
	"college-portal/internal/common/validation"
	applicationform "college-portal/internal/features/application/application-form"
	applicationviews "college-portal/internal/features/application/application-views"
	draftstore "college-portal/internal/features/application/draft-store"
	formvalidation "college-portal/internal/features/application/form-validation"
	chatassistant "college-portal/internal/features/assistant/chat-assistant"
	keywordsearch "college-portal/internal/features/search/keyword-search"
	videonotes "college-portal/internal/features/tutorials/video-notes"
	"college-portal/internal/models"
	"college-portal/pkg/catalog"
)

// Dependencies is everything the server routes to. Build assembles it from
// configuration; tests may fill it by hand.
type Dependencies struct {
	Logger        logger.Logger
	Drafts        *draftstore.Store
	Forms         *applicationform.Sessions
	Registry      *applicationviews.Registry
	Search        *keywordsearch.Service
	Chat          *chatassistant.Sessions
	Notes         *videonotes.NoteStore
	Catalog       *catalog.Catalog
	Schemas       *validation.Registry
	Observability *observability.Observability
	// Ready reports whether the storage backend is reachable.
	Ready func(ctx context.Context) error
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// ==========================
// Request bodies
// ==========================

type newFormRequest struct {
	DraftID     string `json:"draftId"`
	CollegeName string `json:"collegeName"`
	Program     string `json:"program"`
}

type detailsRequest struct {
	CollegeName string `json:"collegeName"`
	Program     string `json:"program"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type noteRequest struct {
	Timestamp float64 `json:"timestamp"`
	Content   string  `json:"content"`
}

type progressRequest struct {
	CurrentTime float64 `json:"currentTime"`
	Duration    float64 `json:"duration"`
}

// ==========================
// Responses
// ==========================

type nextResponse struct {
	Advanced bool                    `json:"advanced"`
	Errors   formvalidation.ErrorMap `json:"errors"`
	State    applicationform.State   `json:"state"`
}

type draftSavedResponse struct {
	DraftID string                `json:"draftId"`
	State   applicationform.State `json:"state"`
}

type applicationListResponse struct {
	Applications []models.Application          `json:"applications"`
	Counts       applicationviews.StatusCounts `json:"counts"`
}

type chatResponse struct {
	Reply    models.ChatMessage   `json:"reply"`
	Messages []models.ChatMessage `json:"messages"`
}

type chatHistoryResponse struct {
	Messages []models.ChatMessage `json:"messages"`
	Typing   bool                 `json:"typing"`
}

type progressResponse struct {
	Progress      models.VideoProgress      `json:"progress"`
	ActiveSegment *models.TranscriptSegment `json:"activeSegment,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Error  string `json:"error,omitempty"`
}
