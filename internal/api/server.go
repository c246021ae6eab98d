// Package api exposes the portal over JSON HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"college-portal/internal/common/errors"
	apphttp "college-portal/internal/common/http"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/validation"
)

type Server struct {
	deps   Dependencies
	config *Config
	logger logger.Logger
	errs   *errors.ErrorHandler
	router *mux.Router

	// draftCount is the last LoadAllDrafts size reported to the drafts gauge.
	draftMu    sync.Mutex
	draftCount int
}

func NewServer(deps Dependencies, config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if deps.Drafts == nil || deps.Forms == nil || deps.Registry == nil {
		return nil, errors.NewInvalidRequestError("api server requires drafts, forms and registry")
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	if deps.Schemas == nil {
		deps.Schemas = validation.MustDefaultRegistry()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	log := deps.Logger.WithFields(map[string]interface{}{"component": "api"})
	s := &Server{
		deps:   deps,
		config: config,
		logger: log,
		errs:   errors.NewErrorHandler(log),
	}
	s.router = s.routes()
	return s, nil
}

// Handler is the root handler including ops endpoints.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer wraps Handler with the configured timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(
		apphttp.Recover(s.errs),
		apphttp.Tracing(s.deps.Observability),
		apphttp.Metrics(s.deps.Observability),
		apphttp.Logging(s.logger),
	)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	a := r.PathPrefix("/api").Subrouter()

	// Forms
	a.HandleFunc("/forms", s.handleNewForm).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}", s.handleGetForm).Methods(http.MethodGet)
	a.HandleFunc("/forms/{formId}", s.handleCloseForm).Methods(http.MethodDelete)
	a.HandleFunc("/forms/{formId}/sections/{section}", s.handleUpdateSection).Methods(http.MethodPatch)
	a.HandleFunc("/forms/{formId}/details", s.handleSetDetails).Methods(http.MethodPut)
	a.HandleFunc("/forms/{formId}/documents", s.handleAddDocument).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}/documents/{docId}", s.handleRemoveDocument).Methods(http.MethodDelete)
	a.HandleFunc("/forms/{formId}/essays", s.handleAddEssay).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}/essays/{essayId}", s.handleUpdateEssay).Methods(http.MethodPut)
	a.HandleFunc("/forms/{formId}/next", s.handleNext).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}/previous", s.handlePrevious).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}/draft", s.handleSaveDraft).Methods(http.MethodPost)
	a.HandleFunc("/forms/{formId}/submit", s.handleSubmit).Methods(http.MethodPost)

	// Drafts and applications
	a.HandleFunc("/drafts", s.handleListDrafts).Methods(http.MethodGet)
	a.HandleFunc("/drafts/{id}", s.handleGetDraft).Methods(http.MethodGet)
	a.HandleFunc("/drafts/{id}", s.handleDeleteDraft).Methods(http.MethodDelete)
	a.HandleFunc("/applications", s.handleListApplications).Methods(http.MethodGet)
	a.HandleFunc("/applications/{id}", s.handleGetApplication).Methods(http.MethodGet)
	a.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	a.HandleFunc("/statuses", s.handleStatuses).Methods(http.MethodGet)
	a.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)

	// Assistant
	a.HandleFunc("/chat/{sessionId}/messages", s.handleChatHistory).Methods(http.MethodGet)
	a.HandleFunc("/chat/{sessionId}/messages", s.handleChatSend).Methods(http.MethodPost)
	a.HandleFunc("/chat/{sessionId}", s.handleChatClear).Methods(http.MethodDelete)

	// Tutorials
	a.HandleFunc("/videos", s.handleListVideos).Methods(http.MethodGet)
	a.HandleFunc("/videos/{videoId}", s.handleGetVideo).Methods(http.MethodGet)
	a.HandleFunc("/videos/{videoId}/notes", s.handleListNotes).Methods(http.MethodGet)
	a.HandleFunc("/videos/{videoId}/notes", s.handleAddNote).Methods(http.MethodPost)
	a.HandleFunc("/videos/{videoId}/notes/{noteId}", s.handleUpdateNote).Methods(http.MethodPut)
	a.HandleFunc("/videos/{videoId}/notes/{noteId}", s.handleDeleteNote).Methods(http.MethodDelete)
	a.HandleFunc("/videos/{videoId}/progress", s.handleProgress).Methods(http.MethodPost)
	a.HandleFunc("/documents", s.handleListDocuments).Methods(http.MethodGet)

	return r
}

// ==========================
// Ops
// ==========================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	apphttp.WriteJSON(w, http.StatusOK, healthResponse{
		Status: "healthy",
		Time:   s.deps.Clock().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ready", Time: s.deps.Clock().Format(time.RFC3339)}
	if s.deps.Ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.deps.Ready(ctx); err != nil {
			resp.Status = "unavailable"
			resp.Error = err.Error()
			apphttp.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
}

// ==========================
// Helpers
// ==========================

// decode checks the body against the named schema and decodes it into out.
// Schema failures are reported with failCode.
func (s *Server) decode(r *http.Request, schema string, out interface{}, failCode errors.ErrorCode) error {
	body, err := apphttp.ReadBody(r, s.config.MaxBodyBytes)
	if err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}
	if !json.Valid(body) {
		return errors.NewInvalidRequestError("request body is not valid JSON")
	}
	result, err := s.deps.Schemas.ValidateJSON(schema, body)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !result.Valid {
		if failCode == errors.ErrCodeInvalidSection {
			return errors.NewInvalidSectionError(schema, result.Error())
		}
		return errors.NewInvalidRequestError(result.Error()).WithMetadata("validation", result.Errors)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewInvalidRequestError(err.Error())
	}
	return nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.errs.HandleHTTPError(w, r, err)
}

// refreshDrafts reloads the registry's draft list from storage and moves
// the drafts gauge by the change in count.
func (s *Server) refreshDrafts(ctx context.Context) {
	drafts := s.deps.Drafts.LoadAllDrafts(ctx)
	s.deps.Registry.ReplaceDrafts(drafts)

	s.draftMu.Lock()
	delta := len(drafts) - s.draftCount
	s.draftCount = len(drafts)
	s.draftMu.Unlock()
	if delta != 0 && s.deps.Observability != nil {
		s.deps.Observability.AdjustDrafts(ctx, int64(delta))
	}
}
