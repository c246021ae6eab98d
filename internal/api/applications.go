package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"college-portal/internal/common/errors"
	apphttp "college-portal/internal/common/http"
	applicationviews "college-portal/internal/features/application/application-views"
	keywordsearch "college-portal/internal/features/search/keyword-search"
)

// ==========================
// Drafts
// ==========================

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	apphttp.WriteJSON(w, http.StatusOK, s.deps.Drafts.LoadAllDrafts(r.Context()))
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	draft, ok := s.deps.Drafts.LoadDraft(r.Context(), id)
	if !ok {
		s.fail(w, r, errors.NewDraftNotFoundError(id))
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, draft)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	s.deps.Drafts.DeleteDraft(r.Context(), mux.Vars(r)["id"])
	if err := s.deps.Drafts.LastError(); err != nil {
		s.fail(w, r, err)
		return
	}
	s.refreshDrafts(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ==========================
// Applications
// ==========================

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	s.refreshDrafts(r.Context())
	apps := s.deps.Registry.List()

	q := r.URL.Query()
	filtered := applicationviews.Filter(apps, applicationviews.Query{
		Status: q.Get("status"),
		Text:   q.Get("q"),
		SortBy: q.Get("sort"),
	}, s.config.Locale)

	apphttp.WriteJSON(w, http.StatusOK, applicationListResponse{
		Applications: filtered,
		Counts:       applicationviews.CountByStatus(apps),
	})
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	s.refreshDrafts(r.Context())
	app, err := s.deps.Registry.Get(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, app)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.refreshDrafts(r.Context())
	apphttp.WriteJSON(w, http.StatusOK, applicationviews.BuildDashboard(s.deps.Registry.List()))
}

func (s *Server) handleStatuses(w http.ResponseWriter, _ *http.Request) {
	apphttp.WriteJSON(w, http.StatusOK, applicationviews.Presentations())
}

// ==========================
// Search
// ==========================

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.deps.Search == nil {
		s.fail(w, r, errors.NewInternalError(errNotConfigured("search")))
		return
	}
	s.refreshDrafts(r.Context())

	q := r.URL.Query()
	results, err := s.deps.Search.Search(s.deps.Registry.List(), keywordsearch.Query{
		Text:   q.Get("q"),
		Type:   q.Get("type"),
		SortBy: q.Get("sort"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, results)
}
