package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"college-portal/internal/common/errors"
	apphttp "college-portal/internal/common/http"
	"college-portal/internal/common/validation"
	applicationform "college-portal/internal/features/application/application-form"
	"college-portal/internal/models"
)

// ==========================
// Form lifecycle
// ==========================

// handleNewForm opens a form. A draftId resumes that draft; otherwise the
// optional college and program seed a blank application.
func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	var req newFormRequest
	if err := s.decode(r, validation.SchemaNewForm, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}

	var initial *models.Application
	switch {
	case req.DraftID != "":
		draft, ok := s.deps.Drafts.LoadDraft(r.Context(), req.DraftID)
		if !ok {
			s.fail(w, r, errors.NewDraftNotFoundError(req.DraftID))
			return
		}
		initial = &draft
	case req.CollegeName != "" || req.Program != "":
		initial = &models.Application{CollegeName: req.CollegeName, Program: req.Program}
	}

	form, err := s.deps.Forms.Open(initial)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusCreated, form.State())
}

func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, form.State())
}

func (s *Server) handleCloseForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.form(w, r); !ok {
		return
	}
	s.deps.Forms.Close(mux.Vars(r)["formId"])
	w.WriteHeader(http.StatusNoContent)
}

// ==========================
// Field edits
// ==========================

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	section := mux.Vars(r)["section"]
	if section != applicationform.SectionPersonalInfo && section != applicationform.SectionAcademicInfo {
		s.fail(w, r, errors.NewInvalidSectionError(section, "unknown section"))
		return
	}

	var fields map[string]interface{}
	if err := s.decode(r, section, &fields, errors.ErrCodeInvalidSection); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := form.UpdateSection(section, fields); err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, form.State())
}

func (s *Server) handleSetDetails(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	var req detailsRequest
	if err := s.decode(r, validation.SchemaDetails, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := form.SetDetails(req.CollegeName, req.Program); err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, form.State())
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	var doc models.Document
	if err := s.decode(r, validation.SchemaDocument, &doc, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	added, err := form.AddDocument(doc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusCreated, added)
}

func (s *Server) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	if err := form.RemoveDocument(mux.Vars(r)["docId"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddEssay(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	var essay models.Essay
	if err := s.decode(r, validation.SchemaEssay, &essay, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	added, err := form.AddEssay(essay)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateEssay(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	var req contentRequest
	if err := s.decode(r, validation.SchemaEssayUpdate, &req, errors.ErrCodeInvalidRequest); err != nil {
		s.fail(w, r, err)
		return
	}
	updated, err := form.UpdateEssay(mux.Vars(r)["essayId"], req.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, updated)
}

// ==========================
// Navigation and persistence
// ==========================

// handleNext answers 422 with the error map when the step does not validate.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	errs, err := form.Next()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := nextResponse{Advanced: len(errs) == 0, Errors: errs, State: form.State()}
	status := http.StatusOK
	if !resp.Advanced {
		status = http.StatusUnprocessableEntity
	}
	apphttp.WriteJSON(w, status, resp)
}

func (s *Server) handlePrevious(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	if _, err := form.Previous(); err != nil {
		s.fail(w, r, err)
		return
	}
	apphttp.WriteJSON(w, http.StatusOK, form.State())
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	id, err := form.SaveDraft(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.refreshDrafts(r.Context())
	apphttp.WriteJSON(w, http.StatusOK, draftSavedResponse{DraftID: id, State: form.State()})
}

// handleSubmit records the application and drops the draft it came from.
// A failed draft delete is logged; the submission stands.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	form, ok := s.form(w, r)
	if !ok {
		return
	}
	app, err := form.Submit(s.deps.Clock())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.deps.Registry.Add(app); err != nil {
		s.fail(w, r, err)
		return
	}
	if draftID := form.DraftID(); draftID != "" {
		s.deps.Drafts.DeleteDraft(r.Context(), draftID)
		if err := s.deps.Drafts.LastError(); err != nil {
			s.logger.Warn("failed to delete submitted draft", map[string]interface{}{
				"draftId":       draftID,
				"applicationId": app.ID,
				"error":         err.Error(),
			})
		}
	}
	s.refreshDrafts(r.Context())
	apphttp.WriteJSON(w, http.StatusCreated, app)
}

func (s *Server) form(w http.ResponseWriter, r *http.Request) (*applicationform.Form, bool) {
	form, err := s.deps.Forms.Get(mux.Vars(r)["formId"])
	if err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return form, true
}
