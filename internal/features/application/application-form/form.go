package applicationform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/metrics"
	formvalidation "college-portal/internal/features/application/form-validation"
	"college-portal/internal/models"
)

// Form is one in-progress application: the current step, the data entered so
// far and the errors from the last blocked Next. After Submit every mutating
// call fails with FORM_SUBMITTED.
type Form struct {
	id     string
	config *Config
	drafts DraftSaver
	logger logger.Logger
	now    func() time.Time
	newID  func() string

	mu        sync.Mutex
	step      formvalidation.Step
	data      models.Application
	errs      formvalidation.ErrorMap
	saving    bool
	saveErr   error
	draftID   string
	submitted bool
}

// NewForm starts a form at the personal step. A draft passed as initial is
// resumed: later saves overwrite it.
func NewForm(deps FormDependencies, config *Config, initial *models.Application) (*Form, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for application-form: %w", err)
	}
	if deps.Drafts == nil {
		return nil, fmt.Errorf("application-form requires a draft store")
	}

	f := &Form{
		config: config,
		drafts: deps.Drafts,
		logger: deps.Logger,
		now:    deps.Clock,
		newID:  deps.NewID,
		errs:   formvalidation.ErrorMap{},
	}
	if f.logger == nil {
		f.logger = logger.NewNoOpLogger()
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.newID == nil {
		f.newID = uuid.NewString
	}
	f.id = f.newID()
	f.logger = f.logger.WithFields(map[string]interface{}{"component": "application-form", "formId": f.id})

	if initial != nil {
		f.data = initial.Clone()
		if initial.ID != "" && initial.Status == models.StatusDraft {
			f.draftID = initial.ID
		}
	}
	if f.data.Documents == nil {
		f.data.Documents = []models.Document{}
	}
	if f.data.Essays == nil {
		f.data.Essays = []models.Essay{}
	}
	f.data.CompletionPercentage = CalculateProgress(f.data)
	return f, nil
}

func (f *Form) ID() string { return f.id }

// CalculateProgress is the completion percentage of data, in steps of 25.
func CalculateProgress(data models.Application) int {
	return formvalidation.CalculateProgress(data)
}

// State returns a snapshot safe to hand to other goroutines.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := State{
		ID:        f.id,
		Step:      f.step,
		StepName:  f.step.String(),
		Data:      f.data.Clone(),
		Errors:    f.errs.Clone(),
		Progress:  f.data.CompletionPercentage,
		Saving:    f.saving,
		DraftID:   f.draftID,
		Submitted: f.submitted,
	}
	if f.saveErr != nil {
		st.SaveError = f.saveErr.Error()
	}
	return st
}

func (f *Form) DraftID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draftID
}

// ==========================
// Field edits
// ==========================

// UpdateSection shallow-merges fields into personalInfo or academicInfo and
// clears the error for each field named. It does not validate.
func (f *Form) UpdateSection(section string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return errors.NewFormSubmittedError()
	}

	switch section {
	case SectionPersonalInfo:
		merged, err := mergeFields(f.data.PersonalInfo, fields)
		if err != nil {
			return errors.NewInvalidSectionError(section, err.Error())
		}
		f.data.PersonalInfo = merged
	case SectionAcademicInfo:
		merged, err := mergeFields(f.data.AcademicInfo, fields)
		if err != nil {
			return errors.NewInvalidSectionError(section, err.Error())
		}
		f.data.AcademicInfo = merged
	default:
		return errors.NewInvalidSectionError(section, "unknown section")
	}

	for field := range fields {
		delete(f.errs, section+"."+field)
	}
	f.touch()
	return nil
}

// SetDetails sets the college and program the application targets.
func (f *Form) SetDetails(collegeName, program string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return errors.NewFormSubmittedError()
	}
	f.data.CollegeName = strings.TrimSpace(collegeName)
	f.data.Program = strings.TrimSpace(program)
	f.touch()
	return nil
}

// AddDocument appends doc with a fresh id. An empty type becomes "other".
func (f *Form) AddDocument(doc models.Document) (models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return models.Document{}, errors.NewFormSubmittedError()
	}

	if strings.TrimSpace(doc.Name) == "" {
		return models.Document{}, errors.NewInvalidRequestError("document name is required")
	}
	if doc.Type == "" {
		doc.Type = models.DocumentOther
	}
	if !doc.Type.Valid() {
		return models.Document{}, errors.NewInvalidRequestError(fmt.Sprintf("unknown document type %q", doc.Type))
	}
	doc.ID = f.newID()
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = f.now().UTC()
	}

	f.data.Documents = append(f.data.Documents, doc)
	f.touch()
	return doc, nil
}

func (f *Form) RemoveDocument(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return errors.NewFormSubmittedError()
	}

	for i, d := range f.data.Documents {
		if d.ID == id {
			f.data.Documents = append(f.data.Documents[:i:i], f.data.Documents[i+1:]...)
			f.touch()
			return nil
		}
	}
	return errors.NewInvalidRequestError(fmt.Sprintf("document %s not found", id))
}

func (f *Form) AddEssay(essay models.Essay) (models.Essay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return models.Essay{}, errors.NewFormSubmittedError()
	}
	if strings.TrimSpace(essay.Prompt) == "" {
		return models.Essay{}, errors.NewInvalidRequestError("essay prompt is required")
	}

	essay.ID = f.newID()
	essay.WordCount = countWords(essay.Content)
	f.data.Essays = append(f.data.Essays, essay)
	f.touch()
	return essay, nil
}

func (f *Form) UpdateEssay(id, content string) (models.Essay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return models.Essay{}, errors.NewFormSubmittedError()
	}

	for i := range f.data.Essays {
		if f.data.Essays[i].ID == id {
			f.data.Essays[i].Content = content
			f.data.Essays[i].WordCount = countWords(content)
			f.touch()
			return f.data.Essays[i], nil
		}
	}
	return models.Essay{}, errors.NewInvalidRequestError(fmt.Sprintf("essay %s not found", id))
}

// ==========================
// Navigation
// ==========================

// Next validates the current step. On failure the errors replace the form's
// error map and the step stays put; otherwise errors are cleared and the
// step advances, stopping at review.
func (f *Form) Next() (formvalidation.ErrorMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return nil, errors.NewFormSubmittedError()
	}

	errs := formvalidation.ValidateStep(f.step, f.data)
	if len(errs) > 0 {
		f.errs = errs
		metrics.FormTransitions.WithLabelValues("next", "blocked").Inc()
		f.logger.Debug("step blocked by validation", map[string]interface{}{
			"step":   f.step.String(),
			"errors": len(errs),
		})
		return errs.Clone(), nil
	}

	f.errs = formvalidation.ErrorMap{}
	if f.step < formvalidation.LastStep {
		f.step++
	}
	metrics.FormTransitions.WithLabelValues("next", "advanced").Inc()
	return formvalidation.ErrorMap{}, nil
}

// Previous steps back without validating or touching errors.
func (f *Form) Previous() (formvalidation.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return f.step, errors.NewFormSubmittedError()
	}
	if f.step > formvalidation.StepPersonal {
		f.step--
	}
	metrics.FormTransitions.WithLabelValues("previous", "moved").Inc()
	return f.step, nil
}

// ==========================
// Persistence
// ==========================

// SaveDraft hands a snapshot of the data to the draft store. The first
// successful save fixes the draft id; later saves overwrite it. On failure
// the form keeps its data and step and exposes the error in State.
func (f *Form) SaveDraft(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.submitted {
		f.mu.Unlock()
		return "", errors.NewFormSubmittedError()
	}
	if f.saving {
		f.mu.Unlock()
		return "", errors.NewSaveInProgressError()
	}
	f.saving = true
	f.saveErr = nil
	snapshot := f.data.Clone()
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = f.now().UTC()
	}
	draftID := f.draftID
	f.mu.Unlock()

	id, err := f.drafts.SaveDraft(ctx, snapshot, draftID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.saving = false
	if err != nil {
		f.saveErr = err
		f.logger.Warn("draft save failed", map[string]interface{}{"error": err})
		return "", err
	}
	f.draftID = id
	if f.data.CreatedAt.IsZero() {
		f.data.CreatedAt = snapshot.CreatedAt
	}
	return id, nil
}

// Submit turns the form into a submitted application. Only allowed from the
// review step. Earlier steps are not re-validated.
func (f *Form) Submit(now time.Time) (models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitted {
		return models.Application{}, errors.NewFormSubmittedError()
	}
	if f.step != formvalidation.LastStep {
		return models.Application{}, errors.NewSubmitNotAllowedError(int(f.step))
	}

	now = now.UTC()
	app := f.data.Clone()
	app.ID = f.newID()
	app.UserID = f.config.UserID
	app.Status = models.StatusSubmitted
	app.SubmittedAt = &now
	app.CreatedAt = now
	app.UpdatedAt = now
	app.CompletionPercentage = CalculateProgress(app)

	f.submitted = true
	f.data = app
	metrics.ApplicationsSubmitted.Inc()
	f.logger.Info("application submitted", map[string]interface{}{
		"applicationId":        app.ID,
		"draftId":              f.draftID,
		"completionPercentage": app.CompletionPercentage,
	})
	return app.Clone(), nil
}

// ==========================
// Helpers
// ==========================

// touch recomputes derived fields after any edit. Callers hold f.mu.
func (f *Form) touch() {
	f.data.CompletionPercentage = CalculateProgress(f.data)
}

// mergeFields overlays fields on current through their JSON names. Fields
// that do not exist on T, or carry the wrong type, are rejected.
func mergeFields[T any](current T, fields map[string]interface{}) (T, error) {
	var zero T

	base, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	merged := map[string]interface{}{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return zero, err
	}
	for k, v := range fields {
		merged[k] = v
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return zero, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var out T
	if err := dec.Decode(&out); err != nil {
		return zero, err
	}
	return out, nil
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
