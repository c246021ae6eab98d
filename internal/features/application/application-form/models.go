package applicationform

import (
	"context"
	"time"

	"college-portal/internal/common/logger"
	formvalidation "college-portal/internal/features/application/form-validation"
	"college-portal/internal/models"
)

// Sections accepted by UpdateSection.
const (
	SectionPersonalInfo = "personalInfo"
	SectionAcademicInfo = "academicInfo"
)

// DraftSaver is the part of the draft store a form needs.
type DraftSaver interface {
	SaveDraft(ctx context.Context, draft models.Application, id string) (string, error)
}

type FormDependencies struct {
	Drafts DraftSaver
	Logger logger.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// NewID defaults to uuid.NewString.
	NewID func() string
}

// State is a point-in-time snapshot of a form.
type State struct {
	ID        string                  `json:"id"`
	Step      formvalidation.Step     `json:"step"`
	StepName  string                  `json:"stepName"`
	Data      models.Application      `json:"data"`
	Errors    formvalidation.ErrorMap `json:"errors"`
	Progress  int                     `json:"progress"`
	Saving    bool                    `json:"saving"`
	SaveError string                  `json:"saveError,omitempty"`
	DraftID   string                  `json:"draftId,omitempty"`
	Submitted bool                    `json:"submitted"`
}
