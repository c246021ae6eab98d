package applicationviews

import (
	"sync"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/models"
)

// Registry is the in-memory application list behind every view: the drafts
// loaded from storage plus the applications submitted since start-up.
// Submitted entries are never changed or removed.
type Registry struct {
	logger logger.Logger

	mu        sync.RWMutex
	drafts    []models.Application
	submitted []models.Application
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Registry{logger: log.WithFields(map[string]interface{}{"component": "application-views"})}
}

// ReplaceDrafts swaps in a fresh draft list, typically LoadAllDrafts output.
func (r *Registry) ReplaceDrafts(drafts []models.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts = cloneAll(drafts)
}

// Add records a submitted application. Anything that is not a valid
// draft-to-submitted result is refused.
func (r *Registry) Add(app models.Application) error {
	if !models.StatusDraft.CanTransitionTo(app.Status) {
		return errors.NewInvalidStatusTransitionError(string(models.StatusDraft), string(app.Status))
	}
	if app.ID == "" {
		return errors.NewInvalidRequestError("submitted application has no id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.submitted {
		if existing.ID == app.ID {
			return errors.NewInvalidRequestError("application " + app.ID + " already exists")
		}
	}
	r.submitted = append(r.submitted, app.Clone())
	r.logger.Info("application recorded", map[string]interface{}{
		"applicationId": app.ID,
		"collegeName":   app.CollegeName,
	})
	return nil
}

// Get finds an application by id, submitted entries first.
func (r *Registry) Get(id string) (models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, list := range [][]models.Application{r.submitted, r.drafts} {
		for _, a := range list {
			if a.ID == id {
				return a.Clone(), nil
			}
		}
	}
	return models.Application{}, errors.NewApplicationNotFoundError(id)
}

// List returns drafts followed by submitted applications in submission order.
func (r *Registry) List() []models.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Application, 0, len(r.drafts)+len(r.submitted))
	for _, a := range r.drafts {
		out = append(out, a.Clone())
	}
	for _, a := range r.submitted {
		out = append(out, a.Clone())
	}
	return out
}
