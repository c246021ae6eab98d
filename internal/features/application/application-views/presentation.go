package applicationviews

import "college-portal/internal/models"

var presentations = map[models.ApplicationStatus]Presentation{
	models.StatusDraft:       {Status: models.StatusDraft, Label: "Draft", Color: "gray", Icon: "clock", Editable: true},
	models.StatusSubmitted:   {Status: models.StatusSubmitted, Label: "Submitted", Color: "green", Icon: "check-circle"},
	models.StatusUnderReview: {Status: models.StatusUnderReview, Label: "Under review", Color: "yellow", Icon: "clock"},
	models.StatusAccepted:    {Status: models.StatusAccepted, Label: "Accepted", Color: "green", Icon: "check-circle"},
	models.StatusRejected:    {Status: models.StatusRejected, Label: "Rejected", Color: "red", Icon: "alert-circle"},
}

// PresentationFor maps a status to its label, color and icon. Unknown
// statuses are drawn like drafts but are not editable.
func PresentationFor(status models.ApplicationStatus) Presentation {
	if p, ok := presentations[status]; ok {
		return p
	}
	p := presentations[models.StatusDraft]
	p.Status = status
	p.Label = string(status)
	p.Editable = false
	return p
}

// Presentations lists every known status in lifecycle order.
func Presentations() []Presentation {
	out := make([]Presentation, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		out = append(out, presentations[s])
	}
	return out
}
