package applicationviews

import (
	"sort"
	"strings"

	"college-portal/internal/common/collation"
	"college-portal/internal/models"
)

// BuildDashboard counts applications by headline status and picks the most
// recently updated.
func BuildDashboard(apps []models.Application) Dashboard {
	d := Dashboard{Stats: Stats{Total: len(apps)}}
	for _, a := range apps {
		switch a.Status {
		case models.StatusDraft:
			d.Stats.Drafts++
		case models.StatusSubmitted:
			d.Stats.Submitted++
		case models.StatusAccepted:
			d.Stats.Accepted++
		}
	}

	recent := cloneAll(apps)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt.After(recent[j].UpdatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	d.Recent = recent
	return d
}

// Filter applies the status and text filters then sorts. The input slice is
// not modified. An unknown sort key keeps input order.
func Filter(apps []models.Application, q Query, locale string) []models.Application {
	text := strings.ToLower(q.Text)
	hasText := strings.TrimSpace(q.Text) != ""

	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if q.Status != "" && q.Status != StatusAll && string(a.Status) != q.Status {
			continue
		}
		if hasText && !matchesText(a, text) {
			continue
		}
		out = append(out, a.Clone())
	}

	switch q.SortBy {
	case SortUpdated, "":
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	case SortCreated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortName:
		collation.SortStable(locale, out, func(a models.Application) string { return a.CollegeName })
	case SortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	}
	return out
}

// CountByStatus tallies apps under StatusAll and each status.
func CountByStatus(apps []models.Application) StatusCounts {
	counts := StatusCounts{StatusAll: len(apps)}
	for _, s := range models.AllStatuses {
		counts[string(s)] = 0
	}
	for _, a := range apps {
		if _, ok := counts[string(a.Status)]; ok {
			counts[string(a.Status)]++
		}
	}
	return counts
}

func matchesText(a models.Application, lowered string) bool {
	name := a.PersonalInfo.FirstName + " " + a.PersonalInfo.LastName
	return strings.Contains(strings.ToLower(a.CollegeName), lowered) ||
		strings.Contains(strings.ToLower(a.Program), lowered) ||
		strings.Contains(strings.ToLower(name), lowered)
}

func cloneAll(apps []models.Application) []models.Application {
	out := make([]models.Application, len(apps))
	for i, a := range apps {
		out[i] = a.Clone()
	}
	return out
}
