package formvalidation

import (
	"math"
	"strings"

	"college-portal/internal/models"
)

// CalculateProgress scores the four sections at 25% each. Personal counts when
// first name, last name and email are set; academic when current school and
// GPA are set; documents when at least one is attached. Review always counts.
func CalculateProgress(data models.Application) int {
	completed := 1.0 // review

	p := data.PersonalInfo
	if present(p.FirstName) && present(p.LastName) && present(p.Email) {
		completed++
	}
	if present(data.AcademicInfo.CurrentSchool) && data.AcademicInfo.GPA != nil {
		completed++
	}
	if len(data.Documents) > 0 {
		completed++
	}

	return int(math.Round(completed / 4 * 100))
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
