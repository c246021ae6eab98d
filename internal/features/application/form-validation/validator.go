package formvalidation

import (
	"strings"

	"college-portal/internal/models"
)

// ValidateStep checks the fields that gate leaving step. The documents and
// review steps never block. The result is never nil.
func ValidateStep(step Step, data models.Application) ErrorMap {
	errs := ErrorMap{}

	switch step {
	case StepPersonal:
		p := data.PersonalInfo
		requireField(errs, FieldFirstName, p.FirstName, "First name is required")
		requireField(errs, FieldLastName, p.LastName, "Last name is required")
		requireField(errs, FieldEmail, p.Email, "Email is required")
		requireField(errs, FieldPhone, p.Phone, "Phone is required")

	case StepAcademic:
		a := data.AcademicInfo
		requireField(errs, FieldCurrentSchool, a.CurrentSchool, "Current school is required")
		if a.GPA == nil || *a.GPA < MinGPA || *a.GPA > MaxGPA {
			errs[FieldGPA] = "Valid GPA (0-4.0) is required"
		}
	}

	return errs
}

func requireField(errs ErrorMap, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}
