package formvalidation

// Step is a zero-based index into the four form sections.
type Step int

const (
	StepPersonal Step = iota
	StepAcademic
	StepDocuments
	StepReview
)

// LastStep is the final, review step.
const LastStep = StepReview

var stepNames = [...]string{"personal", "academic", "documents", "review"}

func (s Step) String() string {
	if s < StepPersonal || s > LastStep {
		return "unknown"
	}
	return stepNames[s]
}

// ErrorMap maps a field path such as "personalInfo.email" to a message.
type ErrorMap map[string]string

// Clone returns an independent copy.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Field paths produced by ValidateStep.
const (
	FieldFirstName     = "personalInfo.firstName"
	FieldLastName      = "personalInfo.lastName"
	FieldEmail         = "personalInfo.email"
	FieldPhone         = "personalInfo.phone"
	FieldCurrentSchool = "academicInfo.currentSchool"
	FieldGPA           = "academicInfo.gpa"
)

const (
	MinGPA = 0.0
	MaxGPA = 4.0
)
