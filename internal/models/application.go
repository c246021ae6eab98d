// internal/models/application.go
package models

import (
	"slices"
	"time"
)

// ApplicationStatus is the lifecycle state of an Application.
type ApplicationStatus string

const (
	StatusDraft       ApplicationStatus = "draft"
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusUnderReview ApplicationStatus = "under-review"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
)

// AllStatuses lists every status in display order.
var AllStatuses = []ApplicationStatus{
	StatusDraft, StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected,
}

var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusUnderReview, StatusAccepted, StatusRejected},
	StatusUnderReview: {StatusAccepted, StatusRejected},
}

func (s ApplicationStatus) Valid() bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether s may move to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Application struct {
	ID                   string            `json:"id,omitempty"`
	UserID               string            `json:"userId,omitempty"`
	CollegeName          string            `json:"collegeName"`
	Program              string            `json:"program"`
	Status               ApplicationStatus `json:"status,omitempty"`
	SubmittedAt          *time.Time        `json:"submittedAt,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
	PersonalInfo         PersonalInfo      `json:"personalInfo"`
	AcademicInfo         AcademicInfo      `json:"academicInfo"`
	Documents            []Document        `json:"documents"`
	Essays               []Essay           `json:"essays"`
	CompletionPercentage int               `json:"completionPercentage"`
}

// Clone returns a deep copy. Nil slices stay nil and empty slices stay empty,
// so a clone serializes exactly like the original.
func (a Application) Clone() Application {
	out := a
	if a.SubmittedAt != nil {
		t := *a.SubmittedAt
		out.SubmittedAt = &t
	}
	out.PersonalInfo = a.PersonalInfo
	out.AcademicInfo = a.AcademicInfo.clone()
	out.Documents = slices.Clone(a.Documents)
	out.Essays = slices.Clone(a.Essays)
	return out
}

type PersonalInfo struct {
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DateOfBirth      string           `json:"dateOfBirth"`
	Address          Address          `json:"address"`
	Citizenship      string           `json:"citizenship"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
}

// FullName is "first last" with surrounding blanks dropped.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type AcademicInfo struct {
	CurrentSchool      string   `json:"currentSchool"`
	GPA                *float64 `json:"gpa,omitempty"`
	ExpectedGraduation string   `json:"expectedGraduation"`
	Coursework         []string `json:"coursework"`
	Honors             []string `json:"honors"`
	Extracurriculars   []string `json:"extracurriculars"`
}

func (a AcademicInfo) clone() AcademicInfo {
	out := a
	if a.GPA != nil {
		g := *a.GPA
		out.GPA = &g
	}
	out.Coursework = slices.Clone(a.Coursework)
	out.Honors = slices.Clone(a.Honors)
	out.Extracurriculars = slices.Clone(a.Extracurriculars)
	return out
}

type DocumentType string

const (
	DocumentTranscript     DocumentType = "transcript"
	DocumentRecommendation DocumentType = "recommendation"
	DocumentCertificate    DocumentType = "certificate"
	DocumentEssay          DocumentType = "essay"
	DocumentOther          DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTranscript, DocumentRecommendation, DocumentCertificate, DocumentEssay, DocumentOther:
		return true
	}
	return false
}

type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	FileName   string       `json:"fileName"`
	FileSize   int64        `json:"fileSize"`
	UploadedAt time.Time    `json:"uploadedAt"`
	URL        string       `json:"url,omitempty"`
}

type Essay struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Content   string `json:"content"`
	WordCount int    `json:"wordCount"`
	MaxWords  int    `json:"maxWords"`
}

// Float64 returns a pointer to v, for optional numeric fields such as GPA.
func Float64(v float64) *float64 { return &v }
