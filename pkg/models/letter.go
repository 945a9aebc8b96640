package models

import "time"

// ResumeInfo represents the structured fields extracted from raw resume text
type ResumeInfo struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	WorkHistory []string `json:"work_history"`
	Summary     string   `json:"summary"`
}

// JobAnalysis represents the result of comparing a job description against a resume
type JobAnalysis struct {
	Requirements        []string `json:"requirements"`
	MatchedSkills       []string `json:"matched_skills"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	CompanyInsights     string   `json:"company_insights"`
}

// JobDetails carries the caller-supplied job metadata for a generation request.
// CompanyName and JobTitle are validated at the API boundary; the pipeline
// treats them as preconditions.
type JobDetails struct {
	CompanyName    string `json:"company_name" validate:"required"`
	JobTitle       string `json:"job_title" validate:"required"`
	JobDescription string `json:"job_description"`
}

// ProfileOverride supplies account-settings values that take priority over
// extraction. Non-empty fields are used verbatim and extraction for that
// field is skipped.
type ProfileOverride struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// IsEmpty reports whether the override carries no usable values
func (p *ProfileOverride) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Name == "" && p.Email == "" && p.Phone == "" && p.Address == "" && p.Bio == ""
}

// GenerationRecord is the persisted result of a completed letter generation
type GenerationRecord struct {
	LetterID      string      `json:"letter_id"`
	CoverLetter   string      `json:"cover_letter"`
	TemplateStyle string      `json:"template_style"`
	Job           JobDetails  `json:"job"`
	ResumeInfo    ResumeInfo  `json:"resume_info"`
	JobAnalysis   JobAnalysis `json:"job_analysis"`
	GeneratedAt   time.Time   `json:"generated_at"`
}
