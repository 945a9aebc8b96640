package models

// GenerateLetterRequest represents the request payload for generating a cover letter
type GenerateLetterRequest struct {
	ResumeText          string           `json:"resume_text" validate:"required"`
	Job                 JobDetails       `json:"job" validate:"required"`
	TemplateStyle       string           `json:"template_style,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	Profile             *ProfileOverride `json:"profile,omitempty"`
}

// ExtractResumeRequest represents the request payload for standalone resume extraction
type ExtractResumeRequest struct {
	ResumeText string           `json:"resume_text" validate:"required"`
	Profile    *ProfileOverride `json:"profile,omitempty"`
}

// AnalyzeJobRequest represents the request payload for standalone job analysis.
// Either resume_text or a previously extracted resume_info can be supplied;
// when both are present resume_info wins.
type AnalyzeJobRequest struct {
	JobDescription string      `json:"job_description" validate:"required"`
	ResumeText     string      `json:"resume_text,omitempty"`
	ResumeInfo     *ResumeInfo `json:"resume_info,omitempty"`
}
