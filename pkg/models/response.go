package models

import "time"

// GenerateLetterResponse represents the response from a synchronous generation request
type GenerateLetterResponse struct {
	Success        bool          `json:"success"`
	LetterID       string        `json:"letter_id,omitempty"`
	CoverLetter    string        `json:"cover_letter"`
	TemplateStyle  string        `json:"template_style"`
	ResumeInfo     *ResumeInfo   `json:"resume_info,omitempty"`
	JobAnalysis    *JobAnalysis  `json:"job_analysis,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// ExtractResumeResponse represents the response from a resume extraction request
type ExtractResumeResponse struct {
	Success    bool       `json:"success"`
	ResumeInfo ResumeInfo `json:"resume_info"`
	RequestID  string     `json:"request_id"`
}

// AnalyzeJobResponse represents the response from a job analysis request
type AnalyzeJobResponse struct {
	Success     bool        `json:"success"`
	JobAnalysis JobAnalysis `json:"job_analysis"`
	RequestID   string      `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
