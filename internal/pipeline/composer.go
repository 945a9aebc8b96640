package pipeline

import (
	"strings"
	"time"

	"covergen-utils/pkg/models"
)

// Template style names accepted by Compose.
const (
	StyleProfessional = "professional"
	StyleModern       = "modern"
	StyleCreative     = "creative"
	StyleTraditional  = "traditional"
)

// Styles lists the accepted template style names.
var Styles = []string{StyleProfessional, StyleModern, StyleCreative, StyleTraditional}

// NormalizeStyle maps arbitrary input onto one of the four styles. Unknown
// or empty values are silently coerced to professional; bad style input is
// never an error.
func NormalizeStyle(style string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleModern:
		return StyleModern
	case StyleCreative:
		return StyleCreative
	case StyleTraditional:
		return StyleTraditional
	default:
		return StyleProfessional
	}
}

// NormalizeInstructions treats "none", "n/a" and blank strings
// (case-insensitive) as no special instructions.
func NormalizeInstructions(instructions string) string {
	trimmed := strings.TrimSpace(instructions)
	switch strings.ToLower(trimmed) {
	case "", "none", "n/a":
		return ""
	}
	return trimmed
}

// Compose assembles the final cover letter from the extracted resume, job
// metadata and analysis. now is the injected clock value used for the date
// stamp, so identical inputs always produce identical output. Pure string
// building; no I/O.
func Compose(info models.ResumeInfo, job models.JobDetails, analysis models.JobAnalysis, specialInstructions, style string, now time.Time) string {
	instructions := NormalizeInstructions(specialInstructions)

	switch NormalizeStyle(style) {
	case StyleModern:
		return composeModern(info, job, analysis, instructions, now)
	case StyleCreative:
		return composeCreative(info, job, analysis, instructions, now)
	case StyleTraditional:
		return composeTraditional(info, job, analysis, instructions)
	default:
		return composeProfessional(info, job, analysis, instructions, now)
	}
}

// letterDate renders the injected time as month/day/year
func letterDate(now time.Time) string {
	return now.Format("1/2/2006")
}

// joinWithAnd renders "A", "A and B" or "A, B and C"
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// firstN returns at most the first n items
func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// ensureSentence trims the text and guarantees terminal punctuation
func ensureSentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

// contactLine joins the available contact fields with " | "
func contactLine(info models.ResumeInfo) string {
	var parts []string
	if info.Email != "" {
		parts = append(parts, info.Email)
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	return strings.Join(parts, " | ")
}

// experienceClause phrases the experience field so it reads correctly both
// for "<N> years of experience" and the fixed fallback value.
func experienceClause(experience string) string {
	if experience == "" || experience == ExperienceFallback {
		return "as an experienced professional"
	}
	return "with " + experience
}

// signature renders the closing name/contact block, degrading to whatever
// contact information is available.
func signature(info models.ResumeInfo) string {
	contact := contactLine(info)
	switch {
	case info.Name != "" && contact != "":
		return info.Name + "\n" + contact
	case info.Name != "":
		return info.Name
	default:
		return contact
	}
}

// hasRealWorkHistory reports whether extraction found an actual experience
// section rather than the placeholder entry.
func hasRealWorkHistory(info models.ResumeInfo) bool {
	return len(info.WorkHistory) > 0 && info.WorkHistory[0] != WorkHistoryFallback
}
