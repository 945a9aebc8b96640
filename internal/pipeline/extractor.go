package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"covergen-utils/pkg/models"
)

// Extraction regexes. The phone and experience chains are ordered most
// specific first and the first pattern that yields any match wins; the
// ordering is a deliberate tie-break and must not be rearranged.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}\s*\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+of\s+experience`),
		regexp.MustCompile(`(?i)experience\s*[:\-]\s*(\d+)\+?\s*years?`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?(?:professional|work|industry)\s+experience`),
	}

	namePattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	zipPattern  = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
)

var streetKeywords = []string{
	"street", "st.", "avenue", "ave", "road", "rd.", "boulevard", "blvd",
	"lane", "ln.", "drive", "dr.", "court", "ct.", "suite", "apt",
}

// ExperienceFallback is returned when no "years of experience" pattern matches.
const ExperienceFallback = "experienced professional"

// WorkHistoryFallback is the placeholder entry used when no work history
// section can be located.
const WorkHistoryFallback = "Professional experience in previous roles"

// Extract parses raw resume text into a structured ResumeInfo. It is a pure
// function of the text and the optional profile override: non-empty override
// values are used verbatim and extraction for that field is skipped. Empty
// input yields an all-default record; Extract never fails.
func Extract(resumeText string, profile *models.ProfileOverride) models.ResumeInfo {
	lines := strings.Split(resumeText, "\n")

	info := models.ResumeInfo{
		Skills:      extractSkills(resumeText),
		Experience:  extractExperience(resumeText),
		Education:   extractEducation(lines),
		WorkHistory: extractWorkHistory(lines),
	}

	info.Name = overrideOr(profileName(profile), func() string { return extractName(resumeText, lines) })
	info.Email = overrideOr(profileEmail(profile), func() string { return emailPattern.FindString(resumeText) })
	info.Phone = overrideOr(profilePhone(profile), func() string { return extractPhone(resumeText) })
	info.Address = overrideOr(profileAddress(profile), func() string { return extractAddress(lines) })
	info.Summary = overrideOr(profileBio(profile), func() string { return extractSummary(lines) })

	return info
}

// overrideOr returns the override value when non-empty, otherwise the
// extracted value.
func overrideOr(override string, extract func() string) string {
	if override != "" {
		return override
	}
	return extract()
}

func profileName(p *models.ProfileOverride) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func profileEmail(p *models.ProfileOverride) string {
	if p == nil {
		return ""
	}
	return p.Email
}

func profilePhone(p *models.ProfileOverride) string {
	if p == nil {
		return ""
	}
	return p.Phone
}

func profileAddress(p *models.ProfileOverride) string {
	if p == nil {
		return ""
	}
	return p.Address
}

func profileBio(p *models.ProfileOverride) string {
	if p == nil {
		return ""
	}
	return p.Bio
}

// extractName takes the first non-empty line when it looks like a name
// (no digits or email markers), falling back to the first
// "Capitalized Capitalized" token anywhere in the text.
func extractName(resumeText string, lines []string) string {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !strings.Contains(line, "@") && !strings.ContainsAny(line, "0123456789") && len(line) <= 60 {
			return line
		}
		break
	}
	return namePattern.FindString(resumeText)
}

// extractPhone tries the ordered phone patterns and stops at the first one
// that matches anything.
func extractPhone(resumeText string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(resumeText); match != "" {
			return match
		}
	}
	return ""
}

// extractAddress returns the first line containing a street-type keyword or
// a postal-code-like token.
func extractAddress(lines []string) string {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range streetKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
		if zipPattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractSkills scans the fixed vocabulary against the resume text.
// Substring containment is deliberate: short entries like "R" can match
// inside unrelated words, and that imprecision is part of the contract.
func extractSkills(resumeText string) []string {
	lower := strings.ToLower(resumeText)
	skills := []string{}
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// extractExperience returns "<N> years of experience" from the first
// matching pattern, or the fixed fallback.
func extractExperience(resumeText string) string {
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(resumeText); m != nil {
			return fmt.Sprintf("%s years of experience", m[1])
		}
	}
	return ExperienceFallback
}

var educationKeywords = []string{
	"bachelor", "master", "phd", "ph.d", "b.s.", "m.s.", "b.a.", "m.a.",
	"mba", "associate degree", "degree", "university", "college",
	"institute", "diploma",
}

// extractEducation returns the first line containing an education keyword.
func extractEducation(lines []string) string {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range educationKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}
	return ""
}

// matchSectionHeader reports whether a trimmed line is exactly one of the
// given section headers, ignoring case and a trailing colon.
func matchSectionHeader(line string, keywords []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	trimmed = strings.TrimSuffix(trimmed, ":")
	for _, kw := range keywords {
		if trimmed == kw {
			return true
		}
	}
	return false
}

// extractWorkHistory collects position blocks from the experience section.
// Non-blank lines accumulate into the current block and a blank line
// flushes it; a different known section header ends the scan. Capped at
// the first 3 blocks, with a fixed placeholder when nothing is found.
func extractWorkHistory(lines []string) []string {
	var history []string
	var current []string
	inSection := false

	flush := func() {
		if len(current) > 0 {
			history = append(history, strings.Join(current, "; "))
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if !inSection {
			if matchSectionHeader(line, workHistoryHeaders) {
				inSection = true
			}
			continue
		}

		if matchSectionHeader(line, otherSectionHeads) {
			break
		}

		if line == "" {
			flush()
			continue
		}

		current = append(current, line)
	}
	flush()

	if len(history) > 3 {
		history = history[:3]
	}
	if len(history) == 0 {
		history = []string{WorkHistoryFallback}
	}
	return history
}

// extractSummary joins the non-blank lines following a summary-type header,
// stopping at a blank line or the next known section header.
func extractSummary(lines []string) string {
	var parts []string
	inSection := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if !inSection {
			if matchSectionHeader(line, summaryHeaders) {
				inSection = true
			}
			continue
		}

		if line == "" || matchSectionHeader(line, allSectionHeaders) {
			break
		}

		parts = append(parts, line)
	}

	return strings.Join(parts, " ")
}
