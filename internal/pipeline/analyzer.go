package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"covergen-utils/pkg/models"
)

// Trigger-phrase chains for the analysis stage. Tried strictly in order;
// the first pattern that matches anywhere in the text wins.
var (
	responsibilityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)responsibilities\s+include:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)you\s+will:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)duties\s+include:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)responsibilities:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)what\s+you'll\s+do:\s*([^\n]+)`),
	}

	companyInsightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)about\s+us:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)about\s+the\s+company:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)our\s+company:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)we\s+are\s+([^.\n]+)`),
		regexp.MustCompile(`(?i)company\s+overview:?\s*([^\n]+)`),
	}

	sentenceSplit = regexp.MustCompile(`[.!?]`)
	fragmentSplit = regexp.MustCompile(`[,;]`)
)

const maxResponsibilities = 3
const matchedSkillsFallbackCount = 3

// Analyze compares a job description against an extracted resume and
// produces a JobAnalysis. Pure function: same inputs, same output. Empty
// descriptions degrade to empty sequences plus a generic company insight.
func Analyze(jobDescription string, info models.ResumeInfo) models.JobAnalysis {
	requirements := extractRequirements(jobDescription)

	return models.JobAnalysis{
		Requirements:        requirements,
		MatchedSkills:       matchSkills(info.Skills, requirements),
		KeyResponsibilities: extractResponsibilities(jobDescription),
		CompanyInsights:     extractCompanyInsights(jobDescription),
	}
}

// extractRequirements scans the requirement vocabulary against the
// description, same substring technique as resume skills.
func extractRequirements(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	requirements := []string{}
	for _, req := range requirementVocabulary {
		if strings.Contains(lower, req) {
			requirements = append(requirements, req)
		}
	}
	return requirements
}

// matchSkills intersects resume skills with the found requirements,
// case-insensitively, preserving resume skill casing and order. When the
// literal intersection is empty the first 3 resume skills are returned as a
// soft fallback; downstream templates assume matchedSkills is usually
// non-empty.
func matchSkills(skills, requirements []string) []string {
	reqSet := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		reqSet[strings.ToLower(req)] = true
	}

	matched := []string{}
	for _, skill := range skills {
		if reqSet[strings.ToLower(skill)] {
			matched = append(matched, skill)
		}
	}

	if len(matched) == 0 && len(skills) > 0 {
		n := matchedSkillsFallbackCount
		if n > len(skills) {
			n = len(skills)
		}
		matched = append(matched, skills[:n]...)
	}

	return matched
}

// extractResponsibilities tries the trigger phrases in order; the first
// match is split on commas and semicolons keeping fragments longer than 10
// characters. With no trigger match it falls back to sentences containing
// an action verb. Capped at 3 entries either way.
func extractResponsibilities(jobDescription string) []string {
	responsibilities := []string{}

	for _, pattern := range responsibilityPatterns {
		m := pattern.FindStringSubmatch(jobDescription)
		if m == nil {
			continue
		}
		for _, fragment := range fragmentSplit.Split(m[1], -1) {
			fragment = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(fragment), "."))
			if len(fragment) > 10 {
				responsibilities = append(responsibilities, fragment)
			}
		}
		break
	}

	if len(responsibilities) == 0 {
		for _, sentence := range sentenceSplit.Split(jobDescription, -1) {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			lower := strings.ToLower(sentence)
			for _, verb := range actionVerbs {
				if strings.Contains(lower, verb) {
					responsibilities = append(responsibilities, sentence)
					break
				}
			}
			if len(responsibilities) >= maxResponsibilities {
				break
			}
		}
	}

	if len(responsibilities) > maxResponsibilities {
		responsibilities = responsibilities[:maxResponsibilities]
	}
	return responsibilities
}

// extractCompanyInsights returns the first captured group from the first
// insight trigger that matches anywhere in the text, or a generated
// fallback sentence referencing the description's first word.
func extractCompanyInsights(jobDescription string) string {
	for _, pattern := range companyInsightPatterns {
		if m := pattern.FindStringSubmatch(jobDescription); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	words := strings.Fields(jobDescription)
	if len(words) == 0 {
		return "The company is a respected organization in its field"
	}
	return fmt.Sprintf("%s is an organization focused on excellence in its field", strings.Trim(words[0], ".,;:"))
}
