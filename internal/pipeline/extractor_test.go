package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covergen-utils/pkg/models"
)

const sampleResume = `Jane Roe
jane.roe@example.com
(555) 111-2222

SUMMARY
Analytical problem solver.

EXPERIENCE
Data Analyst at Acme Corp
Built dashboards

EDUCATION
B.S. in Statistics, State University

SKILLS
Python, SQL, R`

func TestExtractFullResume(t *testing.T) {
	info := Extract(sampleResume, nil)

	assert.Equal(t, "Jane Roe", info.Name)
	assert.Equal(t, "jane.roe@example.com", info.Email)
	assert.Equal(t, "(555) 111-2222", info.Phone)
	assert.Equal(t, "Analytical problem solver.", info.Summary)
	assert.Equal(t, "B.S. in Statistics, State University", info.Education)

	require.Len(t, info.WorkHistory, 1)
	assert.Equal(t, "Data Analyst at Acme Corp; Built dashboards", info.WorkHistory[0])

	// Skill output follows vocabulary order, not appearance order. "R" is a
	// substring hit and "Statistics" comes from the education line.
	assert.Equal(t, []string{"Python", "R", "SQL", "Statistics"}, info.Skills)
}

func TestExtractEmptyInput(t *testing.T) {
	info := Extract("", nil)

	assert.Empty(t, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.Address)
	assert.Empty(t, info.Education)
	assert.Empty(t, info.Summary)
	assert.Empty(t, info.Skills)
	assert.Equal(t, ExperienceFallback, info.Experience)
	assert.Equal(t, []string{WorkHistoryFallback}, info.WorkHistory)
}

func TestExtractIsDeterministic(t *testing.T) {
	first := Extract(sampleResume, nil)
	second := Extract(sampleResume, nil)
	assert.Equal(t, first, second)
}

func TestExtractProfileOverrideWins(t *testing.T) {
	profile := &models.ProfileOverride{
		Name:  "Override Name",
		Email: "override@example.com",
		Bio:   "Override bio.",
	}

	info := Extract(sampleResume, profile)

	assert.Equal(t, "Override Name", info.Name)
	assert.Equal(t, "override@example.com", info.Email)
	assert.Equal(t, "Override bio.", info.Summary)
	// Fields without an override still come from extraction
	assert.Equal(t, "(555) 111-2222", info.Phone)
}

func TestExtractNameFallsBackToPattern(t *testing.T) {
	// First line has digits, so the capitalized-pair fallback applies
	text := "12345\nprepared for John Smith\n"
	info := Extract(text, nil)
	assert.Equal(t, "John Smith", info.Name)
}

func TestExtractPhoneOrderedFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"country code with parens", "call +1 (555) 123-4567 now", "+1 (555) 123-4567"},
		{"parens only", "call (555) 123-4567 now", "(555) 123-4567"},
		{"dashed", "call 555-123-4567 now", "555-123-4567"},
		{"bare ten digits", "call 5551234567 now", "5551234567"},
		{"no phone", "call me sometime", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "I have 5 years of experience in data", "5 years of experience"},
		{"plus sign", "7+ years of experience", "7 years of experience"},
		{"labelled", "Experience: 3 years", "3 years of experience"},
		{"professional", "10 years professional experience", "10 years of experience"},
		{"absent", "a seasoned engineer", ExperienceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExperience(tt.text))
		})
	}
}

func TestExtractAddress(t *testing.T) {
	lines := []string{"Jane Roe", "42 Oak Street, Springfield", "jane@example.com"}
	assert.Equal(t, "42 Oak Street, Springfield", extractAddress(lines))

	zipLines := []string{"Jane Roe", "Springfield, IL 62704"}
	assert.Equal(t, "Springfield, IL 62704", extractAddress(zipLines))

	assert.Empty(t, extractAddress([]string{"Jane Roe", "jane@example.com"}))
}

func TestMatchSectionHeaderExactOnly(t *testing.T) {
	assert.True(t, matchSectionHeader("EXPERIENCE", workHistoryHeaders))
	assert.True(t, matchSectionHeader("  Work History:  ", workHistoryHeaders))
	// Prose mentioning the word is not a header
	assert.False(t, matchSectionHeader("my experience includes Go", workHistoryHeaders))
}

func TestExtractWorkHistoryCapsAtThree(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"Role One at A",
		"",
		"Role Two at B",
		"",
		"Role Three at C",
		"",
		"Role Four at D",
	}

	history := extractWorkHistory(lines)
	require.Len(t, history, 3)
	assert.Equal(t, "Role One at A", history[0])
	assert.Equal(t, "Role Three at C", history[2])
}

func TestExtractSummaryStopsAtNextSection(t *testing.T) {
	lines := []string{
		"PROFILE",
		"Line one.",
		"Line two.",
		"EXPERIENCE",
		"should not appear",
	}

	assert.Equal(t, "Line one. Line two.", extractSummary(lines))
}
