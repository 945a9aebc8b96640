package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covergen-utils/pkg/models"
)

const sampleJobDescription = `We are building data products.
Requirements: Python, SQL, and Excel experience.
Responsibilities: analyze data, build dashboards, present findings.
About us: Acme Corp is a data company.`

func TestAnalyzeFullDescription(t *testing.T) {
	info := models.ResumeInfo{Skills: []string{"Python", "R", "SQL", "Statistics"}}

	analysis := Analyze(sampleJobDescription, info)

	assert.Equal(t, []string{"python", "sql", "excel"}, analysis.Requirements)
	assert.Equal(t, []string{"Python", "SQL"}, analysis.MatchedSkills)
	assert.Equal(t, []string{"analyze data", "build dashboards", "present findings"}, analysis.KeyResponsibilities)
	assert.Equal(t, "Acme Corp is a data company.", analysis.CompanyInsights)
}

func TestAnalyzeMatchedSkillsSubsetOfResumeSkills(t *testing.T) {
	info := models.ResumeInfo{Skills: []string{"Python", "Go", "Docker"}}

	analysis := Analyze(sampleJobDescription, info)

	for _, matched := range analysis.MatchedSkills {
		assert.Contains(t, info.Skills, matched)
	}
}

func TestMatchSkillsFallbackToFirstThree(t *testing.T) {
	skills := []string{"Cobol", "Fortran", "Ada", "Pascal"}

	matched := matchSkills(skills, []string{"python", "sql"})

	assert.Equal(t, []string{"Cobol", "Fortran", "Ada"}, matched)
}

func TestMatchSkillsNoSkillsNoFallback(t *testing.T) {
	assert.Empty(t, matchSkills(nil, []string{"python"}))
	assert.Empty(t, matchSkills([]string{}, nil))
}

func TestMatchSkillsCaseInsensitivePreservesResumeCasing(t *testing.T) {
	matched := matchSkills([]string{"PYTHON", "sql"}, []string{"python", "sql"})
	assert.Equal(t, []string{"PYTHON", "sql"}, matched)
}

func TestExtractResponsibilitiesTriggerOrder(t *testing.T) {
	// Both triggers present, the earlier chain entry wins
	text := "Responsibilities include: manage the roadmap, mentor junior staff.\nResponsibilities: something else entirely here."

	got := extractResponsibilities(text)

	assert.Equal(t, []string{"manage the roadmap", "mentor junior staff"}, got)
}

func TestExtractResponsibilitiesDropsShortFragments(t *testing.T) {
	text := "Duties include: lead, run weekly planning sessions, own the release process."

	got := extractResponsibilities(text)

	// "lead" is under the fragment length floor
	assert.Equal(t, []string{"run weekly planning sessions", "own the release process"}, got)
}

func TestExtractResponsibilitiesActionVerbFallback(t *testing.T) {
	text := "You would design scalable services. You would maintain the data platform. The office has snacks."

	got := extractResponsibilities(text)

	require.Len(t, got, 2)
	assert.Equal(t, "You would design scalable services", got[0])
	assert.Equal(t, "You would maintain the data platform", got[1])
}

func TestExtractResponsibilitiesCappedAtThree(t *testing.T) {
	text := "Responsibilities: first long fragment, second long fragment, third long fragment, fourth long fragment."

	got := extractResponsibilities(text)

	assert.Len(t, got, 3)
}

func TestExtractCompanyInsightsFallbacks(t *testing.T) {
	assert.Equal(t,
		"Acme is an organization focused on excellence in its field",
		extractCompanyInsights("Acme, hiring now for several roles"))

	assert.Equal(t,
		"The company is a respected organization in its field",
		extractCompanyInsights(""))
}

func TestAnalyzeEmptyDescription(t *testing.T) {
	analysis := Analyze("", models.ResumeInfo{Skills: []string{"Python"}})

	assert.Empty(t, analysis.Requirements)
	// No requirements found, the soft fallback still surfaces resume skills
	assert.Equal(t, []string{"Python"}, analysis.MatchedSkills)
	assert.Empty(t, analysis.KeyResponsibilities)
	assert.Equal(t, "The company is a respected organization in its field", analysis.CompanyInsights)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	info := models.ResumeInfo{Skills: []string{"Python", "SQL"}}
	first := Analyze(sampleJobDescription, info)
	second := Analyze(sampleJobDescription, info)
	assert.Equal(t, first, second)
}
