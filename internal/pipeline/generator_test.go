package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covergen-utils/internal/config"
	"covergen-utils/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestGenerateLetterEndToEnd(t *testing.T) {
	gen := New(testConfig(t))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	req := &models.GenerateLetterRequest{
		ResumeText: sampleResume,
		Job: models.JobDetails{
			CompanyName:    "Acme Corp",
			JobTitle:       "Data Analyst",
			JobDescription: sampleJobDescription,
		},
	}

	letter, info, analysis := gen.GenerateLetter(req, now)

	assert.Equal(t, "Jane Roe", info.Name)
	assert.Equal(t, []string{"Python", "SQL"}, analysis.MatchedSkills)

	assert.Contains(t, letter, "Jane Roe")
	assert.Contains(t, letter, "Dear Hiring Manager,")
	assert.Contains(t, letter, "Data Analyst position at Acme Corp")
	assert.Contains(t, letter, "3/15/2024")
	assert.Contains(t, letter, "analyze data")
}

func TestGenerateLetterIdempotent(t *testing.T) {
	gen := New(testConfig(t))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	req := &models.GenerateLetterRequest{
		ResumeText: sampleResume,
		Job: models.JobDetails{
			CompanyName:    "Acme Corp",
			JobTitle:       "Data Analyst",
			JobDescription: sampleJobDescription,
		},
		TemplateStyle: StyleModern,
	}

	first, _, _ := gen.GenerateLetter(req, now)
	second, _, _ := gen.GenerateLetter(req, now)
	assert.Equal(t, first, second)
}

func TestGenerateLetterCleansHTMLPosting(t *testing.T) {
	gen := New(testConfig(t))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	req := &models.GenerateLetterRequest{
		ResumeText: "Jane Roe\nSkills: Python, SQL",
		Job: models.JobDetails{
			CompanyName:    "Acme Corp",
			JobTitle:       "Data Analyst",
			JobDescription: "<div>Responsibilities: analyze data, build dashboards, present findings</div><script>var x=1;</script>",
		},
	}

	letter, _, analysis := gen.GenerateLetter(req, now)

	assert.Equal(t, []string{"analyze data", "build dashboards", "present findings"}, analysis.KeyResponsibilities)
	assert.NotContains(t, letter, "<")
	assert.NotContains(t, letter, "script")
}

func TestAnalyzeJobMatchesHTMLAndPlainText(t *testing.T) {
	gen := New(testConfig(t))
	info := models.ResumeInfo{Skills: []string{"Python", "SQL"}}

	plain := gen.AnalyzeJob("Requirements: Python experience.\nResponsibilities: analyze data, build dashboards", info)
	html := gen.AnalyzeJob("<html><body><p>Requirements: Python experience.</p><p>Responsibilities: analyze data, build dashboards</p></body></html>", info)

	assert.Equal(t, plain, html)
}

func TestExtractResumeDefaultSkillsSubstitution(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.UseDefaultSkills = true
	gen := New(cfg)

	info := gen.ExtractResume("hello", nil)
	assert.Equal(t, DefaultSkills, info.Skills)
}

func TestExtractResumeDefaultSkillsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.UseDefaultSkills = false
	gen := New(cfg)

	info := gen.ExtractResume("hello", nil)
	assert.Empty(t, info.Skills)
}

func TestExtractResumeMemoization(t *testing.T) {
	gen := New(testConfig(t))

	first := gen.ExtractResume(sampleResume, nil)
	second := gen.ExtractResume(sampleResume, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.CacheSize())

	// A different profile is a different cache entry
	gen.ExtractResume(sampleResume, &models.ProfileOverride{Name: "Other Name"})
	assert.Equal(t, 2, gen.CacheSize())
}

func TestExtractResumeLengthCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.MaxResumeLength = 32
	cfg.Pipeline.UseDefaultSkills = false
	gen := New(cfg)

	// Python sits beyond the cap and must not be found
	text := strings.Repeat("x", 32) + "\nPython"
	info := gen.ExtractResume(text, nil)
	assert.Empty(t, info.Skills)
}

func TestGenerateLetterZeroData(t *testing.T) {
	gen := New(testConfig(t))
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	req := &models.GenerateLetterRequest{
		ResumeText: "",
		Job:        models.JobDetails{CompanyName: "Acme Corp", JobTitle: "Analyst"},
	}

	letter, info, _ := gen.GenerateLetter(req, now)

	// Empty resumes still pick up the configured default skills
	assert.Equal(t, DefaultSkills, info.Skills)
	assert.NotEmpty(t, letter)
	assert.NotContains(t, letter, "undefined")
	assert.NotContains(t, letter, "null")
}

func TestCacheKeyDistinguishesProfiles(t *testing.T) {
	base := cacheKey("resume", nil)
	withProfile := cacheKey("resume", &models.ProfileOverride{Name: "A"})
	otherProfile := cacheKey("resume", &models.ProfileOverride{Email: "A"})

	assert.NotEqual(t, base, withProfile)
	assert.NotEqual(t, withProfile, otherProfile)
}

func TestExtractionCacheFlushAtCapacity(t *testing.T) {
	c := newExtractionCache(2)

	c.put("a", models.ResumeInfo{Name: "a"})
	c.put("b", models.ResumeInfo{Name: "b"})
	// Third insert hits capacity and flushes before storing
	c.put("c", models.ResumeInfo{Name: "c"})

	assert.Equal(t, 1, c.len())
	_, ok := c.get("a")
	assert.False(t, ok)
	got, ok := c.get("c")
	require.True(t, ok)
	assert.Equal(t, "c", got.Name)
}
