package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covergen-utils/pkg/models"
)

func TestExtractResumeHandler(t *testing.T) {
	_, gen := testGenerator(t)
	handler := ExtractResumeHandler(gen)

	body := `{"resume_text": "Jane Roe\njane@example.com\n(555) 111-2222\nSkills: Python, SQL"}`

	rec := postJSON(t, handler, "/api/v1/resume/extract", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExtractResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Jane Roe", resp.ResumeInfo.Name)
	assert.Equal(t, "jane@example.com", resp.ResumeInfo.Email)
	assert.Equal(t, "(555) 111-2222", resp.ResumeInfo.Phone)
	assert.Contains(t, resp.ResumeInfo.Skills, "Python")
	assert.Contains(t, resp.ResumeInfo.Skills, "SQL")
}

func TestExtractResumeHandlerMissingText(t *testing.T) {
	_, gen := testGenerator(t)
	handler := ExtractResumeHandler(gen)

	rec := postJSON(t, handler, "/api/v1/resume/extract", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeJobHandlerPlainText(t *testing.T) {
	_, gen := testGenerator(t)
	handler := AnalyzeJobHandler(gen)

	body := `{
		"job_description": "Requirements: Python and SQL.\nResponsibilities: analyze data, build dashboards, present findings.",
		"resume_text": "Skills: Python, SQL"
	}`

	rec := postJSON(t, handler, "/api/v1/jobs/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Contains(t, resp.JobAnalysis.Requirements, "python")
	assert.Contains(t, resp.JobAnalysis.Requirements, "sql")
	assert.Contains(t, resp.JobAnalysis.MatchedSkills, "Python")
	assert.Len(t, resp.JobAnalysis.KeyResponsibilities, 3)
}

func TestAnalyzeJobHandlerPrefersResumeInfo(t *testing.T) {
	_, gen := testGenerator(t)
	handler := AnalyzeJobHandler(gen)

	// resume_info wins over resume_text when both are present
	body := `{
		"job_description": "Requirements: Python.",
		"resume_text": "Skills: SQL",
		"resume_info": {"skills": ["Python"]}
	}`

	rec := postJSON(t, handler, "/api/v1/jobs/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Python"}, resp.JobAnalysis.MatchedSkills)
}

func TestAnalyzeJobHandlerHTMLPosting(t *testing.T) {
	_, gen := testGenerator(t)
	handler := AnalyzeJobHandler(gen)

	body := `{
		"job_description": "<html><body><p>Requirements: Python experience.</p><p>Responsibilities: analyze data, build dashboards</p></body></html>"
	}`

	rec := postJSON(t, handler, "/api/v1/jobs/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.JobAnalysis.Requirements, "python")
	assert.Contains(t, resp.JobAnalysis.KeyResponsibilities, "analyze data")
}

func TestAnalyzeJobHandlerMissingDescription(t *testing.T) {
	_, gen := testGenerator(t)
	handler := AnalyzeJobHandler(gen)

	rec := postJSON(t, handler, "/api/v1/jobs/analyze", `{"resume_text": "Skills: SQL"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestStatusHandlerReportsCacheEntries(t *testing.T) {
	_, gen := testGenerator(t)
	gen.ExtractResume("Skills: Python", nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, StatusHandler(gen, nil)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "operational", resp.Status)
	assert.Equal(t, "operational", resp.Checks["extraction_cache"])
	assert.Equal(t, "1", resp.Checks["extraction_cache_entries"])
}

func TestLivenessHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, LivenessHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
}
