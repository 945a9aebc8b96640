package pipeline

import (
	"time"

	"covergen-utils/internal/config"
	"covergen-utils/internal/pipeline/processors"
	"covergen-utils/pkg/models"
)

// Generator orchestrates the three pipeline stages. It owns the extraction
// cache and applies the configured policies (default skills, resume length
// cap) on top of the pure stage functions.
type Generator struct {
	cfg     *config.Config
	cache   *extractionCache
	cleaner *processors.PostingCleaner
}

func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:     cfg,
		cache:   newExtractionCache(cfg.Pipeline.ExtractionCacheSize),
		cleaner: processors.NewPostingCleaner(),
	}
}

// ExtractResume runs extraction with memoization. When the resume yields no
// recognizable skills and default skills are enabled, the configured
// fallback set is substituted so downstream matching has something to work
// with.
func (g *Generator) ExtractResume(resumeText string, profile *models.ProfileOverride) models.ResumeInfo {
	if max := g.cfg.Pipeline.MaxResumeLength; max > 0 && len(resumeText) > max {
		resumeText = resumeText[:max]
	}

	key := cacheKey(resumeText, profile)
	if info, ok := g.cache.get(key); ok {
		return info
	}

	info := Extract(resumeText, profile)
	if len(info.Skills) == 0 && g.cfg.Pipeline.UseDefaultSkills {
		info.Skills = append([]string(nil), DefaultSkills...)
	}

	g.cache.put(key, info)
	return info
}

// AnalyzeJob runs the analysis stage against an already extracted resume.
// HTML postings are flattened to plain text first, so every entry point sees
// the same description regardless of how the posting was pasted.
func (g *Generator) AnalyzeJob(jobDescription string, info models.ResumeInfo) models.JobAnalysis {
	if processors.LooksLikeHTML(jobDescription) {
		if cleaned, err := g.cleaner.ExtractPostingText(jobDescription); err == nil {
			jobDescription = cleaned
		}
	}
	return Analyze(jobDescription, info)
}

// GenerateLetter runs the full pipeline for one request. The caller supplies
// the clock so letters are reproducible in tests.
func (g *Generator) GenerateLetter(req *models.GenerateLetterRequest, now time.Time) (string, models.ResumeInfo, models.JobAnalysis) {
	info := g.ExtractResume(req.ResumeText, req.Profile)
	analysis := g.AnalyzeJob(req.Job.JobDescription, info)
	letter := Compose(info, req.Job, analysis, req.SpecialInstructions, req.TemplateStyle, now)
	return letter, info, analysis
}

// CacheSize reports the number of memoized extractions. Surfaced by the
// status endpoint.
func (g *Generator) CacheSize() int {
	return g.cache.len()
}
