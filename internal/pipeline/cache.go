package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"covergen-utils/pkg/models"
)

// extractionCache memoizes extraction results keyed by the resume text and
// any profile override. Extraction is deterministic, so a hit is always
// byte-for-byte equivalent to recomputing.
type extractionCache struct {
	mu      sync.RWMutex
	entries map[string]models.ResumeInfo
	maxSize int
}

func newExtractionCache(maxSize int) *extractionCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &extractionCache{
		entries: make(map[string]models.ResumeInfo),
		maxSize: maxSize,
	}
}

// cacheKey hashes the resume text together with every override field so that
// the same resume with a different profile never collides.
func cacheKey(resumeText string, profile *models.ProfileOverride) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	if profile != nil {
		for _, field := range []string{profile.Name, profile.Email, profile.Phone, profile.Address, profile.Bio} {
			h.Write([]byte{0})
			h.Write([]byte(field))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *extractionCache) get(key string) (models.ResumeInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.entries[key]
	return info, ok
}

// put stores a result, flushing the whole map when it reaches capacity.
func (c *extractionCache) put(key string, info models.ResumeInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]models.ResumeInfo)
	}
	c.entries[key] = info
}

func (c *extractionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
