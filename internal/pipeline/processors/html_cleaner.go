package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PostingCleaner converts HTML job postings into the plain text the analysis
// stage expects. Block-level boundaries become newlines so that trigger
// phrases like "Responsibilities:" keep their own lines.
type PostingCleaner struct {
	removeTags     []string
	blockSelectors []string
}

func NewPostingCleaner() *PostingCleaner {
	return &PostingCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base",
		},
		blockSelectors: []string{
			"p", "div", "li", "br", "tr",
			"h1", "h2", "h3", "h4", "h5", "h6",
		},
	}
}

var (
	htmlTagPattern = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|ul|ol|li|span|h[1-6])[\s>/]`)

	spacesPattern     = regexp.MustCompile(`[ \t]+`)
	blankLinesPattern = regexp.MustCompile(`\n{3,}`)
)

// LooksLikeHTML reports whether a job description appears to be raw markup
// rather than plain text.
func LooksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// ExtractPostingText parses the markup, strips non-content elements and
// returns the posting as newline-separated plain text. Input that fails to
// parse is returned unchanged.
func (pc *PostingCleaner) ExtractPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html, err
	}

	for _, tag := range pc.removeTags {
		doc.Find(tag).Remove()
	}

	// Append a newline sentinel after each block element so the flattened
	// text keeps its line structure.
	for _, selector := range pc.blockSelectors {
		doc.Find(selector).AfterHtml("\n")
	}

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return pc.normalizeText(text), nil
}

// normalizeText collapses horizontal whitespace per line and caps blank runs
// at a single empty line.
func (pc *PostingCleaner) normalizeText(text string) string {
	text = spacesPattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankLinesPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
