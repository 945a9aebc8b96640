package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<html><body>hi</body></html>"))
	assert.True(t, LooksLikeHTML("<div class=\"posting\">role</div>"))
	assert.True(t, LooksLikeHTML("line one<br>line two"))
	assert.False(t, LooksLikeHTML("Responsibilities: analyze data"))
	assert.False(t, LooksLikeHTML("salary < 100k and growth > 10%"))
}

func TestExtractPostingTextKeepsLineStructure(t *testing.T) {
	html := `<html><body>
<h1>Data Analyst</h1>
<p>Responsibilities: analyze data, build dashboards</p>
<p>About us: Acme Corp is a data company.</p>
</body></html>`

	cleaner := NewPostingCleaner()
	text, err := cleaner.ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Data Analyst")
	assert.Contains(t, text, "Responsibilities: analyze data, build dashboards")
	assert.Contains(t, text, "About us: Acme Corp is a data company.")
	assert.NotContains(t, text, "<p>")

	// Trigger phrases must stay on their own lines for the analysis stage
	assert.NotContains(t, text, "dashboards About us")
}

func TestExtractPostingTextStripsNonContent(t *testing.T) {
	html := `<html><head><title>Job</title><style>body{color:red}</style></head>
<body><script>alert("hi")</script><nav>Home | Jobs</nav>
<div>Build data pipelines</div>
<footer>Copyright Acme</footer></body></html>`

	cleaner := NewPostingCleaner()
	text, err := cleaner.ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Build data pipelines")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright Acme")
}

func TestExtractPostingTextCollapsesBlankRuns(t *testing.T) {
	html := "<div>one</div><div></div><div></div><div></div><div>two</div>"

	cleaner := NewPostingCleaner()
	text, err := cleaner.ExtractPostingText(html)
	require.NoError(t, err)

	assert.NotContains(t, text, "\n\n\n")
	assert.Contains(t, text, "one")
	assert.Contains(t, text, "two")
}
