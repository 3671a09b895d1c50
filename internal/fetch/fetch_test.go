package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_ReturnsHTMLAndStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Backend Engineer</h1></body></html>`))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Backend Engineer</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_SendsConfiguredHeaders(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestURL_RejectsMalformedURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_NonOKStatusKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("posting expired"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	// The result still carries the response so callers can inspect it
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, result.HTML, "posting expired")

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_PrefersMainOverChrome(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Careers | About | Blog</nav>
			<main>
				<h1>Backend Engineer</h1>
				<p>Own the posting ingestion pipeline end to end.</p>
			</main>
			<footer>Acme Corp, all rights reserved</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "ingestion pipeline")
	assert.NotContains(t, text, "Careers | About")
	assert.NotContains(t, text, "all rights reserved")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Minimal posting with no landmarks.</div></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Minimal posting with no landmarks")
}

func TestExtractMainText_JobSelectorsSkipSidebars(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Other openings at Acme</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years building services in Go</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years building services in Go")
	assert.NotContains(t, text, "Other openings")
}

func TestExtractMainText_NoiseSelectorsStripApplyForm(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="job-description">
				<p>Design storage for resume documents.</p>
				<div class="posting-apply">Apply now with your resume</div>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), ".posting-apply")
	require.NoError(t, err)
	assert.Contains(t, text, "Design storage")
	assert.NotContains(t, text, "Apply now")
}

func TestSelectorSets(t *testing.T) {
	general := DefaultTextSelectors()
	assert.Contains(t, general, "main")
	assert.Contains(t, general, "article")

	posting := JobPostingSelectors()
	assert.Contains(t, posting, ".job-description")
	assert.Contains(t, posting, "#job-content")
}
