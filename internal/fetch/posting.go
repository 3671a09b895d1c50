// Package fetch - posting.go ties platform detection, caching, and browser
// fallback together into a single job posting fetcher.
package fetch

import (
	"context"
	"log"
	"time"
)

// DefaultPostingCacheTTL bounds how long a fetched posting stays fresh
const DefaultPostingCacheTTL = 7 * 24 * time.Hour

// CachedPage is a previously fetched posting page
type CachedPage struct {
	URL        string
	HTML       string
	Text       string
	StatusCode int
	FetchedAt  time.Time
}

// PageStore persists fetched pages between runs. FreshPage returns nil with
// no error on a cache miss.
type PageStore interface {
	FreshPage(ctx context.Context, url string, ttl time.Duration) (*CachedPage, error)
	SavePage(ctx context.Context, page *CachedPage) error
}

// PostingResult is the outcome of a job posting fetch
type PostingResult struct {
	URL       string
	Text      string
	Platform  Platform
	FromCache bool
	Rendered  bool // whether a headless browser produced the HTML
}

// PostingFetcher fetches job postings with platform-aware extraction. A nil
// store disables caching; UseBrowser enables headless rendering when plain
// HTTP yields too little text.
type PostingFetcher struct {
	Store          PageStore
	Options        *Options
	CacheTTL       time.Duration
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
}

// NewPostingFetcher creates a fetcher with default options
func NewPostingFetcher(store PageStore) *PostingFetcher {
	return &PostingFetcher{
		Store:          store,
		Options:        DefaultOptions(),
		CacheTTL:       DefaultPostingCacheTTL,
		BrowserTimeout: 30 * time.Second,
	}
}

// Fetch retrieves the posting at urlStr and extracts its main text using
// selectors for the detected job board platform
func (f *PostingFetcher) Fetch(ctx context.Context, urlStr string) (*PostingResult, error) {
	platform := DetectPlatform(urlStr)

	if f.Store != nil {
		cached, err := f.Store.FreshPage(ctx, urlStr, f.cacheTTL())
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "cache lookup failed", Cause: err}
		}
		if cached != nil {
			return &PostingResult{
				URL:       urlStr,
				Text:      cached.Text,
				Platform:  platform,
				FromCache: true,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.Options)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	text, err := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	rendered := false
	if ShouldUseBrowser(text) && f.UseBrowser {
		if f.Verbose {
			log.Printf("[FETCH] Sparse content (%d chars), rendering with browser: %s", len(text), urlStr)
		}
		renderedHTML, berr := WithBrowser(ctx, urlStr, f.BrowserTimeout, f.Verbose)
		if berr == nil {
			if btext, terr := ExtractMainText(renderedHTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...); terr == nil && len(btext) > len(text) {
				html, text = renderedHTML, btext
				rendered = true
			}
		} else if f.Verbose {
			log.Printf("[FETCH] Browser fallback failed, keeping HTTP content: %v", berr)
		}
	}

	if f.Store != nil {
		page := &CachedPage{
			URL:        urlStr,
			HTML:       html,
			Text:       text,
			StatusCode: result.StatusCode,
			FetchedAt:  time.Now(),
		}
		// The fetch succeeded; a cache write failure is not fatal
		if serr := f.Store.SavePage(ctx, page); serr != nil && f.Verbose {
			log.Printf("[FETCH] Failed to cache page: %v", serr)
		}
	}

	return &PostingResult{
		URL:      urlStr,
		Text:     text,
		Platform: platform,
		Rendered: rendered,
	}, nil
}

func (f *PostingFetcher) cacheTTL() time.Duration {
	if f.CacheTTL > 0 {
		return f.CacheTTL
	}
	return DefaultPostingCacheTTL
}
