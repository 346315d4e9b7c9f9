// Package scholar scrapes Google Scholar profile pages into structured
// records. Scraping a non-contractual external site is best-effort: the fetch
// layer retries with backoff and detects block pages, while every field
// extractor degrades independently so a layout change in one widget never
// poisons the rest of the profile.
package scholar

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/fetch"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// DefaultBaseURL is the Google Scholar origin.
const DefaultBaseURL = "https://scholar.google.com"

// Retry policy for profile fetches.
const (
	maxFetchAttempts = 3
	rateLimitBackoff = 5 * time.Second
	retryBackoff     = 2 * time.Second
	courtesyDelay    = 1 * time.Second
)

// minPlausibleBodySize flags implausibly short responses as block pages.
const minPlausibleBodySize = 1000

// blockMarkers are substrings Google serves on its interstitial block pages.
var blockMarkers = []string{
	"Our systems have detected unusual traffic",
	"blocked",
}

// Config configures a Scraper.
type Config struct {
	BaseURL        string         // Defaults to DefaultBaseURL.
	Fetch          *fetch.Options // Defaults to fetch.DefaultOptions().
	UseBrowser     bool           // Render via headless browser when blocked.
	BrowserTimeout time.Duration
	Sleep          func(time.Duration) // Defaults to time.Sleep.
}

// Scraper fetches and parses Google Scholar profiles.
type Scraper struct {
	baseURL        string
	fetchOpts      *fetch.Options
	useBrowser     bool
	browserTimeout time.Duration
	sleep          func(time.Duration)
}

// NewScraper creates a Scraper with defaults filled in.
func NewScraper(cfg Config) *Scraper {
	s := &Scraper{
		baseURL:        cfg.BaseURL,
		fetchOpts:      cfg.Fetch,
		useBrowser:     cfg.UseBrowser,
		browserTimeout: cfg.BrowserTimeout,
		sleep:          cfg.Sleep,
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.fetchOpts == nil {
		s.fetchOpts = fetch.DefaultOptions()
	}
	if s.browserTimeout == 0 {
		s.browserTimeout = 60 * time.Second
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	return s
}

// FetchProfile retrieves and parses a Google Scholar profile.
//
// Errors: *InvalidURLError when the URL carries no user= parameter (no
// network call is made), *FetchError after exhausting retries, *BlockedError
// when Scholar serves a block page, *ProfileUnresolvableError when the page
// parsed but no name could be resolved.
func (s *Scraper) FetchProfile(ctx context.Context, profileURL string) (*types.ScholarProfile, error) {
	userID, ok := ExtractUserID(profileURL)
	if !ok {
		return nil, &InvalidURLError{URL: profileURL}
	}

	url := s.baseURL + "/citations?user=" + userID + "&hl=en"

	// Courtesy delay so bursts of uploads don't hammer Scholar.
	s.sleep(courtesyDelay)

	body, err := s.fetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	if s.isBlockPage(body) {
		body, err = s.browserFallback(ctx, url, body)
		if err != nil {
			return nil, err
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: url, Attempts: 1, Cause: err}
	}

	profile := extractProfile(doc)
	if profile.Name == "" || profile.Name == types.NameNotFound {
		return nil, &ProfileUnresolvableError{URL: profileURL}
	}

	return profile, nil
}

// fetchWithRetry fetches the URL with up to maxFetchAttempts attempts,
// backing off longer on HTTP 429 than on other failures.
func (s *Scraper) fetchWithRetry(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		result, err := fetch.URL(ctx, url, s.fetchOpts)
		if err == nil && result.StatusCode == http.StatusOK {
			return result.Body, nil
		}

		backoff := retryBackoff
		if err != nil {
			lastErr = err
		} else {
			lastErr = &fetch.Error{URL: url, Message: http.StatusText(result.StatusCode)}
			if result.StatusCode == http.StatusTooManyRequests {
				backoff = rateLimitBackoff
			}
		}

		log.Printf("[SCHOLAR] fetch attempt %d/%d failed: %v", attempt, maxFetchAttempts, lastErr)
		if attempt < maxFetchAttempts {
			s.sleep(backoff)
		}
	}
	return "", &FetchError{URL: url, Attempts: maxFetchAttempts, Cause: lastErr}
}

// isBlockPage reports whether the body is a Scholar block page or too short
// to plausibly be a profile.
func (s *Scraper) isBlockPage(body string) bool {
	if len(body) < minPlausibleBodySize {
		return true
	}
	for _, marker := range blockMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

// browserFallback re-fetches a blocked page through a headless browser when
// enabled. Returns *BlockedError when disabled or when the rendered page is
// still a block page.
func (s *Scraper) browserFallback(ctx context.Context, url, _ string) (string, error) {
	if !s.useBrowser {
		return "", &BlockedError{URL: url}
	}

	log.Printf("[SCHOLAR] block page detected, retrying with headless browser: %s", url)
	rendered, err := fetch.WithBrowser(ctx, url, s.browserTimeout)
	if err != nil || s.isBlockPage(rendered) {
		return "", &BlockedError{URL: url}
	}
	return rendered, nil
}
