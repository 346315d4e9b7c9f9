package scholar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// profileHTML builds a fixture mimicking a Scholar profile page. The hidden
// padding keeps it above the short-body block heuristic.
func profileHTML() string {
	var sb strings.Builder
	sb.WriteString(`<html><head><title>Jane Researcher - Google Scholar</title></head><body>`)
	sb.WriteString(`<div id="gsc_prf_in">Jane Researcher</div>`)
	sb.WriteString(`<div class="gsc_prf_il">Professor of Computer Science, Example University</div>`)
	sb.WriteString(`<div class="gsc_prf_il">Verified email at example.edu</div>`)
	sb.WriteString(`<div id="gsc_prf_int"><a class="gs_ibl">Machine Learning</a><a class="gs_ibl">Computer Vision</a></div>`)
	sb.WriteString(`<table id="gsc_rsb_st">`)
	sb.WriteString(`<tr><td>Citations</td><td>1,234</td></tr>`)
	sb.WriteString(`<tr><td>h-index</td><td>18</td></tr>`)
	sb.WriteString(`<tr><td>i10-index</td><td>25</td></tr>`)
	sb.WriteString(`</table>`)
	sb.WriteString(`<table><tr class="gsc_a_tr">`)
	sb.WriteString(`<td><a class="gsc_a_at">Deep Learning for Protein Folding</a>`)
	sb.WriteString(`<div class="gs_gray">J Researcher, A Colleague - Journal of Computational Biology</div></td>`)
	sb.WriteString(`<td class="gsc_a_c"><a class="gs_ibl">321</a></td>`)
	sb.WriteString(`<td class="gsc_a_y"><span class="gs_ibl">2021</span></td>`)
	sb.WriteString(`</tr><tr class="gsc_a_tr">`)
	sb.WriteString(`<td><a class="gsc_a_at">Graph Methods for Sequence Alignment</a></td>`)
	sb.WriteString(`<td class="gsc_a_c"><a class="gs_ibl"></a></td>`)
	sb.WriteString(`<td class="gsc_a_y"><span class="gs_ibl"></span></td>`)
	sb.WriteString(`</tr></table>`)
	sb.WriteString(`<div style="display:none">` + strings.Repeat("p", 1200) + `</div>`)
	sb.WriteString(`</body></html>`)
	return sb.String()
}

// newTestScraper points a scraper at a test server and records sleeps instead
// of waiting them out.
func newTestScraper(baseURL string) (*Scraper, *[]time.Duration) {
	slept := &[]time.Duration{}
	s := NewScraper(Config{
		BaseURL: baseURL,
		Sleep:   func(d time.Duration) { *slept = append(*slept, d) },
	})
	return s, slept
}

const testProfileURL = "https://scholar.google.com/citations?user=ABC123&hl=en"

func TestIsValidProfileURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://scholar.google.com/citations?user=ABC123", true},
		{"https://scholar.google.co.uk/citations?user=ABC123&hl=en", true},
		{"https://scholar.google.de/citations?hl=de&user=xyz", true},
		{"https://scholar.google.com/citations", false},
		{"https://example.com/citations?user=ABC123", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidProfileURL(tt.url), "url: %s", tt.url)
	}
}

func TestExtractUserID(t *testing.T) {
	id, ok := ExtractUserID("https://scholar.google.com/citations?user=ABC123&hl=en")
	require.True(t, ok)
	assert.Equal(t, "ABC123", id)

	_, ok = ExtractUserID("https://scholar.google.com/citations")
	assert.False(t, ok)
}

func TestFetchProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ABC123", r.URL.Query().Get("user"))
		_, _ = w.Write([]byte(profileHTML()))
	}))
	defer srv.Close()

	scraper, _ := newTestScraper(srv.URL)
	profile, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.NoError(t, err)

	assert.Equal(t, "Jane Researcher", profile.Name)
	assert.Equal(t, "Professor of Computer Science, Example University", profile.Affiliation)
	assert.Equal(t, "example.edu", profile.Email)
	assert.Equal(t, 1234, profile.TotalCitations)
	assert.Equal(t, 18, profile.HIndex)
	assert.Equal(t, 25, profile.I10Index)
	assert.Equal(t, []string{"Machine Learning", "Computer Vision"}, profile.ResearchInterests)

	require.Len(t, profile.Publications, 2)
	first := profile.Publications[0]
	assert.Equal(t, "Deep Learning for Protein Folding", first.Title)
	assert.Equal(t, "J Researcher, A Colleague", first.Authors)
	assert.Equal(t, "Journal of Computational Biology", first.Journal)
	assert.Equal(t, "2021", first.Year)
	assert.Equal(t, 321, first.Citations)

	// The second row has no gray line or year; sentinels fill in.
	second := profile.Publications[1]
	assert.Equal(t, types.AuthorsNotSpecified, second.Authors)
	assert.Equal(t, types.JournalNotSpecified, second.Journal)
	assert.Equal(t, types.YearNotSpecified, second.Year)
	assert.Equal(t, 0, second.Citations)
}

func TestFetchProfile_InvalidURL(t *testing.T) {
	scraper, slept := newTestScraper("http://127.0.0.1:0")
	_, err := scraper.FetchProfile(context.Background(), "https://scholar.google.com/citations")
	require.Error(t, err)

	var invalid *InvalidURLError
	assert.ErrorAs(t, err, &invalid)
	// Rejected before any network activity, so not even the courtesy delay ran.
	assert.Empty(t, *slept)
}

func TestFetchProfile_RetriesOnRateLimit(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(profileHTML()))
	}))
	defer srv.Close()

	scraper, slept := newTestScraper(srv.URL)
	profile, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.NoError(t, err)
	assert.Equal(t, "Jane Researcher", profile.Name)
	assert.Equal(t, 3, requests)

	// Courtesy delay plus two rate-limit backoffs.
	assert.Equal(t, []time.Duration{courtesyDelay, rateLimitBackoff, rateLimitBackoff}, *slept)
}

func TestFetchProfile_ExhaustsRetries(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	scraper, _ := newTestScraper(srv.URL)
	_, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, maxFetchAttempts, fetchErr.Attempts)
	assert.Equal(t, maxFetchAttempts, requests)
}

func TestFetchProfile_BlockPageDetected(t *testing.T) {
	blockBody := "<html><body>Our systems have detected unusual traffic" +
		strings.Repeat(" from your network", 100) + "</body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(blockBody))
	}))
	defer srv.Close()

	scraper, _ := newTestScraper(srv.URL)
	_, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.Error(t, err)

	var blocked *BlockedError
	assert.ErrorAs(t, err, &blocked)
}

func TestFetchProfile_ShortBodyTreatedAsBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>stub</body></html>"))
	}))
	defer srv.Close()

	scraper, _ := newTestScraper(srv.URL)
	_, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.Error(t, err)

	var blocked *BlockedError
	assert.ErrorAs(t, err, &blocked)
}

func TestFetchProfile_UnresolvableProfile(t *testing.T) {
	// A large, non-block page with no profile name widget.
	body := "<html><body><div>" + strings.Repeat("lorem ipsum ", 150) + "</div></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	scraper, _ := newTestScraper(srv.URL)
	_, err := scraper.FetchProfile(context.Background(), testProfileURL)
	require.Error(t, err)

	var unresolvable *ProfileUnresolvableError
	assert.ErrorAs(t, err, &unresolvable)
}

func TestFallbackProfile(t *testing.T) {
	profile := FallbackProfile()

	assert.Equal(t, "Scholar Profile", profile.Name)
	assert.Equal(t, 0, profile.TotalCitations)
	assert.NotEmpty(t, profile.ResearchInterests)
	require.Len(t, profile.Publications, 1)
	assert.Contains(t, profile.Publications[0].Title, "temporarily unavailable")
	assert.NotEmpty(t, FallbackWarning)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1234", 1234},
		{"1,234", 1234},
		{" 42 ", 42},
		{"", 0},
		{"n/a", 0},
		{"-5", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseCount(tt.input), "input: %q", tt.input)
	}
}
