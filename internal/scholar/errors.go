package scholar

import "fmt"

// InvalidURLError indicates the profile URL is not a recognizable Google
// Scholar citations URL. Raised before any network call.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid Google Scholar profile URL format: %s", e.URL)
}

// BlockedError indicates Google Scholar served a block page instead of the
// profile. Distinct from FetchError so callers can message it differently.
type BlockedError struct {
	URL string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("Google Scholar temporarily blocked the request for %s: please try again later", e.URL)
}

// FetchError indicates the profile page could not be retrieved after
// exhausting all retry attempts. Wraps the last underlying error.
type FetchError struct {
	URL      string
	Attempts int
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to fetch profile %s after %d attempts: %v", e.URL, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("failed to fetch profile %s after %d attempts", e.URL, e.Attempts)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ProfileUnresolvableError indicates the page was fetched and parsed but no
// profile name could be resolved: the profile is private, empty, or the URL
// points somewhere unexpected.
type ProfileUnresolvableError struct {
	URL string
}

func (e *ProfileUnresolvableError) Error() string {
	return fmt.Sprintf("could not extract profile data from %s: the profile might be private or the URL might be incorrect", e.URL)
}
