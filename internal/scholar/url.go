package scholar

import "regexp"

var (
	profileURLRx = regexp.MustCompile(`scholar\.google\.(com|co\.[a-z]{2}|[a-z]{2})/citations.*user=`)
	userIDRx     = regexp.MustCompile(`user=([^&]+)`)
)

// IsValidProfileURL reports whether the URL looks like a Google Scholar
// citations page with a user parameter.
func IsValidProfileURL(url string) bool {
	return profileURLRx.MatchString(url)
}

// ExtractUserID pulls the user ID out of a profile URL's user= parameter.
func ExtractUserID(url string) (string, bool) {
	m := userIDRx.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
