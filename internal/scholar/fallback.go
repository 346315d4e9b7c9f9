package scholar

import (
	"strconv"
	"time"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

// FallbackWarning accompanies FallbackProfile when scraping fails; the API
// degrades softly instead of failing the whole request.
const FallbackWarning = "Unable to fetch live data from Google Scholar. " +
	"This may be due to rate limiting or privacy settings. The profile URL appears valid."

// FallbackProfile returns the fixed placeholder record substituted when the
// live profile cannot be scraped.
func FallbackProfile() *types.ScholarProfile {
	return &types.ScholarProfile{
		Name:              "Scholar Profile",
		Affiliation:       "Institution not available",
		TotalCitations:    0,
		HIndex:            0,
		I10Index:          0,
		ResearchInterests: []string{"Research interests not available"},
		Publications: []types.Publication{
			{
				Title:     "Publications data temporarily unavailable",
				Authors:   "Please try again later or check if the profile is public",
				Journal:   "Note: Some profiles may be private or restricted",
				Year:      strconv.Itoa(time.Now().Year()),
				Citations: 0,
			},
		},
	}
}
