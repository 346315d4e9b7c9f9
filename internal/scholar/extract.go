package scholar

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/types"
)

var verifiedEmailRx = regexp.MustCompile(`(?i)verified email at (.+)`)

// extractProfile pulls every profile field out of the parsed page. Each field
// extractor fails independently: a missing widget logs and leaves its default
// rather than aborting the parse. Name validity is the caller's gate.
func extractProfile(doc *goquery.Document) *types.ScholarProfile {
	name := strings.TrimSpace(doc.Find("#gsc_prf_in").Text())
	if name == "" {
		name = types.NameNotFound
	}

	affiliation := strings.TrimSpace(doc.Find(".gsc_prf_il").First().Text())
	if affiliation == "" {
		affiliation = types.AffiliationNotFound
	}

	// The second info line carries "Verified email at <domain>" when public.
	email := ""
	if m := verifiedEmailRx.FindStringSubmatch(strings.TrimSpace(doc.Find(".gsc_prf_il").Eq(1).Text())); m != nil {
		email = m[1]
	}

	citations, hIndex, i10Index := extractCitationStats(doc)

	return &types.ScholarProfile{
		Name:              name,
		Affiliation:       affiliation,
		Email:             email,
		TotalCitations:    citations,
		HIndex:            hIndex,
		I10Index:          i10Index,
		ResearchInterests: extractResearchInterests(doc),
		Publications:      extractPublications(doc),
	}
}

// extractCitationStats reads the citation table, matching rows by label
// substring so column reordering or extra rows don't break extraction.
func extractCitationStats(doc *goquery.Document) (citations, hIndex, i10Index int) {
	rows := doc.Find("#gsc_rsb_st tr")
	if rows.Length() == 0 {
		log.Printf("[SCHOLAR] citation table not found")
		return 0, 0, 0
	}

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.ToLower(cells.Eq(0).Text())
		value := parseCount(cells.Eq(1).Text())

		switch {
		case strings.Contains(label, "citations"):
			citations = value
		case strings.Contains(label, "h-index"):
			hIndex = value
		case strings.Contains(label, "i10-index"):
			i10Index = value
		}
	})
	return citations, hIndex, i10Index
}

func extractResearchInterests(doc *goquery.Document) []string {
	interests := []string{}
	doc.Find("#gsc_prf_int a.gs_ibl").Each(func(_ int, tag *goquery.Selection) {
		if interest := strings.TrimSpace(tag.Text()); interest != "" {
			interests = append(interests, interest)
		}
	})
	return interests
}

// extractPublications reads up to types.MaxPublicationItems publication rows
// in listing order. Rows without a title are skipped.
func extractPublications(doc *goquery.Document) []types.Publication {
	publications := []types.Publication{}
	doc.Find(".gsc_a_tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= types.MaxPublicationItems {
			return false
		}

		title := strings.TrimSpace(row.Find(".gsc_a_at").Text())
		if title == "" {
			return true
		}

		authors := types.AuthorsNotSpecified
		journal := types.JournalNotSpecified
		// The first gray line holds "authors - journal".
		if authorsJournal := strings.TrimSpace(row.Find(".gs_gray").First().Text()); authorsJournal != "" {
			parts := strings.Split(authorsJournal, " - ")
			if len(parts) >= 2 {
				authors = strings.TrimSpace(parts[0])
				journal = strings.TrimSpace(strings.Join(parts[1:], " - "))
			} else {
				authors = authorsJournal
			}
		}

		year := strings.TrimSpace(row.Find(".gsc_a_y .gs_ibl").Text())
		if year == "" {
			year = types.YearNotSpecified
		}

		publications = append(publications, types.Publication{
			Title:     title,
			Authors:   authors,
			Journal:   journal,
			Year:      year,
			Citations: parseCount(row.Find(".gsc_a_c .gs_ibl").Text()),
		})
		return true
	})
	return publications
}

// parseCount parses a numeric cell, tolerating thousands separators and
// returning 0 for anything unparseable.
func parseCount(text string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
