package registry

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// Registry pages are server-rendered HTML with stable structure: the unit
// title in <title>/<h1>, performance criteria in two-column table rows
// (code, description), and knowledge evidence as a bullet list under its
// heading. Plain regexp parsing has held up better here than a full HTML
// parser because the markup is machine-generated and flat.
var (
	titlePattern = regexp.MustCompile(`(?is)<title>\s*(.*?)\s*</title>`)
	h1Pattern    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)

	pcRowPattern = regexp.MustCompile(`(?is)<td[^>]*>\s*(\d+\.\d+)\s*</td>\s*<td[^>]*>(.*?)</td>`)

	knowledgeSectionPattern = regexp.MustCompile(`(?is)Knowledge\s+Evidence(.*?)(?:Assessment\s+Conditions|Performance\s+Evidence|Foundation\s+Skills|</body>|\z)`)
	listItemPattern         = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)

	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// notFoundMarkers identify the registry's soft-404 page, served with
// status 200.
var notFoundMarkers = []string{
	"could not be found",
	"no longer current and has been removed",
	"Page not found",
}

// ParseUnitPage extracts a unit definition from a registry details page.
// Returns ErrUnitNotFound when the page is the registry's not-found shell.
func ParseUnitPage(code, page string) (*domain.UnitDefinition, error) {
	for _, marker := range notFoundMarkers {
		if strings.Contains(page, marker) {
			return nil, fmt.Errorf("%s: %w", code, domain.ErrUnitNotFound)
		}
	}

	title := pageTitle(code, page)
	if title == "" {
		return nil, fmt.Errorf("%s: %w", code, domain.ErrUnitNotFound)
	}

	def := &domain.UnitDefinition{
		Unit: domain.UnitRef{Code: code, Title: title},
	}

	for _, row := range pcRowPattern.FindAllStringSubmatch(page, -1) {
		description := cleanHTML(row[2])
		if description == "" {
			continue
		}
		def.ElementsAndPC = append(def.ElementsAndPC, domain.PCItem{
			PCCode:      row[1],
			Description: description,
		})
	}

	if section := knowledgeSectionPattern.FindStringSubmatch(page); section != nil {
		for _, item := range listItemPattern.FindAllStringSubmatch(section[1], -1) {
			if text := cleanHTML(item[1]); text != "" {
				def.KnowledgeEvidence = append(def.KnowledgeEvidence, text)
			}
		}
	}

	return def, nil
}

// pageTitle prefers the h1 heading, falls back to <title> with the site
// suffix and unit code prefix stripped.
func pageTitle(code, page string) string {
	if m := h1Pattern.FindStringSubmatch(page); m != nil {
		if title := trimTitle(code, cleanHTML(m[1])); title != "" {
			return title
		}
	}
	if m := titlePattern.FindStringSubmatch(page); m != nil {
		return trimTitle(code, cleanHTML(m[1]))
	}
	return ""
}

func trimTitle(code, title string) string {
	title = strings.TrimSuffix(title, "- Training.gov.au")
	title = strings.TrimSuffix(strings.TrimSpace(title), "| training.gov.au")
	title = strings.TrimPrefix(strings.TrimSpace(title), code)
	return strings.Trim(strings.TrimSpace(title), "-– ")
}

// cleanHTML strips tags, decodes entities, and collapses whitespace.
func cleanHTML(fragment string) string {
	text := tagPattern.ReplaceAllString(fragment, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
