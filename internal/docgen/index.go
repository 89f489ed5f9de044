package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

// indexFileName is the grouped catalog overview written next to the pages.
const indexFileName = "bugpatterns.md"

// maturityOrder fixes the section order of the index page.
var maturityOrder = []catalog.Maturity{catalog.MaturityMature, catalog.MaturityExperimental}

// writeIndex emits a single page listing every record, grouped by maturity
// then category, with deterministic ordering throughout.
func (s *service) writeIndex(records []*catalog.Record) error {
	var page strings.Builder

	if s.cfg.GenerateFrontMatter {
		page.WriteString("---\n" +
			"title: Bug Patterns\n" +
			"layout: bugpatterns\n" +
			"---\n\n")
	}

	page.WriteString("# Bug patterns\n")

	grouped := groupRecords(records)
	for _, maturity := range maturityOrder {
		categories := grouped[maturity]
		if len(categories) == 0 {
			continue
		}

		fmt.Fprintf(&page, "\n## %s\n", maturity)

		names := make([]string, 0, len(categories))
		for category := range categories {
			names = append(names, category)
		}
		sort.Strings(names)

		// Contents line so long sections stay navigable on the rendered site.
		links := make([]string, 0, len(names))
		for _, category := range names {
			links = append(links, fmt.Sprintf("[%s](#%s)", category, sectionAnchor(maturity, category)))
		}
		page.WriteString("\nContents: " + strings.Join(links, ", ") + "\n")

		for _, category := range names {
			fmt.Fprintf(&page, "\n### %s {#%s}\n\n", category, sectionAnchor(maturity, category))

			members := categories[category]
			sort.Slice(members, func(i, j int) bool {
				return members[i].Name < members[j].Name
			})
			for _, record := range members {
				stem := strings.TrimSuffix(record.FileName(), ".md")
				fmt.Fprintf(&page, "* [%s](%s): %s\n", record.Name, stem, record.Summary)
			}
		}
	}

	target := filepath.Join(s.cfg.OutputDir, indexFileName)
	if err := os.WriteFile(target, []byte(page.String()), 0o644); err != nil {
		return ioError(target, err)
	}

	s.logger.Debug("docgen.index.written", "page", indexFileName, "patterns", len(records))

	return nil
}

func groupRecords(records []*catalog.Record) map[catalog.Maturity]map[string][]*catalog.Record {
	grouped := map[catalog.Maturity]map[string][]*catalog.Record{}
	for _, record := range records {
		categories := grouped[record.Maturity]
		if categories == nil {
			categories = map[string][]*catalog.Record{}
			grouped[record.Maturity] = categories
		}
		categories[record.Category] = append(categories[record.Category], record)
	}
	return grouped
}

// sectionAnchor derives a stable heading id for a maturity/category pair.
func sectionAnchor(maturity catalog.Maturity, category string) string {
	normalized, err := slug.Normalize(string(maturity) + " " + category)
	if err != nil {
		return strings.ToLower(strings.ReplaceAll(string(maturity)+"-"+category, " ", "-"))
	}
	return normalized
}
