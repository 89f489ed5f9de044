package docgen

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

// buildPage constructs the markdown page body for one record. The layout is
// fixed: optional front matter, a floating metadata table, the pattern
// heading, an optional alternate-names line, the problem section, and a
// suppression section selected by the record's suppressibility.
func buildPage(record *catalog.Record, generateFrontMatter bool) (string, error) {
	var page strings.Builder

	if generateFrontMatter {
		fmt.Fprintf(&page, "---\n"+
			"title: %s\n"+
			"layout: bugpattern\n"+
			"category: %s\n"+
			"severity: %s\n"+
			"maturity: %s\n"+
			"---\n\n",
			record.Name, record.Category, record.Severity, record.Maturity)
	}

	fmt.Fprintf(&page, "<div style=\"float:right;\"><table id=\"metadata\">\n"+
		"<tr><td>Category</td><td>%s</td></tr>\n"+
		"<tr><td>Severity</td><td>%s</td></tr>\n"+
		"<tr><td>Maturity</td><td>%s</td></tr>\n"+
		"</table></div>\n\n",
		record.Category, record.Severity, record.Maturity)

	fmt.Fprintf(&page, "# Bug pattern: %s\n__%s__\n", record.Name, record.Summary)

	if record.AltNames != "" {
		fmt.Fprintf(&page, "\n_Alternate names: %s_\n", record.AltNames)
	}

	fmt.Fprintf(&page, "\n## The problem\n%s\n\n## Suppression\n", record.Explanation)

	suppression, err := suppressionSection(record)
	if err != nil {
		return "", err
	}
	page.WriteString(suppression)

	return page.String(), nil
}

// suppressionSection returns the instructions paragraph for the record's
// suppression policy. The switch is exhaustive over the known members; any
// other value indicates the parser let a bad record through.
func suppressionSection(record *catalog.Record) (string, error) {
	switch record.Suppressibility {
	case catalog.SuppressWarnings:
		return fmt.Sprintf("Suppress false positives by adding an `@SuppressWarnings(\"%s\")` "+
			"annotation to the enclosing element.\n", record.Name), nil
	case catalog.CustomAnnotation:
		return fmt.Sprintf("Suppress false positives by adding the custom suppression annotation "+
			"`@%s` to the enclosing element.\n", record.CustomSuppressionAnnotation), nil
	case catalog.Unsuppressible:
		return "This check may not be suppressed.\n", nil
	default:
		return "", unknownSuppressibilityError(record)
	}
}
