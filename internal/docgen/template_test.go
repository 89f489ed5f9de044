package docgen

import (
	"strings"
	"testing"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

func arrayEqualsRecord() *catalog.Record {
	return &catalog.Record{
		QualifiedID:     "com.google.errorprone.bugpatterns.ArrayEquals",
		Name:            "ArrayEquals",
		Category:        "JDK",
		Severity:        catalog.SeverityError,
		Maturity:        catalog.MaturityMature,
		Suppressibility: catalog.SuppressWarnings,
		Summary:         "Reference equality used to compare arrays",
		Explanation:     "The equals method on arrays compares references.",
	}
}

func TestBuildPageWithFrontMatter(t *testing.T) {
	page, err := buildPage(arrayEqualsRecord(), true)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}

	if !strings.HasPrefix(page, "---\ntitle: ArrayEquals\nlayout: bugpattern\ncategory: JDK\nseverity: ERROR\nmaturity: MATURE\n---\n\n") {
		t.Fatalf("front matter block mismatch, got prefix %q", page[:min(len(page), 120)])
	}
	if !strings.Contains(page, "<tr><td>Category</td><td>JDK</td></tr>") {
		t.Fatalf("metadata table missing category row:\n%s", page)
	}
	if !strings.Contains(page, "# Bug pattern: ArrayEquals\n__Reference equality used to compare arrays__\n") {
		t.Fatalf("heading block mismatch:\n%s", page)
	}
}

func TestBuildPageWithoutFrontMatter(t *testing.T) {
	page, err := buildPage(arrayEqualsRecord(), false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if strings.HasPrefix(page, "---") {
		t.Fatalf("expected no front matter, got:\n%s", page[:min(len(page), 80)])
	}
	if !strings.HasPrefix(page, "<div style=\"float:right;\">") {
		t.Fatalf("expected page to start with metadata table, got:\n%s", page[:min(len(page), 80)])
	}
}

func TestBuildPageSuppressWarnings(t *testing.T) {
	page, err := buildPage(arrayEqualsRecord(), false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	want := "Suppress false positives by adding an `@SuppressWarnings(\"ArrayEquals\")` annotation to the enclosing element.\n"
	if !strings.HasSuffix(page, "## Suppression\n"+want) {
		t.Fatalf("suppression section mismatch:\n%s", page)
	}
}

func TestBuildPageCustomAnnotation(t *testing.T) {
	record := arrayEqualsRecord()
	record.Suppressibility = catalog.CustomAnnotation
	record.CustomSuppressionAnnotation = "MyAnnotation"

	page, err := buildPage(record, false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if !strings.Contains(page, "custom suppression annotation `@MyAnnotation`") {
		t.Fatalf("expected custom annotation instructions:\n%s", page)
	}
	if strings.Contains(page, "@SuppressWarnings") {
		t.Fatalf("unexpected SuppressWarnings instructions:\n%s", page)
	}
}

func TestBuildPageUnsuppressible(t *testing.T) {
	record := arrayEqualsRecord()
	record.Suppressibility = catalog.Unsuppressible

	page, err := buildPage(record, false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if !strings.HasSuffix(page, "This check may not be suppressed.\n") {
		t.Fatalf("expected unsuppressible statement:\n%s", page)
	}
	if strings.Contains(page, "Suppress false positives") {
		t.Fatalf("unexpected suppression instructions:\n%s", page)
	}
}

func TestBuildPageUnknownSuppressibilityFails(t *testing.T) {
	record := arrayEqualsRecord()
	record.Suppressibility = catalog.Suppressibility("SOMETIMES")

	if _, err := buildPage(record, false); err == nil {
		t.Fatal("expected error for unknown suppressibility")
	}
}

func TestBuildPageAltNames(t *testing.T) {
	record := arrayEqualsRecord()

	page, err := buildPage(record, false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if strings.Contains(page, "Alternate names") {
		t.Fatalf("expected no alternate names line:\n%s", page)
	}

	record.AltNames = "ArrayEquality"
	page, err = buildPage(record, false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if !strings.Contains(page, "\n_Alternate names: ArrayEquality_\n") {
		t.Fatalf("expected alternate names line:\n%s", page)
	}
}

func TestBuildPageExplanationKeepsLineBreaks(t *testing.T) {
	record := arrayEqualsRecord()
	record.Explanation = "First line.\nSecond line."

	page, err := buildPage(record, false)
	if err != nil {
		t.Fatalf("buildPage: %v", err)
	}
	if !strings.Contains(page, "## The problem\nFirst line.\nSecond line.\n") {
		t.Fatalf("expected explanation with real line break:\n%s", page)
	}
	if strings.Contains(page, `\n`) {
		t.Fatalf("unexpected literal escape in page:\n%s", page)
	}
}
