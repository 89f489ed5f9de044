package docgen

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

func exampleTree() fstest.MapFS {
	return fstest.MapFS{
		"pkg/FooPositiveCase1.java": &fstest.MapFile{Data: []byte("class FooPositiveCase1 {}")},
		"pkg/FooNegativeCase1.java": &fstest.MapFile{Data: []byte("class FooNegativeCase1 {}")},
		"pkg/FooHelper.java":        &fstest.MapFile{Data: []byte("class FooHelper {}")},
		"pkg/BarPositiveCase1.java": &fstest.MapFile{Data: []byte("class BarPositiveCase1 {}")},
	}
}

func fooRecord() *catalog.Record {
	return &catalog.Record{
		QualifiedID:     "pkg.Foo",
		Name:            "Foo",
		Category:        "JDK",
		Severity:        catalog.SeverityWarning,
		Maturity:        catalog.MaturityExperimental,
		Suppressibility: catalog.SuppressWarnings,
		Summary:         "Summary",
		Explanation:     "Explanation",
	}
}

func TestListExamplesMatchesAndSorts(t *testing.T) {
	examples, err := listExamples(exampleTree(), fooRecord())
	if err != nil {
		t.Fatalf("listExamples: %v", err)
	}

	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d: %#v", len(examples), examples)
	}
	if examples[0].Name != "FooNegativeCase1.java" || examples[1].Name != "FooPositiveCase1.java" {
		t.Fatalf("expected lexicographic order, got %q then %q", examples[0].Name, examples[1].Name)
	}
	if examples[0].Content != "class FooNegativeCase1 {}" {
		t.Fatalf("example content mismatch: %q", examples[0].Content)
	}
}

func TestListExamplesIgnoresOtherCheckers(t *testing.T) {
	examples, err := listExamples(exampleTree(), fooRecord())
	if err != nil {
		t.Fatalf("listExamples: %v", err)
	}
	for _, ex := range examples {
		if strings.HasPrefix(ex.Name, "Bar") || ex.Name == "FooHelper.java" {
			t.Fatalf("unexpected match %q", ex.Name)
		}
	}
}

func TestListExamplesMissingDirectoryIsSoft(t *testing.T) {
	record := fooRecord()
	record.QualifiedID = "some.other.pkg.Foo"

	examples, err := listExamples(exampleTree(), record)
	if err != nil {
		t.Fatalf("expected missing directory to be tolerated, got %v", err)
	}
	if examples != nil {
		t.Fatalf("expected no examples, got %#v", examples)
	}
}

func TestListExamplesNilTree(t *testing.T) {
	examples, err := listExamples(nil, fooRecord())
	if err != nil || examples != nil {
		t.Fatalf("expected nil tree to yield nothing, got %#v, %v", examples, err)
	}
}

func TestAppendExamplesFencedStyle(t *testing.T) {
	var page strings.Builder
	appendExamples(&page, []example{{Name: "FooPositiveCase1.java", Content: "class Foo {}"}}, false)

	got := page.String()
	want := "\n----------\n\n# Examples\n__FooPositiveCase1.java__\n\n```java\nclass Foo {}\n```\n\n"
	if got != want {
		t.Fatalf("fenced examples mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAppendExamplesPygmentsStyle(t *testing.T) {
	var page strings.Builder
	appendExamples(&page, []example{{Name: "FooPositiveCase1.java", Content: "class Foo {}"}}, true)

	got := page.String()
	if !strings.Contains(got, "{% highlight java %}\nclass Foo {}\n{% endhighlight %}\n") {
		t.Fatalf("pygments examples mismatch:\n%q", got)
	}
	if strings.Contains(got, "```") {
		t.Fatalf("unexpected fenced delimiters in pygments mode:\n%q", got)
	}
}

func TestAppendExamplesEmpty(t *testing.T) {
	var page strings.Builder
	appendExamples(&page, nil, false)
	if page.Len() != 0 {
		t.Fatalf("expected no Examples section, got %q", page.String())
	}
}
