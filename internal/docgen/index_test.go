package docgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateWritesGroupedIndex(t *testing.T) {
	outputDir := t.TempDir()
	service := newTestService(t, Config{OutputDir: outputDir, IndexEnabled: true, GenerateFrontMatter: true}, Dependencies{})

	input := strings.Join([]string{
		"pkg.Zeta\tZeta Check\t\tGuava\tERROR\tMATURE\tSUPPRESS_WARNINGS\t\tZeta summary\tExplanation",
		"pkg.Alpha\tAlpha\t\tGuava\tERROR\tMATURE\tSUPPRESS_WARNINGS\t\tAlpha summary\tExplanation",
		"pkg.Beta\tBeta\t\tJDK\tWARNING\tEXPERIMENTAL\tUNSUPPRESSIBLE\t\tBeta summary\tExplanation",
	}, "\n") + "\n"

	if _, err := service.Generate(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "bugpatterns.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	text := string(index)

	if !strings.HasPrefix(text, "---\ntitle: Bug Patterns\nlayout: bugpatterns\n---\n\n") {
		t.Fatalf("index front matter mismatch:\n%s", text)
	}

	mature := strings.Index(text, "## MATURE")
	experimental := strings.Index(text, "## EXPERIMENTAL")
	if mature < 0 || experimental < 0 || mature > experimental {
		t.Fatalf("expected MATURE section before EXPERIMENTAL:\n%s", text)
	}

	// Rules within a category sort by display name.
	alpha := strings.Index(text, "* [Alpha](Alpha): Alpha summary")
	zeta := strings.Index(text, "* [Zeta Check](Zeta_Check): Zeta summary")
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Fatalf("expected sorted rule entries:\n%s", text)
	}

	if !strings.Contains(text, "* [Beta](Beta): Beta summary") {
		t.Fatalf("expected experimental entry:\n%s", text)
	}
}

func TestGenerateSkipsIndexWhenDisabled(t *testing.T) {
	outputDir := t.TempDir()
	service := newTestService(t, Config{OutputDir: outputDir}, Dependencies{})

	if _, err := service.Generate(context.Background(), strings.NewReader(catalogLine+"\n")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "bugpatterns.md")); !os.IsNotExist(err) {
		t.Fatalf("expected no index page, got %v", err)
	}
}

func TestSectionAnchorIsStable(t *testing.T) {
	first := sectionAnchor("MATURE", "JDK")
	second := sectionAnchor("MATURE", "JDK")
	if first == "" || first != second {
		t.Fatalf("expected stable non-empty anchor, got %q and %q", first, second)
	}
	if strings.ContainsAny(first, " \t") {
		t.Fatalf("expected anchor without whitespace, got %q", first)
	}
}
