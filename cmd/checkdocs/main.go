package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-checkdocs/internal/docgen"
	"github.com/goliatone/go-checkdocs/internal/logging"
	"github.com/goliatone/go-checkdocs/internal/logging/gologger"
	"github.com/goliatone/go-checkdocs/internal/preview"
	"github.com/goliatone/go-checkdocs/internal/runtimeconfig"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("checkdocs: %v", err)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("checkdocs", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to an optional YAML configuration file")
	input := flags.String("input", "bugpatterns.txt", "Path to the tab-delimited bug pattern catalog")
	outputDir := flags.String("output-dir", "bugpattern", "Directory receiving one markdown page per pattern")
	exampleDir := flags.String("example-dir", "", "Root of the example source tree (empty disables stitching)")
	frontMatter := flags.Bool("front-matter", true, "Emit Jekyll front matter on every page")
	pygments := flags.Bool("pygments", false, "Use {% highlight %} directives instead of fenced code blocks")
	index := flags.Bool("index", false, "Emit a grouped bugpatterns.md index page")
	previewEnabled := flags.Bool("preview", false, "Render HTML previews of generated pages")
	previewDir := flags.String("preview-dir", "", "Directory receiving HTML previews")
	logLevel := flags.String("log-level", "info", "Logging level (trace, debug, info, warn, error)")
	logFormat := flags.String("log-format", "console", "Logging format (json, console, pretty)")
	logFocus := flags.String("log-focus", "", "Comma separated logger names to focus on (e.g. checkdocs.docgen)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := runtimeconfig.Load(*configPath)
	if err != nil {
		return err
	}

	explicit := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile := *configPath != ""
	if explicit["input"] || !fromFile || cfg.Input == "" {
		cfg.Input = *input
	}
	if explicit["output-dir"] || !fromFile || cfg.OutputDir == "" {
		cfg.OutputDir = *outputDir
	}
	if explicit["example-dir"] || !fromFile {
		cfg.Examples.BaseDir = *exampleDir
	}
	if explicit["front-matter"] || !fromFile {
		cfg.Pages.FrontMatter = *frontMatter
	}
	if explicit["pygments"] || !fromFile {
		cfg.Pages.Pygments = *pygments
	}
	if explicit["index"] || !fromFile {
		cfg.Pages.Index = *index
	}
	if explicit["preview"] || !fromFile {
		cfg.Preview.Enabled = *previewEnabled
	}
	if explicit["preview-dir"] || !fromFile {
		cfg.Preview.OutputDir = *previewDir
	}
	if explicit["log-level"] || !fromFile || cfg.Logging.Level == "" {
		cfg.Logging.Level = *logLevel
	}
	if explicit["log-format"] || !fromFile || cfg.Logging.Format == "" {
		cfg.Logging.Format = *logFormat
	}
	if explicit["log-focus"] || !fromFile {
		cfg.Logging.Focus = splitList(*logFocus)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return err
	}

	var examples fs.FS
	if cfg.Examples.BaseDir != "" {
		examples = os.DirFS(cfg.Examples.BaseDir)
	}

	var previewer docgen.Previewer
	if cfg.Preview.Enabled {
		previewer = preview.New(preview.Config{OutputDir: cfg.Preview.OutputDir},
			logging.PreviewLogger(provider))
	}

	service, err := docgen.NewService(docgen.Config{
		OutputDir:           cfg.OutputDir,
		GenerateFrontMatter: cfg.Pages.FrontMatter,
		UsePygments:         cfg.Pages.Pygments,
		IndexEnabled:        cfg.Pages.Index,
	}, docgen.Dependencies{
		Examples:  examples,
		Previewer: previewer,
		Logger:    provider,
	})
	if err != nil {
		return err
	}

	catalogFile, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open catalog %s: %w", cfg.Input, err)
	}
	defer catalogFile.Close()

	result, err := service.Generate(context.Background(), catalogFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "checkdocs: wrote %d pages (%d examples stitched) in %s\n",
		result.PagesWritten, result.ExamplesStitched, result.Duration)

	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
