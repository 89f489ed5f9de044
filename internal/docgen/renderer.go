package docgen

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-checkdocs/internal/catalog"
	"github.com/goliatone/go-checkdocs/internal/logging"
	"github.com/goliatone/go-checkdocs/pkg/interfaces"
)

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	// OutputDir receives one markdown page per record.
	OutputDir string
	// GenerateFrontMatter controls whether pages start with a Jekyll
	// front matter block.
	GenerateFrontMatter bool
	// UsePygments selects {% highlight %} directives over fenced code blocks.
	UsePygments bool
	// IndexEnabled emits a grouped index page after a successful run.
	IndexEnabled bool
}

// Validate ensures the configuration names an output destination.
func (c Config) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("docgen.config.output_dir_required", "output directory is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Renderer produces one documentation page per record and writes it to the
// output directory. Each write is independent; the file handle is released
// before the next record is processed.
type Renderer struct {
	cfg      Config
	examples fs.FS
	logger   interfaces.Logger
}

// NewRenderer wires a page renderer. examples may be nil when no example tree
// is configured.
func NewRenderer(cfg Config, examples fs.FS, logger interfaces.Logger) *Renderer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Renderer{
		cfg:      cfg,
		examples: examples,
		logger:   logger,
	}
}

// RenderPage renders the record into markdown, stitches in any matching
// example files, and writes the result. It returns the page file name and the
// number of examples embedded.
func (r *Renderer) RenderPage(record *catalog.Record) (string, int, error) {
	body, err := buildPage(record, r.cfg.GenerateFrontMatter)
	if err != nil {
		return "", 0, err
	}

	examples, err := listExamples(r.examples, record)
	if err != nil {
		return "", 0, err
	}

	var page strings.Builder
	page.WriteString(body)
	appendExamples(&page, examples, r.cfg.UsePygments)

	name := record.FileName()
	target := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(target, []byte(page.String()), 0o644); err != nil {
		return "", 0, ioError(target, err)
	}

	logging.WithPatternContext(r.logger, record.Name, name, 0).
		Debug("docgen.page.written", "examples", len(examples))

	return name, len(examples), nil
}
