package docgen

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-checkdocs/internal/catalog"
	"github.com/goliatone/go-checkdocs/internal/logging"
	"github.com/goliatone/go-checkdocs/pkg/interfaces"
)

// ErrPreviewRequiresFences rejects preview rendering combined with pygments
// delimiters: {% highlight %} directives are not markdown and cannot be
// converted to HTML.
var ErrPreviewRequiresFences = errors.New("docgen: preview rendering requires fenced code blocks, disable pygments")

// maxLineSize bounds a single catalog line; explanations can run long.
const maxLineSize = 1 << 20

// Service describes the documentation generator contract.
type Service interface {
	Generate(ctx context.Context, input io.Reader) (*Result, error)
}

// Previewer converts a written markdown page into a local HTML preview.
type Previewer interface {
	Render(pageName string, page []byte) error
}

// Dependencies lists the collaborators required by the generator service.
type Dependencies struct {
	// Examples is the example source tree; nil disables stitching.
	Examples fs.FS
	// Previewer, when set, receives every written page.
	Previewer Previewer
	// Logger receives progress and failure entries.
	Logger interfaces.LoggerProvider
}

// Result reports aggregated run metadata. Records accumulates every parsed
// record in input order for downstream summary use.
type Result struct {
	RunID            uuid.UUID
	Records          []*catalog.Record
	PagesWritten     int
	ExamplesStitched int
	Duration         time.Duration
}

// NewService wires a generator implementation with the provided configuration
// and dependencies.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if err := configError(cfg.Validate()); err != nil {
		return nil, err
	}
	if deps.Previewer != nil && cfg.UsePygments {
		return nil, configError(ErrPreviewRequiresFences)
	}

	logger := logging.DocgenLogger(deps.Logger)

	return &service{
		cfg:       cfg,
		renderer:  NewRenderer(cfg, deps.Examples, logger),
		previewer: deps.Previewer,
		logger:    logger,
		catalog:   logging.CatalogLogger(deps.Logger),
		now:       time.Now,
	}, nil
}

type service struct {
	cfg       Config
	renderer  *Renderer
	previewer Previewer
	logger    interfaces.Logger
	catalog   interfaces.Logger
	now       func() time.Time
}

// Generate reads the catalog line by line, rendering and writing one page per
// record before advancing to the next. The first parse, render, or write
// failure aborts the run; pages written for earlier records stay on disk.
func (s *service) Generate(ctx context.Context, input io.Reader) (*Result, error) {
	started := s.now()

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, ioError(s.cfg.OutputDir, err)
	}

	result := &Result{RunID: uuid.New()}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		lineNo++
		record, err := catalog.ParseLine(scanner.Text())
		if err != nil {
			return nil, lineError(lineNo, err)
		}
		result.Records = append(result.Records, record)

		// Blank text fields render a blank spot on the page; worth a warning
		// but not an abort.
		if verr := record.Validate(); verr != nil {
			logging.WithPatternContext(s.catalog, record.Name, "", lineNo).
				Warn("catalog.record.incomplete", "error", verr.Error())
		}

		name, stitched, err := s.renderer.RenderPage(record)
		if err != nil {
			return nil, lineError(lineNo, err)
		}
		result.PagesWritten++
		result.ExamplesStitched += stitched

		if s.previewer != nil {
			page, err := os.ReadFile(s.pagePath(name))
			if err != nil {
				return nil, ioError(s.pagePath(name), err)
			}
			if err := s.previewer.Render(name, page); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError("catalog input", err)
	}

	if s.cfg.IndexEnabled {
		if err := s.writeIndex(result.Records); err != nil {
			return nil, err
		}
	}

	result.Duration = s.now().Sub(started)

	s.logger.Info("docgen.run.completed",
		"run_id", result.RunID.String(),
		"pages", result.PagesWritten,
		"examples", result.ExamplesStitched,
		"duration", result.Duration.String())

	return result, nil
}

func (s *service) pagePath(name string) string {
	return filepath.Join(s.cfg.OutputDir, name)
}
