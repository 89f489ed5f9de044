// Package preview renders generated markdown pages into standalone HTML files
// so catalog changes can be reviewed without running the documentation site.
package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-checkdocs/internal/logging"
	"github.com/goliatone/go-checkdocs/pkg/interfaces"
)

// Config captures the preview output destination.
type Config struct {
	OutputDir string
}

// Renderer converts markdown pages into HTML previews. It is stateless across
// pages so a single instance can serve a whole run.
type Renderer struct {
	cfg    Config
	engine goldmark.Markdown
	logger interfaces.Logger
}

// New constructs a preview renderer with GFM extensions enabled, matching the
// feature set the documentation site renders with.
func New(cfg Config, logger interfaces.Logger) *Renderer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Renderer{
		cfg: cfg,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			// Pages embed a raw HTML metadata table; keep it in the preview.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		logger: logger,
	}
}

// pageMeta captures the front matter fields surfaced in the preview title.
type pageMeta struct {
	Title string `yaml:"title"`
}

// Render strips front matter from the page, converts the body to HTML, and
// writes <stem>.html into the preview directory.
func (r *Renderer) Render(pageName string, page []byte) error {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("preview: create output dir: %w", err)
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(page), &meta)
	if err != nil {
		return fmt.Errorf("preview: parse front matter for %s: %w", pageName, err)
	}

	var buf bytes.Buffer
	if err := r.engine.Convert(body, &buf); err != nil {
		return fmt.Errorf("preview: convert %s: %w", pageName, err)
	}

	name := strings.TrimSuffix(pageName, ".md") + ".html"
	target := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("preview: write %s: %w", target, err)
	}

	r.logger.Debug("preview.page.written", "page", name, "title", meta.Title)

	return nil
}
