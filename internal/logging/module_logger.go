package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-checkdocs/pkg/interfaces"
)

const (
	rootModule    = "checkdocs"
	catalogModule = "checkdocs.catalog"
	docgenModule  = "checkdocs.docgen"
	previewModule = "checkdocs.preview"
)

const (
	fieldPattern = "pattern"
	fieldPage    = "page"
	fieldLine    = "line"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for catalog parsing.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// DocgenLogger returns the logger namespace reserved for page generation.
func DocgenLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, docgenModule)
}

// PreviewLogger returns the logger namespace reserved for HTML preview rendering.
func PreviewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, previewModule)
}

// WithPatternContext enriches the provided logger with common generation
// fields such as the pattern name, output page, and input line number. Empty
// values are ignored.
func WithPatternContext(logger interfaces.Logger, pattern, page string, line int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(pattern); trimmed != "" {
		fields[fieldPattern] = trimmed
	}
	if trimmed := strings.TrimSpace(page); trimmed != "" {
		fields[fieldPage] = trimmed
	}
	if line > 0 {
		fields[fieldLine] = line
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
