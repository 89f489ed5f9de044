package docgen

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-checkdocs/internal/catalog"
)

const (
	unknownSuppressibilityCode = "DOCGEN_UNKNOWN_SUPPRESSIBILITY"
	ioFailedCode               = "DOCGEN_IO_FAILED"
	configInvalidCode          = "DOCGEN_CONFIG_INVALID"
)

// unknownSuppressibilityError flags a suppression switch reached with a value
// the parser should have rejected.
func unknownSuppressibilityError(record *catalog.Record) error {
	base := fmt.Errorf("docgen: unknown suppressibility %q for pattern %s",
		record.Suppressibility, record.Name)
	return goerrors.Wrap(base, goerrors.CategoryCommand, "unknown suppressibility").
		WithTextCode(unknownSuppressibilityCode)
}

// ioError wraps a filesystem failure with the offending path.
func ioError(path string, err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	base := fmt.Errorf("docgen: %s: %w", path, err)
	return goerrors.Wrap(base, goerrors.CategoryCommand, "file operation failed").
		WithTextCode(ioFailedCode)
}

// lineError attaches the input line number to a record-level failure while
// preserving the underlying error chain.
func lineError(line int, err error) error {
	return fmt.Errorf("docgen: input line %d: %w", line, err)
}

func configError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid generator configuration").
		WithTextCode(configInvalidCode)
}
