package catalog

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Field indices of the tab-delimited catalog format.
const (
	fieldQualifiedID = iota
	fieldName
	fieldAltNames
	fieldCategory
	fieldSeverity
	fieldMaturity
	fieldSuppressibility
	fieldCustomAnnotation
	fieldSummary
	fieldExplanation

	fieldCount
)

const (
	malformedRecordCode = "CATALOG_MALFORMED_RECORD"
	invalidEnumCode     = "CATALOG_INVALID_ENUM"
)

// ParseLine decodes one catalog line into a Record. The line must contain
// exactly fieldCount tab-separated fields in fixed order; literal \n escape
// sequences in the explanation field are resolved to real line breaks.
// Well-formedness is field count plus enum membership only; empty text fields
// parse fine and are left to Record.Validate as advisory findings.
func ParseLine(line string) (*Record, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != fieldCount {
		return nil, malformedRecordError(len(parts))
	}

	severity, err := ParseSeverity(parts[fieldSeverity])
	if err != nil {
		return nil, err
	}
	maturity, err := ParseMaturity(parts[fieldMaturity])
	if err != nil {
		return nil, err
	}
	suppressibility, err := ParseSuppressibility(parts[fieldSuppressibility])
	if err != nil {
		return nil, err
	}

	return &Record{
		QualifiedID:                 parts[fieldQualifiedID],
		Name:                        parts[fieldName],
		AltNames:                    parts[fieldAltNames],
		Category:                    parts[fieldCategory],
		Severity:                    severity,
		Maturity:                    maturity,
		Suppressibility:             suppressibility,
		CustomSuppressionAnnotation: parts[fieldCustomAnnotation],
		Summary:                     parts[fieldSummary],
		Explanation:                 strings.ReplaceAll(parts[fieldExplanation], `\n`, "\n"),
	}, nil
}

// IsMalformed reports whether err describes a structurally bad catalog line.
func IsMalformed(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

func malformedRecordError(got int) error {
	base := fmt.Errorf("catalog: record has %d tab-separated fields, want %d", got, fieldCount)
	return goerrors.Wrap(base, goerrors.CategoryValidation, "malformed catalog record").
		WithTextCode(malformedRecordCode)
}

func invalidEnumError(field, value string) error {
	base := fmt.Errorf("catalog: unrecognized %s value %q", field, value)
	return goerrors.Wrap(base, goerrors.CategoryValidation, "invalid catalog enum value").
		WithTextCode(invalidEnumCode)
}
