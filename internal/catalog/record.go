package catalog

import (
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Severity classifies how serious a diagnosed problem is.
type Severity string

const (
	SeverityError       Severity = "ERROR"
	SeverityWarning     Severity = "WARNING"
	SeveritySuggestion  Severity = "SUGGESTION"
	SeverityNotAProblem Severity = "NOT_A_PROBLEM"
)

// Maturity classifies how battle-tested a check is.
type Maturity string

const (
	MaturityMature       Maturity = "MATURE"
	MaturityExperimental Maturity = "EXPERIMENTAL"
)

// Suppressibility classifies how end users may silence a diagnostic.
type Suppressibility string

const (
	SuppressWarnings Suppressibility = "SUPPRESS_WARNINGS"
	CustomAnnotation Suppressibility = "CUSTOM_ANNOTATION"
	Unsuppressible   Suppressibility = "UNSUPPRESSIBLE"
)

// Record is the structured description of one bug pattern, parsed from one
// line of the catalog file. Records are immutable after construction.
type Record struct {
	QualifiedID                 string
	Name                        string
	AltNames                    string
	Category                    string
	Severity                    Severity
	Maturity                    Maturity
	Suppressibility             Suppressibility
	CustomSuppressionAnnotation string
	Summary                     string
	Explanation                 string
}

// ShortName returns the final dotted segment of the qualified checker id,
// e.g. "ArrayEquals" for "com.google.errorprone.bugpatterns.ArrayEquals".
func (r *Record) ShortName() string {
	if idx := strings.LastIndex(r.QualifiedID, "."); idx >= 0 {
		return r.QualifiedID[idx+1:]
	}
	return r.QualifiedID
}

// ExamplePath returns the slash-joined package portion of the qualified
// checker id, used to locate the record's example directory. Returns "" when
// the id has no package prefix.
func (r *Record) ExamplePath() string {
	idx := strings.LastIndex(r.QualifiedID, ".")
	if idx < 0 {
		return ""
	}
	return path.Join(strings.Split(r.QualifiedID[:idx], ".")...)
}

// FileName returns the output page name: the display name with spaces
// replaced by underscores plus the markdown extension.
func (r *Record) FileName() string {
	return strings.ReplaceAll(r.Name, " ", "_") + ".md"
}

// Validate reports fields the page template will render blank. Findings are
// advisory: parsing never rejects an otherwise well-formed record, callers
// surface them as warnings.
func (r *Record) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.QualifiedID) == "" {
		errs["qualified_id"] = validation.NewError("catalog.record.qualified_id_required", "qualified checker id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = validation.NewError("catalog.record.name_required", "display name is required")
	}
	if strings.TrimSpace(r.Summary) == "" {
		errs["summary"] = validation.NewError("catalog.record.summary_required", "summary is required")
	}
	if r.Suppressibility == CustomAnnotation && strings.TrimSpace(r.CustomSuppressionAnnotation) == "" {
		errs["custom_suppression_annotation"] = validation.NewError(
			"catalog.record.custom_annotation_required",
			"custom suppression annotation is required for CUSTOM_ANNOTATION checks")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseSeverity maps catalog text onto a Severity member.
func ParseSeverity(value string) (Severity, error) {
	switch Severity(value) {
	case SeverityError, SeverityWarning, SeveritySuggestion, SeverityNotAProblem:
		return Severity(value), nil
	}
	return "", invalidEnumError("severity", value)
}

// ParseMaturity maps catalog text onto a Maturity member.
func ParseMaturity(value string) (Maturity, error) {
	switch Maturity(value) {
	case MaturityMature, MaturityExperimental:
		return Maturity(value), nil
	}
	return "", invalidEnumError("maturity", value)
}

// ParseSuppressibility maps catalog text onto a Suppressibility member.
func ParseSuppressibility(value string) (Suppressibility, error) {
	switch Suppressibility(value) {
	case SuppressWarnings, CustomAnnotation, Unsuppressible:
		return Suppressibility(value), nil
	}
	return "", invalidEnumError("suppressibility", value)
}
