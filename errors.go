package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/notation/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedNotation = "unsupported_notation"
	CodeRequiredKeys        = "required_keys"
	CodeConstruction        = "construction_failed"
	CodeInvalidNotation     = "invalid_notation"
	CodeConversion          = "conversion_failed"
)

// UnsupportedNotationError reports that no registered converter accepted the
// notation. Candidates lists every shape the parser would have accepted.
type UnsupportedNotationError struct {
	Target     string
	Notation   any
	Candidates []Candidate
}

func (e *UnsupportedNotationError) Error() string {
	b := &strings.Builder{}
	b.WriteString(i18n.T(CodeUnsupportedNotation, map[string]string{
		"target":   e.Target,
		"notation": formatNotation(e.Notation),
	}))
	b.WriteByte('\n')
	if len(e.Candidates) == 0 {
		b.WriteString(i18n.T("no_supported_formats", nil))
		return b.String()
	}
	b.WriteString(i18n.T("supported_formats", nil))
	b.WriteByte('\n')
	b.WriteString(renderCandidates(e.Candidates))
	return b.String()
}

// Code returns CodeUnsupportedNotation.
func (e *UnsupportedNotationError) Code() string { return CodeUnsupportedNotation }

// ValidationError reports that a structured notation of an accepted shape
// lacks mandatory keys. Missing always holds the complete, sorted set.
type ValidationError struct {
	Missing  []string
	Notation map[string]any
}

func (e *ValidationError) Error() string {
	return i18n.T(CodeRequiredKeys, map[string]string{
		"keys": "[" + strings.Join(e.Missing, ", ") + "]",
		"map":  fmt.Sprint(e.Notation),
	})
}

// Code returns CodeRequiredKeys.
func (e *ValidationError) Code() string { return CodeRequiredKeys }

// ConstructionError wraps a failure of the object construction collaborator.
type ConstructionError struct {
	Target string
	Cause  error
}

func (e *ConstructionError) Error() string {
	cause := "<nil>"
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return i18n.T(CodeConstruction, map[string]string{"target": e.Target, "cause": cause})
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ConstructionError) Unwrap() error { return e.Cause }

// Code returns CodeConstruction.
func (e *ConstructionError) Code() string { return CodeConstruction }

// InvalidNotationError reports a notation whose shape was accepted but whose
// value cannot be converted.
type InvalidNotationError struct {
	Notation any
	Reason   string
}

func (e *InvalidNotationError) Error() string {
	return i18n.T(CodeInvalidNotation, map[string]string{
		"notation": formatNotation(e.Notation),
		"reason":   e.Reason,
	})
}

// Code returns CodeInvalidNotation.
func (e *InvalidNotationError) Code() string { return CodeInvalidNotation }

// ConversionError wraps the failure of a nested parse for one entry of a
// structured notation. The nested message is kept verbatim.
type ConversionError struct {
	Field string
	Cause error
}

func (e *ConversionError) Error() string {
	cause := "<nil>"
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return i18n.T(CodeConversion, map[string]string{"field": e.Field, "cause": cause})
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ConversionError) Unwrap() error { return e.Cause }

// Code returns CodeConversion.
func (e *ConversionError) Code() string { return CodeConversion }

// Code returns the code of the outermost coded error in err's chain, or "".
func Code(err error) string {
	var c interface{ Code() string }
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// IsUnsupported reports whether err (or anything it wraps) is an
// UnsupportedNotationError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedNotationError
	return errors.As(err, &ue)
}

// AsValidation extracts a ValidationError using errors.As internally.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func formatNotation(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
