package goenum

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnknownLabel       = "unknown_label"
	CodeDuplicateLabel     = "duplicate_label"
	CodeEmptyLabel         = "empty_label"
	CodeFamilySealed       = "family_sealed"
	CodeUnknownFamily      = "unknown_family"
	CodeDuplicateFamily    = "duplicate_family"
	CodeFamilyMismatch     = "family_mismatch"
	CodeMissingDisplayName = "missing_display_name"
	CodeParseError         = "parse_error"
)

// Error is the failure returned by single-member operations. Family holds the
// display name of the family involved (or the requested tag for
// unknown_family).
type Error struct {
	Code   string
	Family string
	Label  string
	Cause  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case CodeUnknownLabel:
		msg = fmt.Sprintf("Value '%s' is not a valid %s enumeration value.", e.Label, e.Family)
	case CodeDuplicateLabel:
		msg = fmt.Sprintf("Value '%s' is already declared in the %s enumeration.", e.Label, e.Family)
	case CodeEmptyLabel:
		msg = fmt.Sprintf("The %s enumeration does not accept an empty value.", e.Family)
	case CodeFamilySealed:
		msg = fmt.Sprintf("Value '%s' cannot be declared: the %s enumeration is sealed.", e.Label, e.Family)
	case CodeUnknownFamily:
		msg = fmt.Sprintf("No enumeration is registered for %s.", e.Family)
	case CodeDuplicateFamily:
		msg = fmt.Sprintf("An enumeration is already registered for %s.", e.Family)
	case CodeFamilyMismatch:
		msg = fmt.Sprintf("Value '%s' does not belong to the %s enumeration.", e.Label, e.Family)
	case CodeMissingDisplayName:
		msg = fmt.Sprintf("An enumeration for %s needs a display name.", e.Family)
	case CodeParseError:
		msg = fmt.Sprintf("Cannot read a %s enumeration value:", e.Family)
	default:
		msg = fmt.Sprintf("%s: value '%s' of %s", e.Code, e.Label, e.Family)
	}
	if e.Cause != nil {
		return msg + " " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same Code, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrUnknownLabel       = &Error{Code: CodeUnknownLabel}
	ErrDuplicateLabel     = &Error{Code: CodeDuplicateLabel}
	ErrEmptyLabel         = &Error{Code: CodeEmptyLabel}
	ErrFamilySealed       = &Error{Code: CodeFamilySealed}
	ErrUnknownFamily      = &Error{Code: CodeUnknownFamily}
	ErrDuplicateFamily    = &Error{Code: CodeDuplicateFamily}
	ErrFamilyMismatch     = &Error{Code: CodeFamilyMismatch}
	ErrMissingDisplayName = &Error{Code: CodeMissingDisplayName}
)

func IsUnknownLabel(err error) bool   { return hasCode(err, CodeUnknownLabel) }
func IsDuplicateLabel(err error) bool { return hasCode(err, CodeDuplicateLabel) }
func IsEmptyLabel(err error) bool     { return hasCode(err, CodeEmptyLabel) }
func IsUnknownFamily(err error) bool  { return hasCode(err, CodeUnknownFamily) }

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// Issue represents a single failure inside a batch operation.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"label":"purple",
	// "family":"Color"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_label at /2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
