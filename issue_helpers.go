package goenum

import (
	"errors"
	"strconv"

	"github.com/reoring/goenum/i18n"
)

// IssueAt converts err into an Issue at the JSON Pointer path. *Error values
// keep their code and get a localized message; anything else becomes a
// parse_error.
func IssueAt(path string, err error) Issue {
	var e *Error
	if !errors.As(err, &e) {
		return Issue{Path: path, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}
	}
	return Issue{
		Path:    path,
		Code:    e.Code,
		Message: i18n.T(e.Code, map[string]string{"label": e.Label, "family": e.Family}),
		Cause:   err,
		Params:  map[string]any{"label": e.Label, "family": e.Family},
	}
}

// IndexPointer renders the JSON Pointer of a top-level array element.
func IndexPointer(i int) string { return "/" + strconv.Itoa(i) }
