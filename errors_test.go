package goenum_test

import (
	"errors"
	"fmt"
	"testing"

	goenum "github.com/reoring/goenum"
)

func TestError_MessagesPerCode(t *testing.T) {
	cases := []struct {
		err  *goenum.Error
		want string
	}{
		{&goenum.Error{Code: goenum.CodeUnknownLabel, Family: "Color", Label: "purple"}, "Value 'purple' is not a valid Color enumeration value."},
		{&goenum.Error{Code: goenum.CodeDuplicateLabel, Family: "G", Label: "A"}, "Value 'A' is already declared in the G enumeration."},
		{&goenum.Error{Code: goenum.CodeEmptyLabel, Family: "G"}, "The G enumeration does not accept an empty value."},
		{&goenum.Error{Code: goenum.CodeFamilySealed, Family: "Color", Label: "x"}, "Value 'x' cannot be declared: the Color enumeration is sealed."},
		{&goenum.Error{Code: goenum.CodeUnknownFamily, Family: "Nope"}, "No enumeration is registered for Nope."},
		{&goenum.Error{Code: goenum.CodeParseError, Family: "Color", Cause: errors.New("boom")}, "Cannot read a Color enumeration value: boom"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.err.Code, got, tc.want)
		}
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("loading palette: %w", &goenum.Error{Code: goenum.CodeUnknownLabel, Family: "Color", Label: "x"})
	if !errors.Is(wrapped, goenum.ErrUnknownLabel) {
		t.Fatalf("wrapped error should match sentinel")
	}
	if errors.Is(wrapped, goenum.ErrDuplicateLabel) {
		t.Fatalf("different code must not match")
	}
	cause := errors.New("root")
	e := &goenum.Error{Code: goenum.CodeParseError, Cause: cause}
	if !errors.Is(e, cause) {
		t.Fatalf("cause not unwrapped")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	var iss goenum.Issues
	if iss.Error() != "" {
		t.Fatalf("empty issues should render empty")
	}
	for i := 0; i < 5; i++ {
		iss = goenum.AppendIssues(iss, goenum.Issue{Path: goenum.IndexPointer(i), Code: goenum.CodeUnknownLabel})
	}
	want := "unknown_label at /0; unknown_label at /1; unknown_label at /2; ... (total 5)"
	if got := iss.Error(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if _, ok := goenum.AsIssues(fmt.Errorf("wrap: %w", iss)); !ok {
		t.Fatalf("AsIssues failed through wrapping")
	}
	if _, ok := goenum.AsIssues(nil); ok {
		t.Fatalf("AsIssues(nil) should be false")
	}
}

func TestIssueAt_NonEnumError(t *testing.T) {
	is := goenum.IssueAt("/", errors.New("bad input"))
	if is.Code != goenum.CodeParseError || is.Message != "parse error" {
		t.Fatalf("unexpected issue %+v", is)
	}
}
