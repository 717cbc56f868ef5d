package goenum

import (
	"errors"
	"iter"
	"log/slog"
	"reflect"

	"github.com/reoring/goenum/internal/registry"
	js "github.com/reoring/goenum/jsonschema"
)

// Family describes one closed enumeration. F is a tag type owned by the
// declaring package; it keeps members of different families apart at compile
// time.
//
// Declare members from package-level variables, then Seal:
//
//	type colorTag struct{}
//	type Color = goenum.Member[colorTag]
//
//	var colors = goenum.MustFamily[colorTag]("Color")
//
//	var (
//		Red   = colors.MustDeclare("red")
//		Green = colors.MustDeclare("green")
//	)
//
//	func init() { colors.Seal() }
type Family[F any] struct {
	name     string
	tag      string
	detached bool
	table    *registry.Table[Member[F]]
	logger   *slog.Logger
}

// NewFamily creates the family for F and registers it in the catalog.
func NewFamily[F any](displayName string, opts ...Option) (*Family[F], error) {
	typ := reflect.TypeFor[F]()
	if displayName == "" {
		return nil, &Error{Code: CodeMissingDisplayName, Family: typ.String()}
	}
	cfg := newFamilyConfig(displayName, opts)
	f := &Family[F]{
		name:     displayName,
		tag:      cfg.tag,
		detached: cfg.detached,
		table:    registry.New[Member[F]](cfg.capacity),
		logger:   cfg.logger.With("family", displayName),
	}
	if !cfg.detached {
		if err := register(typ, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// MustFamily is NewFamily for package-level declarations; it panics on error.
func MustFamily[F any](displayName string, opts ...Option) *Family[F] {
	f, err := NewFamily[F](displayName, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the display name used in error messages.
func (f *Family[F]) Name() string { return f.name }

// Tag returns the wire tag written into Ref values.
func (f *Family[F]) Tag() string { return f.tag }

// Declare registers a new member. Labels must be non-empty and unique within
// the family, and the family must not be sealed.
func (f *Family[F]) Declare(label string) (Member[F], error) {
	if label == "" {
		return Member[F]{}, f.fail(CodeEmptyLabel, label)
	}
	m := Member[F]{m: &member[F]{label: label, family: f}}
	if err := f.table.Append(label, m); err != nil {
		switch {
		case errors.Is(err, registry.ErrSealed):
			return Member[F]{}, f.fail(CodeFamilySealed, label)
		case errors.Is(err, registry.ErrDuplicate):
			return Member[F]{}, f.fail(CodeDuplicateLabel, label)
		}
		return Member[F]{}, err
	}
	f.logger.Debug("declare", "label", label)
	return m, nil
}

// MustDeclare is Declare for package-level declarations; it panics on error.
func (f *Family[F]) MustDeclare(label string) Member[F] {
	m, err := f.Declare(label)
	if err != nil {
		panic(err)
	}
	return m
}

// Seal closes the declaration phase. Later Declare calls fail with
// family_sealed.
func (f *Family[F]) Seal() { f.table.Seal() }

// Sealed reports whether Seal has been called.
func (f *Family[F]) Sealed() bool { return f.table.Sealed() }

// Lookup returns the member labeled label.
func (f *Family[F]) Lookup(label string) (Member[F], error) {
	if m, ok := f.table.Get(label); ok {
		return m, nil
	}
	return Member[F]{}, f.fail(CodeUnknownLabel, label)
}

// MustLookup panics when label is unknown.
func (f *Family[F]) MustLookup(label string) Member[F] {
	m, err := f.Lookup(label)
	if err != nil {
		panic(err)
	}
	return m
}

// Contains reports whether label names a member.
func (f *Family[F]) Contains(label string) bool { return f.table.Has(label) }

// Values returns every member in declaration order. The slice is a fresh copy.
func (f *Family[F]) Values() []Member[F] { return f.table.Values() }

// Labels returns every label in declaration order.
func (f *Family[F]) Labels() []string { return f.table.Keys() }

// All iterates over the members declared at the time of the call.
func (f *Family[F]) All() iter.Seq[Member[F]] {
	all := f.table.All()
	return func(yield func(Member[F]) bool) {
		for _, m := range all {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of members.
func (f *Family[F]) Len() int { return f.table.Len() }

// Canonicalize returns the registered member whose label matches v. Use it on
// values that were materialized without going through the family, for
// example by a decoder that bypasses the Member hooks. A v owned by another
// family of the same type fails with family_mismatch.
func (f *Family[F]) Canonicalize(v Member[F]) (Member[F], error) {
	if owner := v.Family(); owner != nil && owner != f {
		return Member[F]{}, &Error{Code: CodeFamilyMismatch, Family: f.name, Label: v.Label()}
	}
	return f.canonicalize(v.Label())
}

// Resolve returns the member named by ref. ref.Family must equal Tag.
func (f *Family[F]) Resolve(ref Ref) (Member[F], error) {
	if ref.Family != f.tag {
		return Member[F]{}, &Error{Code: CodeFamilyMismatch, Family: f.name, Label: ref.Label}
	}
	return f.canonicalize(ref.Label)
}

// ParseAll resolves labels in order. Every unknown label is reported as an
// Issue at its index.
func (f *Family[F]) ParseAll(labels []string) ([]Member[F], error) {
	out := make([]Member[F], 0, len(labels))
	var iss Issues
	for i, l := range labels {
		m, err := f.Lookup(l)
		if err != nil {
			iss = AppendIssues(iss, IssueAt(IndexPointer(i), err))
			continue
		}
		out = append(out, m)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// JSONSchema projects the family into a string schema listing every label.
func (f *Family[F]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Title: f.name, Enum: f.Labels()}
}

// RefJSONSchema describes the Ref form of this family's members.
func (f *Family[F]) RefJSONSchema() *js.Schema {
	return &js.Schema{
		Type:  "object",
		Title: f.name,
		Properties: map[string]*js.Schema{
			"family": {Type: "string", Enum: []string{f.tag}},
			"label":  f.JSONSchema(),
		},
		Required:             []string{"family", "label"},
		AdditionalProperties: false,
	}
}

func (f *Family[F]) canonicalize(label string) (Member[F], error) {
	f.logger.Debug("canonicalize", "label", label)
	return f.Lookup(label)
}

func (f *Family[F]) fail(code, label string) *Error {
	return &Error{Code: code, Family: f.name, Label: label}
}
