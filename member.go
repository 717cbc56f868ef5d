package goenum

// Member is a handle on one registered singleton of the family for F. Members
// compare equal with == exactly when they refer to the same singleton. The
// zero Member refers to none.
type Member[F any] struct {
	m *member[F]
	// Keeps Member from being pointer-shaped; go-json otherwise encodes
	// map keys from the raw pointer instead of calling MarshalText.
	_ [0]int
}

type member[F any] struct {
	label  string
	family *Family[F]
}

// Label returns the member's label, its only textual form.
func (m Member[F]) Label() string {
	if m.m == nil {
		return ""
	}
	return m.m.label
}

func (m Member[F]) String() string { return m.Label() }

// GoString renders the member as Family(label) for %#v.
func (m Member[F]) GoString() string {
	if m.m == nil {
		return "goenum.Member{}"
	}
	return m.m.family.name + "(" + m.m.label + ")"
}

// Family returns the owning family, or nil for the zero Member.
func (m Member[F]) Family() *Family[F] {
	if m.m == nil {
		return nil
	}
	return m.m.family
}

// FamilyName returns the display name of the owning family.
func (m Member[F]) FamilyName() string {
	if m.m == nil {
		return ""
	}
	return m.m.family.name
}

// IsZero reports whether m refers to no member.
func (m Member[F]) IsZero() bool { return m.m == nil }

// Ref returns the (family tag, label) pair identifying m on the wire.
func (m Member[F]) Ref() Ref {
	if m.m == nil {
		return Ref{}
	}
	return Ref{Family: m.m.family.tag, Label: m.m.label}
}

// Enum is the family-erased view of a member, returned by Resolve.
type Enum interface {
	Label() string
	FamilyName() string
	Ref() Ref
}

var _ Enum = Member[struct{}]{}

// Ref names a member across families: the family's wire tag and the label.
type Ref struct {
	Family string `json:"family" yaml:"family"`
	Label  string `json:"label" yaml:"label"`
}

func (r Ref) String() string { return r.Family + "(" + r.Label + ")" }

// IsZero reports whether both fields are empty.
func (r Ref) IsZero() bool { return r.Family == "" && r.Label == "" }
