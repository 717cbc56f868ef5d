package goenum

import (
	"bytes"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Every decode hook below stores the registered singleton, never a copy, so a
// decoded member compares equal to the one that was encoded.

var (
	_ encoding.TextMarshaler   = Member[struct{}]{}
	_ encoding.TextUnmarshaler = (*Member[struct{}])(nil)
	_ json.Marshaler           = Member[struct{}]{}
	_ json.Unmarshaler         = (*Member[struct{}])(nil)
	_ yaml.Marshaler           = Member[struct{}]{}
	_ yaml.Unmarshaler         = (*Member[struct{}])(nil)
	_ gob.GobEncoder           = Member[struct{}]{}
	_ gob.GobDecoder           = (*Member[struct{}])(nil)
	_ driver.Valuer            = Member[struct{}]{}
)

func (m Member[F]) MarshalText() ([]byte, error) {
	return []byte(m.Label()), nil
}

// UnmarshalText resolves b to its singleton. Empty text is the zero Member,
// matching what MarshalText writes for it.
func (m *Member[F]) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Member[F]{}
		return nil
	}
	return m.decode(string(b))
}

// MarshalJSON writes the label as a JSON string; the zero Member is null.
func (m Member[F]) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(m.m.label)
}

// UnmarshalJSON accepts a JSON string label. null leaves m unchanged.
func (m *Member[F]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return &Error{Code: CodeParseError, Family: familyName[F](), Cause: err}
	}
	return m.decode(label)
}

func (m Member[F]) MarshalYAML() (any, error) {
	if m.IsZero() {
		return nil, nil
	}
	return m.m.label, nil
}

func (m *Member[F]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil
	}
	var label string
	if err := n.Decode(&label); err != nil {
		return &Error{Code: CodeParseError, Family: familyName[F](), Cause: err}
	}
	return m.decode(label)
}

func (m Member[F]) GobEncode() ([]byte, error) {
	return []byte(m.Label()), nil
}

// GobDecode treats an empty payload as the zero Member.
func (m *Member[F]) GobDecode(b []byte) error {
	if len(b) == 0 {
		*m = Member[F]{}
		return nil
	}
	return m.decode(string(b))
}

// Value stores the label in SQL columns; the zero Member is NULL.
func (m Member[F]) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}
	return m.m.label, nil
}

// Scan reads a label from a string or []byte column. NULL yields the zero
// Member.
func (m *Member[F]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Member[F]{}
		return nil
	case string:
		return m.decode(v)
	case []byte:
		return m.decode(string(v))
	default:
		return &Error{Code: CodeParseError, Family: familyName[F](), Cause: fmt.Errorf("cannot scan %T", src)}
	}
}

// Set implements pflag.Value and flag.Value.
func (m *Member[F]) Set(s string) error { return m.decode(s) }

// Type implements pflag.Value; it reports the family's display name.
func (m Member[F]) Type() string { return familyName[F]() }

func (m *Member[F]) decode(label string) error {
	c, err := canonical[F](label)
	if err != nil {
		return err
	}
	*m = c
	return nil
}
