package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	js "github.com/reoring/goenum/jsonschema"
)

// File is a declaration file: one Go package holding one or more families.
type File struct {
	Package  string   `yaml:"package"`
	Families []Family `yaml:"families"`
}

// Family declares one enumeration.
type Family struct {
	Name   string   `yaml:"name"`           // display name
	Type   string   `yaml:"type,omitempty"` // Go type name; defaults to Name
	Tag    string   `yaml:"tag,omitempty"`  // wire tag; defaults to Name
	Doc    string   `yaml:"doc,omitempty"`
	Values []string `yaml:"values"`
}

// Parse decodes a declaration file. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, errors.New("gen: empty declaration file")
		}
		return File{}, err
	}
	return f, f.Validate()
}

// Validate checks names, labels and generated identifiers.
func (f File) Validate() error {
	if !token.IsIdentifier(f.Package) {
		return fmt.Errorf("gen: invalid package name %q", f.Package)
	}
	if len(f.Families) == 0 {
		return errors.New("gen: no families declared")
	}
	types := map[string]string{}
	taken := map[string]string{} // package-level identifiers emitted so far
	for _, fam := range f.Families {
		if fam.Name == "" {
			return errors.New("gen: family without name")
		}
		typ := fam.TypeName()
		if !token.IsIdentifier(typ) || !token.IsExported(typ) {
			return fmt.Errorf("gen: family %s: type %q is not an exported identifier", fam.Name, typ)
		}
		if prev, ok := types[typ]; ok {
			return fmt.Errorf("gen: families %s and %s share type %s", prev, fam.Name, typ)
		}
		types[typ] = fam.Name
		for _, id := range fam.helperIdents() {
			if owner, ok := taken[id]; ok {
				return fmt.Errorf("gen: family %s: identifier %s already used by %s", fam.Name, id, owner)
			}
			taken[id] = fam.Name
		}
		if strings.ContainsAny(fam.Doc, "\r\n") {
			return fmt.Errorf("gen: family %s: doc must be a single line", fam.Name)
		}
		if len(fam.Values) == 0 {
			return fmt.Errorf("gen: family %s has no values", fam.Name)
		}
		labels := map[string]bool{}
		idents := map[string]string{}
		for _, v := range fam.Values {
			if v == "" {
				return fmt.Errorf("gen: family %s: empty value", fam.Name)
			}
			if labels[v] {
				return fmt.Errorf("gen: family %s: duplicate value %q", fam.Name, v)
			}
			labels[v] = true
			id := fam.MemberIdent(v)
			if !token.IsIdentifier(id) || id == typ {
				return fmt.Errorf("gen: family %s: value %q does not map to an identifier", fam.Name, v)
			}
			if prev, ok := idents[id]; ok {
				return fmt.Errorf("gen: family %s: values %q and %q both map to %s", fam.Name, prev, v, id)
			}
			idents[id] = v
			if owner, ok := taken[id]; ok {
				return fmt.Errorf("gen: family %s: identifier %s already used by %s", fam.Name, id, owner)
			}
			taken[id] = fam.Name
		}
	}
	return nil
}

// TypeName returns the Go type name for the family.
func (f Family) TypeName() string {
	if f.Type != "" {
		return f.Type
	}
	return exportedIdent(f.Name)
}

// TagName returns the wire tag, or "" when it equals the display name.
func (f Family) TagName() string {
	if f.Tag == f.Name {
		return ""
	}
	return f.Tag
}

func (f Family) helperIdents() []string {
	t := f.TypeName()
	return []string{t, "Parse" + t, t + "Values"}
}

// MemberIdent returns the exported variable name for label, prefixed with the
// type name: Color + "dark-red" -> ColorDarkRed.
func (f Family) MemberIdent(label string) string {
	return f.TypeName() + exportedIdent(label)
}

// Schema returns the JSON Schema of the family's labels.
func (f Family) Schema() *js.Schema {
	return &js.Schema{Type: "string", Title: f.Name, Description: f.Doc, Enum: append([]string(nil), f.Values...)}
}

// Schema returns a document with one definition per family.
func (f File) Schema() *js.Schema {
	defs := make(map[string]*js.Schema, len(f.Families))
	for _, fam := range f.Families {
		defs[fam.TypeName()] = fam.Schema()
	}
	return &js.Schema{Title: f.Package, Defs: defs}
}

// exportedIdent joins the letter and digit runs of s in CamelCase.
func exportedIdent(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
