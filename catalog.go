package goenum

import (
	"reflect"
	"sync"
)

// catalogEntry is the family-erased record kept for every registered family.
type catalogEntry struct {
	name    string
	tag     string
	family  any // *Family[F]
	resolve func(label string) (Enum, error)
}

var catalog = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*catalogEntry
	byTag  map[string]*catalogEntry
	order  []string
}{
	byType: map[reflect.Type]*catalogEntry{},
	byTag:  map[string]*catalogEntry{},
}

func register[F any](typ reflect.Type, f *Family[F]) error {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if prev, ok := catalog.byType[typ]; ok {
		return &Error{Code: CodeDuplicateFamily, Family: prev.name}
	}
	if _, ok := catalog.byTag[f.tag]; ok {
		return &Error{Code: CodeDuplicateFamily, Family: f.tag}
	}
	e := &catalogEntry{
		name:   f.name,
		tag:    f.tag,
		family: f,
		resolve: func(label string) (Enum, error) {
			m, err := f.canonicalize(label)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
	catalog.byType[typ] = e
	catalog.byTag[f.tag] = e
	catalog.order = append(catalog.order, f.tag)
	return nil
}

// FamilyOf returns the registered family for tag type F.
func FamilyOf[F any]() (*Family[F], error) {
	typ := reflect.TypeFor[F]()
	catalog.mu.RLock()
	e, ok := catalog.byType[typ]
	catalog.mu.RUnlock()
	if !ok {
		return nil, &Error{Code: CodeUnknownFamily, Family: typ.String()}
	}
	return e.family.(*Family[F]), nil
}

// Lookup finds label in the registered family for F.
func Lookup[F any](label string) (Member[F], error) {
	f, err := FamilyOf[F]()
	if err != nil {
		return Member[F]{}, err
	}
	return f.Lookup(label)
}

// Resolve returns the canonical member named by ref from whichever registered
// family carries ref.Family as its tag.
func Resolve(ref Ref) (Enum, error) {
	catalog.mu.RLock()
	e, ok := catalog.byTag[ref.Family]
	catalog.mu.RUnlock()
	if !ok {
		return nil, &Error{Code: CodeUnknownFamily, Family: ref.Family, Label: ref.Label}
	}
	return e.resolve(ref.Label)
}

// Families returns the tags of all registered families in registration order.
func Families() []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	out := make([]string, len(catalog.order))
	copy(out, catalog.order)
	return out
}

// canonical resolves label in the registered family for F. Every decode hook
// goes through here.
func canonical[F any](label string) (Member[F], error) {
	f, err := FamilyOf[F]()
	if err != nil {
		return Member[F]{}, err
	}
	return f.canonicalize(label)
}

// familyName reports the display name for F, falling back to the type name
// when no family is registered.
func familyName[F any]() string {
	if f, err := FamilyOf[F](); err == nil {
		return f.name
	}
	return reflect.TypeFor[F]().String()
}
