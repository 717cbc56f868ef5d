package goenum_test

import (
	"slices"
	"testing"

	"github.com/goccy/go-json"

	goenum "github.com/reoring/goenum"
)

func TestCatalog_LookupByTagType(t *testing.T) {
	got, err := goenum.Lookup[colorTag]("blue")
	if err != nil || got != Blue {
		t.Fatalf("lookup: %v %v", got, err)
	}
	f, err := goenum.FamilyOf[directionTag]()
	if err != nil || f != directions {
		t.Fatalf("family of directionTag: %v %v", f, err)
	}
	type missingTag struct{}
	if _, err := goenum.Lookup[missingTag]("x"); !goenum.IsUnknownFamily(err) {
		t.Fatalf("expected unknown_family, got %v", err)
	}
}

func TestCatalog_FamiliesInRegistrationOrder(t *testing.T) {
	tags := goenum.Families()
	for _, want := range []string{"Color", "Direction", "compass.Color", "G", "Eleven"} {
		if !slices.Contains(tags, want) {
			t.Fatalf("missing %q in %v", want, tags)
		}
	}
	if slices.Index(tags, "Color") > slices.Index(tags, "Direction") {
		t.Fatalf("registration order lost: %v", tags)
	}
	if slices.Contains(tags, "Detached") {
		t.Fatalf("detached family leaked into the catalog")
	}
}

func TestCatalog_ResolveAcrossFamilies(t *testing.T) {
	for _, e := range []goenum.Enum{Red, West, CompassN, FX} {
		got, err := goenum.Resolve(e.Ref())
		if err != nil {
			t.Fatalf("resolve %v: %v", e.Ref(), err)
		}
		if got != e {
			t.Fatalf("resolve %v returned %v", e.Ref(), got.Ref())
		}
		if got.FamilyName() != e.FamilyName() {
			t.Fatalf("family name mismatch")
		}
	}
}

func TestFamily_JSONSchema(t *testing.T) {
	b, err := json.Marshal(colors.JSONSchema())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"string","title":"Color","enum":["red","green","blue"]}` {
		t.Fatalf("schema=%s", b)
	}
	ref := compassColors.RefJSONSchema()
	if ref.Properties["family"].Enum[0] != "compass.Color" || len(ref.Required) != 2 {
		t.Fatalf("ref schema=%+v", ref)
	}
	if ref.AdditionalProperties != false {
		t.Fatalf("additionalProperties should be false")
	}
}
