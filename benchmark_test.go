package goenum_test

import (
	"testing"

	"github.com/goccy/go-json"
)

func BenchmarkLookup(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := eleven.Lookup("v07"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValues(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = eleven.Values()
	}
}

func BenchmarkUnmarshalJSON(b *testing.B) {
	data := []byte(`{"color":"green","palette":["red","blue"]}`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var p paint
		if err := json.Unmarshal(data, &p); err != nil {
			b.Fatal(err)
		}
	}
}
