package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestTable_AppendAndGet(t *testing.T) {
	tb := New[int](2)
	for i, k := range []string{"a", "b", "c"} {
		if err := tb.Append(k, i); err != nil {
			t.Fatalf("append %s: %v", k, err)
		}
	}
	if got := tb.Len(); got != 3 {
		t.Fatalf("len=%d", got)
	}
	if v, ok := tb.Get("b"); !ok || v != 1 {
		t.Fatalf("get b = %v %v", v, ok)
	}
	if _, ok := tb.Get("z"); ok {
		t.Fatalf("unexpected hit for z")
	}
	if !tb.Has("c") || tb.Has("z") {
		t.Fatalf("has mismatch")
	}
}

func TestTable_DuplicateKey(t *testing.T) {
	tb := New[string](0)
	if err := tb.Append("x", "first"); err != nil {
		t.Fatal(err)
	}
	if err := tb.Append("x", "second"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if v, _ := tb.Get("x"); v != "first" {
		t.Fatalf("value replaced: %q", v)
	}
}

func TestTable_Seal(t *testing.T) {
	tb := New[int](0)
	_ = tb.Append("a", 1)
	tb.Seal()
	tb.Seal()
	if !tb.Sealed() {
		t.Fatalf("expected sealed")
	}
	if err := tb.Append("b", 2); !errors.Is(err, ErrSealed) {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
	if tb.Len() != 1 {
		t.Fatalf("len changed after seal")
	}
}

func TestTable_GrowsPastCapacityInOrder(t *testing.T) {
	tb := New[int](10)
	for i := 0; i < 25; i++ {
		if err := tb.Append(fmt.Sprintf("k%d", i), i); err != nil {
			t.Fatal(err)
		}
	}
	vals := tb.Values()
	keys := tb.Keys()
	for i := 0; i < 25; i++ {
		if vals[i] != i || keys[i] != fmt.Sprintf("k%d", i) {
			t.Fatalf("order broken at %d: %v %v", i, keys[i], vals[i])
		}
	}
}

func TestTable_ValuesIsCopy(t *testing.T) {
	tb := New[int](0)
	_ = tb.Append("a", 1)
	_ = tb.Append("b", 2)
	v := tb.Values()
	v[0] = 99
	_ = append(v, 100)
	if again := tb.Values(); again[0] != 1 || len(again) != 2 {
		t.Fatalf("table affected by caller mutation: %v", again)
	}
}

func TestTable_SnapshotIterationIgnoresLaterAppends(t *testing.T) {
	tb := New[int](0)
	_ = tb.Append("a", 1)
	seq := tb.All()
	_ = tb.Append("b", 2)
	n := 0
	for range seq {
		n++
	}
	if n != 1 {
		t.Fatalf("iterated %d entries, want 1", n)
	}
}

func TestTable_ConcurrentAppendAndRead(t *testing.T) {
	tb := New[int](0)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = tb.Append(fmt.Sprintf("w%d-%d", w, i), i)
				for k, v := range tb.All() {
					if got, ok := tb.Get(k); !ok || got != v {
						t.Errorf("inconsistent read for %s", k)
						return
					}
				}
			}
		}(w)
	}
	wg.Wait()
	if tb.Len() != 200 {
		t.Fatalf("len=%d", tb.Len())
	}
}
