package snapshot

import (
	"testing"

	"txkv/pkg/memtable"
)

func items(kv ...any) []memtable.Item {
	out := make([]memtable.Item, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, memtable.Item{Key: kv[i].(string), Value: int64(kv[i+1].(int))})
	}
	return out
}

func TestSnapshot_Get(t *testing.T) {
	s := New(3, items("a", 1, "c", 3, "e", 5))

	tests := []struct {
		key   string
		want  int64
		found bool
	}{
		{"a", 1, true},
		{"c", 3, true},
		{"e", 5, true},
		{"b", 0, false},
		{"", 0, false},
		{"z", 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Get(tt.key)
		if ok != tt.found || got != tt.want {
			t.Fatalf("Get(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.found)
		}
	}

	if s.Sequence() != 3 {
		t.Fatalf("expected sequence 3, got %d", s.Sequence())
	}
}

func TestSnapshot_ItemsIsCopy(t *testing.T) {
	s := New(1, items("a", 1))

	got := s.Items()
	got[0].Value = 100

	if v, _ := s.Get("a"); v != 1 {
		t.Fatalf("snapshot mutated through Items(): got %d", v)
	}
}

func TestSnapshot_Equal(t *testing.T) {
	a := New(1, items("a", 1, "b", 2))
	b := New(9, items("a", 1, "b", 2))
	c := New(1, items("a", 1, "b", 3))
	d := New(1, items("a", 1))

	if !a.Equal(b) {
		t.Fatal("expected equal content to compare equal regardless of sequence")
	}
	if a.Equal(c) {
		t.Fatal("expected different values to compare unequal")
	}
	if a.Equal(d) {
		t.Fatal("expected different lengths to compare unequal")
	}
	if !New(0, nil).Equal(New(5, nil)) {
		t.Fatal("expected empty snapshots to be equal")
	}
}
