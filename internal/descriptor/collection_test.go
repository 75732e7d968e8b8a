package descriptor

import (
	"slices"
	"testing"
)

func helper(name string) *TagHelper {
	return NewTagHelper(name, false, false, &Rule{TagName: name})
}

func TestNew_DedupAndOrder(t *testing.T) {
	a, b := helper("a"), helper("b")
	c := New(a, b, a)
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.At(0) != a || c.At(1) != b {
		t.Errorf("order not first-seen: [%s %s]", c.At(0).Name, c.At(1).Name)
	}
}

func TestNew_EmptyReturnsSingleton(t *testing.T) {
	if New() != Empty {
		t.Errorf("New() must return the Empty singleton, not a fresh value")
	}
	if !Empty.IsEmpty() || Empty.Len() != 0 {
		t.Errorf("Empty misreports its size")
	}
}

func TestNew_DistinctInstancesAreDistinct(t *testing.T) {
	// Identity is per instance, not per name.
	a1, a2 := helper("a"), helper("a")
	c := New(a1, a2)
	if c.Len() != 2 {
		t.Errorf("two instances with the same name are still two descriptors")
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	c := New(helper("a"))
	for _, i := range []int{-1, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) should panic", i)
				}
			}()
			c.At(i)
		}()
	}
}

func TestIndexOfContains(t *testing.T) {
	a, b, x := helper("a"), helper("b"), helper("x")
	c := New(a, b)
	if got := c.IndexOf(b); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := c.IndexOf(x); got != -1 {
		t.Errorf("IndexOf(absent) = %d, want -1", got)
	}
	if !c.Contains(a) || c.Contains(x) {
		t.Errorf("Contains misreported")
	}
}

func TestCopyTo(t *testing.T) {
	a, b := helper("a"), helper("b")
	c := New(a, b)
	dst := make([]*TagHelper, 3)
	c.CopyTo(dst)
	if dst[0] != a || dst[1] != b {
		t.Errorf("CopyTo wrote wrong items")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("CopyTo into a short destination should panic")
			}
		}()
		c.CopyTo(make([]*TagHelper, 1))
	}()
}

func TestEqualHash_AcrossRepresentations(t *testing.T) {
	a, b, c := helper("a"), helper("b"), helper("c")
	flat := New(a, b, c)
	merged := Merge(New(a), New(b, c))
	if !flat.Equal(merged) {
		t.Fatalf("flat and merged with equal contents must be Equal")
	}
	if flat.Hash() != merged.Hash() {
		t.Errorf("equal collections must hash identically")
	}
	if flat.Equal(New(a, c, b)) {
		t.Errorf("order matters for equality")
	}
	if flat.Equal(New(a, b)) {
		t.Errorf("different counts must not be equal")
	}
}

func TestAll_WalksSegments(t *testing.T) {
	a, b, c, d := helper("a"), helper("b"), helper("c"), helper("d")
	m := Merge(Merge(New(a), New(b, c)), New(d))
	var names []string
	for h := range m.All() {
		names = append(names, h.Name)
	}
	if !slices.Equal(names, []string{"a", "b", "c", "d"}) {
		t.Errorf("All order = %v", names)
	}
	// Indexing resolves through nested segments.
	for i, want := range []*TagHelper{a, b, c, d} {
		if m.At(i) != want {
			t.Errorf("At(%d) = %s, want %s", i, m.At(i).Name, want.Name)
		}
	}
}

func TestCollect(t *testing.T) {
	a, b := helper("a"), helper("b")
	seq := func(yield func(*TagHelper) bool) {
		for _, d := range []*TagHelper{a, b, a} {
			if !yield(d) {
				return
			}
		}
	}
	c := Collect(seq)
	if c.Len() != 2 || c.At(0) != a || c.At(1) != b {
		t.Errorf("Collect should dedupe preserving order")
	}
}
