package descriptor

import "testing"

func TestMerge_EmptySideIsIdentity(t *testing.T) {
	c := New(helper("a"))
	if Merge(Empty, c) != c {
		t.Errorf("Merge(Empty, c) must return c itself")
	}
	if Merge(c, Empty) != c {
		t.Errorf("Merge(c, Empty) must return c itself")
	}
	if Merge(Empty, Empty) != Empty {
		t.Errorf("Merge of empties must return the Empty singleton")
	}
}

func TestMerge_DedupAcrossInputs(t *testing.T) {
	a, b := helper("a"), helper("b")
	m := Merge(New(a), New(a, b))
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if m.At(0) != a || m.At(1) != b {
		t.Errorf("merge order should be first-seen")
	}
	if !m.Equal(New(a, b)) {
		t.Errorf("merged result must equal the flat construction")
	}
}

func TestMerge_FullyOverlappingReturnsLeft(t *testing.T) {
	a, b := helper("a"), helper("b")
	left := New(a, b)
	if got := Merge(left, New(b, a)); got != left {
		t.Errorf("a merge adding nothing must return the left side itself")
	}
}

func TestMerge_DisjointSharesSegments(t *testing.T) {
	a, b, c := helper("a"), helper("b"), helper("c")
	left, right := New(a), New(b, c)
	m := Merge(left, right)
	if m.segs == nil {
		t.Fatalf("disjoint merge should produce a segmented collection")
	}
	if m.segs[0] != left || m.segs[1] != right {
		t.Errorf("disjoint merge should reference the inputs wholesale")
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
}

func TestMergeAll_MatchesPairwiseMerges(t *testing.T) {
	a, b, c, d := helper("a"), helper("b"), helper("c"), helper("d")
	x := New(a, b)
	y := New(b, c)
	z := New(c, d, a)

	pairwise := Merge(Merge(x, y), z)
	batch := MergeAll(x, y, z)
	if !pairwise.Equal(batch) {
		t.Errorf("MergeAll must observe the same sequence as folded Merge")
	}
	if !batch.Equal(New(a, b, c, d)) {
		t.Errorf("first occurrence across input order must win")
	}
}

func TestMergeAll_Degenerate(t *testing.T) {
	if MergeAll() != Empty {
		t.Errorf("MergeAll() must return the Empty singleton")
	}
	c := New(helper("a"))
	if MergeAll(nil, Empty, c) != c {
		t.Errorf("a single surviving input must be returned unchanged")
	}
}

func TestMergeAll_TripleRepeatKeepsFirstPosition(t *testing.T) {
	a, b, c := helper("a"), helper("b"), helper("c")
	m := MergeAll(New(b, a), New(a, c), New(c, a))
	if !m.Equal(New(b, a, c)) {
		var names []string
		for d := range m.All() {
			names = append(names, d.Name)
		}
		t.Errorf("repeat across three inputs: order = %v, want [b a c]", names)
	}
}
