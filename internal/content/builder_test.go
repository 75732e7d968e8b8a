package content

import (
	"slices"
	"testing"
)

func TestBuilder_SkipsEmptyAndSnapshots(t *testing.T) {
	b := NewBuilder(4, false)
	defer b.Close()

	b.AddString("Hello")
	b.Add(Empty)
	b.AddString("")
	first := b.Content()
	b.AddString(" World")

	if got := first.String(); got != "Hello" {
		t.Errorf("earlier snapshot changed: %q", got)
	}
	if got := b.Content().String(); got != "Hello World" {
		t.Errorf("builder content = %q", got)
	}
	if b.Len() != len("Hello World") {
		t.Errorf("builder Len = %d", b.Len())
	}
}

func TestBuilder_FlattenInlinesLeaves(t *testing.T) {
	nested := Concat(New("a"), Concat(New("b"), New("c")))

	flat := NewBuilder(0, true)
	defer flat.Close()
	flat.Add(nested)
	flat.AddString("d")

	got := slices.Collect(flat.Content().Parts())
	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("flattened parts = %v, want %v", got, want)
	}

	deep := NewBuilder(0, false)
	defer deep.Close()
	deep.Add(nested)
	deep.AddString("d")
	if !deep.Content().Equal(flat.Content()) {
		t.Errorf("flatten mode must not change the logical value")
	}
}

func TestBuilder_CloseIdempotent(t *testing.T) {
	b := NewBuilder(2, false)
	b.AddString("x")
	b.Close()
	b.Close()
	if b.Len() != 0 {
		t.Errorf("closed builder should be empty")
	}
}

func TestJoin_SkipsEmptyElements(t *testing.T) {
	parts := []Content{New("a"), Empty, New("b"), New(""), New("c")}
	if got := Join(New(", "), parts).String(); got != "a, b, c" {
		t.Errorf("Join = %q, want %q", got, "a, b, c")
	}
	if got := Join(New(", "), nil); !got.IsEmpty() {
		t.Errorf("Join of nothing should be empty")
	}
	if got := JoinStrings("/", []string{"", "x", "", "y"}).String(); got != "x/y" {
		t.Errorf("JoinStrings = %q, want x/y", got)
	}
}

func TestJoinSeq(t *testing.T) {
	seq := func(yield func(Content) bool) {
		for _, s := range []string{"p", "", "q"} {
			if !yield(New(s)) {
				return
			}
		}
	}
	if got := JoinSeq(New("-"), seq).String(); got != "p-q" {
		t.Errorf("JoinSeq = %q, want p-q", got)
	}
}
