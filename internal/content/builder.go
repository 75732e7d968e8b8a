package content

import "iter"

// Builder accumulates parts into a Content value. It is not safe for
// concurrent use; the expected lifetime is one scan or assembly pass, after
// which Close releases the backing storage.
type Builder struct {
	parts   []Content
	length  int
	flatten bool
}

// NewBuilder returns a builder with room for sizeHint parts. In flatten mode
// nested multi-part values are inlined leaf by leaf instead of nested whole.
func NewBuilder(sizeHint int, flatten bool) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{parts: make([]Content, 0, sizeHint), flatten: flatten}
}

// Add appends a value. Empty values are skipped.
func (b *Builder) Add(c Content) {
	if c.length == 0 {
		return
	}
	if b.flatten && c.parts != nil {
		for p := range c.NonEmptyParts() {
			b.parts = append(b.parts, Content{text: p, length: len(p)})
		}
	} else {
		b.parts = append(b.parts, c)
	}
	b.length += c.length
}

// AddString appends a string. Empty strings are skipped.
func (b *Builder) AddString(s string) { b.Add(New(s)) }

// Len returns the total byte length accumulated so far.
func (b *Builder) Len() int { return b.length }

// Content snapshots the accumulated parts into an immutable value. It may be
// called repeatedly; later Adds do not affect earlier snapshots.
func (b *Builder) Content() Content {
	return Concat(b.parts...)
}

// Close releases the backing storage. Calling it more than once is a no-op,
// and the builder is reusable afterwards (it simply starts empty again).
func (b *Builder) Close() {
	b.parts = nil
	b.length = 0
}

// Join concatenates parts with sep between consecutive non-empty elements.
// Empty elements are skipped entirely, so they produce no leading, trailing
// or doubled separators.
func Join(sep Content, parts []Content) Content {
	b := NewBuilder(2*len(parts), false)
	defer b.Close()
	for _, p := range parts {
		appendJoined(b, sep, p)
	}
	return b.Content()
}

// JoinStrings is Join over raw strings.
func JoinStrings(sep string, parts []string) Content {
	b := NewBuilder(2*len(parts), false)
	defer b.Close()
	s := New(sep)
	for _, p := range parts {
		appendJoined(b, s, New(p))
	}
	return b.Content()
}

// JoinSeq is Join over a lazily enumerated sequence whose size is not known
// up front.
func JoinSeq(sep Content, parts iter.Seq[Content]) Content {
	b := NewBuilder(0, false)
	defer b.Close()
	for p := range parts {
		appendJoined(b, sep, p)
	}
	return b.Content()
}

func appendJoined(b *Builder, sep, p Content) {
	if p.length == 0 {
		return
	}
	if b.length > 0 {
		b.Add(sep)
	}
	b.Add(p)
}
