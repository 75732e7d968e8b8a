package content

import (
	"fmt"
	"strings"
)

// Insert returns a new value with v inserted at the given byte offset. The
// original is untouched and its text is shared, not copied. Panics if index
// is out of range.
func (c Content) Insert(index int, v Content) Content {
	if index < 0 || index > c.length {
		panic(fmt.Sprintf("content: insert index %d out of range for length %d", index, c.length))
	}
	if v.length == 0 {
		return c
	}
	switch index {
	case 0:
		return Concat(v, c)
	case c.length:
		return Concat(c, v)
	}
	return Concat(c.Slice(0, index), v, c.Slice(index, c.length-index))
}

// Remove returns a new value with [start, start+count) removed. Panics if the
// range is invalid.
func (c Content) Remove(start, count int) Content {
	if start < 0 || count < 0 || start > c.length || start+count > c.length {
		panic(fmt.Sprintf("content: remove range [%d:%d] out of range for length %d", start, start+count, c.length))
	}
	if count == 0 {
		return c
	}
	return Concat(c.Slice(0, start), c.Slice(start+count, c.length-start-count))
}

// Replace returns a new value with every occurrence of old replaced by new.
// Matching is non-overlapping left to right: a match consumes its full length
// before the search resumes, so replacing "aaa" in "aaaa" yields one match.
// Matches spanning leaf boundaries are found. Panics if old is empty.
func (c Content) Replace(old, new string) Content { return c.replace(old, new, false) }

// ReplaceFold is Replace under ASCII case folding of the search value.
func (c Content) ReplaceFold(old, new string) Content { return c.replace(old, new, true) }

func (c Content) replace(old, new string, fold bool) Content {
	if old == "" {
		panic("content: empty search value in Replace")
	}
	if len(old) > c.length {
		return c
	}
	leaves := c.leafSpans()
	var matches []int
	li, off := 0, 0
	for pos := 0; pos+len(old) <= c.length; {
		if matchAt(leaves, li, off, old, fold) {
			matches = append(matches, pos)
			li, off = advanceCursor(leaves, li, off, len(old))
			pos += len(old)
			continue
		}
		li, off = advanceCursor(leaves, li, off, 1)
		pos++
	}
	if len(matches) == 0 {
		return c
	}
	repl := New(new)
	out := make([]Content, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		if m > prev {
			out = append(out, c.Slice(prev, m-prev))
		}
		out = append(out, repl)
		prev = m + len(old)
	}
	if prev < c.length {
		out = append(out, c.Slice(prev, c.length-prev))
	}
	return Concat(out...)
}

// ReplaceByte returns a new value with every occurrence of old replaced by
// new. Leaves without a match are shared unchanged.
func (c Content) ReplaceByte(old, new byte) Content {
	if c.length == 0 {
		return c
	}
	changed := false
	out := make([]Content, 0, 4)
	for p := range c.NonEmptyParts() {
		if strings.IndexByte(p, old) < 0 {
			out = append(out, Content{text: p, length: len(p)})
			continue
		}
		changed = true
		rewritten := strings.ReplaceAll(p, string([]byte{old}), string([]byte{new}))
		out = append(out, New(rewritten))
	}
	if !changed {
		return c
	}
	return Concat(out...)
}
