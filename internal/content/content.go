// Package content provides an immutable text value with structural sharing.
//
// A Content is either empty, a single contiguous span of text, or an ordered
// tree of parts. Mutating operations return new values that share the backing
// text of unmodified ranges, so source fragments can be assembled, sliced and
// edited without eager concatenation. Equality, hashing and enumeration are
// defined over the flattened byte sequence only; how a value happens to be
// partitioned is never observable.
//
// All offsets and lengths are byte offsets into the UTF-8 text.
package content

import (
	"fmt"
	"iter"
	"strings"
)

// Content is an immutable text value. The zero value is empty. Compare with
// Equal, not ==.
type Content struct {
	text   string    // leaf text; set only when parts is nil
	parts  []Content // child parts; nil for leaves
	length int       // cached total byte length of the subtree
}

// Empty is the empty content value.
var Empty = Content{}

// New returns content backed by s without copying it.
func New(s string) Content {
	if s == "" {
		return Empty
	}
	return Content{text: s, length: len(s)}
}

// Concat combines parts into one value. Empty parts are dropped; zero
// remaining parts collapse to Empty and a single remaining part is returned
// as-is. No text is copied.
func Concat(parts ...Content) Content {
	kept := make([]Content, 0, len(parts))
	total := 0
	for _, p := range parts {
		if p.length == 0 {
			continue
		}
		kept = append(kept, p)
		total += p.length
	}
	switch len(kept) {
	case 0:
		return Empty
	case 1:
		return kept[0]
	}
	return Content{parts: kept, length: total}
}

// IsEmpty reports whether the content has length zero.
func (c Content) IsEmpty() bool { return c.length == 0 }

// IsSingle reports whether the content is one contiguous non-empty span.
func (c Content) IsSingle() bool { return c.parts == nil && c.length > 0 }

// IsMulti reports whether the content is composed of multiple parts.
func (c Content) IsMulti() bool { return c.parts != nil }

// Len returns the total byte length. It reads cached subtree lengths and
// never re-scans text.
func (c Content) Len() int { return c.length }

// Parts iterates the leaf spans depth-first, left to right, including
// zero-length leaves. The sequence is restartable.
func (c Content) Parts() iter.Seq[string] {
	return func(yield func(string) bool) {
		stack := []Content{c}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.parts == nil {
				if !yield(n.text) {
					return
				}
				continue
			}
			for i := len(n.parts) - 1; i >= 0; i-- {
				stack = append(stack, n.parts[i])
			}
		}
	}
}

// NonEmptyParts is Parts with zero-length leaves filtered out.
func (c Content) NonEmptyParts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for p := range c.Parts() {
			if p == "" {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Bytes iterates the flattened byte sequence. The result is independent of
// how the content is partitioned.
func (c Content) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for p := range c.NonEmptyParts() {
			for i := 0; i < len(p); i++ {
				if !yield(p[i]) {
					return
				}
			}
		}
	}
}

// String flattens the content into a single string.
func (c Content) String() string {
	if c.parts == nil {
		return c.text
	}
	var b strings.Builder
	b.Grow(c.length)
	for p := range c.NonEmptyParts() {
		b.WriteString(p)
	}
	return b.String()
}

// Equal reports whether c and o flatten to the same byte sequence,
// regardless of partitioning. Leaf boundaries of the two values need not
// line up; comparison carries the unconsumed remainder of the longer leaf
// into the next step.
func (c Content) Equal(o Content) bool {
	if c.length != o.length {
		return false
	}
	if c.length == 0 {
		return true
	}
	next1, stop1 := iter.Pull(c.NonEmptyParts())
	defer stop1()
	next2, stop2 := iter.Pull(o.NonEmptyParts())
	defer stop2()
	var s1, s2 string
	for {
		if s1 == "" {
			v, ok := next1()
			if !ok {
				// Equal totals: the other side is exhausted too.
				return true
			}
			s1 = v
		}
		if s2 == "" {
			s2, _ = next2()
		}
		n := min(len(s1), len(s2))
		if s1[:n] != s2[:n] {
			return false
		}
		s1, s2 = s1[n:], s2[n:]
	}
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns an FNV-1a hash of the flattened byte sequence. Equal values
// hash identically regardless of partitioning; empty content always hashes
// to the FNV offset basis.
func (c Content) Hash() uint64 {
	h := uint64(fnvOffset64)
	for p := range c.NonEmptyParts() {
		for i := 0; i < len(p); i++ {
			h ^= uint64(p[i])
			h *= fnvPrime64
		}
	}
	return h
}

// Slice returns the content covering [start, start+length). It panics if the
// bounds are invalid. Unrelated parts are skipped via cached subtree lengths,
// and the result shares the backing text of the leaves it touches.
func (c Content) Slice(start, length int) Content {
	if start < 0 || length < 0 || start > c.length || start+length > c.length {
		panic(fmt.Sprintf("content: slice bounds [%d:%d] out of range for length %d", start, start+length, c.length))
	}
	if length == 0 {
		return Empty
	}
	if start == 0 && length == c.length {
		return c
	}
	if c.parts == nil {
		return Content{text: c.text[start : start+length], length: length}
	}
	end := start + length
	out := make([]Content, 0, 4)
	pos := 0
	stack := []Content{c}
	for len(stack) > 0 && pos < end {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pos+n.length <= start {
			pos += n.length
			continue
		}
		if n.parts != nil {
			for i := len(n.parts) - 1; i >= 0; i-- {
				stack = append(stack, n.parts[i])
			}
			continue
		}
		lo := max(0, start-pos)
		hi := min(n.length, end-pos)
		out = append(out, Content{text: n.text[lo:hi], length: hi - lo})
		pos += n.length
	}
	return Concat(out...)
}

// leafSpans collects the non-empty leaf spans in order. Search and edit
// operations use it as a flat cursor base.
func (c Content) leafSpans() []string {
	if c.parts == nil {
		if c.length == 0 {
			return nil
		}
		return []string{c.text}
	}
	spans := make([]string, 0, len(c.parts))
	for p := range c.NonEmptyParts() {
		spans = append(spans, p)
	}
	return spans
}
