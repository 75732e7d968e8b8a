package content

import "strings"

// IndexByte returns the byte offset of the first occurrence of ch, or -1.
func (c Content) IndexByte(ch byte) int {
	base := 0
	for p := range c.NonEmptyParts() {
		if i := strings.IndexByte(p, ch); i >= 0 {
			return base + i
		}
		base += len(p)
	}
	return -1
}

// IndexAny returns the byte offset of the first byte present in chars, or -1.
func (c Content) IndexAny(chars string) int {
	if chars == "" {
		return -1
	}
	base := 0
	for p := range c.NonEmptyParts() {
		if i := strings.IndexAny(p, chars); i >= 0 {
			return base + i
		}
		base += len(p)
	}
	return -1
}

// IndexAnyExcept returns the byte offset of the first byte not present in
// chars, or -1 if every byte is in chars. An empty chars set excludes
// nothing, so any non-empty content reports offset 0; this is the fast path
// for "is this all whitespace" style checks.
func (c Content) IndexAnyExcept(chars string) int {
	if chars == "" {
		if c.length == 0 {
			return -1
		}
		return 0
	}
	base := 0
	for p := range c.NonEmptyParts() {
		for i := 0; i < len(p); i++ {
			if strings.IndexByte(chars, p[i]) < 0 {
				return base + i
			}
		}
		base += len(p)
	}
	return -1
}

// Index returns the byte offset of the first occurrence of substr, or -1.
// An empty substr matches at offset 0. Matches may span leaf boundaries.
func (c Content) Index(substr string) int { return c.index(substr, false) }

// IndexFold is Index under ASCII case folding.
func (c Content) IndexFold(substr string) int { return c.index(substr, true) }

// Contains reports whether substr occurs in the content.
func (c Content) Contains(substr string) bool { return c.Index(substr) >= 0 }

// ContainsFold is Contains under ASCII case folding.
func (c Content) ContainsFold(substr string) bool { return c.IndexFold(substr) >= 0 }

// ContainsByte reports whether ch occurs in the content.
func (c Content) ContainsByte(ch byte) bool { return c.IndexByte(ch) >= 0 }

// ContainsAny reports whether any byte in chars occurs in the content.
func (c Content) ContainsAny(chars string) bool { return c.IndexAny(chars) >= 0 }

// ContainsAnyExcept reports whether any byte outside chars occurs in the
// content. With an empty chars set this is true for any non-empty content.
func (c Content) ContainsAnyExcept(chars string) bool { return c.IndexAnyExcept(chars) >= 0 }

func (c Content) index(substr string, fold bool) int {
	if substr == "" {
		return 0
	}
	if len(substr) > c.length {
		return -1
	}
	leaves := c.leafSpans()
	li, off := 0, 0
	for pos := 0; pos+len(substr) <= c.length; pos++ {
		if matchAt(leaves, li, off, substr, fold) {
			return pos
		}
		li, off = advanceCursor(leaves, li, off, 1)
	}
	return -1
}

// matchAt reports whether substr occurs at the cursor position (leaf li,
// offset off), reading across leaf boundaries as needed.
func matchAt(leaves []string, li, off int, substr string, fold bool) bool {
	for i := 0; i < len(substr); i++ {
		if li >= len(leaves) {
			return false
		}
		a, b := leaves[li][off], substr[i]
		if fold {
			a, b = asciiLower(a), asciiLower(b)
		}
		if a != b {
			return false
		}
		li, off = advanceCursor(leaves, li, off+1, 0)
	}
	return true
}

// advanceCursor moves the (leaf, offset) cursor forward n bytes, normalizing
// past exhausted leaves. Leaves are non-empty, so a normalized cursor is
// either valid or one past the final leaf.
func advanceCursor(leaves []string, li, off, n int) (int, int) {
	off += n
	for li < len(leaves) && off >= len(leaves[li]) {
		off -= len(leaves[li])
		li++
	}
	return li, off
}

func asciiLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
