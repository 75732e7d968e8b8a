package descriptor

import (
	"fmt"
	"iter"
	"sort"
)

// Collection is an immutable, order-preserving, duplicate-free sequence of
// descriptors. A collection is either flat (a backing array) or segmented (a
// concatenation of non-overlapping sub-collections produced by Merge); the
// two representations are behaviorally indistinguishable. Collections are
// safe for concurrent use.
type Collection struct {
	items []*TagHelper  // flat representation; nil when segmented
	segs  []*Collection // segment representation; nil when flat
	ends  []int         // ascending cumulative segment lengths, parallel to segs
	count int
}

// Empty is the canonical empty collection. Constructors return it
// reference-identically for empty inputs.
var Empty = &Collection{}

// New builds a collection from items, dropping identity duplicates while
// preserving first-seen order.
func New(items ...*TagHelper) *Collection {
	switch len(items) {
	case 0:
		return Empty
	case 1:
		return &Collection{items: []*TagHelper{items[0]}, count: 1}
	}
	seen := make(map[*TagHelper]struct{}, len(items))
	kept := make([]*TagHelper, 0, len(items))
	for _, d := range items {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		kept = append(kept, d)
	}
	return &Collection{items: kept, count: len(kept)}
}

// Collect drains a sequence whose size is not known up front.
func Collect(seq iter.Seq[*TagHelper]) *Collection {
	b := NewBuilder()
	defer b.Close()
	for d := range seq {
		b.Add(d)
	}
	return b.Collection()
}

// Len returns the number of descriptors.
func (c *Collection) Len() int { return c.count }

// IsEmpty reports whether the collection has no descriptors.
func (c *Collection) IsEmpty() bool { return c.count == 0 }

// At returns the descriptor at index i. Indices are dense and stable across
// representations; segmented collections resolve the index by binary search
// over cumulative segment lengths. Panics if i is out of range.
func (c *Collection) At(i int) *TagHelper {
	if i < 0 || i >= c.count {
		panic(fmt.Sprintf("descriptor: index %d out of range for count %d", i, c.count))
	}
	for c.segs != nil {
		s := sort.SearchInts(c.ends, i+1)
		if s > 0 {
			i -= c.ends[s-1]
		}
		c = c.segs[s]
	}
	return c.items[i]
}

// All iterates the descriptors in order, walking segment boundaries in a
// single pass. The sequence is restartable.
func (c *Collection) All() iter.Seq[*TagHelper] {
	return func(yield func(*TagHelper) bool) {
		stack := []*Collection{c}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.segs == nil {
				for _, d := range n.items {
					if !yield(d) {
						return
					}
				}
				continue
			}
			for i := len(n.segs) - 1; i >= 0; i-- {
				stack = append(stack, n.segs[i])
			}
		}
	}
}

// IndexOf returns the index of d by identity, or -1 if absent.
func (c *Collection) IndexOf(d *TagHelper) int {
	i := 0
	for e := range c.All() {
		if e == d {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether d is present by identity.
func (c *Collection) Contains(d *TagHelper) bool { return c.IndexOf(d) >= 0 }

// CopyTo copies the descriptors into dst in order. Panics if dst is too
// small.
func (c *Collection) CopyTo(dst []*TagHelper) {
	if len(dst) < c.count {
		panic(fmt.Sprintf("descriptor: destination length %d below count %d", len(dst), c.count))
	}
	i := 0
	for d := range c.All() {
		dst[i] = d
		i++
	}
}

// Equal reports whether both collections hold the same descriptors, by
// identity, in the same order. The representation (flat vs. merged) is not
// observable.
func (c *Collection) Equal(o *Collection) bool {
	if c == o {
		return true
	}
	if c.count != o.count {
		return false
	}
	next, stop := iter.Pull(o.All())
	defer stop()
	for d := range c.All() {
		e, _ := next()
		if d != e {
			return false
		}
	}
	return true
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns an FNV-1a hash over the ordered descriptor identities. Equal
// collections hash identically regardless of representation.
func (c *Collection) Hash() uint64 {
	h := uint64(fnvOffset64)
	for d := range c.All() {
		for s := 0; s < 64; s += 8 {
			h ^= uint64(byte(d.id >> s))
			h *= fnvPrime64
		}
	}
	return h
}
