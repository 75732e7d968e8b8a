package descriptor

import (
	"fmt"
	"iter"
	"slices"
)

// Builder accumulates descriptors into a collection. It starts in a
// single-item representation and promotes to a growable store on the second
// distinct add. Builders are confined to a single owner; Close releases the
// backing storage and is idempotent.
type Builder struct {
	single *TagHelper
	items  []*TagHelper
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Add appends d, reporting whether it was newly added (false for an identity
// duplicate).
func (b *Builder) Add(d *TagHelper) bool {
	if b.items == nil {
		switch b.single {
		case nil:
			b.single = d
			return true
		case d:
			return false
		}
		b.items = append(make([]*TagHelper, 0, 4), b.single, d)
		b.single = nil
		return true
	}
	if slices.Contains(b.items, d) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Remove deletes d by identity, reporting whether it was present. Order of
// the remaining items is preserved.
func (b *Builder) Remove(d *TagHelper) bool {
	if b.items == nil {
		if b.single != d || d == nil {
			return false
		}
		b.single = nil
		return true
	}
	i := slices.Index(b.items, d)
	if i < 0 {
		return false
	}
	b.items = slices.Delete(b.items, i, i+1)
	return true
}

// Clear removes all items, keeping the backing storage for reuse.
func (b *Builder) Clear() {
	b.single = nil
	if b.items != nil {
		b.items = b.items[:0]
	}
}

// Contains reports whether d is present by identity.
func (b *Builder) Contains(d *TagHelper) bool {
	if b.items == nil {
		return d != nil && b.single == d
	}
	return slices.Contains(b.items, d)
}

// Len returns the number of items.
func (b *Builder) Len() int {
	if b.items == nil {
		if b.single == nil {
			return 0
		}
		return 1
	}
	return len(b.items)
}

// At returns the item at index i. Panics if out of range.
func (b *Builder) At(i int) *TagHelper {
	if i < 0 || i >= b.Len() {
		panic(fmt.Sprintf("descriptor: builder index %d out of range for count %d", i, b.Len()))
	}
	if b.items == nil {
		return b.single
	}
	return b.items[i]
}

// CopyTo copies the items into dst in order. Panics if dst is too small.
func (b *Builder) CopyTo(dst []*TagHelper) {
	n := b.Len()
	if len(dst) < n {
		panic(fmt.Sprintf("descriptor: destination length %d below count %d", len(dst), n))
	}
	if b.items == nil {
		if b.single != nil {
			dst[0] = b.single
		}
		return
	}
	copy(dst, b.items)
}

// All iterates the current items in order.
func (b *Builder) All() iter.Seq[*TagHelper] {
	return func(yield func(*TagHelper) bool) {
		if b.items == nil {
			if b.single != nil {
				yield(b.single)
			}
			return
		}
		for _, d := range b.items {
			if !yield(d) {
				return
			}
		}
	}
}

// Collection snapshots the current state into an immutable collection.
// Further builder mutation does not affect the snapshot.
func (b *Builder) Collection() *Collection {
	if b.items == nil {
		if b.single == nil {
			return Empty
		}
		return New(b.single)
	}
	if len(b.items) == 0 {
		return Empty
	}
	items := make([]*TagHelper, len(b.items))
	copy(items, b.items)
	return &Collection{items: items, count: len(items)}
}

// Close releases the backing storage. Idempotent.
func (b *Builder) Close() {
	b.single = nil
	b.items = nil
}
