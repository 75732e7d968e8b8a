package descriptor

// Merge concatenates two collections, deduplicating by identity while
// preserving first-seen order. An empty side returns the other unchanged
// (reference-identical), and a b that contributes nothing returns a. When b
// is fully novel the result is a segmented collection referencing a and b
// wholesale, so merging already-built catalogs does not copy their items.
func Merge(a, b *Collection) *Collection {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	seen := make(map[*TagHelper]struct{}, a.count)
	for d := range a.All() {
		seen[d] = struct{}{}
	}
	novel := make([]*TagHelper, 0, b.count)
	for d := range b.All() {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		novel = append(novel, d)
	}
	if len(novel) == 0 {
		return a
	}
	tail := b
	if len(novel) != b.count {
		tail = &Collection{items: novel, count: len(novel)}
	}
	return segmented([]*Collection{a, tail})
}

// MergeAll merges any number of collections with one shared first-seen set:
// an identity contributed by an earlier input is never re-added by a later
// one, regardless of how many inputs repeat it. Bookkeeping is per segment,
// not per item, for inputs that do not overlap.
func MergeAll(cols ...*Collection) *Collection {
	segs := make([]*Collection, 0, len(cols))
	var seen map[*TagHelper]struct{}
	for _, col := range cols {
		if col == nil || col.IsEmpty() {
			continue
		}
		if seen == nil {
			seen = make(map[*TagHelper]struct{}, col.count)
		}
		novel := make([]*TagHelper, 0, col.count)
		allNovel := true
		for d := range col.All() {
			if _, dup := seen[d]; dup {
				allNovel = false
				continue
			}
			seen[d] = struct{}{}
			novel = append(novel, d)
		}
		switch {
		case len(novel) == 0:
		case allNovel:
			segs = append(segs, col)
		default:
			segs = append(segs, &Collection{items: novel, count: len(novel)})
		}
	}
	switch len(segs) {
	case 0:
		return Empty
	case 1:
		return segs[0]
	}
	return segmented(segs)
}

func segmented(segs []*Collection) *Collection {
	ends := make([]int, len(segs))
	total := 0
	for i, s := range segs {
		total += s.count
		ends[i] = total
	}
	return &Collection{segs: segs, ends: ends, count: total}
}
