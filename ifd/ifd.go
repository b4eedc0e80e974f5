package ifd

import "github.com/jrm-1535/dng/ifdtag"

// IFD is an ordered, tag-unique collection of entries plus a namespace
// label drawn from {Root, Exif, Gps} (§3). Tag uniqueness is preserved by
// Insert: any previous entry sharing the new entry's tag is replaced in
// place rather than appended again.
type IFD struct {
	Namespace ifdtag.Namespace

	entries []Entry
	index   map[uint16]int
}

// New builds an empty IFD in the given namespace.
func New(ns ifdtag.Namespace) *IFD {
	return &IFD{Namespace: ns, index: make(map[uint16]int)}
}

// Insert adds e, or replaces the existing entry sharing e.Tag's numeric
// tag in place (§3 invariant 1).
func (f *IFD) Insert(e Entry) {
	if f.index == nil {
		f.index = make(map[uint16]int)
	}
	if i, ok := f.index[e.Tag.Number()]; ok {
		f.entries[i] = e
		return
	}
	f.index[e.Tag.Number()] = len(f.entries)
	f.entries = append(f.entries, e)
}

// InsertFromOther merges every entry of other into f, tag by tag, in
// other's order. A tag present in both keeps other's value, per Insert's
// replace-in-place rule.
func (f *IFD) InsertFromOther(other *IFD) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		f.Insert(e)
	}
}

// Entries returns the IFD's entries in insertion order. The returned slice
// must not be mutated by the caller.
func (f *IFD) Entries() []Entry { return f.entries }

// Len returns the number of entries in f.
func (f *IFD) Len() int { return len(f.entries) }

// Get returns the entry for the given numeric tag, if present.
func (f *IFD) Get(tag uint16) (Entry, bool) {
	if i, ok := f.index[tag]; ok {
		return f.entries[i], true
	}
	return Entry{}, false
}

// EntryByPath traverses path starting from f and returns the terminal
// entry. The terminal entry's Tag is the last tag element encountered
// (index elements don't change it), per §4.3 "entry_by_path returns a
// reference plus the terminal tag".
func (f *IFD) EntryByPath(p Path) (Entry, bool) {
	elems := p.Elements()
	if len(elems) == 0 {
		return Entry{}, false
	}
	return f.entryAt(elems)
}

func (f *IFD) entryAt(elems []PathElement) (Entry, bool) {
	t, ok := elems[0].Tag()
	if !ok {
		return Entry{}, false
	}
	e, found := f.Get(t.Number())
	if !found {
		return Entry{}, false
	}
	if len(elems) == 1 {
		return e, true
	}
	return valueAt(e.Tag, e.Value, elems[1:])
}

func valueAt(tag ifdtag.Tag, v Value, elems []PathElement) (Entry, bool) {
	if len(elems) == 0 {
		return Entry{Tag: tag, Value: v}, true
	}
	if idx, ok := elems[0].Index(); ok {
		list := v.AsList()
		if idx < 0 || idx >= len(list) {
			return Entry{}, false
		}
		return valueAt(tag, list[idx], elems[1:])
	}
	if sub, ok := v.Ifd(); ok {
		return sub.entryAt(elems)
	}
	return Entry{}, false
}

// ReplaceByPath overwrites the value at path if it resolves, leaving f
// unchanged otherwise (§4.3).
func (f *IFD) ReplaceByPath(p Path, v Value) bool {
	elems := p.Elements()
	if len(elems) == 0 {
		return false
	}
	return f.replaceAt(elems, v)
}

func (f *IFD) replaceAt(elems []PathElement, v Value) bool {
	t, ok := elems[0].Tag()
	if !ok {
		return false
	}
	i, found := f.index[t.Number()]
	if !found {
		return false
	}
	if len(elems) == 1 {
		f.entries[i].Value = v
		return true
	}
	return replaceInValue(&f.entries[i].Value, elems[1:], v)
}

func replaceInValue(val *Value, elems []PathElement, v Value) bool {
	if idx, ok := elems[0].Index(); ok {
		if val.kind != KindList || idx < 0 || idx >= len(val.list) {
			return false
		}
		if len(elems) == 1 {
			val.list[idx] = v
			return true
		}
		return replaceInValue(&val.list[idx], elems[1:], v)
	}
	if val.kind != KindIfd || val.ifd == nil {
		return false
	}
	return val.ifd.replaceAt(elems, v)
}

// ContainingIFD returns the IFD that directly holds the entry named by
// path's final tag element - f itself for a top-level tag, or the nested
// sub-IFD reached by following the path's IfdOffset tags otherwise. This
// is how the façade pairs an Offsets entry with its Lengths counterpart
// (§3 invariant 7: "in the same containing IFD") without the caller
// having to track which IFD a path descended into by hand.
func (f *IFD) ContainingIFD(p Path) (*IFD, bool) {
	elems := p.Elements()
	if len(elems) == 0 {
		return nil, false
	}
	return f.containingIFD(elems)
}

func (f *IFD) containingIFD(elems []PathElement) (*IFD, bool) {
	t, ok := elems[0].Tag()
	if !ok {
		return nil, false
	}
	if len(elems) == 1 {
		if _, found := f.Get(t.Number()); !found {
			return nil, false
		}
		return f, true
	}
	e, found := f.Get(t.Number())
	if !found {
		return nil, false
	}
	return containingIFDFromValue(e.Value, elems[1:])
}

func containingIFDFromValue(v Value, elems []PathElement) (*IFD, bool) {
	if idx, ok := elems[0].Index(); ok {
		list := v.AsList()
		if idx < 0 || idx >= len(list) || len(elems) == 1 {
			return nil, false
		}
		return containingIFDFromValue(list[idx], elems[1:])
	}
	sub, ok := v.Ifd()
	if !ok {
		return nil, false
	}
	return sub.containingIFD(elems)
}

// NavigateToIFD walks every element of p, following each tag element into
// the sub-IFD its IfdOffset value holds, and returns the IFD the path
// lands on. An empty path returns f itself. Unlike ContainingIFD, which
// stops one element short to locate an entry's home IFD, NavigateToIFD
// consumes the whole path to locate a sub-IFD itself (needed when the
// path names an IFD, not an entry within one).
func (f *IFD) NavigateToIFD(p Path) (*IFD, bool) {
	cur := f
	for _, e := range p.Elements() {
		t, ok := e.Tag()
		if !ok {
			return nil, false
		}
		entry, found := cur.Get(t.Number())
		if !found {
			return nil, false
		}
		sub, ok := entry.Value.Ifd()
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return cur, true
}

// Predicate is the callback used by FindEntry/FindEntries. tag is the
// innermost entry's tag even when v is a list element nested under it.
type Predicate func(tag ifdtag.Tag, v Value) bool

// FindEntry returns the path of the first entry, in pre-order including
// list elements, for which pred holds.
func (f *IFD) FindEntry(pred Predicate) (Path, bool) {
	var found Path
	ok := false
	f.walk(nil, func(p Path, tag ifdtag.Tag, v Value) bool {
		if pred(tag, v) {
			found, ok = p, true
			return true
		}
		return false
	})
	return found, ok
}

// FindEntries returns the paths of every entry, pre-order including list
// elements, for which pred holds.
func (f *IFD) FindEntries(pred Predicate) []Path {
	var all []Path
	f.walk(nil, func(p Path, tag ifdtag.Tag, v Value) bool {
		if pred(tag, v) {
			all = append(all, p)
		}
		return false
	})
	return all
}

// walk visits every entry and list element in pre-order, calling visit
// with its path; visit returns true to stop the walk early.
func (f *IFD) walk(prefix []PathElement, visit func(Path, ifdtag.Tag, Value) bool) bool {
	for _, e := range f.entries {
		p := append(append([]PathElement(nil), prefix...), TagElement(e.Tag))
		if visit(Path{elems: p}, e.Tag, e.Value) {
			return true
		}
		if walkValue(e.Tag, e.Value, p, visit) {
			return true
		}
	}
	return false
}

func walkValue(tag ifdtag.Tag, v Value, prefix []PathElement, visit func(Path, ifdtag.Tag, Value) bool) bool {
	switch v.kind {
	case KindIfd:
		if v.ifd != nil {
			return v.ifd.walk(prefix, visit)
		}
	case KindList:
		for i, elem := range v.list {
			p := append(append([]PathElement(nil), prefix...), IndexElement(i))
			if visit(Path{elems: p}, tag, elem) {
				return true
			}
			if walkValue(tag, elem, p, visit) {
				return true
			}
		}
	}
	return false
}
