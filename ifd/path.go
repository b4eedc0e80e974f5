package ifd

import (
	"strconv"
	"strings"

	"github.com/jrm-1535/dng/ifdtag"
)

// PathElement is one step of a Path: either a tag reference or a list
// index.
type PathElement struct {
	tag   ifdtag.Tag
	index int
	isTag bool
}

// TagElement builds a tag-valued path element.
func TagElement(t ifdtag.Tag) PathElement { return PathElement{tag: t, isTag: true} }

// IndexElement builds a list-index path element.
func IndexElement(i int) PathElement { return PathElement{index: i} }

// Tag returns the element's tag, if it is a tag element.
func (e PathElement) Tag() (ifdtag.Tag, bool) {
	if e.isTag {
		return e.tag, true
	}
	return ifdtag.Tag{}, false
}

// Index returns the element's index, if it is an index element.
func (e PathElement) Index() (int, bool) {
	if !e.isTag {
		return e.index, true
	}
	return 0, false
}

func (e PathElement) String() string {
	if e.isTag {
		return e.tag.Name()
	}
	return strconv.Itoa(e.index)
}

// Path is an ordered sequence of path elements, identifying one position
// in an IFD tree absolutely (§3, §4.3).
type Path struct {
	elems []PathElement
}

// NewPath builds a Path from a literal sequence of elements.
func NewPath(elems ...PathElement) Path {
	return Path{elems: append([]PathElement(nil), elems...)}
}

// AppendTag returns a copy of p with t appended.
func (p Path) AppendTag(t ifdtag.Tag) Path {
	return Path{elems: append(append([]PathElement(nil), p.elems...), TagElement(t))}
}

// AppendIndex returns a copy of p with index i appended.
func (p Path) AppendIndex(i int) Path {
	return Path{elems: append(append([]PathElement(nil), p.elems...), IndexElement(i))}
}

// ReplaceLastTag returns a copy of p with its final element replaced by t.
// Used to pair an Offsets entry's path with its Lengths counterpart in the
// same IFD (§9 "Path as a first-class value").
func (p Path) ReplaceLastTag(t ifdtag.Tag) Path {
	if len(p.elems) == 0 {
		return p.AppendTag(t)
	}
	out := append([]PathElement(nil), p.elems...)
	out[len(out)-1] = TagElement(t)
	return Path{elems: out}
}

// Parent returns p with its last element dropped. Parent of an empty path
// is itself.
func (p Path) Parent() Path {
	if len(p.elems) == 0 {
		return p
	}
	return Path{elems: append([]PathElement(nil), p.elems[:len(p.elems)-1]...)}
}

// Elements returns the path's elements in order.
func (p Path) Elements() []PathElement { return p.elems }

// Len returns the number of elements in p.
func (p Path) Len() int { return len(p.elems) }

// Join renders the path with sep between elements.
func (p Path) Join(sep string) string {
	parts := make([]string, len(p.elems))
	for i, e := range p.elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func (p Path) String() string { return p.Join("/") }
