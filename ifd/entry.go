package ifd

import "github.com/jrm-1535/dng/ifdtag"

// Entry is a (tag reference, value) pair, the unit stored in an IFD.
type Entry struct {
	Tag   ifdtag.Tag
	Value Value
}
