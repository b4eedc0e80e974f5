// Package dngyaml renders an *ifd.IFD tree to and from the textual,
// tag-aware YAML flavor described in §4.7/§4.8: field names instead of
// numeric tags where known, enum labels instead of raw numbers, rationals
// as "num/den", and local type tags ("!SHORT", "!UNDEFINED", ...) when a
// value's wire type isn't among its field's declared types.
package dngyaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

// Visitor lets a caller override an entry's rendering; returning ok=false
// falls through to the default rules below.
type Visitor func(tag ifdtag.Tag, v ifd.Value) (rendered string, ok bool)

// DumpOptions configures Dump.
type DumpOptions struct {
	// RationalAsFloat renders Rational/SignedRational values as a decimal
	// float instead of "num/den". Lossy: the exact denominator is lost.
	RationalAsFloat bool
	Visitor         Visitor
}

// Dump renders tree as a YAML mapping to w.
func Dump(w io.Writer, tree *ifd.IFD, opts DumpOptions) error {
	node := dumpMapping(tree, opts)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return ifd.Wrap(ifd.YAML, err, "encoding yaml")
	}
	return enc.Close()
}

func dumpMapping(tree *ifd.IFD, opts DumpOptions) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range tree.Entries() {
		node.Content = append(node.Content, keyNode(e.Tag), dumpValue(e.Tag, e.Value, opts))
	}
	return node
}

func keyNode(tag ifdtag.Tag) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: tag.Name()}
}

func dumpValue(tag ifdtag.Tag, v ifd.Value, opts DumpOptions) *yaml.Node {
	if opts.Visitor != nil {
		if s, ok := opts.Visitor(tag, v); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
		}
	}

	switch v.Kind() {
	case ifd.KindIfd:
		sub, _ := v.Ifd()
		return dumpMapping(sub, opts)

	case ifd.KindList:
		elems := v.AsList()
		if tag.Interpretation().Kind == ifdtag.CfaPattern {
			if name, ok := cfaPatternLabel(elems); ok {
				return &yaml.Node{Kind: yaml.ScalarNode, Value: name}
			}
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(elems) > 0 && elems[0].Kind() == ifd.KindIfd {
			for _, e := range elems {
				sub, _ := e.Ifd()
				seq.Content = append(seq.Content, dumpMapping(sub, opts))
			}
			return seq
		}
		seq.Style = yaml.FlowStyle
		for _, e := range elems {
			seq.Content = append(seq.Content, dumpScalar(tag, e, opts))
		}
		return seq

	default:
		return dumpScalar(tag, v, opts)
	}
}

// dumpScalar renders a single primitive value, prepending a local type tag
// when the value's wire type doesn't match any of the field's declared
// types (an unknown field, or a deliberately off-catalog reinterpretation).
func dumpScalar(tag ifdtag.Tag, v ifd.Value, opts DumpOptions) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode}

	if known, ok := tag.Known(); !ok || !known.AcceptsType(v.PrimitiveType()) {
		node.Tag = localTagFor(v.PrimitiveType())
	}

	interp := tag.Interpretation()
	if interp.Kind == ifdtag.Enumerated {
		if raw, ok := v.AsU32(); ok {
			if label, found := interp.Lookup(raw); found {
				node.Value = label
			} else {
				node.Value = fmt.Sprintf("UNKNOWN (%d)", raw)
			}
			return node
		}
	}

	switch v.Kind() {
	case ifd.KindAscii:
		s, _ := v.Ascii()
		node.Value = s
		node.Style = yaml.DoubleQuotedStyle
	case ifd.KindUndefined:
		u, _ := v.Undefined()
		node.Value = fmt.Sprintf("0x%02X", u)
	case ifd.KindRational:
		r, _ := v.Rational()
		node.Value = renderRational(int64(r.Num), int64(r.Den), opts.RationalAsFloat)
	case ifd.KindSignedRational:
		r, _ := v.SignedRational()
		node.Value = renderRational(int64(r.Num), int64(r.Den), opts.RationalAsFloat)
	case ifd.KindFloat:
		f, _ := v.Float()
		node.Value = fmt.Sprintf("%g", f)
	case ifd.KindDouble:
		d, _ := v.Double()
		node.Value = fmt.Sprintf("%g", d)
	default:
		if u, ok := v.AsU32(); ok {
			node.Value = fmt.Sprintf("%d", u)
		}
	}
	return node
}

// cfaPatternLabel renders a CFAPattern list as its canonical Bayer name
// (e.g. "RGGB") when recognized, falling through to the default
// bracketed-list rendering otherwise.
func cfaPatternLabel(elems []ifd.Value) (string, bool) {
	codes := make([]byte, len(elems))
	for i, e := range elems {
		b, ok := e.Byte()
		if !ok {
			return "", false
		}
		codes[i] = b
	}
	return ifdtag.CfaPatternName(codes)
}

func renderRational(num, den int64, asFloat bool) string {
	if asFloat {
		return fmt.Sprintf("%g", float64(num)/float64(den))
	}
	return fmt.Sprintf("%d/%d", num, den)
}
