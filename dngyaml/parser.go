package dngyaml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"

	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

// ParseOptions configures Parse. BaseDir resolves relative file://
// references; HTTPClient lets a caller reuse a configured fasthttp.Client
// (one is created lazily otherwise).
type ParseOptions struct {
	BaseDir    string
	HTTPClient *fasthttp.Client
}

// Parse reads data as a mapping in the textual format Dump produces and
// returns the equivalent *ifd.IFD tree, rooted in the Root namespace
// (§4.8 resolves a top-level numeric key in Root, which falls out of
// starting the recursive descent there).
func Parse(data []byte, opts ParseOptions) (*ifd.IFD, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ifd.Wrap(ifd.YAML, err, "parsing yaml")
	}
	if len(doc.Content) == 0 {
		return ifd.New(ifdtag.Root), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, yamlErr(root, "top-level document must be a mapping")
	}
	p := &parser{opts: opts}
	return p.parseMapping(root, ifdtag.Root)
}

type parser struct {
	opts   ParseOptions
	client *fasthttp.Client
}

func (p *parser) httpClient() *fasthttp.Client {
	if p.opts.HTTPClient != nil {
		return p.opts.HTTPClient
	}
	if p.client == nil {
		p.client = &fasthttp.Client{}
	}
	return p.client
}

func yamlErr(n *yaml.Node, format string, args ...interface{}) error {
	return ifd.NewError(ifd.YAML, "line %d, column %d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}

func (p *parser) parseMapping(node *yaml.Node, ns ifdtag.Namespace) (*ifd.IFD, error) {
	if len(node.Content)%2 != 0 {
		return nil, yamlErr(node, "mapping has an odd number of nodes")
	}
	tree := ifd.New(ns)
	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		tag, err := p.resolveKey(keyNode, ns)
		if err != nil {
			return nil, err
		}

		interp := tag.Interpretation()
		if interp.Kind == ifdtag.Offsets {
			if err := p.parseOffsetsEntry(tree, tag, interp, valNode, ns); err != nil {
				return nil, err
			}
			continue
		}

		v, err := p.parseValue(tag, valNode, ns, "")
		if err != nil {
			return nil, err
		}
		tree.Insert(ifd.Entry{Tag: tag, Value: v})
	}
	return tree, nil
}

// resolveKey implements §4.8 step 1: an integer key (explicit "!!int" tag,
// bare digits, or "0x"-prefixed hex) resolves a numeric tag in ns; anything
// else resolves a descriptor by exact name.
func (p *parser) resolveKey(keyNode *yaml.Node, ns ifdtag.Namespace) (ifdtag.Tag, error) {
	s := keyNode.Value

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return ifdtag.Tag{}, yamlErr(keyNode, "malformed hex tag key %q", s)
		}
		return ifdtag.FromNumber(uint16(n), ns), nil
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return ifdtag.FromNumber(uint16(n), ns), nil
	}

	tag, err := ifdtag.FromName(s, ns)
	if err != nil {
		return ifdtag.Tag{}, ifd.Wrapf(ifd.Lookup, err, "resolving key %q", s)
	}
	return tag, nil
}

// parseValue dispatches on the node kind, propagating inheritedTag (a local
// type tag carried from an enclosing sequence) to children that don't
// carry their own.
func (p *parser) parseValue(tag ifdtag.Tag, node *yaml.Node, ns ifdtag.Namespace, inheritedTag string) (ifd.Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		childNS := ns
		if interp := tag.Interpretation(); interp.Kind == ifdtag.IfdOffset {
			childNS = interp.IfdType
		}
		sub, err := p.parseMapping(node, childNS)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.IfdValue(sub), nil

	case yaml.SequenceNode:
		seqTag := node.Tag
		if isLocalTypeTag(seqTag) {
			inheritedTag = seqTag
		}
		elems := make([]ifd.Value, len(node.Content))
		for i, c := range node.Content {
			v, err := p.parseValue(tag, c, ns, inheritedTag)
			if err != nil {
				return ifd.Value{}, err
			}
			elems[i] = v
		}
		return ifd.ListValue(elems)

	case yaml.ScalarNode:
		return p.parseScalar(tag, node, inheritedTag)

	default:
		return ifd.Value{}, yamlErr(node, "unsupported node kind for tag %s", tag.Name())
	}
}

// parseScalar implements §4.8 steps 5-6: a canonical CFA label for a
// CfaPattern tag, then external blob references; otherwise the candidate
// types come from the explicit/inherited local type tag, or else the tag's
// declared types. For an Enumerated tag the enum label is resolved and
// encoded as the first candidate type; any other tag tries each candidate
// type in order.
func (p *parser) parseScalar(tag ifdtag.Tag, node *yaml.Node, inheritedTag string) (ifd.Value, error) {
	s := node.Value

	if tag.Interpretation().Kind == ifdtag.CfaPattern && !isLocalTypeTag(node.Tag) {
		if codes, ok := ifdtag.CfaPatternBytes(s); ok {
			return bytesToListValue(codes)
		}
	}

	if isBlobRef(s) {
		data, err := p.loadBlob(s)
		if err != nil {
			return ifd.Value{}, err
		}
		return bytesToListValue(data)
	}

	localTag := inheritedTag
	if isLocalTypeTag(node.Tag) {
		localTag = node.Tag
	}

	var candidates []ifdtag.ValueType
	if localTag != "" {
		vt, err := valueTypeFromLocalTag(localTag)
		if err != nil {
			return ifd.Value{}, yamlErr(node, "tag %s: %v", tag.Name(), err)
		}
		candidates = []ifdtag.ValueType{vt}
	} else if known, ok := tag.Known(); ok {
		candidates = known.Types
	}
	if len(candidates) == 0 {
		return ifd.Value{}, yamlErr(node, "tag %s: value %q has no declared type and no local type tag", tag.Name(), s)
	}

	interp := tag.Interpretation()
	if interp.Kind == ifdtag.Enumerated {
		raw, err := resolveEnumLabel(interp, s)
		if err != nil {
			return ifd.Value{}, yamlErr(node, "%v", err)
		}
		return encodeIntegral(candidates[0], raw), nil
	}

	var lastErr error
	for _, vt := range candidates {
		v, err := parseScalarAs(vt, s)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return ifd.Value{}, yamlErr(node, "tag %s: value %q matched no candidate type: %v", tag.Name(), s, lastErr)
}

func resolveEnumLabel(interp ifdtag.Interpretation, s string) (uint32, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	var matches []ifdtag.EnumValue
	for _, e := range interp.Values {
		if strings.Contains(strings.ToLower(e.Label), lower) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return 0, ifd.NewError(ifd.Lookup, "no enum label matching %q", s)
	case 1:
		return matches[0].Value, nil
	default:
		return 0, ifd.NewError(ifd.Lookup, "ambiguous enum label %q matches %d labels", s, len(matches))
	}
}

func encodeIntegral(vt ifdtag.ValueType, raw uint32) ifd.Value {
	switch vt {
	case ifdtag.Byte:
		return ifd.ByteValue(uint8(raw))
	case ifdtag.SignedByte:
		return ifd.SignedByteValue(int8(raw))
	case ifdtag.Undefined:
		return ifd.UndefinedValue(uint8(raw))
	case ifdtag.Short:
		return ifd.ShortValue(uint16(raw))
	case ifdtag.SignedShort:
		return ifd.SignedShortValue(int16(raw))
	case ifdtag.SignedLong:
		return ifd.SignedLongValue(int32(raw))
	default:
		return ifd.LongValue(raw)
	}
}

func parseScalarAs(vt ifdtag.ValueType, s string) (ifd.Value, error) {
	switch vt {
	case ifdtag.Ascii:
		return ifd.AsciiValue(s), nil

	case ifdtag.Byte, ifdtag.Undefined:
		n, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return ifd.Value{}, err
		}
		if vt == ifdtag.Undefined {
			return ifd.UndefinedValue(uint8(n)), nil
		}
		return ifd.ByteValue(uint8(n)), nil

	case ifdtag.SignedByte:
		n, err := strconv.ParseInt(s, 0, 8)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.SignedByteValue(int8(n)), nil

	case ifdtag.Short:
		n, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.ShortValue(uint16(n)), nil

	case ifdtag.SignedShort:
		n, err := strconv.ParseInt(s, 0, 16)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.SignedShortValue(int16(n)), nil

	case ifdtag.Long:
		n, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.LongValue(uint32(n)), nil

	case ifdtag.SignedLong:
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.SignedLongValue(int32(n)), nil

	case ifdtag.Rational:
		num, den, err := parseRationalLiteral(s)
		if err != nil {
			return ifd.Value{}, err
		}
		if num < 0 || den <= 0 {
			return ifd.Value{}, fmt.Errorf("rational %q out of unsigned range", s)
		}
		return ifd.RationalValue(uint32(num), uint32(den)), nil

	case ifdtag.SignedRational:
		num, den, err := parseRationalLiteral(s)
		if err != nil {
			return ifd.Value{}, err
		}
		if den <= 0 {
			return ifd.Value{}, fmt.Errorf("rational %q has non-positive denominator", s)
		}
		return ifd.SignedRationalValue(int32(num), int32(den)), nil

	case ifdtag.Float:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.FloatValue(float32(f)), nil

	case ifdtag.Double:
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ifd.Value{}, err
		}
		return ifd.DoubleValue(d), nil

	default:
		return ifd.Value{}, fmt.Errorf("unhandled candidate type %s", vt)
	}
}

// parseRationalLiteral accepts either an explicit "num/den" literal or a
// bare float/integer, in which case it is converted via continued-fraction
// approximation (§4.8 step 5).
func parseRationalLiteral(s string) (num, den int64, err error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		numStr := strings.TrimSpace(s[:i])
		denStr := strings.TrimSpace(s[i+1:])
		num, err = strconv.ParseInt(numStr, 0, 64)
		if err != nil {
			return 0, 0, err
		}
		den, err = strconv.ParseInt(denStr, 0, 64)
		if err != nil {
			return 0, 0, err
		}
		return num, den, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, err
	}
	num, den = ifd.ApproxRational(f)
	return num, den, nil
}

func bytesToListValue(data []byte) (ifd.Value, error) {
	elems := make([]ifd.Value, len(data))
	for i, b := range data {
		elems[i] = ifd.ByteValue(b)
	}
	return ifd.ListValue(elems)
}

func isBlobRef(s string) bool {
	return strings.HasPrefix(s, "file://") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

// loadBlob resolves an external reference scalar (§4.8 step 6): a
// file:// path, resolved against BaseDir when relative, or an http(s)://
// URL fetched via fasthttp.
func (p *parser) loadBlob(ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "file://"):
		path := strings.TrimPrefix(ref, "file://")
		if !filepath.IsAbs(path) && p.opts.BaseDir != "" {
			path = filepath.Join(p.opts.BaseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ifd.Wrap(ifd.IO, err, "loading file:// reference")
		}
		return data, nil

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		req := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(req)
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(ref)
		req.Header.SetMethod("GET")

		if err := p.httpClient().Do(req, resp); err != nil {
			return nil, ifd.Wrap(ifd.IO, err, "fetching http(s):// reference")
		}
		if resp.StatusCode() != fasthttp.StatusOK {
			return nil, ifd.NewError(ifd.IO, "fetching %s: status %d", ref, resp.StatusCode())
		}
		body := resp.Body()
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil

	default:
		return nil, ifd.NewError(ifd.Parse, "not a blob reference: %q", ref)
	}
}

// parseOffsetsEntry implements an Offsets-interpreted field: a file://
// or http(s):// scalar (or sequence of them) loads the payload and
// synthesizes the paired Lengths entry; any other scalar takes the normal
// path, since Offsets is primarily a writer-side concern and a literal
// numeric value is still a legal, if unusual, input.
func (p *parser) parseOffsetsEntry(tree *ifd.IFD, tag ifdtag.Tag, interp ifdtag.Interpretation, valNode *yaml.Node, ns ifdtag.Namespace) error {
	lengthsTag, err := ifdtag.FromName(interp.LengthsTagName, ns)
	if err != nil {
		return ifd.Wrapf(ifd.Lookup, err, "resolving paired lengths tag for %s", tag.Name())
	}

	loadBlobEntry := func(n *yaml.Node) (v ifd.Value, length uint32, isBlob bool, err error) {
		if n.Kind != yaml.ScalarNode || !isBlobRef(n.Value) {
			return ifd.Value{}, 0, false, nil
		}
		data, err := p.loadBlob(n.Value)
		if err != nil {
			return ifd.Value{}, 0, false, err
		}
		payload := data
		return ifd.OffsetsValue(&ifd.Offsets{
			Size: uint32(len(payload)),
			Write: func(w io.Writer) error {
				_, err := w.Write(payload)
				return err
			},
		}), uint32(len(payload)), true, nil
	}

	if valNode.Kind == yaml.SequenceNode {
		values := make([]ifd.Value, len(valNode.Content))
		lengths := make([]ifd.Value, len(valNode.Content))
		anyBlob := false
		for i, c := range valNode.Content {
			v, n, isBlob, err := loadBlobEntry(c)
			if err != nil {
				return err
			}
			if isBlob {
				anyBlob = true
				values[i] = v
				lengths[i] = ifd.LongValue(n)
				continue
			}
			sv, err := p.parseValue(tag, c, ns, "")
			if err != nil {
				return err
			}
			values[i] = sv
			lengths[i] = ifd.LongValue(0)
		}
		vv, err := ifd.ListValue(values)
		if err != nil {
			return err
		}
		tree.Insert(ifd.Entry{Tag: tag, Value: vv})
		if anyBlob {
			lv, err := ifd.ListValue(lengths)
			if err != nil {
				return err
			}
			tree.Insert(ifd.Entry{Tag: lengthsTag, Value: lv})
		}
		return nil
	}

	v, n, isBlob, err := loadBlobEntry(valNode)
	if err != nil {
		return err
	}
	if isBlob {
		tree.Insert(ifd.Entry{Tag: tag, Value: v})
		tree.Insert(ifd.Entry{Tag: lengthsTag, Value: ifd.LongValue(n)})
		return nil
	}

	sv, err := p.parseValue(tag, valNode, ns, "")
	if err != nil {
		return err
	}
	tree.Insert(ifd.Entry{Tag: tag, Value: sv})
	return nil
}
