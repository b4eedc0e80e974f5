package dngyaml

import (
	"fmt"
	"strings"

	"github.com/jrm-1535/dng/ifdtag"
)

// localTagNames maps each primitive type to the local YAML type tag used
// to disambiguate a value whose type isn't among its field's declared
// types (§4.7, §4.8).
var localTagNames = map[ifdtag.ValueType]string{
	ifdtag.Byte:           "!BYTE",
	ifdtag.Ascii:          "!ASCII",
	ifdtag.Short:          "!SHORT",
	ifdtag.Long:           "!LONG",
	ifdtag.Rational:       "!RATIONAL",
	ifdtag.SignedByte:     "!SBYTE",
	ifdtag.Undefined:      "!UNDEFINED",
	ifdtag.SignedShort:    "!SSHORT",
	ifdtag.SignedLong:     "!SLONG",
	ifdtag.SignedRational: "!SRATIONAL",
	ifdtag.Float:          "!FLOAT",
	ifdtag.Double:         "!DOUBLE",
}

func localTagFor(vt ifdtag.ValueType) string { return localTagNames[vt] }

func valueTypeFromLocalTag(tag string) (ifdtag.ValueType, error) {
	name := strings.TrimPrefix(tag, "!")
	for vt, t := range localTagNames {
		if strings.TrimPrefix(t, "!") == name {
			return vt, nil
		}
	}
	return 0, fmt.Errorf("unknown local type tag %q", tag)
}

// isLocalTypeTag reports whether tag is one of our own "!SHORT"-style
// single-bang tags, as opposed to a YAML-resolved "!!str"/"!!int"/etc.
// implicit tag.
func isLocalTypeTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
