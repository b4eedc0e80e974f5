package ifdtag

// FromNumber looks up a tag by its numeric value within the given
// namespace. If no descriptor is registered for that number, an Unknown
// Tag carrying the same number and namespace is returned.
func FromNumber(number uint16, ns Namespace) Tag {
	for _, d := range tableFor(ns) {
		if d.Number == number {
			return FromDescriptor(d)
		}
	}
	return Unknown(number, ns)
}

// FromName looks up a tag by its exact, case-sensitive descriptor name
// within the given namespace.
func FromName(name string, ns Namespace) (Tag, error) {
	for _, d := range tableFor(ns) {
		if d.Name == name {
			return FromDescriptor(d), nil
		}
	}
	return Tag{}, &LookupError{Name: name, Namespace: ns}
}

// LookupError reports an unknown tag name requested from a given namespace.
type LookupError struct {
	Name      string
	Namespace Namespace
}

func (e *LookupError) Error() string {
	return "ifdtag: no tag named " + e.Name + " in " + e.Namespace.String() + " namespace"
}

func tableFor(ns Namespace) []*Descriptor {
	switch ns {
	case Exif:
		return exifTable
	case Gps:
		return gpsTable
	default:
		return rootTable
	}
}

// CombinedNamespace iterates all descriptors across the three tables, root
// first, then Exif, then Gps.
func CombinedNamespace() []*Descriptor {
	all := make([]*Descriptor, 0, len(rootTable)+len(exifTable)+len(gpsTable))
	all = append(all, rootTable...)
	all = append(all, exifTable...)
	all = append(all, gpsTable...)
	return all
}

// DefaultNamespace is the namespace used when no other context determines
// one, per §4.2.
const DefaultNamespace = Root
