// dngdump dumps a DNG or DCP file's IFD metadata to a human-readable YAML
// representation, optionally extracting strips, tiles and other blobs
// into a sibling directory (grounded on original_source/src/bin/dump_dng.rs).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/jrm-1535/dng"
	"github.com/jrm-1535/dng/dngio"
	"github.com/jrm-1535/dng/dngyaml"
	"github.com/jrm-1535/dng/ifd"
	"github.com/jrm-1535/dng/ifdtag"
)

var (
	dumpRationalAsFloat = flag.Bool("f", false, "dump Rational/SRational values as float (lossy)")
	extract             = flag.Bool("e", false, "extract strips, tiles and blobs into a directory")
	geojsonOut          = flag.Bool("geojson", false, "also write the GPS position as a GeoJSON feature")
	compressAlg         = flag.String("compress", "none", "compress extracted blobs: none, gzip or brotli")
)

func main() {
	flag.Parse()
	for _, fn := range flag.Args() {
		if err := processFile(fn); err != nil {
			log.Printf("%s: %s", fn, err)
		}
	}
}

func processFile(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := dng.Open(f, dngio.ReadOptions{})
	if err != nil {
		return err
	}

	opts := dngyaml.DumpOptions{RationalAsFloat: *dumpRationalAsFloat}

	if *extract {
		dir := extractDir(fn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		opts.Visitor = extractVisitor(doc, dir)

		if *geojsonOut {
			if gps, ok := doc.IFDs[0].Get(gpsTagNumber); ok {
				if sub, ok := gps.Value.Ifd(); ok {
					if err := writeGeoJSON(sub, dir); err != nil {
						log.Printf("%s: geojson: %s", fn, err)
					}
				}
			}
		}

		out, err := os.Create(filepath.Join(dir, "ifds.yml"))
		if err != nil {
			return err
		}
		defer out.Close()
		return dumpAll(out, doc.IFDs, opts)
	}

	return dumpAll(os.Stdout, doc.IFDs, opts)
}

func dumpAll(w *os.File, ifds []*ifd.IFD, opts dngyaml.DumpOptions) error {
	for i, tree := range ifds {
		if len(ifds) > 1 {
			fmt.Fprintf(w, "# ifd %d\n", i)
		}
		if err := dngyaml.Dump(w, tree, opts); err != nil {
			return err
		}
	}
	return nil
}

func extractDir(fn string) string {
	dir := filepath.Dir(fn)
	base := strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
	return filepath.Join(dir, base+"_extracted")
}

// extractVisitor writes out-of-line blobs and offset-referenced data to
// files under dir and, for matrix-named tags, chunks the rendered list
// three values per line for readability - both overrides fall through to
// dngyaml's default rendering by returning ok=false. Only a single-valued
// Offsets entry is extracted; an entry holding several offsets (several
// strips or tiles) is rendered as its plain list of offsets.
func extractVisitor(doc *dng.Document, dir string) dngyaml.Visitor {
	return func(tag ifdtag.Tag, v ifd.Value) (string, bool) {
		interp := tag.Interpretation()

		if interp.Kind == ifdtag.Blob {
			if ref, ok := writeBlob(dir, tag, v); ok {
				return ref, true
			}
		}

		if interp.Kind == ifdtag.Offsets && v.Kind() != ifd.KindList {
			if ref, ok := writeOffsetsPayload(doc, dir, tag); ok {
				return ref, true
			}
		}

		if strings.Contains(strings.ToLower(tag.Name()), "matrix") && v.Kind() == ifd.KindList {
			return chunkedMatrix(v), true
		}

		return "", false
	}
}

func writeBlob(dir string, tag ifdtag.Tag, v ifd.Value) (string, bool) {
	elems := v.AsList()
	buf := make([]byte, len(elems))
	for i, e := range elems {
		b, ok := e.Byte()
		if !ok {
			b, ok = e.Undefined()
		}
		if !ok {
			return "", false
		}
		buf[i] = b
	}
	name := blobFileName(tag)
	if err := writeCompressed(filepath.Join(dir, name), buf); err != nil {
		log.Printf("extracting %s: %s", tag.Name(), err)
		return "", false
	}
	return "file://" + name, true
}

func writeOffsetsPayload(doc *dng.Document, dir string, tag ifdtag.Tag) (string, bool) {
	path := ifd.NewPath(ifd.TagElement(tag))
	size, err := doc.NeededBufferSizeForOffsets(path)
	if err != nil {
		return "", false
	}
	buf := make([]byte, size)
	if err := doc.ReadOffsetsToBuffer(path, buf); err != nil {
		log.Printf("reading %s payload: %s", tag.Name(), err)
		return "", false
	}
	name := blobFileName(tag)
	if err := writeCompressed(filepath.Join(dir, name), buf); err != nil {
		log.Printf("extracting %s: %s", tag.Name(), err)
		return "", false
	}
	return "file://" + name, true
}

func blobFileName(tag ifdtag.Tag) string {
	name := tag.Name()
	switch *compressAlg {
	case "gzip":
		return name + ".gz"
	case "brotli":
		return name + ".br"
	default:
		return name
	}
}

func writeCompressed(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch *compressAlg {
	case "gzip":
		gw := gzip.NewWriter(f)
		if _, err := gw.Write(data); err != nil {
			return err
		}
		return gw.Close()
	case "brotli":
		bw := brotli.NewWriter(f)
		if _, err := bw.Write(data); err != nil {
			return err
		}
		return bw.Close()
	default:
		_, err := f.Write(data)
		return err
	}
}

func chunkedMatrix(v ifd.Value) string {
	elems := v.AsList()
	var b strings.Builder
	b.WriteString("[\n")
	for i := 0; i < len(elems); i += 3 {
		end := i + 3
		if end > len(elems) {
			end = len(elems)
		}
		b.WriteString("  ")
		for _, e := range elems[i:end] {
			b.WriteString(e.String())
			b.WriteString(", ")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

const gpsTagNumber = 0x8825

func writeGeoJSON(gps *ifd.IFD, dir string) error {
	ll, ok := dng.GPSLatLng(gps)
	if !ok {
		return nil
	}
	f := geojson.NewFeature(orb.Point{ll.Lng.Degrees(), ll.Lat.Degrees()})
	data, err := f.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "position.geojson"), data, 0o644)
}
