// ifddump dumps the raw IFD chain of a TIFF-derived file to YAML, without
// the blob/strip extraction dngdump performs (grounded on
// original_source/src/bin/dump_ifd.rs).
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jrm-1535/dng/dngio"
	"github.com/jrm-1535/dng/dngyaml"
)

var (
	dumpRationalAsFloat = flag.Bool("f", false, "dump Rational/SRational values as float (lossy)")
	extract             = flag.Bool("e", false, "write the dump to a sibling *_extracted/ifds.yml instead of stdout")
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

	_, ifds, err := dngio.ReadFile(f, dngio.ReadOptions{})
	if err != nil {
		return err
	}

	opts := dngyaml.DumpOptions{RationalAsFloat: *dumpRationalAsFloat}

	var out *os.File
	if *extract {
		dir := extractDir(fn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		out, err = os.Create(filepath.Join(dir, "ifds.yml"))
		if err != nil {
			return err
		}
		defer out.Close()
	} else {
		out = os.Stdout
	}

	for i, tree := range ifds {
		if len(ifds) > 1 {
			out.WriteString("# ifd " + strconv.Itoa(i) + "\n")
		}
		if err := dngyaml.Dump(out, tree, opts); err != nil {
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
