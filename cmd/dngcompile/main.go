// dngcompile assembles a DNG or DCP file from a YAML metadata description,
// grounded on original_source/src/bin/compile_dng.rs.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrm-1535/dng"
	"github.com/jrm-1535/dng/biord"
	"github.com/jrm-1535/dng/dngyaml"
	"github.com/jrm-1535/dng/ifd"
)

var (
	yamlPath  = flag.String("yaml", "", "input YAML file to get the metadata from")
	dcp       = flag.Bool("dcp", false, "write the DCP magic bytes (DNG Camera Profile) instead of DNG")
	bigEndian = flag.Bool("big-endian", false, "write a big-endian file (default: little endian)")
)

func main() {
	flag.Parse()
	if *yamlPath == "" {
		log.Fatal("missing required -yaml flag")
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	data, err := os.ReadFile(*yamlPath)
	if err != nil {
		return err
	}

	tree, err := dngyaml.Parse(data, dngyaml.ParseOptions{BaseDir: filepath.Dir(*yamlPath)})
	if err != nil {
		return err
	}

	ft := dng.Dng
	if *dcp {
		ft = dng.Dcp
	}
	order := biord.LittleEndian
	if *bigEndian {
		order = biord.BigEndian
	}

	base := strings.TrimSuffix(filepath.Base(*yamlPath), filepath.Ext(*yamlPath))
	outPath := filepath.Join(filepath.Dir(*yamlPath), base+"."+ft.Extension())

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return dng.Write(out, []*ifd.IFD{tree}, ft, order)
}
