// Command mprrender renders a shaded elevation preview of a terrain map as PNG.
//
// Usage:
//
//	mprrender [-o out.png] [-cpuprofile file] zone.mpr
package main

import (
	"errors"
	"flag"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/arloliu/eikit/mpr"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mprrender: ")

	var output, cpuProfile string
	flag.StringVar(&output, "o", "out.png", "write the preview to `file`")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(flag.Arg(0), output); err != nil {
		log.Print(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(src, dst string) (err error) {
	m, err := mpr.Load(src)
	if err != nil {
		return err
	}
	img := m.Render()

	file, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return png.Encode(file, img)
}
