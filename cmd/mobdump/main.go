// Command mobdump prints a .mob world file as JSON.
//
// Usage:
//
//	mobdump [-indent n] [-raw] [-part all|script|objects] [-o out.json] file.mob
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/eikit/mob"
)

type config struct {
	indent int
	raw    bool
	part   string
	output string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mobdump: ")

	var cfg config
	flag.IntVar(&cfg.indent, "indent", 2, "indent nested sections by `n` spaces, 0 for compact output")
	flag.BoolVar(&cfg.raw, "raw", false, "include the hex payload of decoded leaves")
	flag.StringVar(&cfg.part, "part", "all", "dump `part` of the file: all, script or objects")
	flag.StringVar(&cfg.output, "o", "", "write to `file` instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, flag.Arg(0), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, path string, stdout io.Writer) (err error) {
	f, err := mob.OpenFile(path)
	if err != nil {
		return err
	}

	switch cfg.part {
	case "all":
	case "script":
		err = f.EnterScript()
	case "objects":
		err = f.EnterObjects()
	default:
		err = fmt.Errorf("unknown part %q", cfg.part)
	}
	if err != nil {
		return err
	}

	w := stdout
	if cfg.output != "" {
		out, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, out.Close())
		}()
		w = out
	}

	return mob.Dump(w, f.Current(), mob.WithIndent(cfg.indent), mob.WithRawLeaves(cfg.raw))
}
