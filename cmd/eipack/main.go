// Command eipack packs directories into .res archives, unpacks archives and
// converts .lnk link tables to and from text.
//
// Usage:
//
//	eipack path [output_path]
//
// The action depends on path:
//   - a directory is packed; "textures_res" becomes "textures.res" next to it
//   - a file starting with the archive signature is unpacked; "textures.res"
//     becomes the directory "textures_res"
//   - a .lnk file is written as tab-separated text, and a .txt file back as .lnk
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/eikit/lnk"
	"github.com/arloliu/eikit/res"
)

const (
	exitSuccess = iota
	exitFileNotFound
	exitFormatUnknown
	exitFailure
)

type targetType int

const (
	targetUnknown targetType = iota
	targetNonexistent
	targetDirectory
	targetArchive
	targetLnk
	targetText
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s path [output_path]\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(out, "Packs, unpacks and converts Evil Islands game files.\n\n")
	fmt.Fprintf(out, "  directory  packed into a .res archive\n")
	fmt.Fprintf(out, "  archive    unpacked into a directory\n")
	fmt.Fprintf(out, "  .lnk file  converted to tab-separated .txt\n")
	fmt.Fprintf(out, "  .txt file  converted to .lnk\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("eipack: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	os.Exit(run(flag.Arg(0), flag.Arg(1), log.Default()))
}

func run(path, outputPath string, logger *log.Logger) int {
	path, err := filepath.Abs(path)
	if err != nil {
		logger.Print(err)
		return exitFailure
	}

	switch detect(path) {
	case targetNonexistent:
		logger.Printf("file %s does not exist", path)
		return exitFileNotFound
	case targetDirectory:
		if outputPath == "" {
			outputPath = filepath.Join(filepath.Dir(path), packedName(path))
		}
		return report(logger, res.CreateFromDirectory(path, outputPath), "pack directory", path)
	case targetArchive:
		if outputPath == "" {
			outputPath = filepath.Join(filepath.Dir(path), unpackedName(path))
		}
		return report(logger, res.ExtractToDirectory(path, outputPath), "unpack file", path)
	case targetLnk:
		if outputPath == "" {
			outputPath = swapExt(path, ".txt")
		}
		return report(logger, lnkToText(path, outputPath), "convert file", path)
	case targetText:
		if outputPath == "" {
			outputPath = swapExt(path, ".lnk")
		}
		return report(logger, textToLnk(path, outputPath), "convert file", path)
	default:
		logger.Printf("unknown file format: %s", path)
		return exitFormatUnknown
	}
}

func report(logger *log.Logger, err error, action, path string) int {
	if err != nil {
		logger.Printf("cannot %s %s: %v", action, path, err)
		return exitFailure
	}
	logger.Printf("%s %s: done", action, path)

	return exitSuccess
}

func detect(path string) targetType {
	info, err := os.Stat(path)
	if err != nil {
		return targetNonexistent
	}
	if info.IsDir() {
		return targetDirectory
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".lnk":
		return targetLnk
	case ".txt":
		return targetText
	}

	f, err := os.Open(path)
	if err != nil {
		return targetUnknown
	}
	defer f.Close()

	sig := make([]byte, 4)
	if _, err := io.ReadFull(f, sig); err != nil {
		return targetUnknown
	}
	if res.IsArchive(sig) {
		return targetArchive
	}

	return targetUnknown
}

// packedName turns "name_ext" into "name.ext".
func packedName(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '_'); i >= 0 {
		return base[:i] + "." + base[i+1:]
	}

	return base + "_"
}

// unpackedName turns "name.ext" into "name_ext".
func unpackedName(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[:i] + "_" + base[i+1:]
	}

	return base + "_"
}

func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func lnkToText(src, dst string) (err error) {
	f, err := lnk.Load(src)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	return f.WriteText(out)
}

func textToLnk(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	f, err := lnk.ParseText(in)
	if err != nil {
		return err
	}

	return f.Save(dst)
}
