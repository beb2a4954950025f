// Command mprfix repairs terrain maps whose tile-type table holds types the
// game does not know. Every such type is replaced with Road.
//
// Usage:
//
//	mprfix [-dir path] [-backup codec]
//	mprfix -restore file.mpr.bak
//
// With -backup each changed map is first saved next to itself as a compressed
// "<name>.bak" frame; -restore writes such a frame back over the original.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/eikit/compress"
	"github.com/arloliu/eikit/format"
	"github.com/arloliu/eikit/mpr"
)

const backupExt = ".bak"

type config struct {
	dir     string
	backup  string
	restore string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mprfix: ")

	var cfg config
	flag.StringVar(&cfg.dir, "dir", ".", "directory to scan for `.mpr` files")
	flag.StringVar(&cfg.backup, "backup", "", "back up changed maps with `codec` (none, zstd, s2, lz4)")
	flag.StringVar(&cfg.restore, "restore", "", "restore the map saved in backup `file`")
	flag.Parse()

	if err := run(cfg, os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdout io.Writer, logger *log.Logger) error {
	if cfg.restore != "" {
		return restore(cfg.restore)
	}

	backup := format.CompressionType(0)
	if cfg.backup != "" {
		t, ok := format.ParseCompressionType(cfg.backup)
		if !ok {
			return fmt.Errorf("unknown backup codec %q", cfg.backup)
		}
		backup = t
	}

	paths, err := filepath.Glob(filepath.Join(cfg.dir, "*.mpr"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No .mpr files found. Nothing to do")
		return nil
	}

	for _, path := range paths {
		if err := fix(path, backup, stdout); err != nil {
			logger.Printf("ERROR: %s: %v", path, err)
		}
	}
	fmt.Fprintln(stdout, "All .mpr files were checked")

	return nil
}

func fix(path string, backup format.CompressionType, stdout io.Writer) error {
	m, err := mpr.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	r := m.RepairTileTypes()
	if !r.Repaired() {
		fmt.Fprintf(stdout, "%s is already good\n", path)
		return nil
	}

	if backup != 0 {
		if err := writeBackup(path, backup); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
	}
	if err := m.Save(path); err != nil {
		return err
	}

	if r.Used {
		fmt.Fprintf(stdout, "%s has bad tiles %v and was fixed!\n", path, r.BadIndices)
	} else {
		fmt.Fprintf(stdout, "%s has bad tiles %v but doesn't use them... Fixed anyway!\n", path, r.BadIndices)
	}

	return nil
}

func writeBackup(path string, codec format.CompressionType) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	frame, err := compress.EncodeBackup(codec, data)
	if err != nil {
		return err
	}

	return os.WriteFile(path+backupExt, frame, 0o644) //nolint: gosec
}

func restore(backupPath string) error {
	if !strings.HasSuffix(backupPath, backupExt) {
		return fmt.Errorf("%s: backup files end in %s", backupPath, backupExt)
	}

	frame, err := os.ReadFile(backupPath)
	if err != nil {
		return err
	}

	data, _, err := compress.DecodeBackup(frame)
	if err != nil {
		return fmt.Errorf("%s: %w", backupPath, err)
	}

	return os.WriteFile(strings.TrimSuffix(backupPath, backupExt), data, 0o644) //nolint: gosec
}
