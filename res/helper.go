package res

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/options"
)

// PackConfig configures CreateFromDirectory.
type PackConfig struct {
	modTime func(path string, info fs.FileInfo) time.Time
}

// PackOption is a functional option for CreateFromDirectory.
type PackOption = options.Option[*PackConfig]

// WithModTimeFunc overrides the timestamp stored for each packed file.
// By default the file's modification time is used.
func WithModTimeFunc(fn func(path string, info fs.FileInfo) time.Time) PackOption {
	return options.New(func(c *PackConfig) error {
		if fn == nil {
			return fmt.Errorf("nil mod time func: %w", errs.ErrInvalidOperation)
		}
		c.modTime = fn

		return nil
	})
}

// CreateFromDirectory packs every regular file below srcDir, recursively, into
// a new archive at dstPath. Entry names are paths relative to srcDir with
// backslash separators; srcDir itself is not part of the names. An empty
// directory produces an empty archive.
//
// On failure the archive at dstPath is incomplete and should be discarded.
func CreateFromDirectory(srcDir, dstPath string, opts ...PackOption) (err error) {
	cfg := &PackConfig{
		modTime: func(_ string, info fs.FileInfo) time.Time { return info.ModTime() },
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	root, err := filepath.Abs(srcDir)
	if err != nil {
		return err
	}

	dstAbs, err := filepath.Abs(dstPath)
	if err != nil {
		return err
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	w, err := NewWriter(out)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() || path == dstAbs {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		name, err := RelativePath(root, path)
		if err != nil {
			return err
		}

		if err := w.AddEntry(name, cfg.modTime(path, info)); err != nil {
			return fmt.Errorf("add %s: %w", path, err)
		}

		return copyFile(w, path)
	})
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)

	return err
}

// ExtractToDirectory extracts every entry of the archive at srcPath below
// dstDir, creating subdirectories as needed and restoring modification times.
//
// Entries whose names escape dstDir fail with errs.ErrInvalidPath. On failure
// the directory is left partially extracted.
func ExtractToDirectory(srcPath, dstDir string) (err error) {
	a, err := Open(srcPath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	root, err := filepath.Abs(dstDir)
	if err != nil {
		return err
	}

	for _, e := range a.Directory().Entries() {
		target, err := entryPath(root, e.Name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		data, err := a.ReadFile(e.Name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil { //nolint: gosec
			return err
		}
		if err := os.Chtimes(target, e.ModTime, e.ModTime); err != nil {
			return err
		}
	}

	return nil
}

// entryPath maps an entry name onto a file path below root.
func entryPath(root, name string) (string, error) {
	rel := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("entry %q: %w", name, errs.ErrInvalidPath)
	}

	return filepath.Join(root, rel), nil
}

// RelativePath returns path relative to rootPath as an entry name with
// backslash separators. Both paths are resolved to absolute form first; path
// must lie strictly below rootPath.
func RelativePath(rootPath, path string) (string, error) {
	if rootPath == "" || path == "" {
		return "", fmt.Errorf("empty path: %w", errs.ErrInvalidPath)
	}

	root, err := filepath.Abs(rootPath)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("%s not below %s: %w", path, rootPath, errs.ErrInvalidPath)
	}
	if rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%s not below %s: %w", path, rootPath, errs.ErrInvalidPath)
	}

	return strings.ReplaceAll(filepath.ToSlash(rel), "/", `\`), nil
}
