package mob

import (
	"errors"
	"fmt"
	"os"

	"github.com/arloliu/eikit/errs"
)

// File is a .mob tree with a navigation cursor.
type File struct {
	tree    *Tree
	current Node
}

// NewFile wraps tree with a cursor positioned on its root.
func NewFile(tree *Tree) *File {
	return &File{tree: tree, current: tree.Root()}
}

// OpenFile reads and parses the .mob file at path.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return NewFile(tree), nil
}

// Save serializes the tree to path.
func (f *File) Save(path string) error {
	return os.WriteFile(path, f.tree.Bytes(), 0o644) //nolint: gosec
}

// Tree returns the underlying tree.
func (f *File) Tree() *Tree {
	return f.tree
}

// Current returns the section under the cursor.
func (f *File) Current() Node {
	return f.current
}

// SetCurrent moves the cursor to n, which must belong to the file's tree.
func (f *File) SetCurrent(n Node) error {
	if n.tree != f.tree {
		return errs.ErrForeignNode
	}
	f.current = n

	return nil
}

// Enter moves the cursor to the first child of the current section with the
// given id. The cursor does not move on failure.
func (f *File) Enter(id SectionID) error {
	child, err := f.current.Find(id)
	if err != nil {
		return err
	}
	f.current = child

	return nil
}

// Leave moves the cursor to the parent section. It is a no-op on the root.
func (f *File) Leave() {
	if p, ok := f.current.Parent(); ok {
		f.current = p
	}
}

// EnterScript moves the cursor to the script text of the file, preferring the
// encrypted form over the legacy plain one.
func (f *File) EnterScript() error {
	return f.enterPath(IDObjectDBFile, IDScriptText, IDScriptTextOld)
}

// EnterObjects moves the cursor to the object section of the file.
func (f *File) EnterObjects() error {
	return f.enterPath(IDObjectDBFile, IDObjectSection)
}

// enterPath descends from the root into dir and then into the first of
// targets present. The cursor does not move on failure.
func (f *File) enterPath(dir SectionID, targets ...SectionID) error {
	parent, err := f.tree.Root().Find(dir)
	if err != nil {
		return err
	}

	for _, id := range targets {
		n, err := parent.Find(id)
		if err == nil {
			f.current = n
			return nil
		}
		if !errors.Is(err, errs.ErrSectionNotFound) {
			return err
		}
	}

	return fmt.Errorf("%v in %s: %w", targets, dir, errs.ErrSectionNotFound)
}
