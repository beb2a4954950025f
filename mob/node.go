package mob

import (
	"fmt"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

// Node is a handle to a section of a Tree. The zero Node is invalid.
type Node struct {
	tree  *Tree
	index int32
}

// Valid reports whether n refers to a section.
func (n Node) Valid() bool {
	return n.tree != nil
}

// Tree returns the tree n belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

func (n Node) raw() *node {
	return &n.tree.nodes[n.index]
}

// ID returns the section id. Header-less roots report IDUnknown.
func (n Node) ID() SectionID {
	return n.raw().id
}

// Type returns the resolved section type. A header-less root is always a record.
func (n Node) Type() format.SectionType {
	r := n.raw()
	if !r.headed {
		return format.SectionRecord
	}

	return TypeOf(r.id)
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.raw().parent == noParent
}

// Parent returns the section holding n.
func (n Node) Parent() (Node, bool) {
	p := n.raw().parent
	if p == noParent {
		return Node{}, false
	}

	return Node{tree: n.tree, index: p}, true
}

// Children returns the child sections of a record, splitting its payload on
// first access.
func (n Node) Children() ([]Node, error) {
	if n.Type() != format.SectionRecord {
		return nil, fmt.Errorf("children of %s (%s): %w", n.ID(), n.Type(), errs.ErrNotRecord)
	}
	if err := n.tree.expand(n.index); err != nil {
		return nil, err
	}

	idx := n.raw().children
	out := make([]Node, len(idx))
	for i, c := range idx {
		out[i] = Node{tree: n.tree, index: c}
	}

	return out, nil
}

// Find returns the first child with the given id.
func (n Node) Find(id SectionID) (Node, error) {
	children, err := n.Children()
	if err != nil {
		return Node{}, err
	}

	for _, c := range children {
		if c.ID() == id {
			return c, nil
		}
	}

	return Node{}, fmt.Errorf("%s in %s: %w", id, n.ID(), errs.ErrSectionNotFound)
}

// Walk calls fn for n and every descendant in depth-first pre-order. depth is
// 0 for n. Records are expanded as they are visited.
func (n Node) Walk(fn func(node Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	if n.Type() != format.SectionRecord {
		return nil
	}

	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Size returns the serialized size of n, header included.
func (n Node) Size() int {
	return n.tree.size(n.index)
}

// Bytes serializes n and its subtree. Every record size is recomputed.
func (n Node) Bytes() []byte {
	return n.tree.appendNode(make([]byte, 0, n.Size()), n.index)
}

// AddChild appends a new empty section with the given id to record n.
func (n Node) AddChild(id SectionID) (Node, error) {
	if err := n.ensureRecord(); err != nil {
		return Node{}, err
	}

	child := newNode(id, n.index, []byte{})
	if child.kind == payloadUnparsed {
		child.kind = payloadRecord
		child.data = nil
	}
	idx := n.tree.add(child)

	r := n.raw()
	r.children = append(r.children, idx)

	return Node{tree: n.tree, index: idx}, nil
}

// Clone deep-copies n and its subtree as the last child of parent. parent may
// belong to another tree.
func (n Node) Clone(parent Node) (Node, error) {
	if !n.raw().headed {
		return Node{}, fmt.Errorf("clone header-less root: %w", errs.ErrInvalidOperation)
	}
	if err := parent.ensureRecord(); err != nil {
		return Node{}, err
	}

	idx := parent.tree.cloneInto(parent.index, n.tree, n.index)

	r := parent.raw()
	r.children = append(r.children, idx)

	return Node{tree: parent.tree, index: idx}, nil
}

// Remove detaches n from its parent. The root cannot be removed.
func (n Node) Remove() error {
	p, ok := n.Parent()
	if !ok {
		return errs.ErrNoParent
	}

	r := p.raw()
	for i, c := range r.children {
		if c == n.index {
			r.children = append(r.children[:i], r.children[i+1:]...)
			n.raw().parent = noParent
			return nil
		}
	}

	return fmt.Errorf("remove %s: %w", n.ID(), errs.ErrSectionNotFound)
}

func (n Node) ensureRecord() error {
	if n.Type() != format.SectionRecord {
		return fmt.Errorf("%s (%s): %w", n.ID(), n.Type(), errs.ErrNotRecord)
	}

	return n.tree.expand(n.index)
}
