package mob

import (
	"fmt"

	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

// HeaderSize is the size of a section header.
const HeaderSize = 8

const noParent = -1

var engine = endian.GetLittleEndianEngine()

// payloadKind tags what a node's payload holds.
type payloadKind uint8

const (
	payloadLeaf     payloadKind = iota // data is the leaf value
	payloadUnparsed                    // record whose children are still packed in data
	payloadRecord                      // record whose children are split into nodes
)

type node struct {
	id       SectionID
	headed   bool // serialized with a section header
	parent   int32
	kind     payloadKind
	data     []byte
	children []int32
}

// Tree is an arena of section nodes.
type Tree struct {
	nodes []node
}

// Parse builds a tree from the contents of a .mob file. The whole buffer is
// the payload of a header-less root record. data is copied.
func Parse(data []byte) (*Tree, error) {
	if data == nil {
		return nil, fmt.Errorf("nil buffer: %w", errs.ErrInvalidOperation)
	}

	t := &Tree{}
	t.nodes = append(t.nodes, node{
		id:     IDUnknown,
		parent: noParent,
		kind:   payloadUnparsed,
		data:   clone(data),
	})

	return t, nil
}

// ParseSection builds a tree whose root is the single section encoded at the
// start of data, header included. Bytes past the declared size are ignored.
func ParseSection(data []byte) (*Tree, error) {
	id, size, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	t := &Tree{}
	t.nodes = append(t.nodes, newNode(id, noParent, clone(data[HeaderSize:size])))

	return t, nil
}

// New creates a tree holding an empty header-less root record.
func New() *Tree {
	t, _ := Parse([]byte{})
	return t
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return Node{tree: t, index: 0}
}

// Bytes serializes the whole tree.
func (t *Tree) Bytes() []byte {
	return t.Root().Bytes()
}

// Expand splits every record of the tree into children, validating the whole
// structure at once.
func (t *Tree) Expand() error {
	return t.Root().Walk(func(Node, int) error { return nil })
}

func readHeader(data []byte) (SectionID, uint32, error) {
	if len(data) < HeaderSize {
		return 0, 0, fmt.Errorf("section header: %w", errs.ErrTruncated)
	}

	id := SectionID(engine.Uint32(data[0:4]))
	size := engine.Uint32(data[4:8])
	if size < HeaderSize {
		return 0, 0, fmt.Errorf("section %s declares %d bytes: %w", id, size, errs.ErrInvalidSectionSize)
	}
	if uint64(size) > uint64(len(data)) {
		return 0, 0, fmt.Errorf("section %s declares %d bytes, %d available: %w", id, size, len(data), errs.ErrSizeOverrun)
	}

	return id, size, nil
}

func newNode(id SectionID, parent int32, payload []byte) node {
	n := node{id: id, headed: true, parent: parent, data: payload}
	if TypeOf(id) == format.SectionRecord {
		n.kind = payloadUnparsed
	}

	return n
}

func (t *Tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1) //nolint: gosec
}

// expand splits the packed payload of record idx into child nodes. On failure
// the node stays unparsed and the arena is unchanged.
func (t *Tree) expand(idx int32) error {
	if t.nodes[idx].kind != payloadUnparsed {
		return nil
	}

	payload := t.nodes[idx].data
	mark := len(t.nodes)
	children := make([]int32, 0, 8)

	offset := 0
	for offset+HeaderSize <= len(payload) {
		id, size, err := readHeader(payload[offset:])
		if err != nil {
			t.nodes = t.nodes[:mark]
			return fmt.Errorf("child %d of %s at offset %d: %w", len(children), t.nodes[idx].id, offset, err)
		}

		end := offset + int(size)
		children = append(children, t.add(newNode(id, idx, payload[offset+HeaderSize:end:end])))
		offset = end
	}

	if offset != len(payload) {
		t.nodes = t.nodes[:mark]
		return fmt.Errorf("%d bytes after last child of %s: %w", len(payload)-offset, t.nodes[idx].id, errs.ErrTrailingBytes)
	}

	n := &t.nodes[idx]
	n.kind = payloadRecord
	n.children = children
	n.data = nil

	return nil
}

// size returns the serialized size of idx without expanding it.
func (t *Tree) size(idx int32) int {
	n := &t.nodes[idx]

	size := 0
	if n.headed {
		size = HeaderSize
	}
	if n.kind != payloadRecord {
		return size + len(n.data)
	}
	for _, c := range n.children {
		size += t.size(c)
	}

	return size
}

// appendNode serializes idx onto buf, backpatching the header size once the
// payload is written.
func (t *Tree) appendNode(buf []byte, idx int32) []byte {
	n := &t.nodes[idx]

	start := len(buf)
	if n.headed {
		buf = engine.AppendUint32(buf, uint32(n.id))
		buf = engine.AppendUint32(buf, 0)
	}

	if n.kind == payloadRecord {
		for _, c := range n.children {
			buf = t.appendNode(buf, c)
		}
	} else {
		buf = append(buf, n.data...)
	}

	if n.headed {
		engine.PutUint32(buf[start+4:], uint32(len(buf)-start)) //nolint: gosec
	}

	return buf
}

// cloneInto deep-copies node src of tree from as a child of parent in t and
// returns the new index.
func (t *Tree) cloneInto(parent int32, from *Tree, src int32) int32 {
	s := from.nodes[src]

	idx := t.add(node{
		id:     s.id,
		headed: true,
		parent: parent,
		kind:   s.kind,
		data:   clone(s.data),
	})

	if s.kind == payloadRecord {
		children := make([]int32, 0, len(s.children))
		for _, c := range s.children {
			children = append(children, t.cloneInto(idx, from, c))
		}
		t.nodes[idx].children = children
	}

	return idx
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
