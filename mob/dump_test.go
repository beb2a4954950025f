package mob

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	tree, err := Parse(sampleFile())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, tree.Root()))

	var root DumpNode
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &root))

	require.Equal(t, "Record", root.Type)
	require.Len(t, root.Children, 2)

	db := root.Children[0]
	require.Equal(t, "0x0000A000", db.ID)
	require.Equal(t, "OBJECTDBFILE", db.Name)

	obj := db.Children[0].Children[0]
	require.Equal(t, "OBJECT", obj.Name)
	require.Len(t, obj.Children, 3)
	require.Equal(t, float64(42), obj.Children[0].Value)
	require.Equal(t, "Hero\x00", obj.Children[1].Value)
	require.Empty(t, obj.Children[1].Raw)

	opaque := root.Children[1]
	require.Equal(t, "Unknown", opaque.Type)
	require.Empty(t, opaque.Name)
	require.Nil(t, opaque.Value)
	require.Equal(t, "dead", opaque.Raw)
}

func TestDump_Options(t *testing.T) {
	tree, err := ParseSection(section(IDNID, u32(1)))
	require.NoError(t, err)

	var compact, indented bytes.Buffer
	require.NoError(t, Dump(&compact, tree.Root()))
	require.NoError(t, Dump(&indented, tree.Root(), WithIndent(2), WithRawLeaves(true)))

	require.NotContains(t, strings.TrimSpace(compact.String()), "\n")
	require.Contains(t, indented.String(), "\n  \"id\"")
	require.Contains(t, indented.String(), `"01000000"`)
	require.NotContains(t, compact.String(), "raw")

	require.Error(t, Dump(&compact, tree.Root(), WithIndent(-1)))
}

func TestDump_ReportsBadLeaves(t *testing.T) {
	tree, err := ParseSection(section(IDNID, []byte{1}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, tree.Root()))

	var view DumpNode
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &view))
	require.NotEmpty(t, view.Error)
	require.Nil(t, view.Value)
	require.Equal(t, "01", view.Raw)
}

func TestDump_CorruptTree(t *testing.T) {
	tree, err := Parse([]byte{1, 2, 3})
	require.NoError(t, err)

	require.Error(t, Dump(&bytes.Buffer{}, tree.Root()))
}
