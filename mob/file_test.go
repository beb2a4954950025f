package mob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
)

func TestFile_Cursor(t *testing.T) {
	tree, err := Parse(sampleFile())
	require.NoError(t, err)
	f := NewFile(tree)

	require.True(t, f.Current().IsRoot())
	f.Leave()
	require.True(t, f.Current().IsRoot(), "leave on root is a no-op")

	require.NoError(t, f.EnterObjects())
	require.Equal(t, IDObjectSection, f.Current().ID())

	require.NoError(t, f.Enter(IDObject))
	require.ErrorIs(t, f.Enter(IDObjRotation), errs.ErrSectionNotFound)
	require.Equal(t, IDObject, f.Current().ID(), "failed enter keeps the cursor")

	f.Leave()
	require.Equal(t, IDObjectSection, f.Current().ID())

	require.NoError(t, f.EnterScript())
	require.Equal(t, IDScriptTextOld, f.Current().ID())
	s, err := f.Current().AsString()
	require.NoError(t, err)
	require.Equal(t, "script", s)
}

func TestFile_EnterScriptPrefersEncrypted(t *testing.T) {
	enc, err := EncryptString("new", 7)
	require.NoError(t, err)

	data := section(IDObjectDBFile,
		section(IDScriptTextOld, []byte("old")),
		section(IDScriptText, enc),
	)
	tree, err := Parse(data)
	require.NoError(t, err)

	f := NewFile(tree)
	require.NoError(t, f.EnterScript())
	s, err := f.Current().AsEncryptedString()
	require.NoError(t, err)
	require.Equal(t, "new", s)
}

func TestFile_EnterMissing(t *testing.T) {
	tree, err := Parse(section(IDObjectDBFile))
	require.NoError(t, err)
	f := NewFile(tree)

	require.ErrorIs(t, f.EnterScript(), errs.ErrSectionNotFound)
	require.ErrorIs(t, f.EnterObjects(), errs.ErrSectionNotFound)
	require.True(t, f.Current().IsRoot())

	empty := NewFile(New())
	require.ErrorIs(t, empty.EnterObjects(), errs.ErrSectionNotFound)
}

func TestFile_SetCurrent(t *testing.T) {
	tree, err := Parse(sampleFile())
	require.NoError(t, err)
	f := NewFile(tree)

	db, err := tree.Root().Find(IDObjectDBFile)
	require.NoError(t, err)
	require.NoError(t, f.SetCurrent(db))
	require.Equal(t, db, f.Current())

	require.ErrorIs(t, f.SetCurrent(New().Root()), errs.ErrForeignNode)
}

func TestFile_OpenSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "zone.mob")
	require.NoError(t, os.WriteFile(src, sampleFile(), 0o600))

	f, err := OpenFile(src)
	require.NoError(t, err)
	require.NoError(t, f.EnterObjects())
	require.NoError(t, f.Enter(IDObject))
	require.NoError(t, f.Enter(IDObjPlayer))
	require.NoError(t, f.Current().SetByte(1))

	dst := filepath.Join(dir, "out.mob")
	require.NoError(t, f.Save(dst))

	g, err := OpenFile(dst)
	require.NoError(t, err)
	require.NoError(t, g.EnterObjects())
	require.NoError(t, g.Enter(IDObject))
	require.NoError(t, g.Enter(IDObjPlayer))
	v, err := g.Current().AsByte()
	require.NoError(t, err)
	require.Equal(t, byte(1), v)

	_, err = OpenFile(filepath.Join(dir, "missing.mob"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
