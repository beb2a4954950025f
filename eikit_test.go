package eikit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/mob"
	"github.com/arloliu/eikit/mpr"
)

func TestLoadTerrain(t *testing.T) {
	m, err := mpr.NewMap(1, 2)
	require.NoError(t, err)
	m.MaxZ = 10
	path := filepath.Join(t.TempDir(), "zone.mpr")
	require.NoError(t, m.Save(path, mpr.WithModTime(time.Unix(100, 0))))

	dir, err := ListArchive(path)
	require.NoError(t, err)
	require.Equal(t, []string{"zone.mp", "zone000000.sec", "zone000001.sec"}, dir.Names())
	for _, e := range dir.Entries() {
		require.Equal(t, time.Unix(100, 0).UTC(), e.ModTime)
	}

	got, err := LoadTerrain(path)
	require.NoError(t, err)
	require.Equal(t, float32(10), got.MaxZ)
	require.Equal(t, 2, got.SectorsY)
}

func TestListArchive_Missing(t *testing.T) {
	_, err := ListArchive(filepath.Join(t.TempDir(), "nope.res"))
	require.Error(t, err)
}

func TestParseSections(t *testing.T) {
	tree := mob.New()
	leaf, err := tree.Root().AddChild(mob.IDObjName)
	require.NoError(t, err)
	require.NoError(t, leaf.SetString("Hero\x00"))

	parsed, err := ParseSections(tree.Bytes())
	require.NoError(t, err)
	n, err := parsed.Root().Find(mob.IDObjName)
	require.NoError(t, err)
	s, err := n.AsString()
	require.NoError(t, err)
	require.Equal(t, "Hero", mob.TrimNUL(s))

	_, err = ParseSections(nil)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
}

func TestNameID(t *testing.T) {
	require.Equal(t, NameID(`Maps\Zone1.MPR`), NameID(`maps\zone1.mpr`))
	require.NotEqual(t, NameID("a"), NameID("b"))
}
