package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/mpr"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "zone.mpr")
	m, err := mpr.NewMap(2, 1)
	require.NoError(t, err)
	for i := range m.LandVertices.Cells {
		m.LandVertices.Cells[i].Z = uint16(i)
	}
	require.NoError(t, m.Save(src))

	dst := filepath.Join(dir, "zone.png")
	require.NoError(t, run(src, dst))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 65, img.Bounds().Dx())
	require.Equal(t, 33, img.Bounds().Dy())
}

func TestRun_MissingMap(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run(filepath.Join(dir, "none.mpr"), filepath.Join(dir, "out.png")))
	require.NoFileExists(t, filepath.Join(dir, "out.png"))
}
