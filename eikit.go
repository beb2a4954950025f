// Package eikit reads and writes the asset files of the Evil Islands game.
//
// # Formats
//
//   - .res and .mpr archives: named byte ranges behind an open-addressing hash
//     table (package res)
//   - .mob world files: a recursive tree of typed sections with an encrypted
//     string leaf (package mob)
//   - .mpr terrain: a map archive holding a global header and one entry per
//     sector, stitched into global vertex and tile grids (package mpr)
//   - .lnk link tables: child/parent name pairs (package lnk)
//
// All names and strings use codepage 1251 (package codec).
//
// # Basic Usage
//
// Listing an archive:
//
//	dir, err := eikit.ListArchive("textures.res")
//	for _, name := range dir.Names() {
//	    e, _ := dir.Lookup(name)
//	    fmt.Println(name, e.Size, e.ModTime)
//	}
//
// Loading and repairing terrain:
//
//	m, err := eikit.LoadTerrain("zone1.mpr")
//	if r := m.RepairTileTypes(); r.Repaired() {
//	    err = m.Save("zone1.mpr")
//	}
//
// Reading a world file:
//
//	tree, err := eikit.ParseSections(data)
//	db, err := tree.Root().Find(mob.IDObjectDBFile)
//
// # Errors
//
// Every failure wraps one of errs.ErrCorruptData, errs.ErrInvalidOperation or
// errs.ErrUnencodable; see package errs.
//
// This package provides top-level wrappers for the most common tasks. Use the
// format packages directly for finer control.
package eikit

import (
	"fmt"
	"os"

	"github.com/arloliu/eikit/internal/hash"
	"github.com/arloliu/eikit/mob"
	"github.com/arloliu/eikit/mpr"
	"github.com/arloliu/eikit/res"
)

// ListArchive reads the directory of the archive at path.
func ListArchive(path string) (*res.Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir, err := res.ListEntries(f)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	return dir, nil
}

// LoadTerrain loads the terrain map at path.
func LoadTerrain(path string) (*mpr.Map, error) {
	return mpr.Load(path)
}

// ParseSections parses a world file body into a section tree.
func ParseSections(data []byte) (*mob.Tree, error) {
	return mob.Parse(data)
}

// NameID returns the case-insensitive identifier archives index entry names by.
// Names equal under ASCII case folding share an ID.
func NameID(name string) uint64 {
	return hash.NameID(name)
}
