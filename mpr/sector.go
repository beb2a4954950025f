package mpr

import (
	"fmt"
	"io"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
)

// sector is the decoded body of one .sec entry.
type sector struct {
	water      bool
	land       [SectorVertexCount]secVertex
	waterVerts [SectorVertexCount]secVertex
	landTiles  [SectorTileCount]uint16
	waterTiles [SectorTileCount]uint16
	waterAllow [SectorTileCount]uint16
}

// SectorName returns the archive entry name of sector (x, y) in zone.
func SectorName(zone string, x, y int) string {
	return fmt.Sprintf("%s%03d%03d.sec", zone, x, y)
}

// HeaderName returns the archive entry name of the global table entry of zone.
func HeaderName(zone string) string {
	return zone + ".mp"
}

// decode parses a .sec entry. A sector without a water layer gets zeroed
// water vertices, zero water tiles and a "no material" allow code.
func (s *sector) decode(data []byte) error {
	var hdr secHeader
	off, err := codec.Unmarshal(data, &hdr)
	if err != nil {
		return err
	}
	if hdr.Signature != SecSignature {
		return fmt.Errorf("sector signature 0x%08X: %w", hdr.Signature, errs.ErrInvalidSignature)
	}
	s.water = hdr.Type == SectorTypeWater

	parts := []any{&s.land}
	if s.water {
		parts = append(parts, &s.waterVerts)
	}
	parts = append(parts, &s.landTiles)
	if s.water {
		parts = append(parts, &s.waterTiles, &s.waterAllow)
	}

	for _, p := range parts {
		n, err := codec.Unmarshal(data[off:], p)
		if err != nil {
			return err
		}
		off += n
	}

	if off != len(data) {
		return fmt.Errorf("sector consumed %d of %d bytes: %w", off, len(data), errs.ErrSizeMismatch)
	}

	if !s.water {
		s.waterVerts = [SectorVertexCount]secVertex{}
		s.waterTiles = [SectorTileCount]uint16{}
		for i := range s.waterAllow {
			s.waterAllow[i] = noWaterAllow
		}
	}

	return nil
}

// encode writes the .sec entry of s to w. Water arrays are written only for
// water sectors.
func (s *sector) encode(w io.Writer) error {
	hdr := secHeader{Signature: SecSignature, Type: SectorTypeLand}
	if s.water {
		hdr.Type = SectorTypeWater
	}

	parts := []any{&hdr, &s.land}
	if s.water {
		parts = append(parts, &s.waterVerts)
	}
	parts = append(parts, &s.landTiles)
	if s.water {
		parts = append(parts, &s.waterTiles, &s.waterAllow)
	}

	for _, p := range parts {
		if err := codec.WriteRecord(w, p); err != nil {
			return err
		}
	}

	return nil
}

// sectorSize returns the encoded size of a sector.
func sectorSize(water bool) int {
	const (
		vertexSize = 8
		headerSize = 5
	)
	size := headerSize + SectorVertexCount*vertexSize + SectorTileCount*2
	if water {
		size += SectorVertexCount*vertexSize + 2*SectorTileCount*2
	}

	return size
}
