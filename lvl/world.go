package lvl

import (
	"io"

	"github.com/anaminus/parse"

	"github.com/levtools/levfile"
)

// ChunkWorld is a chunk carrying the world record.
type ChunkWorld struct {
	// Version is the version field of the chunk header.
	Version int32

	// World is the decoded record.
	World *levfile.World
}

func (c *ChunkWorld) Type() ChunkType {
	return World
}

// ReadFrom decodes the world record from the chunk payload.
func (c *ChunkWorld) ReadFrom(r io.Reader) (n int64, err error) {
	fr := parse.NewBinaryReader(r)

	w, failed := decodeWorld(fr)
	if !failed {
		c.World = w
	}

	return fr.End()
}

func decodeWorld(fr *parse.BinaryReader) (w *levfile.World, failed bool) {
	var world levfile.World

	if fr.Number(&world.Flags) || readColorRGB8(fr, &world.Ambient) {
		return nil, true
	}

	var floorCount int32
	if fr.Number(&floorCount) {
		return nil, true
	}
	if floorCount < 0 {
		fr.Add(0, LengthError{Field: "floor count", Length: floorCount})
		return nil, true
	}

	// The count is not cross-validated against content; an oversized count
	// runs into a short read while decoding floors.
	world.Floors = make([]levfile.Floor, 0, floorCount)
	for i := int32(0); i < floorCount; i++ {
		var f levfile.Floor
		if decodeFloor(fr, &f) {
			return nil, true
		}
		world.Floors = append(world.Floors, f)
	}

	if fr.Number(&world.ZoneCount) ||
		readBool32(fr, &world.HaveOcclusionBSP) ||
		readBool32(fr, &world.HaveNulls) ||
		readBool32(fr, &world.HaveWaypoints) ||
		readBool32(fr, &world.HaveMesh) {
		return nil, true
	}

	return &world, false
}

func decodeFloor(fr *parse.BinaryReader, f *levfile.Floor) (failed bool) {
	return fr.Number(&f.OcclusionBSP) || readBoundingBox(fr, &f.GhostCamera)
}
