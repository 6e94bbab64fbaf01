package lvl

import (
	"io"

	"github.com/anaminus/parse"

	"github.com/levtools/levfile"
)

// ChunkMesh is a chunk carrying one single-part mesh record.
type ChunkMesh struct {
	// Version is the version field of the chunk header.
	Version int32

	// Part is the decoded record.
	Part *levfile.ModelPart
}

func (c *ChunkMesh) Type() ChunkType {
	return SPMesh
}

// ReadFrom decodes one mesh part record from the chunk payload.
func (c *ChunkMesh) ReadFrom(r io.Reader) (n int64, err error) {
	fr := parse.NewBinaryReader(r)

	p, failed := decodeModelPart(fr)
	if !failed {
		c.Part = p
	}

	return fr.End()
}

func decodeModelPart(fr *parse.BinaryReader) (p *levfile.ModelPart, failed bool) {
	var part levfile.ModelPart
	var vertexCount uint32

	if fr.Number(&part.ReadAccessFlags) ||
		fr.Number(&part.VertexReadFlags) ||
		fr.Number(&part.WriteAccessFlags) ||
		fr.Number(&part.VertexWriteFlags) ||
		fr.Number(&part.HintFlags) ||
		fr.Number(&part.ConstantFlags) ||
		fr.Number(&part.VertexFlags) ||
		fr.Number(&part.RenderFlags) ||
		fr.Number(&vertexCount) ||
		fr.Number(&part.TrianglesCount) ||
		fr.Number(&part.StripsCount) ||
		fr.Number(&part.StripTrianglesCount) ||
		fr.Number(&part.MaterialHash) ||
		fr.Number(&part.TriangleIndex0) ||
		fr.Number(&part.TriangleIndex1) ||
		fr.Number(&part.VertexIndex0) ||
		fr.Number(&part.VertexIndex1) ||
		fr.Number(&part.LayerZ) ||
		fr.Number(&part.FloorFlags) ||
		fr.Number(&part.Flags) ||
		fr.Number(&part.LightingSID) {
		return nil, true
	}

	part.Vertices = make([]levfile.Vertex, 0, vertexCount)
	for i := uint32(0); i < vertexCount; i++ {
		var v levfile.Vertex
		if decodeVertex(fr, part.Flags, &v) {
			return nil, true
		}
		part.Vertices = append(part.Vertices, v)
	}

	return &part, false
}

// decodeVertex reads one vertex record. The part's flag word selects which
// optional fields are present; the six presence bits are tested in fixed
// order, and the low byte of the word is the UV pair count. Presence is
// never inferred from decoded values.
func decodeVertex(fr *parse.BinaryReader, flags uint32, v *levfile.Vertex) (failed bool) {
	if flags&levfile.VertexHasPosition != 0 {
		var p levfile.Vector3
		if readVector3(fr, &p) {
			return true
		}
		v.Position = &p
	}

	if flags&levfile.VertexHasNormal != 0 {
		var n levfile.Vector3
		if readVector3(fr, &n) {
			return true
		}
		v.Normal = &n
	}

	if flags&levfile.VertexHasReciprocalHomogeneousW != 0 {
		var w uint32
		if fr.Number(&w) {
			return true
		}
		v.ReciprocalHomogeneousW = &w
	}

	if flags&levfile.VertexHasDiffuse != 0 {
		var c levfile.Color
		if readColorU8(fr, &c) {
			return true
		}
		v.Diffuse = &c
	}

	if flags&levfile.VertexHasWeight != 0 {
		var w float32
		if fr.Number(&w) {
			return true
		}
		v.Weight = &w
	}

	if flags&levfile.VertexHasIndices != 0 {
		var idx [2]uint16
		if fr.Number(&idx[0]) || fr.Number(&idx[1]) {
			return true
		}
		v.Indices = &idx
	}

	uvCount := flags & levfile.VertexUVCountMask
	v.UVs = make([][2]float32, 0, uvCount)
	for i := uint32(0); i < uvCount; i++ {
		var uv [2]float32
		if fr.Number(&uv[0]) || fr.Number(&uv[1]) {
			return true
		}
		v.UVs = append(v.UVs, uv)
	}

	return false
}
