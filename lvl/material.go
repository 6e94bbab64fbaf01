package lvl

import (
	"io"

	"github.com/anaminus/parse"

	"github.com/levtools/levfile"
)

// ChunkMaterial is a chunk carrying material records. The Materials form
// packs its records back to back until the payload runs out; the legacy
// MaterialObj form holds exactly one. Both share the same record grammar.
type ChunkMaterial struct {
	// Kind is the chunk type code the materials arrived under.
	Kind ChunkType

	// Version is the version field of the chunk header.
	Version int32

	// Materials holds the decoded records in payload order.
	Materials []*levfile.Material
}

func (c *ChunkMaterial) Type() ChunkType {
	return c.Kind
}

// ReadFrom decodes material records from the chunk payload. The MaterialObj
// form stops after one record; the Materials form keeps decoding until the
// payload is exhausted.
func (c *ChunkMaterial) ReadFrom(r io.Reader) (n int64, err error) {
	fr := parse.NewBinaryReader(r)

	for {
		start := fr.N()
		m, failed := decodeMaterial(fr)
		if failed {
			// Running out of input exactly at a record boundary ends
			// the sequence; anywhere else it is a short read.
			if c.Kind == Materials && fr.Err() == io.EOF && fr.N() == start {
				return fr.N(), nil
			}
			return fr.End()
		}
		c.Materials = append(c.Materials, m)
		if c.Kind != Materials {
			return fr.End()
		}
	}
}

func decodeMaterial(fr *parse.BinaryReader) (m *levfile.Material, failed bool) {
	var a levfile.Attributes
	var mat levfile.Material

	// The name hash is consumed but not retained; the material is
	// identified by MaterialHash further down.
	var nameHash uint32

	if fr.Number(&a.Flags) ||
		fr.Number(&nameHash) ||
		readBool32(fr, &a.AdditiveLighting) ||
		readColor(fr, &a.Color) ||
		readColor(fr, &a.Specular) ||
		fr.Number(&a.Power) ||
		fr.Number(&a.ShadingMode) ||
		readBool32(fr, &a.Blend) ||
		fr.Number(&a.BlendModes.Source) ||
		fr.Number(&a.BlendModes.Destination) ||
		readBool32(fr, &a.AlphaTest) ||
		fr.Number(&a.AlphaTestMode.Comparison) ||
		fr.Number(&a.AlphaTestMode.Reference) ||
		readBool32(fr, &a.DepthWrite) ||
		fr.Number(&a.DepthComparison) ||
		fr.Number(&mat.MaterialHash) ||
		fr.Number(&a.Owner) ||
		fr.Number(&a.ColorBufferWrite) {
		return nil, true
	}

	for i := 0; i < 5; i++ {
		var uvSet uint32
		var nameLength int32
		if fr.Number(&uvSet) || fr.Number(&nameLength) {
			return nil, true
		}
		a.UVSets[i] = uvSet

		// A non-positive name length means the slot holds no texture.
		if nameLength <= 0 {
			continue
		}

		t := levfile.MaterialTexture{UVSet: uvSet}
		if readWideChars(fr, nameLength, &t.Name) ||
			fr.Number(&t.Format) ||
			fr.Number(&t.Filter) ||
			fr.Number(&t.Address) ||
			readWideName(fr, "mask name", &t.MaskName) ||
			readColor(fr, &t.BorderColor) ||
			fr.Number(&t.Hash) {
			return nil, true
		}

		a.TextureHashes[i] = t.Hash
		mat.Textures[i] = &t
	}

	for i := 0; i < 5; i++ {
		if readBool32(fr, &a.UseMatrices[i]) {
			return nil, true
		}
		if a.UseMatrices[i] {
			// The transform is consumed to keep the stream in sync; only
			// its presence feeds the attribute block.
			var t levfile.Matrix
			if readMatrix(fr, &t) {
				return nil, true
			}
		}
	}

	for i := 0; i < 5; i++ {
		if fr.Number(&a.Generators[i]) {
			return nil, true
		}
	}

	if fr.Number(&a.EnvmapType) || fr.Number(&a.PlanarSheerEnvmapDistance) {
		return nil, true
	}

	mat.Attributes = a
	return &mat, false
}
