package levfile

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Material is a surface description referenced by mesh parts through its
// hash.
type Material struct {
	// MaterialHash is the identifier assigned to the material by the
	// archive. It is independent of the structural hash computed over
	// Attributes; the two serve different identity purposes.
	MaterialHash uint32

	// Attributes is the fixed-layout attribute block of the material.
	Attributes Attributes

	// Textures holds the five texture slots of the material. A slot is nil
	// when the archive declared no texture for it.
	Textures [5]*MaterialTexture
}

// Attributes is the fixed-layout attribute block of a material. The field
// order and widths are part of the format: StructuralHash serializes the
// fields in exactly this order.
type Attributes struct {
	Flags            uint32
	AdditiveLighting bool
	Color            Color
	Specular         Color
	Power            float32
	ShadingMode      int32
	DepthWrite       bool
	DepthComparison  int32
	Blend            bool
	BlendModes       BlendModes
	AlphaTest        bool
	AlphaTestMode    AlphaTestMode

	// Owner is the identifier of the object owning the material.
	Owner uint32

	// ColorBufferWrite is the color channel write mask.
	ColorBufferWrite uint32

	// UseMatrices records, per texture slot, whether a UV transform was
	// declared for the slot.
	UseMatrices [5]bool

	// Generators holds the per-slot texture coordinate generator codes.
	Generators [5]int32

	// UVSets and TextureHashes record the per-slot UV set index and texture
	// hash. They are populated even for slots whose texture is absent,
	// duplicating values held by MaterialTexture; the duplication is part
	// of the original layout and feeds the structural hash.
	UVSets        [5]uint32
	TextureHashes [5]uint32

	EnvmapType                int32
	PlanarSheerEnvmapDistance float32
}

// MaterialTexture describes one occupied texture slot of a material.
type MaterialTexture struct {
	UVSet  uint32
	Name   string
	Format int32

	// Filter is the filtering mode. It is decoded to keep the stream in
	// sync but is not consumed by anything downstream.
	Filter int32

	Address     int32
	MaskName    string
	BorderColor Color
	Hash        uint32
}

// BlendModes is the source/destination blend factor pair of a material.
type BlendModes struct {
	Source      int32
	Destination int32
}

// AlphaTestMode is the alpha test comparison of a material.
type AlphaTestMode struct {
	Comparison int32
	Reference  float32
}

// attributesSize is the packed byte length of the serialized Attributes
// block.
const attributesSize = 4 + 1 + 16 + 16 + 4 + 4 + 1 + 4 + 1 + 8 + 1 + 8 + 4 + 4 + 5 + 20 + 20 + 20 + 4 + 4

// StructuralHash returns the content-derived identifier of the attribute
// block, used for content-addressing and deduplication of materials.
//
// The hash is computed over an explicit serialization of the fields in
// declared order, little-endian, with booleans as single bytes and no
// padding, so the result does not depend on how the compiler lays out the
// struct in memory. It is a pure function of the receiver.
func (a *Attributes) StructuralHash() uint32 {
	b := make([]byte, 0, attributesSize)
	b = appendUint32(b, a.Flags)
	b = appendBool(b, a.AdditiveLighting)
	b = appendColor(b, a.Color)
	b = appendColor(b, a.Specular)
	b = appendFloat32(b, a.Power)
	b = appendUint32(b, uint32(a.ShadingMode))
	b = appendBool(b, a.DepthWrite)
	b = appendUint32(b, uint32(a.DepthComparison))
	b = appendBool(b, a.Blend)
	b = appendUint32(b, uint32(a.BlendModes.Source))
	b = appendUint32(b, uint32(a.BlendModes.Destination))
	b = appendBool(b, a.AlphaTest)
	b = appendUint32(b, uint32(a.AlphaTestMode.Comparison))
	b = appendFloat32(b, a.AlphaTestMode.Reference)
	b = appendUint32(b, a.Owner)
	b = appendUint32(b, a.ColorBufferWrite)
	for _, m := range a.UseMatrices {
		b = appendBool(b, m)
	}
	for _, g := range a.Generators {
		b = appendUint32(b, uint32(g))
	}
	for _, s := range a.UVSets {
		b = appendUint32(b, s)
	}
	for _, h := range a.TextureHashes {
		b = appendUint32(b, h)
	}
	b = appendUint32(b, uint32(a.EnvmapType))
	b = appendFloat32(b, a.PlanarSheerEnvmapDistance)

	sum := blake2b.Sum256(b)
	return binary.LittleEndian.Uint32(sum[:4])
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendFloat32(b []byte, v float32) []byte {
	return appendUint32(b, math.Float32bits(v))
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func appendColor(b []byte, c Color) []byte {
	b = appendFloat32(b, c.R)
	b = appendFloat32(b, c.G)
	b = appendFloat32(b, c.B)
	return appendFloat32(b, c.A)
}
