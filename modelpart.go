package levfile

// Bits of a mesh part's Flags word that gate the presence of optional
// vertex fields.
const (
	VertexHasPosition = 1 << (iota + 8)
	VertexHasNormal
	VertexHasReciprocalHomogeneousW
	VertexHasDiffuse
	VertexHasWeight
	VertexHasIndices
)

// VertexUVCountMask covers the low byte of a part's Flags word, which holds
// the vertex UV pair count.
const VertexUVCountMask = 0xFF

// ModelPart is one renderable part of a mesh: a part header followed by its
// vertex records. The part's Flags word selects which optional fields each
// vertex carries; the layout is uniform across all vertices of the part.
type ModelPart struct {
	ReadAccessFlags  uint32
	VertexReadFlags  uint32
	WriteAccessFlags uint32
	VertexWriteFlags uint32
	HintFlags        uint32
	ConstantFlags    uint32
	VertexFlags      uint32
	RenderFlags      uint32

	TrianglesCount      uint16
	StripsCount         uint16
	StripTrianglesCount uint16

	// MaterialHash references a Material by its archive-assigned hash.
	MaterialHash uint32

	TriangleIndex0 int32
	TriangleIndex1 int32
	VertexIndex0   int32
	VertexIndex1   int32

	LayerZ     uint32
	FloorFlags uint32

	// Flags is the vertex layout flag word shared by every vertex of the
	// part.
	Flags uint32

	LightingSID uint32

	Vertices []Vertex
}

// Vertex is a sparse vertex record. A nil field was absent from the stream,
// which consumers must distinguish from a present zero value.
type Vertex struct {
	Position               *Vector3
	Normal                 *Vector3
	ReciprocalHomogeneousW *uint32
	Diffuse                *Color
	Weight                 *float32
	Indices                *[2]uint16

	// UVs holds the vertex's UV coordinate pairs in stream order. The
	// count is the low byte of the part's Flags word.
	UVs [][2]float32
}
