package levfile

// World is the global world description of a level: lighting, the floor
// list, and flags recording which auxiliary structures the archive carries.
type World struct {
	Flags uint32

	// Ambient is the ambient light color. It is stored in the archive as
	// three bytes; the alpha channel is implicitly fully opaque.
	Ambient Color

	Floors []Floor

	ZoneCount int32

	HaveOcclusionBSP bool
	HaveNulls        bool
	HaveWaypoints    bool
	HaveMesh         bool
}

// Floor is one floor of a world: a reference to its occlusion BSP and the
// bounds the ghost camera is confined to.
type Floor struct {
	OcclusionBSP uint32
	GhostCamera  BoundingBox
}
