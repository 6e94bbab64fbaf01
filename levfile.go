// The levfile package holds the typed data structures decoded from LVL
// scene archives, the chunked binary asset container used by a legacy 3D
// game engine to store level resources.
//
// An archive is a sequence of tagged, versioned, length-prefixed chunks.
// Each chunk carries one record: a material, a renderable mesh part, the
// world description, or one of several auxiliary structures (textures,
// occlusion data, spatial octrees). The "lvl" sub-package decodes byte
// streams into the types declared here.
//
// All records are plain values: once decoded they own their nested
// sub-records exclusively, hold no references back into the input buffer,
// and are not mutated by this module.
package levfile

// Scene is a convenient view over the records of a decoded archive,
// grouping them by kind. It is assembled from decoded chunks; the order of
// Materials and Parts follows the chunk order of the archive.
type Scene struct {
	// Materials lists every decoded material record.
	Materials []*Material

	// Parts lists every decoded mesh part record.
	Parts []*ModelPart

	// World is the world description, or nil if the archive has none.
	World *World
}
