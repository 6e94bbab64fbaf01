// Package lvl implements a decoder for the LVL binary scene archive
// format.
//
// An archive is a sequence of chunks, each framed by a 12-byte header
// holding a type code, the payload byte length, and a version. The payload
// format depends on the type code. Decoder reads a whole stream of chunks;
// the individual chunk types decode one record each from a positioned
// payload reader, all sharing the same short-read/format error semantics.
//
// All wire values are little-endian with no alignment padding.
package lvl

// ChunkType is the type code of a chunk. The set of codes is closed: a
// code outside the enumeration is fatal to the parse, since chunk
// boundaries cannot be trusted without knowing the type.
type ChunkType int32

const (
	GLProject      ChunkType = 1
	MaterialObj    ChunkType = 5
	ModelGroup     ChunkType = 1000
	BoneObj        ChunkType = 1001
	SPMesh         ChunkType = 1002
	Collision      ChunkType = 1003
	AtomicMesh     ChunkType = 1004
	SkinObj        ChunkType = 1005
	GLCamera       ChunkType = 1006
	LightObj       ChunkType = 1007
	LevelObj       ChunkType = 1009
	Materials      ChunkType = 1010
	SectorOctree   ChunkType = 1011
	World          ChunkType = 1012
	AnimLib        ChunkType = 1017
	OcclusionMesh  ChunkType = 1018
	Occlusion      ChunkType = 1019
	WpPoints       ChunkType = 1020
	NavigationMesh ChunkType = 1021
	Zones          ChunkType = 1023
	Area           ChunkType = 1024
	LinkEmm        ChunkType = 1026
	SpLights       ChunkType = 1029
	Entities       ChunkType = 20000
	Entity         ChunkType = 20001
	Textures       ChunkType = 20002
)

var chunkTypeStrings = map[ChunkType]string{
	GLProject:      "GLProject",
	MaterialObj:    "MaterialObj",
	ModelGroup:     "ModelGroup",
	BoneObj:        "BoneObj",
	SPMesh:         "SPMesh",
	Collision:      "Collision",
	AtomicMesh:     "AtomicMesh",
	SkinObj:        "SkinObj",
	GLCamera:       "GLCamera",
	LightObj:       "LightObj",
	LevelObj:       "LevelObj",
	Materials:      "Materials",
	SectorOctree:   "SectorOctree",
	World:          "World",
	AnimLib:        "AnimLib",
	OcclusionMesh:  "OcclusionMesh",
	Occlusion:      "Occlusion",
	WpPoints:       "WpPoints",
	NavigationMesh: "NavigationMesh",
	Zones:          "Zones",
	Area:           "Area",
	LinkEmm:        "LinkEmm",
	SpLights:       "SpLights",
	Entities:       "Entities",
	Entity:         "Entity",
	Textures:       "Textures",
}

// Valid returns whether the type code is in the closed enumeration.
func (t ChunkType) Valid() bool {
	_, ok := chunkTypeStrings[t]
	return ok
}

// String returns a string representation of the type. If the type is not
// valid, then the returned value will be "Invalid".
func (t ChunkType) String() string {
	s, ok := chunkTypeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}
