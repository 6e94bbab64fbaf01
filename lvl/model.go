package lvl

import (
	"io"

	"github.com/anaminus/parse"

	"github.com/levtools/levfile"
	"github.com/levtools/levfile/errors"
)

// ChunkHeader frames one chunk of an archive: the type code, the byte
// length of the payload that follows, and a version. The header is decoded
// once per chunk and immediately consumed to pick a record decoder.
//
// Size and Version are passed through uninterpreted; enforcing that a
// record decoder consumes exactly Size bytes is the caller's
// responsibility.
type ChunkHeader struct {
	Type    ChunkType
	Size    int32
	Version int32
}

// ReadFrom decodes the three header fields in order and resolves the type
// code against the closed enumeration. An unrecognized code fails with
// ChunkTypeError.
func (h *ChunkHeader) ReadFrom(r io.Reader) (n int64, err error) {
	fr := parse.NewBinaryReader(r)
	h.readFrom(fr)
	return fr.End()
}

func (h *ChunkHeader) readFrom(fr *parse.BinaryReader) (failed bool) {
	var code int32
	if fr.Number(&code) {
		return true
	}
	if !ChunkType(code).Valid() {
		fr.Add(0, ChunkTypeError(code))
		return true
	}
	h.Type = ChunkType(code)

	return fr.Number(&h.Size) || fr.Number(&h.Version)
}

// Chunk is one decoded record of an archive. Every chunk kind decodes its
// payload through the same contract: ReadFrom consumes one record from a
// positioned payload reader, returning a short-read or format error
// otherwise.
type Chunk interface {
	// Type returns the chunk type code the record arrived under.
	Type() ChunkType

	// ReadFrom processes the payload of a chunk.
	ReadFrom(r io.Reader) (n int64, err error)
}

// ChunkRaw is a recognized chunk whose payload grammar is handled
// elsewhere; the payload is retained verbatim.
type ChunkRaw struct {
	// Kind is the chunk type code.
	Kind ChunkType

	// Version is the version field of the chunk header.
	Version int32

	// Payload is the raw content of the chunk.
	Payload []byte
}

func (c *ChunkRaw) Type() ChunkType {
	return c.Kind
}

// ReadFrom retains the remaining payload bytes verbatim.
func (c *ChunkRaw) ReadFrom(r io.Reader) (n int64, err error) {
	fr := parse.NewBinaryReader(r)

	c.Payload, _ = fr.All()

	return fr.End()
}

// File models a decoded archive as the ordered list of its chunks.
type File struct {
	Chunks []Chunk
}

// Scene assembles the typed records of the file into a levfile.Scene. The
// first world chunk wins if the archive carries several; each extra world
// is reported as a warning.
func (f *File) Scene() (s *levfile.Scene, warn error) {
	s = new(levfile.Scene)
	var warns errors.Errors
	for _, c := range f.Chunks {
		switch c := c.(type) {
		case *ChunkMaterial:
			s.Materials = append(s.Materials, c.Materials...)
		case *ChunkMesh:
			s.Parts = append(s.Parts, c.Part)
		case *ChunkWorld:
			if s.World != nil {
				warns = warns.Append(errors.New("multiple world chunks; keeping the first"))
				continue
			}
			s.World = c.World
		}
	}
	return s, warns.Return()
}
