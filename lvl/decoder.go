package lvl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/anaminus/parse"

	"github.com/levtools/levfile"
	"github.com/levtools/levfile/errors"
)

// Decoder decodes a stream of chunks into a File.
type Decoder struct{}

// Decode reads chunks from r until the stream is exhausted. Decoding stops
// successfully only at a chunk boundary; a stream that ends inside a header
// or payload is an error. warn collects recoverable oddities, such as a
// record decoder consuming fewer bytes than the chunk header declared.
func (d Decoder) Decode(r io.Reader) (f *File, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}

	f = new(File)
	fr := parse.NewBinaryReader(r)
	var warns errors.Errors

	for i := 0; ; i++ {
		var code int32
		if fr.Number(&code) {
			// End of stream at a chunk boundary terminates decoding.
			if fr.Err() == io.EOF {
				return f, warns.Return(), nil
			}
			return f, warns.Return(), decodeError(fr, nil)
		}
		if !ChunkType(code).Valid() {
			return f, warns.Return(), decodeError(fr, ChunkTypeError(code))
		}

		h := ChunkHeader{Type: ChunkType(code)}
		if fr.Number(&h.Size) || fr.Number(&h.Version) {
			return f, warns.Return(), decodeError(fr, nil)
		}
		if h.Size < 0 {
			cause := LengthError{Field: "chunk size", Length: h.Size}
			return f, warns.Return(), decodeError(fr, ChunkError{Index: i, Type: h.Type, Cause: cause})
		}

		payload := make([]byte, h.Size)
		if fr.Bytes(payload) {
			return f, warns.Return(), decodeError(fr, nil)
		}

		var c Chunk
		switch h.Type {
		case Materials, MaterialObj:
			c = &ChunkMaterial{Kind: h.Type, Version: h.Version}
		case SPMesh:
			c = &ChunkMesh{Version: h.Version}
		case World:
			c = &ChunkWorld{Version: h.Version}
		default:
			c = &ChunkRaw{Kind: h.Type, Version: h.Version}
		}

		n, err := c.ReadFrom(bytes.NewReader(payload))
		if err != nil {
			return f, warns.Return(), ChunkError{Index: i, Type: h.Type, Cause: err}
		}
		if n != int64(len(payload)) {
			warns = warns.Append(SizeError{Type: h.Type, Declared: int64(len(payload)), Consumed: n})
		}

		f.Chunks = append(f.Chunks, c)
	}
}

// Scene decodes the stream and assembles the typed records into a
// levfile.Scene. warn merges decode warnings with assembly warnings.
func (d Decoder) Scene(r io.Reader) (s *levfile.Scene, warn, err error) {
	f, warn, err := d.Decode(r)
	if err != nil {
		return nil, warn, err
	}
	s, w := f.Scene()
	return s, errors.Union(warn, w), nil
}

// Dump writes to w a readable representation of the chunk stream decoded
// from r.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}

	f, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Chunks: %d {", len(f.Chunks))
	for i, chunk := range f.Chunks {
		dumpChunk(bw, 1, i, chunk)
	}
	fmt.Fprint(bw, "\n}\n")

	bw.Flush()
	return warn, nil
}

func dumpChunk(w *bufio.Writer, indent, i int, chunk Chunk) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: %s (%d) {", i, chunk.Type(), int32(chunk.Type()))
	switch chunk := chunk.(type) {
	case *ChunkMaterial:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Version: %d", chunk.Version)
		for j, m := range chunk.Materials {
			dumpNewline(w, indent+1)
			fmt.Fprintf(w, "Material %d: {", j)
			dumpMaterial(w, indent+2, m)
			dumpNewline(w, indent+1)
			w.WriteByte('}')
		}
	case *ChunkMesh:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Version: %d", chunk.Version)
		dumpPart(w, indent+1, chunk.Part)
	case *ChunkWorld:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Version: %d", chunk.Version)
		dumpWorld(w, indent+1, chunk.World)
	case *ChunkRaw:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Version: %d", chunk.Version)
		dumpNewline(w, indent+1)
		w.WriteString("Payload: ")
		dumpBytes(w, indent+1, chunk.Payload)
	}
	dumpNewline(w, indent)
	fmt.Fprint(w, "}")
}

func dumpMaterial(w *bufio.Writer, indent int, m *levfile.Material) {
	a := &m.Attributes
	dumpNewline(w, indent)
	fmt.Fprintf(w, "MaterialHash: 0x%08X", m.MaterialHash)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "StructuralHash: 0x%08X", a.StructuralHash())
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Flags: 0x%08X", a.Flags)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "AdditiveLighting: %t", a.AdditiveLighting)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Color: %v", a.Color)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Specular: %v", a.Specular)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Power: %g", a.Power)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "ShadingMode: %d", a.ShadingMode)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Blend: %t (source:%d destination:%d)", a.Blend, a.BlendModes.Source, a.BlendModes.Destination)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "AlphaTest: %t (comparison:%d reference:%g)", a.AlphaTest, a.AlphaTestMode.Comparison, a.AlphaTestMode.Reference)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "DepthWrite: %t (comparison:%d)", a.DepthWrite, a.DepthComparison)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Owner: %d", a.Owner)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "ColorBufferWrite: 0x%X", a.ColorBufferWrite)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "EnvmapType: %d (distance:%g)", a.EnvmapType, a.PlanarSheerEnvmapDistance)
	for i, t := range m.Textures {
		dumpNewline(w, indent)
		if t == nil {
			fmt.Fprintf(w, "Slot %d: (empty) (uvSet:%d)", i, a.UVSets[i])
			continue
		}
		fmt.Fprintf(w, "Slot %d: {", i)
		dumpNewline(w, indent+1)
		w.WriteString("Name: ")
		dumpString(w, indent+1, t.Name)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "UVSet: %d", t.UVSet)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Format: %d Filter: %d Address: %d", t.Format, t.Filter, t.Address)
		dumpNewline(w, indent+1)
		w.WriteString("MaskName: ")
		dumpString(w, indent+1, t.MaskName)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "BorderColor: %v", t.BorderColor)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Hash: 0x%08X", t.Hash)
		dumpNewline(w, indent)
		w.WriteByte('}')
	}
}

func dumpPart(w *bufio.Writer, indent int, p *levfile.ModelPart) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "MaterialHash: 0x%08X", p.MaterialHash)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Flags: 0x%08X", p.Flags)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Triangles: %d Strips: %d StripTriangles: %d", p.TrianglesCount, p.StripsCount, p.StripTrianglesCount)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "TriangleIndices: %d..%d VertexIndices: %d..%d", p.TriangleIndex0, p.TriangleIndex1, p.VertexIndex0, p.VertexIndex1)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "LayerZ: %d FloorFlags: 0x%X LightingSID: %d", p.LayerZ, p.FloorFlags, p.LightingSID)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Vertices: (count:%d)", len(p.Vertices))
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Layout: position:%t normal:%t rhw:%t diffuse:%t weight:%t indices:%t uvs:%d",
		p.Flags&levfile.VertexHasPosition != 0,
		p.Flags&levfile.VertexHasNormal != 0,
		p.Flags&levfile.VertexHasReciprocalHomogeneousW != 0,
		p.Flags&levfile.VertexHasDiffuse != 0,
		p.Flags&levfile.VertexHasWeight != 0,
		p.Flags&levfile.VertexHasIndices != 0,
		p.Flags&levfile.VertexUVCountMask)
}

func dumpWorld(w *bufio.Writer, indent int, world *levfile.World) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Flags: 0x%08X", world.Flags)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Ambient: %v", world.Ambient)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "ZoneCount: %d", world.ZoneCount)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Have: occlusionBSP:%t nulls:%t waypoints:%t mesh:%t",
		world.HaveOcclusionBSP, world.HaveNulls, world.HaveWaypoints, world.HaveMesh)
	dumpNewline(w, indent)
	fmt.Fprintf(w, "Floors: (count:%d) {", len(world.Floors))
	for i, f := range world.Floors {
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "%d: occlusionBSP:%d min:%v max:%v", i, f.OcclusionBSP, f.GhostCamera.Min, f.GhostCamera.Max)
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			dumpBytes(w, indent, []byte(s))
			return
		}
	}
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}

func decodeError(r *parse.BinaryReader, err error) error {
	r.Add(0, err)
	err = r.Err()
	if err != nil {
		return DataError{Offset: r.N(), Cause: err}
	}
	return nil
}
