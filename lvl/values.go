package lvl

import (
	"github.com/anaminus/parse"
	"golang.org/x/text/encoding/charmap"

	"github.com/levtools/levfile"
)

// Composite value readers. Each reads the components of one aggregate in
// its fixed wire order, following the failed-bool convention of
// parse.BinaryReader.

func readVector3(fr *parse.BinaryReader, v *levfile.Vector3) (failed bool) {
	if fr.Err() != nil {
		return true
	}
	return fr.Number(&v[0]) || fr.Number(&v[1]) || fr.Number(&v[2])
}

func readMatrix(fr *parse.BinaryReader, m *levfile.Matrix) (failed bool) {
	if fr.Err() != nil {
		return true
	}
	for i := range m {
		if fr.Number(&m[i]) {
			return true
		}
	}
	return false
}

// readColor reads an RGBA color as four floats.
func readColor(fr *parse.BinaryReader, c *levfile.Color) (failed bool) {
	if fr.Err() != nil {
		return true
	}
	return fr.Number(&c.R) || fr.Number(&c.G) || fr.Number(&c.B) || fr.Number(&c.A)
}

// readColorU8 reads an RGBA color as four bytes, one per channel,
// normalized to the 0..1 range.
func readColorU8(fr *parse.BinaryReader, c *levfile.Color) (failed bool) {
	var b [4]uint8
	if fr.Bytes(b[:]) {
		return true
	}
	c.R = float32(b[0]) / 255
	c.G = float32(b[1]) / 255
	c.B = float32(b[2]) / 255
	c.A = float32(b[3]) / 255
	return false
}

// readColorRGB8 reads an RGB color as three bytes. The alpha channel is
// implicitly fully opaque.
func readColorRGB8(fr *parse.BinaryReader, c *levfile.Color) (failed bool) {
	var b [3]uint8
	if fr.Bytes(b[:]) {
		return true
	}
	c.R = float32(b[0]) / 255
	c.G = float32(b[1]) / 255
	c.B = float32(b[2]) / 255
	c.A = 1
	return false
}

// readBoundingBox reads the two extrema of a bounding box, minimum first.
func readBoundingBox(fr *parse.BinaryReader, b *levfile.BoundingBox) (failed bool) {
	return readVector3(fr, &b.Min) || readVector3(fr, &b.Max)
}

// readBool32 reads a boolean stored as a 32-bit integer; any nonzero value
// is true.
func readBool32(fr *parse.BinaryReader, b *bool) (failed bool) {
	var v int32
	if fr.Number(&v) {
		return true
	}
	*b = v != 0
	return false
}

// readWideChars reads n name characters, each stored as a full 32-bit code
// point of which only the low 8 bits are significant. The truncation to a
// narrow character is a compatibility contract of the format, not a
// decoding shortcut; the resulting bytes are interpreted as Windows-1252.
func readWideChars(fr *parse.BinaryReader, n int32, data *string) (failed bool) {
	raw := make([]byte, 0, n)
	for i := int32(0); i < n; i++ {
		var cp int32
		if fr.Number(&cp) {
			return true
		}
		raw = append(raw, byte(cp))
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if fr.Add(0, err) {
		return true
	}
	*data = string(s)
	return false
}

// readWideName reads a length-prefixed wide name. A negative length is a
// LengthError; a zero length yields an empty name.
func readWideName(fr *parse.BinaryReader, field string, data *string) (failed bool) {
	if fr.Err() != nil {
		return true
	}
	var length int32
	if fr.Number(&length) {
		return true
	}
	if length < 0 {
		fr.Add(0, LengthError{Field: field, Length: length})
		return true
	}
	return readWideChars(fr, length, data)
}
