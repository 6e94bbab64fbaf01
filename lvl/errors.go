package lvl

import (
	"fmt"
	"strconv"
	"strings"
)

// ChunkTypeError indicates a chunk type code outside the closed
// enumeration. The parse cannot continue past it: even though every chunk
// declares its own size, the format does not define a skip-and-continue
// path for unknown types.
type ChunkTypeError int32

func (err ChunkTypeError) Error() string {
	return fmt.Sprintf("unrecognized chunk type %d", int32(err))
}

// LengthError indicates a declared name or array length that is negative
// where a non-negative value is required.
type LengthError struct {
	// Field names the length-prefixed field.
	Field string

	Length int32
}

func (err LengthError) Error() string {
	return fmt.Sprintf("invalid %s length %d", err.Field, err.Length)
}

// SizeError indicates that a chunk's record decoder consumed a number of
// payload bytes different from the size declared by the chunk header. It
// is reported as a warning; framing is restored from the declared size.
type SizeError struct {
	Type     ChunkType
	Declared int64
	Consumed int64
}

func (err SizeError) Error() string {
	return fmt.Sprintf("%s chunk: consumed %d of %d declared payload bytes", err.Type, err.Consumed, err.Declared)
}

// DataError wraps an error that occurred while decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.Write(strconv.AppendInt(nil, err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// ChunkError indicates an error that occurred within a chunk.
type ChunkError struct {
	// Index is the position of the chunk within the stream.
	Index int
	// Type is the type code of the chunk.
	Type ChunkType

	Cause error
}

func (err ChunkError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%s chunk: %s", err.Type, err.Cause.Error())
	}
	return fmt.Sprintf("#%d %s chunk: %s", err.Index, err.Type, err.Cause.Error())
}

func (err ChunkError) Unwrap() error {
	return err.Cause
}
