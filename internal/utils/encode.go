package utils

import (
	"bytes"
	"encoding/binary"
)

// PutU16 appends a little-endian uint16 to buf.
func PutU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// PutU32 appends a little-endian uint32 to buf.
func PutU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// PutI16 appends a little-endian int16 to buf.
func PutI16(buf *bytes.Buffer, v int16) {
	//nolint:gosec // intentional bit-pattern reinterpretation, not a numeric conversion
	PutU16(buf, uint16(v))
}

// PutI32 appends a little-endian int32 to buf.
func PutI32(buf *bytes.Buffer, v int32) {
	//nolint:gosec // intentional bit-pattern reinterpretation, not a numeric conversion
	PutU32(buf, uint32(v))
}

// PutString appends s followed by a single NUL terminator. The wire
// format never assumes UTF-8; any non-NUL byte is written as-is.
func PutString(buf *bytes.Buffer, s []byte) {
	buf.Write(s)
	buf.WriteByte(0)
}

// PutStringValue is a convenience wrapper for string-typed fields.
func PutStringValue(buf *bytes.Buffer, s string) {
	PutString(buf, []byte(s))
}
