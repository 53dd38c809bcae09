package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Cursor is a bounds-checked, read-only view over an in-memory byte
// slice. It never reads past the slice it was built from; every read
// either advances the position and returns a value, or returns a
// short-read error leaving the cursor's position unchanged.
//
// This is the compositional, immutable-buffer analogue of the
// teacher's io.ReaderAt-based field reads (see internal/utils.ReadUint64
// in the HDF5 codec this module is adapted from): instead of seeking
// into an open file by address, a Cursor slices a buffer that is
// already fully resident in memory, per the codec's synchronous,
// whole-file-in-memory contract.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for bounds-checked sequential reads starting at
// position 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// SeekTo repositions the cursor to an absolute offset, validating that
// it falls within the buffer. Used by the map-driven assembler to
// resynchronise after a block that failed to decode, so a corrupt
// optional block cannot cascade into its neighbours.
func (c *Cursor) SeekTo(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("seek out of range: offset %d, buffer length %d", pos, len(c.data))
	}
	c.pos = pos
	return nil
}

func (c *Cursor) require(n int) error {
	if n < 0 || n > c.Remaining() {
		return fmt.Errorf("short read: need %d byte(s) at offset %d, only %d remaining", n, c.pos, c.Remaining())
	}
	return nil
}

// ReadBytes returns the next n bytes and advances the cursor. The
// returned slice aliases the underlying buffer; callers that retain it
// across further mutation of the source must copy.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI16 reads a little-endian two's-complement int16.
func (c *Cursor) ReadI16() (int16, error) {
	u, err := c.ReadU16()
	if err != nil {
		return 0, err
	}
	//nolint:gosec // intentional bit-pattern reinterpretation, not a numeric conversion
	return int16(u), nil
}

// ReadI32 reads a little-endian two's-complement int32.
func (c *Cursor) ReadI32() (int32, error) {
	u, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	//nolint:gosec // intentional bit-pattern reinterpretation, not a numeric conversion
	return int32(u), nil
}

// ReadString reads a NUL-terminated byte run and returns the bytes
// before the terminator, excluding it. The terminator itself is
// consumed. Returns an error if no NUL is found within the remaining
// buffer (a short read, per spec: the decoder never reads past the
// supplied slice).
func (c *Cursor) ReadString() ([]byte, error) {
	idx := bytes.IndexByte(c.data[c.pos:], 0)
	if idx < 0 {
		return nil, fmt.Errorf("unterminated string at offset %d", c.pos)
	}
	s := c.data[c.pos : c.pos+idx]
	c.pos += idx + 1
	return s, nil
}

// ReadIdentifier reads a NUL-terminated block identifier, consumes it
// and its terminator, and returns it as a string. It does not compare
// it against anything: identifier mismatches are handled by the caller,
// since the meaning of a mismatch differs between the map-vs-body
// sanity check and catalog dispatch.
func (c *Cursor) ReadIdentifier() (string, error) {
	b, err := c.ReadString()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
