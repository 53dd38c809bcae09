package sor

import (
	"bytes"

	"github.com/scigolib/sor/internal/utils"
)

// ParseChecksum decodes a Cksum block body: a single signed 16-bit
// value, the last block in a well-formed file.
func ParseChecksum(c *utils.Cursor, revision uint16) (*ChecksumBlock, error) {
	value, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading checksum value", err)
	}
	return &ChecksumBlock{RevisionNumber: revision, Checksum: value}, nil
}

// EncodeChecksum serialises the Cksum block body, including its
// leading identifier.
func EncodeChecksum(cb *ChecksumBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierChecksum)
	utils.PutI16(&buf, cb.Checksum)
	return buf.Bytes()
}
