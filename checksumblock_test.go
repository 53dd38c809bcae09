package sor

import (
	"testing"

	"github.com/scigolib/sor/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestChecksumRoundTrip(t *testing.T) {
	cb := &ChecksumBlock{RevisionNumber: 200, Checksum: -1234}
	encoded := EncodeChecksum(cb)

	c := utils.NewCursor(encoded)
	id, err := c.ReadIdentifier()
	require.NoError(t, err)
	require.Equal(t, IdentifierChecksum, id)

	decoded, err := ParseChecksum(c, cb.RevisionNumber)
	require.NoError(t, err)
	require.Equal(t, cb, decoded)
}

func TestParseChecksumShortRead(t *testing.T) {
	c := utils.NewCursor([]byte{0x01})
	_, err := ParseChecksum(c, 0)
	require.Error(t, err)
}
