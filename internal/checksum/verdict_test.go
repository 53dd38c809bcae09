package checksum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateMatches(t *testing.T) {
	prefix := []byte("GenParams\x00some data preceding the checksum block")

	// File = prefix + "Cksum\0" + 2-byte value. The stored checksum
	// covers everything up to and including the "Cksum\0" identifier.
	withIdentifier := append(append([]byte{}, prefix...), "Cksum\x00"...)
	stored := int16(CRC16CCITT(withIdentifier))

	identifierOffset := len(prefix)
	valueOffset := len(withIdentifier)
	file := append(append([]byte{}, withIdentifier...), byte(stored), byte(stored>>8))

	verdict := Validate(file, identifierOffset, valueOffset, stored)
	require.Equal(t, Matches, verdict)
}

func TestValidateMatchesWithoutBlock(t *testing.T) {
	prefix := []byte("SupParams\x00vendor data before the checksum block")

	// The stored checksum covers only the bytes before the "Cksum\0"
	// identifier — it excludes the checksum block entirely.
	stored := int16(CRC16CCITT(prefix))

	withIdentifier := append(append([]byte{}, prefix...), "Cksum\x00"...)
	identifierOffset := len(prefix)
	valueOffset := len(withIdentifier)
	file := append(append([]byte{}, withIdentifier...), byte(stored), byte(stored>>8))

	verdict := Validate(file, identifierOffset, valueOffset, stored)
	require.Equal(t, MatchesWithoutBlock, verdict)
}

func TestValidateMismatch(t *testing.T) {
	prefix := []byte("FxdParams\x00data")
	file := append(append([]byte{}, prefix...), "Cksum\x00"...)
	identifierOffset := len(prefix)
	valueOffset := len(file)
	file = append(file, 0x12, 0x34) // value unrelated to any candidate CRC

	verdict := Validate(file, identifierOffset, valueOffset, 0x0000)
	require.Equal(t, Mismatch, verdict)
}

func TestValidateEntireFileMinusTrailer(t *testing.T) {
	// Stored checksum covers the whole file except its own 2 trailing
	// bytes, but identifierOffset/valueOffset point somewhere that
	// doesn't reproduce it via strategies 1/2 — only strategy 3 does.
	body := []byte("KeyEvents\x00Cksum\x00")
	stored := int16(CRC16CCITT(body))
	file := append(append([]byte{}, body...), byte(stored), byte(stored>>8))

	verdict := Validate(file, 0, 0, stored)
	require.Equal(t, Matches, verdict)
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "Matches", Matches.String())
	require.Equal(t, "MatchesWithoutBlock", MatchesWithoutBlock.String())
	require.Equal(t, "NoChecksum", NoChecksum.String())
	require.Equal(t, "Mismatch", Mismatch.String())
}
