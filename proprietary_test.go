package sor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeProprietaryRoundTrip(t *testing.T) {
	pb := &ProprietaryBlock{Header: "Acme1", Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	encoded := EncodeProprietary(pb)

	wantLen := len(pb.Header) + 1 + len(pb.Data)
	require.Len(t, encoded, wantLen)
	require.Equal(t, byte(0), encoded[len(pb.Header)])

	decoded := parseProprietaryBody(pb.Header, encoded[len(pb.Header)+1:])
	require.Equal(t, *pb, decoded)
}

func TestParseProprietaryBodyCopiesData(t *testing.T) {
	source := []byte{1, 2, 3}
	pb := parseProprietaryBody("Vendor", source)
	source[0] = 0xFF
	require.Equal(t, byte(1), pb.Data[0])
}
