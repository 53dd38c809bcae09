package sor

import (
	"testing"

	"github.com/scigolib/sor/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestSupplierParametersRoundTrip(t *testing.T) {
	sp := &SupplierParametersBlock{
		RevisionNumber:   200,
		SupplierName:     "Acme Optics",
		OTDRMainframeID:  "AO-5000",
		OTDRMainframeSN:  "SN12345",
		OTDRModuleID:     "MOD-A",
		OTDRModuleSN:     "SNA001",
		SoftwareRevision: "3.2.1",
	}

	encoded := EncodeSupplierParameters(sp)
	c := utils.NewCursor(encoded)
	id, err := c.ReadIdentifier()
	require.NoError(t, err)
	require.Equal(t, IdentifierSupplierParams, id)

	decoded, err := ParseSupplierParameters(c, sp.RevisionNumber)
	require.NoError(t, err)
	require.Equal(t, sp, decoded)
	require.Equal(t, c.Len(), c.Pos())
}

func TestParseSupplierParametersShortRead(t *testing.T) {
	c := utils.NewCursor([]byte{})
	_, err := ParseSupplierParameters(c, 0)
	require.Error(t, err)
}
