package sor

import (
	"bytes"
	"testing"

	"github.com/scigolib/sor/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestParseLinkParameters(t *testing.T) {
	var buf bytes.Buffer
	utils.PutU16(&buf, 1) // landmark count

	utils.PutU16(&buf, 1)                     // landmark number
	buf.WriteString("MH")                     // landmark code
	utils.PutI32(&buf, 10000)                 // location
	utils.PutU16(&buf, 2)                     // related event number
	utils.PutI32(&buf, -987654)                // GPS longitude
	utils.PutI32(&buf, 123456)                 // GPS latitude
	utils.PutI16(&buf, 0)                      // fiber correction factor lead-in
	utils.PutI32(&buf, 500)                    // sheath marker entrance location
	utils.PutI32(&buf, 600)                    // sheath marker lead-in distance
	buf.WriteString("mt")                      // units
	utils.PutStringValue(&buf, "MH01")         // landmark code 2
	utils.PutStringValue(&buf, "manhole near road crossing")

	c := utils.NewCursor(buf.Bytes())
	lp, err := ParseLinkParameters(c, 200)
	require.NoError(t, err)
	require.Equal(t, uint16(1), lp.NumberOfLandmarks)
	require.Len(t, lp.Landmarks, 1)
	require.Equal(t, "MH", lp.Landmarks[0].LandmarkCode)
	require.Equal(t, "manhole near road crossing", lp.Landmarks[0].Comment)
	require.Equal(t, c.Len(), c.Pos())
}

func TestParseLinkParametersShortRead(t *testing.T) {
	c := utils.NewCursor([]byte{0x01, 0x00, 0x01, 0x00})
	_, err := ParseLinkParameters(c, 200)
	require.Error(t, err)
}
