package sor

import (
	"testing"

	"github.com/scigolib/sor/internal/checksum"
	"github.com/stretchr/testify/require"
)

func buildSampleFile() *SorFile {
	return &SorFile{
		GeneralParameters:  sampleGeneralParameters(),
		SupplierParameters: &SupplierParametersBlock{
			RevisionNumber:   200,
			SupplierName:     "Acme",
			OTDRMainframeID:  "AO-1",
			OTDRMainframeSN:  "SN1",
			OTDRModuleID:     "M1",
			OTDRModuleSN:     "SNM1",
			SoftwareRevision: "1.0",
		},
		DataPoints: &DataPointsBlock{
			RevisionNumber:              200,
			NumberOfDataPoints:          2,
			TotalNumberScaleFactorsUsed: 1,
			ScaleFactors: []DataPointsAtScaleFactor{
				{NPoints: 2, ScaleFactor: 1000, Data: []uint16{1, 2}},
			},
		},
		ProprietaryBlocks: []ProprietaryBlock{
			{Header: "AcmeVendor", Data: []byte{0x01, 0x02, 0x03}},
		},
	}
}

func TestToBytesThenParseRoundTrip(t *testing.T) {
	original := buildSampleFile()

	data, err := original.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	require.Equal(t, original.GeneralParameters, parsed.GeneralParameters)
	require.Equal(t, original.SupplierParameters, parsed.SupplierParameters)
	require.Equal(t, original.DataPoints, parsed.DataPoints)
	require.Equal(t, original.ProprietaryBlocks, parsed.ProprietaryBlocks)
	require.Nil(t, parsed.LinkParameters)
}

func TestBlocksListsMapOrder(t *testing.T) {
	original := buildSampleFile()
	data, err := original.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	blocks := parsed.Blocks()
	require.Equal(t, IdentifierMap, blocks[0])
	require.Contains(t, blocks, IdentifierGeneralParams)
	require.Contains(t, blocks, "AcmeVendor")
}

func TestProprietaryLookup(t *testing.T) {
	original := buildSampleFile()
	data, err := original.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	pb, ok := parsed.Proprietary("AcmeVendor")
	require.True(t, ok)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, pb.Data)

	_, ok = parsed.Proprietary("NoSuchVendor")
	require.False(t, ok)
}

func TestParseMissingMapBlockIsFatal(t *testing.T) {
	_, err := Parse([]byte{'X', 0})
	require.Error(t, err)
}

func TestParseBestEffortSkipsCorruptOptionalBlock(t *testing.T) {
	file := buildSampleFile()
	file.KeyEvents = &KeyEventsBlock{RevisionNumber: 200, LastKeyEvent: LastKeyEvent{}}
	data, err := file.ToBytes()
	require.NoError(t, err)

	// Corrupt the KeyEvents body (first byte after its identifier) so
	// its decode fails, while leaving the map's recorded size intact —
	// the rest of the file must still parse. The identifier also appears
	// in the map, so the search runs from the end to find the block body.
	idx := -1
	for i := len(data) - len(IdentifierKeyEvents) - 1; i >= 0; i-- {
		if string(data[i:i+len(IdentifierKeyEvents)]) == IdentifierKeyEvents {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	corrupted := append([]byte(nil), data...)
	bodyStart := idx + len(IdentifierKeyEvents) + 1
	corrupted[bodyStart] = 0xFF // event count becomes 255

	parsed, err := Parse(corrupted)
	require.NoError(t, err)
	require.Nil(t, parsed.KeyEvents)
	require.NotNil(t, parsed.GeneralParameters)
	require.NotNil(t, parsed.DataPoints)
}

func TestToBytesOmitsLinkParameters(t *testing.T) {
	file := buildSampleFile()
	file.LinkParameters = &LinkParametersBlock{
		RevisionNumber:    200,
		NumberOfLandmarks: 1,
		Landmarks: []Landmark{
			{LandmarkNumber: 1, LandmarkCode: "MH", Comment: "manhole"},
		},
	}

	data, err := file.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	require.Nil(t, parsed.LinkParameters)
	require.NotContains(t, parsed.Blocks(), IdentifierLinkParams)
}

func TestValidateChecksumNoChecksumBlock(t *testing.T) {
	original := buildSampleFile()
	data, err := original.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, checksum.NoChecksum, parsed.ValidateChecksum(data))
}

func TestValidateChecksumMatches(t *testing.T) {
	original := buildSampleFile()
	original.Checksum = &ChecksumBlock{RevisionNumber: 200, Checksum: 0}

	data, err := original.ToBytes()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	identifierOffset := 0
	for _, entry := range parsed.Map.BlockInfo {
		if entry.Identifier == IdentifierChecksum {
			break
		}
		identifierOffset += int(entry.Size)
	}
	valueOffset := identifierOffset + len(IdentifierChecksum) + 1
	want := int16(checksum.CRC16CCITT(data[:valueOffset]))

	parsed.Checksum.Checksum = want
	require.Equal(t, checksum.Matches, parsed.ValidateChecksum(data))
}
