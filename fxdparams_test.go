package sor

import (
	"testing"

	"github.com/scigolib/sor/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestFixedParametersRoundTrip(t *testing.T) {
	fp := &FixedParametersBlock{
		RevisionNumber:                201,
		DateTimeStamp:                 1700000000,
		UnitsOfDistance:               "mt",
		ActualWavelength:              1310,
		AcquisitionOffset:             -5,
		TotalNPulseWidthsUsed:         2,
		PulseWidthsUsed:               []uint16{10, 30},
		DataSpacing:                   []int32{4000, 8000},
		NDataPointsForPulseWidthsUsed: []uint32{30000, 15000},
		GroupIndex:                    146800,
		BackscatterCoefficient:        -3100,
		NumberOfAverages:              60000,
		AveragingTime:                 1200,
		AcquisitionRange:              256000,
		FrontPanelOffset:              0,
		NoiseFloorLevel:               500,
		NoiseFloorScaleFactor:         100,
		PowerOffset:                   0,
		LossThreshold:                 50,
		ReflectanceThreshold:          550,
		EndOfFibreThreshold:           300,
		TraceType:                     "ST",
		WindowCoordinate1:             0,
		WindowCoordinate2:             1000,
		WindowCoordinate3:             0,
		WindowCoordinate4:             2000,
	}

	encoded := EncodeFixedParameters(fp)
	c := utils.NewCursor(encoded)
	id, err := c.ReadIdentifier()
	require.NoError(t, err)
	require.Equal(t, IdentifierFixedParams, id)

	decoded, err := ParseFixedParameters(c, fp.RevisionNumber)
	require.NoError(t, err)
	require.Equal(t, fp, decoded)
}

func TestFixedParametersWriteTruncatesDesyncedArrays(t *testing.T) {
	fp := &FixedParametersBlock{
		TotalNPulseWidthsUsed: 5,
		PulseWidthsUsed:       []uint16{10, 20},
		DataSpacing:           []int32{1, 2, 3},
		NDataPointsForPulseWidthsUsed: []uint32{100, 200},
		TraceType:             "ST",
		UnitsOfDistance:       "mt",
	}

	encoded := EncodeFixedParameters(fp)
	c := utils.NewCursor(encoded)
	_, err := c.ReadIdentifier()
	require.NoError(t, err)

	decoded, err := ParseFixedParameters(c, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(2), decoded.TotalNPulseWidthsUsed)
	require.Len(t, decoded.PulseWidthsUsed, 2)
}

func TestParseFixedParametersShortRead(t *testing.T) {
	c := utils.NewCursor([]byte{0x01, 0x02})
	_, err := ParseFixedParameters(c, 0)
	require.Error(t, err)
}
