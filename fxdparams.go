package sor

import (
	"bytes"

	"github.com/scigolib/sor/internal/utils"
)

// ParseFixedParameters decodes a FxdParams block body. The three
// pulse-width-indexed arrays (pulse widths, data spacing, data point
// counts) all share length TotalNPulseWidthsUsed — grounded in the
// teacher's internal/core/datatype.go handling of a header field that
// gates a following run of same-length entries.
func ParseFixedParameters(c *utils.Cursor, revision uint16) (*FixedParametersBlock, error) {
	dateTimeStamp, err := c.ReadU32()
	if err != nil {
		return nil, utils.WrapError("reading date/time stamp", err)
	}
	unitsOfDistance, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading units of distance", err)
	}
	actualWavelength, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading actual wavelength", err)
	}
	acquisitionOffset, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading acquisition offset", err)
	}
	totalP, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading total number of pulse widths used", err)
	}

	pulseWidths := make([]uint16, totalP)
	for i := range pulseWidths {
		v, err := c.ReadU16()
		if err != nil {
			return nil, utils.WrapError("reading pulse width entry", err)
		}
		pulseWidths[i] = v
	}
	dataSpacing := make([]int32, totalP)
	for i := range dataSpacing {
		v, err := c.ReadI32()
		if err != nil {
			return nil, utils.WrapError("reading data spacing entry", err)
		}
		dataSpacing[i] = v
	}
	nDataPoints := make([]uint32, totalP)
	for i := range nDataPoints {
		v, err := c.ReadU32()
		if err != nil {
			return nil, utils.WrapError("reading data point count entry", err)
		}
		nDataPoints[i] = v
	}

	groupIndex, err := c.ReadU32()
	if err != nil {
		return nil, utils.WrapError("reading group index", err)
	}
	backscatterCoefficient, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading backscatter coefficient", err)
	}
	numberOfAverages, err := c.ReadU32()
	if err != nil {
		return nil, utils.WrapError("reading number of averages", err)
	}
	averagingTime, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading averaging time", err)
	}
	acquisitionRange, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading acquisition range", err)
	}
	frontPanelOffset, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading front panel offset", err)
	}
	noiseFloorLevel, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading noise floor level", err)
	}
	noiseFloorScaleFactor, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading noise floor scale factor", err)
	}
	powerOffset, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading power offset", err)
	}
	lossThreshold, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading loss threshold", err)
	}
	reflectanceThreshold, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading reflectance threshold", err)
	}
	endOfFibreThreshold, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading end of fibre threshold", err)
	}
	traceType, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading trace type", err)
	}
	w1, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading window coordinate 1", err)
	}
	w2, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading window coordinate 2", err)
	}
	w3, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading window coordinate 3", err)
	}
	w4, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading window coordinate 4", err)
	}

	return &FixedParametersBlock{
		RevisionNumber:                revision,
		DateTimeStamp:                 dateTimeStamp,
		UnitsOfDistance:               string(unitsOfDistance),
		ActualWavelength:              actualWavelength,
		AcquisitionOffset:             acquisitionOffset,
		TotalNPulseWidthsUsed:         totalP,
		PulseWidthsUsed:               pulseWidths,
		DataSpacing:                   dataSpacing,
		NDataPointsForPulseWidthsUsed: nDataPoints,
		GroupIndex:                    groupIndex,
		BackscatterCoefficient:        backscatterCoefficient,
		NumberOfAverages:              numberOfAverages,
		AveragingTime:                 averagingTime,
		AcquisitionRange:              acquisitionRange,
		FrontPanelOffset:              frontPanelOffset,
		NoiseFloorLevel:               noiseFloorLevel,
		NoiseFloorScaleFactor:         noiseFloorScaleFactor,
		PowerOffset:                   powerOffset,
		LossThreshold:                 lossThreshold,
		ReflectanceThreshold:          reflectanceThreshold,
		EndOfFibreThreshold:           endOfFibreThreshold,
		TraceType:                     string(traceType),
		WindowCoordinate1:             w1,
		WindowCoordinate2:             w2,
		WindowCoordinate3:             w3,
		WindowCoordinate4:             w4,
	}, nil
}

// EncodeFixedParameters serialises the FxdParams block body, including
// its leading identifier. The three pulse-width-indexed arrays are
// written out to min(TotalNPulseWidthsUsed, len(array)) entries each:
// a caller that has let TotalNPulseWidthsUsed drift out of sync with
// the actual array lengths gets a truncated-but-consistent block
// rather than a panic or an oversized write.
func EncodeFixedParameters(fp *FixedParametersBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierFixedParams)
	utils.PutU32(&buf, fp.DateTimeStamp)
	buf.WriteString(padOrTruncate(fp.UnitsOfDistance, 2))
	utils.PutU16(&buf, fp.ActualWavelength)
	utils.PutI32(&buf, fp.AcquisitionOffset)

	n := int(fp.TotalNPulseWidthsUsed)
	if len(fp.PulseWidthsUsed) < n {
		n = len(fp.PulseWidthsUsed)
	}
	if len(fp.DataSpacing) < n {
		n = len(fp.DataSpacing)
	}
	if len(fp.NDataPointsForPulseWidthsUsed) < n {
		n = len(fp.NDataPointsForPulseWidthsUsed)
	}
	utils.PutU16(&buf, uint16(n))
	for i := 0; i < n; i++ {
		utils.PutU16(&buf, fp.PulseWidthsUsed[i])
	}
	for i := 0; i < n; i++ {
		utils.PutI32(&buf, fp.DataSpacing[i])
	}
	for i := 0; i < n; i++ {
		utils.PutU32(&buf, fp.NDataPointsForPulseWidthsUsed[i])
	}

	utils.PutU32(&buf, fp.GroupIndex)
	utils.PutI16(&buf, fp.BackscatterCoefficient)
	utils.PutU32(&buf, fp.NumberOfAverages)
	utils.PutU16(&buf, fp.AveragingTime)
	utils.PutI32(&buf, fp.AcquisitionRange)
	utils.PutI32(&buf, fp.FrontPanelOffset)
	utils.PutU16(&buf, fp.NoiseFloorLevel)
	utils.PutI16(&buf, fp.NoiseFloorScaleFactor)
	utils.PutU16(&buf, fp.PowerOffset)
	utils.PutU16(&buf, fp.LossThreshold)
	utils.PutU16(&buf, fp.ReflectanceThreshold)
	utils.PutU16(&buf, fp.EndOfFibreThreshold)
	buf.WriteString(padOrTruncate(fp.TraceType, 2))
	utils.PutI32(&buf, fp.WindowCoordinate1)
	utils.PutI32(&buf, fp.WindowCoordinate2)
	utils.PutI32(&buf, fp.WindowCoordinate3)
	utils.PutI32(&buf, fp.WindowCoordinate4)
	return buf.Bytes()
}
