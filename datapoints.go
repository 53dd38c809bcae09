package sor

import (
	"bytes"
	"fmt"

	"github.com/scigolib/sor/internal/utils"
)

// ParseDataPoints decodes a DataPts block body: a total sample count, a
// scale factor count, then that many contiguous runs of samples each
// carrying their own point count and scale factor.
func ParseDataPoints(c *utils.Cursor, revision uint16) (*DataPointsBlock, error) {
	total, err := c.ReadU32()
	if err != nil {
		return nil, utils.WrapError("reading total number of data points", err)
	}
	numScaleFactors, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading number of scale factors used", err)
	}

	runs := make([]DataPointsAtScaleFactor, numScaleFactors)
	for i := range runs {
		nPoints, err := c.ReadU32()
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading scale factor run %d point count", i), err)
		}
		scaleFactor, err := c.ReadU16()
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading scale factor run %d scale factor", i), err)
		}
		if err := utils.ValidateSampleCount(nPoints, c.Remaining()); err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading scale factor run %d samples", i), err)
		}
		data := make([]uint16, nPoints)
		for j := range data {
			v, err := c.ReadU16()
			if err != nil {
				return nil, utils.WrapError(fmt.Sprintf("reading scale factor run %d sample %d", i, j), err)
			}
			data[j] = v
		}
		runs[i] = DataPointsAtScaleFactor{NPoints: nPoints, ScaleFactor: scaleFactor, Data: data}
	}

	return &DataPointsBlock{
		RevisionNumber:              revision,
		NumberOfDataPoints:          total,
		TotalNumberScaleFactorsUsed: numScaleFactors,
		ScaleFactors:                runs,
	}, nil
}

// EncodeDataPoints serialises the DataPts block body, including its
// leading identifier. NumberOfDataPoints and the per-run point counts
// are always re-derived from actual slice lengths.
func EncodeDataPoints(dp *DataPointsBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierDataPoints)

	total := uint32(0)
	for _, run := range dp.ScaleFactors {
		total += uint32(len(run.Data))
	}
	utils.PutU32(&buf, total)
	utils.PutU16(&buf, uint16(len(dp.ScaleFactors)))
	for _, run := range dp.ScaleFactors {
		utils.PutU32(&buf, uint32(len(run.Data)))
		utils.PutU16(&buf, run.ScaleFactor)
		for _, v := range run.Data {
			utils.PutU16(&buf, v)
		}
	}
	return buf.Bytes()
}
