package sor

import (
	"bytes"

	"github.com/scigolib/sor/internal/utils"
)

// ParseGeneralParameters decodes a GenParams block body (the
// identifier itself must already have been consumed by the caller —
// see Parse). Grounded in the teacher's one-codec-per-concept
// shape (internal/core/datatype.go's ParseDatatypeMessage): a flat
// sequence of bounds-checked field reads over a bounded slice.
func ParseGeneralParameters(c *utils.Cursor, revision uint16) (*GeneralParametersBlock, error) {
	lang, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading language code", err)
	}
	cableID, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading cable id", err)
	}
	fiberID, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading fiber id", err)
	}
	fiberType, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading fiber type", err)
	}
	wavelength, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading nominal wavelength", err)
	}
	originating, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading originating location", err)
	}
	terminating, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading terminating location", err)
	}
	cableCode, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading cable code", err)
	}
	currentDataFlag, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading current data flag", err)
	}
	userOffset, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading user offset", err)
	}
	userOffsetDistance, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading user offset distance", err)
	}
	operator, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading operator", err)
	}
	comment, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading comment", err)
	}

	return &GeneralParametersBlock{
		RevisionNumber:      revision,
		Language:            string(lang),
		CableID:             string(cableID),
		FiberID:             string(fiberID),
		FiberType:           fiberType,
		NominalWavelength:   wavelength,
		OriginatingLocation: string(originating),
		TerminatingLocation: string(terminating),
		CableCode:           string(cableCode),
		CurrentDataFlag:     string(currentDataFlag),
		UserOffset:          userOffset,
		UserOffsetDistance:  userOffsetDistance,
		Operator:            string(operator),
		Comment:             string(comment),
	}, nil
}

// EncodeGeneralParameters serialises the GenParams block body,
// including its leading identifier (every block begins with its own
// NUL-terminated identifier, per spec.md §6).
func EncodeGeneralParameters(gp *GeneralParametersBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierGeneralParams)
	buf.WriteString(padOrTruncate(gp.Language, 2))
	utils.PutStringValue(&buf, gp.CableID)
	utils.PutStringValue(&buf, gp.FiberID)
	utils.PutU16(&buf, gp.FiberType)
	utils.PutU16(&buf, gp.NominalWavelength)
	utils.PutStringValue(&buf, gp.OriginatingLocation)
	utils.PutStringValue(&buf, gp.TerminatingLocation)
	utils.PutStringValue(&buf, gp.CableCode)
	buf.WriteString(padOrTruncate(gp.CurrentDataFlag, 2))
	utils.PutI32(&buf, gp.UserOffset)
	utils.PutI32(&buf, gp.UserOffsetDistance)
	utils.PutStringValue(&buf, gp.Operator)
	utils.PutStringValue(&buf, gp.Comment)
	return buf.Bytes()
}

// padOrTruncate forces s to exactly n bytes, space-padding short
// values and truncating long ones, for the format's handful of
// fixed-width character fields (language code, current data flag,
// units-of-distance, trace type).
func padOrTruncate(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + string(bytes.Repeat([]byte{' '}, n-len(s)))
}
