package sor

import (
	"fmt"
	"log"

	"github.com/scigolib/sor/internal/utils"
)

// ParseLinkParameters decodes a LnkParams block body: a landmark count
// followed by that many fixed-layout Landmark records. This is the
// one block the writer never regenerates (spec.md §4.D, §9) — kept
// read-only because its landmark geometry has no normalized
// round-trip representation this codec is willing to own.
func ParseLinkParameters(c *utils.Cursor, revision uint16) (*LinkParametersBlock, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading landmark count", err)
	}

	landmarks := make([]Landmark, count)
	for i := range landmarks {
		lm, err := parseLandmark(c)
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading landmark %d", i), err)
		}
		landmarks[i] = *lm
	}

	return &LinkParametersBlock{
		RevisionNumber:    revision,
		NumberOfLandmarks: count,
		Landmarks:         landmarks,
	}, nil
}

func parseLandmark(c *utils.Cursor) (*Landmark, error) {
	number, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading landmark number", err)
	}
	code, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading landmark code", err)
	}
	location, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading landmark location", err)
	}
	relatedEvent, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading related event number", err)
	}
	lon, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading GPS longitude", err)
	}
	lat, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading GPS latitude", err)
	}
	fiberCorrection, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading fiber correction factor lead-in", err)
	}
	sheathEntrance, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading sheath marker entrance location", err)
	}
	sheathLeadIn, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading sheath marker lead-in distance", err)
	}
	units, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading landmark units", err)
	}
	code2, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading landmark code 2", err)
	}
	comment, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading landmark comment", err)
	}

	return &Landmark{
		LandmarkNumber:               number,
		LandmarkCode:                 string(code),
		LandmarkLocation:             location,
		RelatedEventNumber:           relatedEvent,
		GPSLongitude:                 lon,
		GPSLatitude:                  lat,
		FiberCorrectionFactorLeadIn:  fiberCorrection,
		SheathMarkerEntranceLocation: sheathEntrance,
		SheathMarkerLeadInDistance:   sheathLeadIn,
		Units:                        string(units),
		LandmarkCode2:                string(code2),
		Comment:                      string(comment),
	}, nil
}

// warnLinkParametersDropped is called by the writer whenever a model
// carries LinkParameters: the block is omitted from the written file,
// with this logged warning, rather than failing the whole write.
func warnLinkParametersDropped() {
	log.Printf("sor: LnkParams block present in model but is never written; omitting")
}
