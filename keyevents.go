package sor

import (
	"bytes"
	"fmt"

	"github.com/scigolib/sor/internal/utils"
)

// ParseKeyEvents decodes a KeyEvents block body: a leading count, that
// many KeyEvent records, then a trailing LastKeyEvent summary record.
// The 6-byte event code is captured verbatim and left to
// DecodeEventCode for interpretation on demand.
func ParseKeyEvents(c *utils.Cursor, revision uint16) (*KeyEventsBlock, error) {
	count, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading key event count", err)
	}

	events := make([]KeyEvent, count)
	for i := range events {
		ev, err := parseKeyEvent(c)
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading key event %d", i), err)
		}
		events[i] = *ev
	}

	last, err := parseKeyEvent(c)
	if err != nil {
		return nil, utils.WrapError("reading last key event", err)
	}
	endToEndLoss, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading end-to-end loss", err)
	}
	endPos1, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading end-to-end marker position 1", err)
	}
	endPos2, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading end-to-end marker position 2", err)
	}
	orl, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading optical return loss", err)
	}
	orlPos1, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading optical return loss marker position 1", err)
	}
	orlPos2, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading optical return loss marker position 2", err)
	}

	return &KeyEventsBlock{
		RevisionNumber:    revision,
		NumberOfKeyEvents: count,
		KeyEvents:         events,
		LastKeyEvent: LastKeyEvent{
			KeyEvent:                         *last,
			EndToEndLoss:                     endToEndLoss,
			EndToEndMarkerPosition1:          endPos1,
			EndToEndMarkerPosition2:          endPos2,
			OpticalReturnLoss:                orl,
			OpticalReturnLossMarkerPosition1: orlPos1,
			OpticalReturnLossMarkerPosition2: orlPos2,
		},
	}, nil
}

func parseKeyEvent(c *utils.Cursor) (*KeyEvent, error) {
	number, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading event number", err)
	}
	propagationTime, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading propagation time", err)
	}
	attenLeadIn, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading attenuation coefficient lead-in", err)
	}
	eventLoss, err := c.ReadI16()
	if err != nil {
		return nil, utils.WrapError("reading event loss", err)
	}
	reflectance, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading event reflectance", err)
	}
	code, err := c.ReadBytes(6)
	if err != nil {
		return nil, utils.WrapError("reading event code", err)
	}
	technique, err := c.ReadBytes(2)
	if err != nil {
		return nil, utils.WrapError("reading loss measurement technique", err)
	}
	m1, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading marker location 1", err)
	}
	m2, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading marker location 2", err)
	}
	m3, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading marker location 3", err)
	}
	m4, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading marker location 4", err)
	}
	m5, err := c.ReadI32()
	if err != nil {
		return nil, utils.WrapError("reading marker location 5", err)
	}
	comment, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading event comment", err)
	}

	return &KeyEvent{
		EventNumber:                  number,
		PropagationTime:              propagationTime,
		AttenuationCoefficientLeadIn: attenLeadIn,
		EventLoss:                    eventLoss,
		EventReflectance:             reflectance,
		EventCode:                    string(code),
		LossMeasurementTechnique:     string(technique),
		MarkerLocation1:              m1,
		MarkerLocation2:              m2,
		MarkerLocation3:              m3,
		MarkerLocation4:              m4,
		MarkerLocation5:              m5,
		Comment:                      string(comment),
	}, nil
}

// EncodeKeyEvents serialises the KeyEvents block body, including its
// leading identifier. NumberOfKeyEvents is always re-derived from
// len(KeyEvents) rather than trusted from the model.
func EncodeKeyEvents(ke *KeyEventsBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierKeyEvents)
	utils.PutU16(&buf, uint16(len(ke.KeyEvents)))
	for i := range ke.KeyEvents {
		encodeKeyEvent(&buf, &ke.KeyEvents[i])
	}
	encodeKeyEvent(&buf, &ke.LastKeyEvent.KeyEvent)
	utils.PutI16(&buf, ke.LastKeyEvent.EndToEndLoss)
	utils.PutI32(&buf, ke.LastKeyEvent.EndToEndMarkerPosition1)
	utils.PutI32(&buf, ke.LastKeyEvent.EndToEndMarkerPosition2)
	utils.PutI16(&buf, ke.LastKeyEvent.OpticalReturnLoss)
	utils.PutI32(&buf, ke.LastKeyEvent.OpticalReturnLossMarkerPosition1)
	utils.PutI32(&buf, ke.LastKeyEvent.OpticalReturnLossMarkerPosition2)
	return buf.Bytes()
}

func encodeKeyEvent(buf *bytes.Buffer, ev *KeyEvent) {
	utils.PutU16(buf, ev.EventNumber)
	utils.PutI32(buf, ev.PropagationTime)
	utils.PutI16(buf, ev.AttenuationCoefficientLeadIn)
	utils.PutI16(buf, ev.EventLoss)
	utils.PutI32(buf, ev.EventReflectance)
	buf.WriteString(padOrTruncate(ev.EventCode, 6))
	buf.WriteString(padOrTruncate(ev.LossMeasurementTechnique, 2))
	utils.PutI32(buf, ev.MarkerLocation1)
	utils.PutI32(buf, ev.MarkerLocation2)
	utils.PutI32(buf, ev.MarkerLocation3)
	utils.PutI32(buf, ev.MarkerLocation4)
	utils.PutI32(buf, ev.MarkerLocation5)
	utils.PutStringValue(buf, ev.Comment)
}
