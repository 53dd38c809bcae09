package sor

import (
	"bytes"

	"github.com/scigolib/sor/internal/utils"
)

// ParseSupplierParameters decodes a SupParams block body: six
// NUL-terminated strings, read in sequence (spec.md §3).
func ParseSupplierParameters(c *utils.Cursor, revision uint16) (*SupplierParametersBlock, error) {
	supplier, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading supplier name", err)
	}
	mainframeID, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading OTDR mainframe id", err)
	}
	mainframeSN, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading OTDR mainframe serial number", err)
	}
	moduleID, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading optical module id", err)
	}
	moduleSN, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading optical module serial number", err)
	}
	softwareRevision, err := c.ReadString()
	if err != nil {
		return nil, utils.WrapError("reading software revision", err)
	}

	return &SupplierParametersBlock{
		RevisionNumber:   revision,
		SupplierName:     string(supplier),
		OTDRMainframeID:  string(mainframeID),
		OTDRMainframeSN:  string(mainframeSN),
		OTDRModuleID:     string(moduleID),
		OTDRModuleSN:     string(moduleSN),
		SoftwareRevision: string(softwareRevision),
	}, nil
}

// EncodeSupplierParameters serialises the SupParams block body
// including its leading identifier.
func EncodeSupplierParameters(sp *SupplierParametersBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierSupplierParams)
	utils.PutStringValue(&buf, sp.SupplierName)
	utils.PutStringValue(&buf, sp.OTDRMainframeID)
	utils.PutStringValue(&buf, sp.OTDRMainframeSN)
	utils.PutStringValue(&buf, sp.OTDRModuleID)
	utils.PutStringValue(&buf, sp.OTDRModuleSN)
	utils.PutStringValue(&buf, sp.SoftwareRevision)
	return buf.Bytes()
}
