package sor

import (
	"fmt"
	"os"

	"github.com/scigolib/sor/internal/checksum"
	"github.com/scigolib/sor/internal/utils"
)

// This file is component E: the file assembler/disassembler. Grounded
// in the teacher's file.go/file_write.go pair — a top-level Parse/Write
// that walks a header-indexed block list, dispatching each entry to its
// dedicated codec and falling back to an opaque capture for anything
// the catalog doesn't recognise.

// Parse reconstructs a SorFile from raw bytes. The map block is the
// only block whose absence or corruption aborts the parse entirely;
// every other block is best-effort — a block that fails to decode is
// left absent from the model rather than failing the whole parse
// (spec.md §7, doc.go).
func Parse(data []byte) (*SorFile, error) {
	c := utils.NewCursor(data)

	mapBlock, err := ParseMapBlock(c)
	if err != nil {
		return nil, utils.WrapError("parsing map block", err)
	}

	file := &SorFile{Map: mapBlock}

	offsets := make([]int, len(mapBlock.BlockInfo))
	offset := 0
	for i, entry := range mapBlock.BlockInfo {
		offsets[i] = offset
		//nolint:gosec // Size's bit pattern is trusted verbatim per spec's signedness open question
		offset += int(uint32(entry.Size))
	}

	for i, entry := range mapBlock.BlockInfo {
		if i == 0 {
			// The map's own entry describes the block already parsed above.
			continue
		}
		blockOffset := offsets[i]
		nextOffset := offset
		if i+1 < len(offsets) {
			nextOffset = offsets[i+1]
		}

		if err := c.SeekTo(blockOffset); err != nil {
			// The map's recorded layout has drifted off the end of the
			// file; nothing past this point can be trusted.
			break
		}

		id, err := c.ReadIdentifier()
		if err != nil {
			_ = c.SeekTo(nextOffset)
			continue
		}
		if id != entry.Identifier {
			err := fmt.Errorf("map says %q, file says %q", entry.Identifier, id)
			return nil, utils.WrapErrorAt("identifier mismatch", err, blockOffset)
		}

		// Each codec reads from a cursor bounded to its own block, so a
		// short or corrupt body cannot run on into the block after it.
		bodyStart := c.Pos()
		bodyEnd := nextOffset
		if bodyEnd > len(data) {
			bodyEnd = len(data)
		}
		if bodyEnd < bodyStart {
			bodyEnd = bodyStart
		}
		body := utils.NewCursor(data[bodyStart:bodyEnd])
		if decodeErr := decodeBlock(body, file, entry, nextOffset-bodyStart); decodeErr != nil {
			// Best-effort: an optional block that fails to decode is
			// left absent, but the cursor still resynchronises to the
			// next entry using the map's recorded size.
			_ = c.SeekTo(nextOffset)
			continue
		}
		_ = c.SeekTo(nextOffset)
	}

	return file, nil
}

// decodeBlock dispatches a single block body to its codec based on the
// catalog (component B), or captures it opaquely when the identifier
// isn't recognised.
func decodeBlock(c *utils.Cursor, file *SorFile, entry BlockInfo, nextOffset int) error {
	if isProprietary(entry.Identifier) {
		bodyLen := nextOffset - c.Pos()
		body, err := c.ReadBytes(bodyLen)
		if err != nil {
			return err
		}
		file.ProprietaryBlocks = append(file.ProprietaryBlocks, parseProprietaryBody(entry.Identifier, body))
		return nil
	}

	switch entry.Identifier {
	case IdentifierGeneralParams:
		gp, err := ParseGeneralParameters(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.GeneralParameters = gp
	case IdentifierSupplierParams:
		sp, err := ParseSupplierParameters(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.SupplierParameters = sp
	case IdentifierFixedParams:
		fp, err := ParseFixedParameters(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.FixedParameters = fp
	case IdentifierKeyEvents:
		ke, err := ParseKeyEvents(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.KeyEvents = ke
	case IdentifierLinkParams:
		lp, err := ParseLinkParameters(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.LinkParameters = lp
	case IdentifierDataPoints:
		dp, err := ParseDataPoints(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.DataPoints = dp
	case IdentifierChecksum:
		cb, err := ParseChecksum(c, entry.RevisionNumber)
		if err != nil {
			return err
		}
		file.Checksum = cb
	}
	return nil
}

// ParsePath reads path and parses it as a SOR file.
func ParsePath(path string) (*SorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapError(fmt.Sprintf("reading %s", path), err)
	}
	return Parse(data)
}

// encodeBodies fixes the deterministic sequence in which standard
// blocks are written, following the order every producer in the field
// uses: identification blocks first, acquisition data last, checksum
// always trailing. Proprietary blocks are emitted in their captured
// order, spliced in just before the checksum.
func (f *SorFile) encodeBodies() ([]BlockInfo, [][]byte) {
	var entries []BlockInfo
	var bodies [][]byte

	add := func(identifier string, revision uint16, body []byte) {
		//nolint:gosec // bit-pattern preserved per spec's open question on BlockInfo.Size signedness
		entries = append(entries, BlockInfo{Identifier: identifier, RevisionNumber: revision, Size: int32(len(body))})
		bodies = append(bodies, body)
	}

	if f.GeneralParameters != nil {
		add(IdentifierGeneralParams, f.GeneralParameters.RevisionNumber, EncodeGeneralParameters(f.GeneralParameters))
	}
	if f.SupplierParameters != nil {
		add(IdentifierSupplierParams, f.SupplierParameters.RevisionNumber, EncodeSupplierParameters(f.SupplierParameters))
	}
	if f.FixedParameters != nil {
		add(IdentifierFixedParams, f.FixedParameters.RevisionNumber, EncodeFixedParameters(f.FixedParameters))
	}
	if f.KeyEvents != nil {
		add(IdentifierKeyEvents, f.KeyEvents.RevisionNumber, EncodeKeyEvents(f.KeyEvents))
	}
	if f.LinkParameters != nil {
		warnLinkParametersDropped()
	}
	if f.DataPoints != nil {
		add(IdentifierDataPoints, f.DataPoints.RevisionNumber, EncodeDataPoints(f.DataPoints))
	}
	for i := range f.ProprietaryBlocks {
		pb := f.ProprietaryBlocks[i]
		add(pb.Header, defaultBlockRevision, EncodeProprietary(&pb))
	}
	if f.Checksum != nil {
		add(IdentifierChecksum, f.Checksum.RevisionNumber, EncodeChecksum(f.Checksum))
	}

	return entries, bodies
}

// ToBytes regenerates a byte-for-byte-compatible SOR file from f,
// recomputing the map block's offsets and sizes from the bodies it
// encodes (spec.md §4.E). The stored Checksum value, if any, is
// written verbatim — callers that want a self-consistent checksum must
// compute and set it themselves before calling ToBytes.
func (f *SorFile) ToBytes() ([]byte, error) {
	entries, bodies := f.encodeBodies()

	mapRevision := defaultBlockRevision
	if f.Map != nil {
		mapRevision = f.Map.RevisionNumber
	}
	mb := BuildMapBlock(mapRevision, entries)

	out := make([]byte, 0, int(mb.BlockSize))
	out = append(out, EncodeMapBlock(mb)...)
	for _, body := range bodies {
		out = append(out, body...)
	}
	return out, nil
}

// WritePath regenerates f and writes it to path with the given
// permissions.
func (f *SorFile) WritePath(path string, perm os.FileMode) error {
	data, err := f.ToBytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return utils.WrapError(fmt.Sprintf("writing %s", path), err)
	}
	return nil
}

// ValidateChecksum checks f's Checksum block, if any, against original
// (the exact bytes f was parsed from). See internal/checksum.Validate
// for the candidate strategies tried.
func (f *SorFile) ValidateChecksum(original []byte) checksum.Verdict {
	if f.Checksum == nil || f.Map == nil {
		return checksum.NoChecksum
	}

	identifierOffset := 0
	found := false
	for _, entry := range f.Map.BlockInfo {
		if entry.Identifier == IdentifierChecksum {
			found = true
			break
		}
		//nolint:gosec // bit-pattern preserved per spec's open question on BlockInfo.Size signedness
		identifierOffset += int(uint32(entry.Size))
	}
	if !found {
		return checksum.NoChecksum
	}

	valueOffset := identifierOffset + len(IdentifierChecksum) + 1
	return checksum.Validate(original, identifierOffset, valueOffset, f.Checksum.Checksum)
}

// Blocks lists the identifiers of every block the map records, in file
// order, including the map block itself and any proprietary headers.
func (f *SorFile) Blocks() []string {
	if f.Map == nil {
		return nil
	}
	names := make([]string, len(f.Map.BlockInfo))
	for i, entry := range f.Map.BlockInfo {
		names[i] = entry.Identifier
	}
	return names
}

// Proprietary returns the captured proprietary block with the given
// header, if present.
func (f *SorFile) Proprietary(header string) (*ProprietaryBlock, bool) {
	for i := range f.ProprietaryBlocks {
		if f.ProprietaryBlocks[i].Header == header {
			return &f.ProprietaryBlocks[i], true
		}
	}
	return nil, false
}
