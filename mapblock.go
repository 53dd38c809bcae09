package sor

import (
	"bytes"
	"fmt"

	"github.com/scigolib/sor/internal/utils"
)

// This file is component C: the map block codec. Grounded in the
// teacher's internal/core/superblock.go ReadSuperblock/WriteTo pair —
// a mandatory, bounds-checked leading header whose absence or short
// read is always fatal, paired with a writer that regenerates the
// header from already-known sizes.

// ParseMapBlock decodes the map starting at the cursor's current
// position. The map block is the only block whose presence is
// mandatory for a successful parse; a short read here is always
// fatal (spec.md §4.C, §7).
func ParseMapBlock(c *utils.Cursor) (*MapBlock, error) {
	id, err := c.ReadIdentifier()
	if err != nil {
		return nil, utils.WrapError("reading map block identifier", err)
	}
	if id != IdentifierMap {
		err := fmt.Errorf("expected identifier %q, got %q", IdentifierMap, id)
		return nil, utils.WrapErrorAt("missing map block", err, 0)
	}

	revision, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading map revision number", err)
	}

	blockSize, err := c.ReadU32()
	if err != nil {
		return nil, utils.WrapError("reading map block size", err)
	}

	blockCount, err := c.ReadU16()
	if err != nil {
		return nil, utils.WrapError("reading map block count", err)
	}

	infos := make([]BlockInfo, 0, blockCount)
	for i := uint16(0); i < blockCount; i++ {
		name, err := c.ReadIdentifier()
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading map entry %d identifier", i), err)
		}
		entryRevision, err := c.ReadU16()
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading map entry %d revision", i), err)
		}
		size, err := c.ReadI32()
		if err != nil {
			return nil, utils.WrapError(fmt.Sprintf("reading map entry %d size", i), err)
		}
		infos = append(infos, BlockInfo{Identifier: name, RevisionNumber: entryRevision, Size: size})
	}

	return &MapBlock{
		RevisionNumber: revision,
		BlockSize:      blockSize,
		BlockCount:     blockCount,
		BlockInfo:      infos,
	}, nil
}

// EncodeMapBlock serialises a fully-populated MapBlock verbatim. Callers
// that are regenerating the map from a live model should use
// BuildMapBlock first to derive a self-consistent MapBlock.
func EncodeMapBlock(mb *MapBlock) []byte {
	var buf bytes.Buffer
	utils.PutStringValue(&buf, IdentifierMap)
	utils.PutU16(&buf, mb.RevisionNumber)
	utils.PutU32(&buf, mb.BlockSize)
	utils.PutU16(&buf, mb.BlockCount)
	for _, info := range mb.BlockInfo {
		utils.PutStringValue(&buf, info.Identifier)
		utils.PutU16(&buf, info.RevisionNumber)
		utils.PutI32(&buf, info.Size)
	}
	return buf.Bytes()
}

// blockInfoEncodedSize is the number of bytes a single BlockInfo entry
// occupies on the wire: NUL-terminated identifier + 2-byte revision +
// 4-byte size.
func blockInfoEncodedSize(identifier string) int {
	return len(identifier) + 1 + 2 + 4
}

// BuildMapBlock derives a self-consistent MapBlock from the BlockInfo
// of every non-map block already serialised, plus a revision number
// for the map entry itself. The map's own size is computed
// analytically — it depends only on identifier lengths and entry
// count, never on the values inside entries — so there is no
// chicken-and-egg problem encoding a block that describes itself
// (spec.md §4.C: "the map is regenerated from the live model").
func BuildMapBlock(revision uint16, nonMapEntries []BlockInfo) *MapBlock {
	allEntries := make([]BlockInfo, 0, len(nonMapEntries)+1)
	allEntries = append(allEntries, BlockInfo{Identifier: IdentifierMap, RevisionNumber: revision})
	allEntries = append(allEntries, nonMapEntries...)

	const mapBodyHeaderSize = 4 + 2 + 4 + 2 // "Map\0" + revision + block_size + block_count

	total := mapBodyHeaderSize
	for _, entry := range allEntries {
		total += blockInfoEncodedSize(entry.Identifier)
	}

	//nolint:gosec // bit-pattern preserved per spec.md's open question on BlockInfo.Size signedness
	allEntries[0].Size = int32(total)

	return &MapBlock{
		RevisionNumber: revision,
		BlockSize:      uint32(total),
		BlockCount:     uint16(len(allEntries)),
		BlockInfo:      allEntries,
	}
}
