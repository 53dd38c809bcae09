package sor

import "bytes"

// parseProprietaryBody captures a copy of a proprietary block's body
// bytes verbatim, with no attempt at interpretation (spec.md §4.D).
// header is the identifier already consumed by the caller.
func parseProprietaryBody(header string, body []byte) ProprietaryBlock {
	data := make([]byte, len(body))
	copy(data, body)
	return ProprietaryBlock{Header: header, Data: data}
}

// EncodeProprietary serialises a proprietary block exactly as
// captured: identifier followed by its opaque payload, byte for byte.
func EncodeProprietary(pb *ProprietaryBlock) []byte {
	var buf bytes.Buffer
	buf.WriteString(pb.Header)
	buf.WriteByte(0)
	buf.Write(pb.Data)
	return buf.Bytes()
}
