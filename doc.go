// Package sor provides a pure Go implementation for reading and writing
// Bellcore/Telcordia SR-4731 "SOR" files: the binary interchange format
// for OTDR (optical time-domain reflectometer) traces.
//
// A SOR file is a little-endian sequence of named, variable-length
// blocks, indexed by a mandatory leading MapBlock. Parse reconstructs a
// typed SorFile from raw bytes on a best-effort basis — optional blocks
// that cannot be decoded become absent rather than aborting the parse.
// ToBytes regenerates a byte-for-byte-compatible file from a model,
// recomputing the map block's offsets and sizes.
package sor
