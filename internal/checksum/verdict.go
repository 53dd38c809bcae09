package checksum

import "fmt"

// Verdict reports the outcome of validating a SOR file's checksum
// block against its own bytes. It is never an error value — callers
// decide policy, per spec.md's error-handling design.
type Verdict int

// The four validation verdicts spec.md §4.F/§7 requires.
const (
	// Matches means the stored checksum agrees with a CRC-16/CCITT
	// computed over the bytes preceding (and including) the "Cksum"
	// identifier, up to the 2-byte stored value itself.
	Matches Verdict = iota
	// MatchesWithoutBlock means the stored checksum agrees with a
	// CRC-16/CCITT computed over the bytes preceding the checksum
	// block entirely (excluding its "Cksum" identifier and value) —
	// the interpretation some producers use.
	MatchesWithoutBlock
	// NoChecksum means the file carried no ChecksumBlock at all.
	NoChecksum
	// Mismatch means none of the candidate byte ranges reproduced the
	// stored value.
	Mismatch
)

// String renders the verdict for diagnostics.
func (v Verdict) String() string {
	switch v {
	case Matches:
		return "Matches"
	case MatchesWithoutBlock:
		return "MatchesWithoutBlock"
	case NoChecksum:
		return "NoChecksum"
	case Mismatch:
		return "Mismatch"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Validate tries, in the order spec.md §4.F prescribes, the three
// candidate byte ranges producers are known to checksum:
//
//  1. all bytes preceding the checksum block's 2-byte value (i.e. up
//     to and including the "Cksum\0" identifier) — valueOffset
//  2. all bytes preceding the checksum block's identifier entirely —
//     identifierOffset
//  3. the entire file minus its trailing 2 bytes
//
// original is the full, unmodified file as originally read.
// identifierOffset and valueOffset are byte offsets derived from the
// parsed map (the start of the "Cksum" block, and the start of its
// 2-byte value, respectively). stored is the checksum value read from
// the ChecksumBlock.
//
// Strategies 1 and 3 both represent "the checksum covers the Cksum
// block itself" and are reported as Matches; strategy 2 represents
// "the checksum excludes the Cksum block" and is reported as
// MatchesWithoutBlock. Implementers must not collapse these into a
// single canonical strategy — the ambiguity is deliberate.
func Validate(original []byte, identifierOffset, valueOffset int, stored int16) Verdict {
	if valueOffset >= 0 && valueOffset <= len(original) {
		//nolint:gosec // intentional bit-pattern comparison against the stored signed value
		if int16(CRC16CCITT(original[:valueOffset])) == stored {
			return Matches
		}
	}

	if identifierOffset >= 0 && identifierOffset <= len(original) {
		//nolint:gosec // intentional bit-pattern comparison against the stored signed value
		if int16(CRC16CCITT(original[:identifierOffset])) == stored {
			return MatchesWithoutBlock
		}
	}

	if len(original) >= 2 {
		end := len(original) - 2
		//nolint:gosec // intentional bit-pattern comparison against the stored signed value
		if int16(CRC16CCITT(original[:end])) == stored {
			return Matches
		}
	}

	return Mismatch
}
