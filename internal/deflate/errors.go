package deflate

import (
	"errors"
	"fmt"
)

// Sentinel and parameterized errors for the DEFLATE block decoder. Offset
// fields carry the byte position (into the compressed slice passed to
// Decode) at which decoding of the offending block began, so a caller can
// point at the bad data without re-scanning the stream.
var (
	// ErrReservedBType is returned when a block header's BTYPE is 11.
	ErrReservedBType = errors.New("deflate: reserved block type (11)")

	errTruncatedCodeLengths    = errors.New("bitstream ended while decoding a code-length vector")
	errRepeatBeforeAnyLength   = errors.New("code-length symbol 16 with no preceding length to repeat")
	errCodeLengthOverflow      = errors.New("code-length run-length overflows its target alphabet")
	errInvalidCodeLengthSymbol = errors.New("code-length alphabet decoded a symbol outside 0-18")
)

// TruncatedError reports that the bitstream ended mid-symbol, mid-field, or
// mid-copy while decoding the block starting at Offset.
type TruncatedError struct {
	Offset int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("deflate: truncated bitstream in block starting at byte %d", e.Offset)
}

// MalformedStoredError reports that a stored block's LEN/NLEN fields were
// not bitwise complements, or that fewer than LEN bytes followed them.
type MalformedStoredError struct {
	Offset int
}

func (e *MalformedStoredError) Error() string {
	return fmt.Sprintf("deflate: malformed stored block at byte %d: LEN/NLEN mismatch or insufficient data", e.Offset)
}

// MalformedFixedError reports a literal/length or distance symbol outside
// its valid range while decoding a fixed Huffman block.
type MalformedFixedError struct {
	Offset int
}

func (e *MalformedFixedError) Error() string {
	return fmt.Sprintf("deflate: malformed fixed Huffman block at byte %d", e.Offset)
}

// MalformedDynamicError reports an HLIT count above 286, a non-canonical
// code-length vector, a code-length run-length that overflows its target
// alphabet, or a literal/length or distance symbol outside its valid range,
// while decoding a dynamic Huffman block.
type MalformedDynamicError struct {
	Offset int
	Reason string
}

func (e *MalformedDynamicError) Error() string {
	return fmt.Sprintf("deflate: malformed dynamic Huffman block at byte %d: %s", e.Offset, e.Reason)
}
