// Package deflate implements the RFC 1951 DEFLATE block decoder: the
// BFINAL/BTYPE block-header state machine, the three block formats (stored,
// fixed Huffman, dynamic Huffman), and length/distance back-reference
// expansion into an output buffer.
//
// It depends on internal/bitio for bit-level reads and internal/huffman for
// canonical Huffman symbol decoding; it knows nothing about the zlib
// envelope that wraps it, which lives one layer up in the root package.
package deflate

import (
	"github.com/Si1veR123/rust-png-decoder/internal/bitio"
	"github.com/Si1veR123/rust-png-decoder/internal/huffman"
)

const (
	btypeStored  = 0
	btypeFixed   = 1
	btypeDynamic = 2
	btypeReserved = 3
)

// Decode decompresses a complete DEFLATE bitstream (the full compressed byte
// slice; this package has no notion of suspendable/streaming input) and
// returns the decompressed bytes.
func Decode(data []byte) ([]byte, error) {
	d := &decoder{
		r:   bitio.NewReader(data, bitio.LittleEndian),
		out: make([]byte, 0, len(data)*3),
	}
	for {
		final, err := d.decodeBlock()
		if err != nil {
			return nil, err
		}
		if final {
			return d.out, nil
		}
	}
}

type decoder struct {
	r   *bitio.Reader
	out []byte
}

// decodeBlock reads one block's BFINAL/BTYPE header, dispatches to the
// matching block decoder, and reports whether this was the final block.
func (d *decoder) decodeBlock() (final bool, err error) {
	offset := d.r.BytePosition()

	bfinal, ok := d.r.ReadBit()
	if !ok {
		return false, &TruncatedError{Offset: offset}
	}
	btype, ok := d.r.ReadBitsReverse(2)
	if !ok {
		return false, &TruncatedError{Offset: offset}
	}

	switch btype {
	case btypeStored:
		err = d.decodeStoredBlock(offset)
	case btypeFixed:
		err = d.decodeFixedBlock(offset)
	case btypeDynamic:
		err = d.decodeDynamicBlock(offset)
	case btypeReserved:
		err = ErrReservedBType
	}
	if err != nil {
		return false, err
	}
	return bfinal != 0, nil
}

func (d *decoder) decodeStoredBlock(offset int) error {
	d.r.SkipToNextByte()

	length, ok := d.r.ReadBitsReverse(16)
	if !ok {
		return &MalformedStoredError{Offset: offset}
	}
	nlength, ok := d.r.ReadBitsReverse(16)
	if !ok {
		return &MalformedStoredError{Offset: offset}
	}
	if uint16(length) != ^uint16(nlength) {
		return &MalformedStoredError{Offset: offset}
	}

	start := len(d.out)
	d.out = append(d.out, make([]byte, length)...)
	if !d.r.ReadByteSlice(d.out[start:]) {
		return &MalformedStoredError{Offset: offset}
	}
	return nil
}

func (d *decoder) decodeFixedBlock(offset int) error {
	litLen, dist := fixedTrees()
	return d.decodeSymbolLoop(offset, litLen, dist, &MalformedFixedError{Offset: offset})
}

func (d *decoder) decodeDynamicBlock(offset int) error {
	malformed := func(reason string) error {
		return &MalformedDynamicError{Offset: offset, Reason: reason}
	}

	hlitVal, ok := d.r.ReadBitsReverse(5)
	if !ok {
		return &TruncatedError{Offset: offset}
	}
	hlit := int(hlitVal) + 257
	if hlit > numLitLenSymbols {
		return malformed("HLIT exceeds 286 literal/length codes")
	}

	hdistVal, ok := d.r.ReadBitsReverse(5)
	if !ok {
		return &TruncatedError{Offset: offset}
	}
	hdist := int(hdistVal) + 1

	hclenVal, ok := d.r.ReadBitsReverse(4)
	if !ok {
		return &TruncatedError{Offset: offset}
	}
	hclen := int(hclenVal) + 4

	clenLengths := make([]int, numClenSymbols)
	for i := 0; i < hclen; i++ {
		v, ok := d.r.ReadBitsReverse(3)
		if !ok {
			return &TruncatedError{Offset: offset}
		}
		clenLengths[clenCodeOrder[i]] = int(v)
	}

	clenTree, err := huffman.FromCodeLengths(clenLengths)
	if err != nil {
		return malformed("invalid code-length alphabet: " + err.Error())
	}

	litLenLengths, err := d.readCodeLengths(clenTree, hlit)
	if err != nil {
		return malformed(err.Error())
	}
	distLengths, err := d.readCodeLengths(clenTree, hdist)
	if err != nil {
		return malformed(err.Error())
	}

	litLenTree, err := huffman.FromCodeLengths(litLenLengths)
	if err != nil {
		return malformed("invalid literal/length alphabet: " + err.Error())
	}
	distTree, err := huffman.FromCodeLengths(distLengths)
	if err != nil {
		return malformed("invalid distance alphabet: " + err.Error())
	}

	return d.decodeSymbolLoop(offset, litLenTree, distTree, malformed("symbol or distance out of range"))
}

// readCodeLengths decodes count code lengths using the code-length
// alphabet tree, expanding the run-length symbols 16/17/18 per RFC 1951
// §3.2.7. The "previous length" state used by symbol 16 is local to this
// call, so it resets between the literal/length and distance passes.
func (d *decoder) readCodeLengths(clenTree *huffman.Tree, count int) ([]int, error) {
	lengths := make([]int, 0, count)
	var prev int

	for len(lengths) < count {
		symbol, ok := clenTree.GetNextSymbol(d.r)
		if !ok {
			return nil, errTruncatedCodeLengths
		}

		switch {
		case symbol <= 15:
			lengths = append(lengths, int(symbol))
			prev = int(symbol)
		case symbol == 16:
			if len(lengths) == 0 {
				return nil, errRepeatBeforeAnyLength
			}
			n, ok := d.r.ReadBitsReverse(2)
			if !ok {
				return nil, errTruncatedCodeLengths
			}
			repeat := int(n) + 3
			if len(lengths)+repeat > count {
				return nil, errCodeLengthOverflow
			}
			for i := 0; i < repeat; i++ {
				lengths = append(lengths, prev)
			}
		case symbol == 17:
			n, ok := d.r.ReadBitsReverse(3)
			if !ok {
				return nil, errTruncatedCodeLengths
			}
			repeat := int(n) + 3
			if len(lengths)+repeat > count {
				return nil, errCodeLengthOverflow
			}
			for i := 0; i < repeat; i++ {
				lengths = append(lengths, 0)
			}
		case symbol == 18:
			n, ok := d.r.ReadBitsReverse(7)
			if !ok {
				return nil, errTruncatedCodeLengths
			}
			repeat := int(n) + 11
			if len(lengths)+repeat > count {
				return nil, errCodeLengthOverflow
			}
			for i := 0; i < repeat; i++ {
				lengths = append(lengths, 0)
			}
		default:
			return nil, errInvalidCodeLengthSymbol
		}
	}

	return lengths, nil
}

// decodeSymbolLoop decodes literal/length/distance symbols through litLen
// and dist until an end-of-block symbol is read, appending literals and
// expanded back-references to d.out. malformedErr is returned for any
// symbol outside its valid alphabet; truncation always reports a
// TruncatedError carrying the block's start offset.
func (d *decoder) decodeSymbolLoop(offset int, litLen, dist *huffman.Tree, malformedErr error) error {
	for {
		symbol, ok := litLen.GetNextSymbol(d.r)
		if !ok {
			return &TruncatedError{Offset: offset}
		}

		switch {
		case symbol < endOfBlockSymbol:
			d.out = append(d.out, byte(symbol))
		case symbol == endOfBlockSymbol:
			return nil
		case int(symbol) <= maxLengthSymbol:
			length, ok := d.readLength(symbol)
			if !ok {
				return &TruncatedError{Offset: offset}
			}
			distSymbol, ok := dist.GetNextSymbol(d.r)
			if !ok {
				return &TruncatedError{Offset: offset}
			}
			if int(distSymbol) > maxDistSymbol {
				return malformedErr
			}
			distance, ok := d.readDistance(distSymbol)
			if !ok {
				return &TruncatedError{Offset: offset}
			}
			if distance > len(d.out) {
				return malformedErr
			}
			d.copyBackref(length, distance)
		default:
			return malformedErr
		}
	}
}

func (d *decoder) readLength(symbol uint16) (int, bool) {
	idx := int(symbol) - 257
	extra := lengthExtraBits[idx]
	if extra == 0 {
		return lengthBases[idx], true
	}
	bits, ok := d.r.ReadBitsReverse(extra)
	if !ok {
		return 0, false
	}
	return lengthBases[idx] + int(bits), true
}

func (d *decoder) readDistance(symbol uint16) (int, bool) {
	idx := int(symbol)
	extra := distExtraBits[idx]
	if extra == 0 {
		return distBases[idx], true
	}
	bits, ok := d.r.ReadBitsReverse(extra)
	if !ok {
		return 0, false
	}
	return distBases[idx] + int(bits), true
}

// copyBackref appends length bytes copied from distance bytes before the
// current end of output. When distance < length the copy is self-
// referential: it tiles the trailing distance-byte window, full/rem split,
// rather than attempting any aliasing trick.
func (d *decoder) copyBackref(length, distance int) {
	start := len(d.out) - distance
	full := length / distance
	rem := length % distance
	for i := 0; i < full; i++ {
		d.out = append(d.out, d.out[start:start+distance]...)
	}
	d.out = append(d.out, d.out[start:start+rem]...)
}
