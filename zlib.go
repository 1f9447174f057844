// Package pngzlib implements the zlib (RFC 1950) envelope and DEFLATE
// (RFC 1951) decompression engine that PNG's IDAT chunks are stored under.
//
// It decodes the bitstream only: header validation, block decompression,
// and the Adler-32 trailer check. It has no notion of PNG chunks, row
// filters, or pixels — a PNG decoder built on top of it is responsible for
// concatenating IDAT payloads and handing the result to [NewZlibDecoder].
package pngzlib

import (
	"errors"
	"fmt"

	"github.com/Si1veR123/rust-png-decoder/internal/deflate"
)

// Errors returned while parsing the zlib envelope.
var (
	ErrEnvelopeTruncated = errors.New("pngzlib: envelope truncated")
	ErrFCheckFailed      = errors.New("pngzlib: FCHECK validation failed")
	ErrUnsupportedFDict  = errors.New("pngzlib: preset dictionary (FDICT) unsupported")
	ErrAdlerMismatch     = errors.New("pngzlib: Adler-32 checksum mismatch")
)

const adlerMod = 65521

// Adler32 computes the RFC 1950 Adler-32 checksum of data using 32-bit
// accumulators, wide enough to hold the full modular sum for any input
// length without overflowing.
func Adler32(data []byte) uint32 {
	var a, b uint32 = 1, 0
	for _, c := range data {
		a = (a + uint32(c)) % adlerMod
		b = (b + a) % adlerMod
	}
	return (b << 16) | a
}

// Decompressed is the result of a successful [ZlibDecoder.Parse].
type Decompressed struct {
	CM      byte // compression method (8 = DEFLATE)
	CINFO   byte // compression info (window size, log2(n)-8)
	FLevel  byte // compression-level hint the encoder recorded
	Data    []byte
	Adler32 uint32
}

// ZlibDecoder parses a single zlib stream.
type ZlibDecoder struct {
	data []byte
}

// NewZlibDecoder wraps data for parsing. It performs no validation itself;
// all checks happen in Parse.
func NewZlibDecoder(data []byte) *ZlibDecoder {
	return &ZlibDecoder{data: data}
}

// Parse validates the zlib envelope, decompresses the DEFLATE payload, and
// verifies the trailing Adler-32 checksum.
func (z *ZlibDecoder) Parse() (*Decompressed, error) {
	if len(z.data) < 6 {
		return nil, ErrEnvelopeTruncated
	}

	cmf := z.data[0]
	flg := z.data[1]
	if (uint16(cmf)<<8|uint16(flg))%31 != 0 {
		return nil, ErrFCheckFailed
	}

	fdict := (flg >> 5) & 1
	if fdict == 1 {
		// PNG never sets FDICT; without the dictionary content available
		// to prefill the window, decompression cannot continue correctly.
		return nil, ErrUnsupportedFDict
	}

	payload := z.data[2 : len(z.data)-4]
	trailer := z.data[len(z.data)-4:]

	out, err := deflate.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("pngzlib: %w", err)
	}

	wantAdler := uint32(trailer[0])<<24 | uint32(trailer[1])<<16 | uint32(trailer[2])<<8 | uint32(trailer[3])
	gotAdler := Adler32(out)
	if gotAdler != wantAdler {
		return nil, ErrAdlerMismatch
	}

	return &Decompressed{
		CM:      cmf & 0x0F,
		CINFO:   cmf >> 4,
		FLevel:  (flg >> 6) & 0x03,
		Data:    out,
		Adler32: gotAdler,
	}, nil
}
