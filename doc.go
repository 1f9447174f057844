// Package pngzlib decodes the zlib/DEFLATE bitstream used by PNG's IDAT
// chunks.
//
// A PNG file stores its pixel data as a single zlib stream (RFC 1950)
// wrapping a DEFLATE payload (RFC 1951). This package implements that core:
// envelope validation, canonical Huffman decoding, stored/fixed/dynamic
// block expansion, and Adler-32 verification. It has no dependency on the
// image/color or image/png packages and performs no PNG-specific framing —
// chunk parsing, CRC-32 checks, and row-filter reversal belong to a PNG
// container layer built on top of [ZlibDecoder].
//
// Basic usage:
//
//	dec := pngzlib.NewZlibDecoder(idatPayload)
//	result, err := dec.Parse()
//
// The decoder machinery lives in internal/bitio, internal/huffman, and
// internal/deflate; this package is the thin envelope around them.
package pngzlib
