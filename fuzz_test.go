package pngzlib

import (
	"bytes"
	"compress/zlib"
	"testing"
)

// addMinimalSeeds adds the spec's hand-verified concrete scenarios plus a
// handful of valid zlib streams produced by the standard library, so the
// fuzzer starts from inputs already known to exercise every block type.
func addMinimalSeeds(f *testing.F) {
	f.Helper()

	// S1-S4: raw DEFLATE payloads wrapped in a minimal zlib envelope.
	deflatePayloads := [][]byte{
		{99, 100, 98, 102, 97, 5, 0},
		{99, 100, 98, 102, 100, 98, 102, 101, 99, 4, 129, 255, 175, 0},
		{107, 101, 57, 113, 130, 229, 68, 191, 197, 127, 40, 96, 98, 222, 146, 201, 200, 200, 104, 144, 172, 11, 226, 1, 0},
		{29, 198, 73, 1, 0, 0, 16, 64, 192, 172, 163, 127, 136, 61, 60, 32, 42, 151, 157, 55, 94, 29, 12},
	}
	for _, payload := range deflatePayloads {
		envelope := append([]byte{0x78, 0x01}, payload...)
		envelope = append(envelope, 0, 0, 0, 0) // Adler-32 need not be valid for a fuzz seed.
		f.Add(envelope)
	}

	for _, text := range [][]byte{nil, []byte("a"), bytes.Repeat([]byte("hello world "), 200)} {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		w.Write(text) //nolint:errcheck
		w.Close()
		f.Add(buf.Bytes())
	}
}

// FuzzParse ensures no input can cause a panic while parsing a zlib
// envelope and decoding its DEFLATE payload.
func FuzzParse(f *testing.F) {
	addMinimalSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		dec := NewZlibDecoder(data)
		dec.Parse() //nolint:errcheck
	})
}

// FuzzParseRoundtrip compresses the fuzzer's input with the standard
// library, parses it back, and checks the result matches exactly.
func FuzzParseRoundtrip(f *testing.F) {
	f.Add([]byte("roundtrip seed"))
	f.Add(bytes.Repeat([]byte{0xAB}, 4096))

	f.Fuzz(func(t *testing.T, data []byte) {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}

		dec := NewZlibDecoder(buf.Bytes())
		result, err := dec.Parse()
		if err != nil {
			t.Fatalf("Parse failed on data produced by compress/zlib: %v", err)
		}
		if !bytes.Equal(result.Data, data) {
			t.Fatalf("roundtrip mismatch: got %d bytes, want %d bytes", len(result.Data), len(data))
		}
	})
}
