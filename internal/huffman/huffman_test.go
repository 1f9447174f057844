package huffman

import (
	"math/rand"
	"testing"
)

// bitSliceReader adapts a slice of 0/1 values to the bitReader interface
// used by GetNextSymbol, for feeding hand-built bit sequences into tests.
type bitSliceReader struct {
	bits []uint8
	pos  int
}

func (r *bitSliceReader) ReadBit() (uint8, bool) {
	if r.pos >= len(r.bits) {
		return 0, false
	}
	b := r.bits[r.pos]
	r.pos++
	return b, true
}

func TestFromCodeLengthsEmpty(t *testing.T) {
	if _, err := FromCodeLengths(nil); err != ErrEmptyLengths {
		t.Fatalf("got %v, want ErrEmptyLengths", err)
	}
}

func TestFromCodeLengthsAllZero(t *testing.T) {
	if _, err := FromCodeLengths([]int{0, 0, 0}); err != ErrNoNonZeroCode {
		t.Fatalf("got %v, want ErrNoNonZeroCode", err)
	}
}

func TestFromCodeLengthsCodeTooLong(t *testing.T) {
	lengths := make([]int, 3)
	lengths[0] = MaxCodeLength + 1
	if _, err := FromCodeLengths(lengths); err != ErrCodeTooLong {
		t.Fatalf("got %v, want ErrCodeTooLong", err)
	}
}

// TestCanonicalAssignment checks the RFC 1951 §3.2.2 canonical assignment:
// lengths {2, 1, 3, 3} give symbol 1 the code 0, symbol 0 the code 10, and
// symbols 2 and 3 the codes 110 and 111.
func TestCanonicalAssignment(t *testing.T) {
	tree, err := FromCodeLengths([]int{2, 1, 3, 3})
	if err != nil {
		t.Fatalf("FromCodeLengths: %v", err)
	}

	want := map[uint16][]uint8{
		0: {1, 0},
		1: {0},
		2: {1, 1, 0},
		3: {1, 1, 1},
	}
	for symbol, bits := range want {
		r := &bitSliceReader{bits: bits}
		got, ok := tree.GetNextSymbol(r)
		if !ok || got != symbol {
			t.Errorf("symbol %d: decode with bits %v = %d, %v", symbol, bits, got, ok)
		}
	}
}

func TestDistinctCodePairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(30)
		lengths := make([]int, n)
		nonZero := 0
		for i := range lengths {
			if rng.Intn(4) == 0 {
				lengths[i] = 0
				continue
			}
			lengths[i] = 1 + rng.Intn(8)
			nonZero++
		}
		if nonZero == 0 {
			continue
		}
		tree, err := FromCodeLengths(lengths)
		if err != nil {
			// Over-subscribed random length sets are expected sometimes;
			// the property under test only concerns successfully built trees.
			continue
		}
		seen := make(map[uint32]bool)
		for k := range tree.symbols {
			if seen[k] {
				t.Fatalf("duplicate (length, code) key %d in tree built from %v", k, lengths)
			}
			seen[k] = true
		}
	}
}

func TestGetNextSymbolTruncatedStream(t *testing.T) {
	tree, err := FromCodeLengths([]int{2, 1, 3, 3})
	if err != nil {
		t.Fatalf("FromCodeLengths: %v", err)
	}
	r := &bitSliceReader{bits: nil}
	if _, ok := tree.GetNextSymbol(r); ok {
		t.Fatal("expected decode to fail on empty bit source")
	}
}

func TestGetNextSymbolMalformedCode(t *testing.T) {
	tree, err := FromCodeLengths([]int{2, 2, 2})
	if err != nil {
		t.Fatalf("FromCodeLengths: %v", err)
	}
	// The codes are 00, 01 and 10, so 11 matches nothing up to maxLength;
	// enough bits follow that the failure is not a short stream.
	r := &bitSliceReader{bits: []uint8{1, 1, 0, 0}}
	if _, ok := tree.GetNextSymbol(r); ok {
		t.Fatal("expected decode to fail on a code that matches no symbol")
	}
}
