package deflate

// Fixed tables from RFC 1951 §3.2.5 and §3.2.6.

// lengthBases and lengthExtraBits are indexed by (literal/length symbol -
// 257); each length symbol decodes to lengthBases[i] plus lengthExtraBits[i]
// extra bits read least-significant-bit first.
var lengthBases = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
	15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBases and distExtraBits are indexed by distance symbol (0..29).
var distBases = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]int{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// clenCodeOrder is the order in which HCLEN code-length-alphabet lengths
// are transmitted in a dynamic block header (RFC 1951 §3.2.7).
var clenCodeOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

const (
	numLitLenSymbols = 286
	numDistSymbols   = 32
	numClenSymbols   = 19

	endOfBlockSymbol = 256
	maxLengthSymbol  = 285
	maxDistSymbol    = 29
)

// fixedLitLenLengths and fixedDistLengths are the code-length vectors for
// the fixed Huffman block type (RFC 1951 §3.2.6): literal/length symbols
// 0-143 get 8 bits, 144-255 get 9, 256-279 get 7, 280-287 get 8; every
// distance symbol gets 5 bits.
func fixedLitLenLengths() []int {
	lengths := make([]int, 288)
	for i := 0; i <= 143; i++ {
		lengths[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lengths[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lengths[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lengths[i] = 8
	}
	return lengths
}

func fixedDistLengths() []int {
	lengths := make([]int, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}
