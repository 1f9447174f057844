package deflate

import (
	"sync"

	"github.com/Si1veR123/rust-png-decoder/internal/huffman"
)

// Fixed Huffman trees are identical for every fixed block in every stream,
// so they are built once, lazily, and reused — the same discipline the
// teacher codec applies to its own expensive per-format lookup tables
// (built once at decode-session start, not once per block).
var (
	fixedTreesOnce sync.Once
	fixedLitLen    *huffman.Tree
	fixedDist      *huffman.Tree
)

func fixedTrees() (litLen, dist *huffman.Tree) {
	fixedTreesOnce.Do(func() {
		var err error
		fixedLitLen, err = huffman.FromCodeLengths(fixedLitLenLengths())
		if err != nil {
			panic("deflate: invalid fixed literal/length table: " + err.Error())
		}
		fixedDist, err = huffman.FromCodeLengths(fixedDistLengths())
		if err != nil {
			panic("deflate: invalid fixed distance table: " + err.Error())
		}
	})
	return fixedLitLen, fixedDist
}
