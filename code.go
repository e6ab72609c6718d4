package statichuff

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest possible code: a strict binary tree with
// NumSymbols leaves is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

// Code represents a path through a Huffman tree, one bit per edge.  A 0 bit
// means "go left" and a 1 bit means "go right".
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the path is
	// stored at Bits[i/64] >> (i%64), so the least significant bit of
	// Bits[0] is the first bit.
	Bits [4]uint64
}

// MakeCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func MakeCode(path string) Code {
	var hc Code
	for i := 0; i < len(path); i++ {
		c := path[i]
		assert.Assertf(c == '0' || c == '1', "invalid character %q at index %d in code %q", c, i, path)
		hc = hc.Append(uint(c - '0'))
	}
	return hc
}

// Bit returns the i'th bit of the path, either 0 or 1.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits[i>>6]>>(i&63)) & 1
}

// Word returns up to 64 bits of the path starting at bit 64*w, packed so
// that the earliest bit is the most significant of the n valid bits.
func (hc Code) Word(w int) (bits uint64, n uint8) {
	size := int(hc.Size) - 64*w
	if size <= 0 {
		return 0, 0
	}
	if size > 64 {
		size = 64
	}
	return mathbits.Reverse64(hc.Bits[w]) >> (64 - size), uint8(size)
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	if bit != 0 {
		hc.Bits[hc.Size>>6] |= uint64(1) << (hc.Size & 63)
	}
	hc.Size++
	return hc
}

// Path returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Path() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return sb.String()
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Path())
}

var _ fmt.Stringer = Code{}
