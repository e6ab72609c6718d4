package statichuff

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// ceilBytes returns the number of bytes needed to hold numBits bits.
func ceilBytes(numBits uint64) uint64 {
	return numBits/8 + (numBits%8+7)/8
}
