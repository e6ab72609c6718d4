package statichuff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder assigns a Huffman code to each byte value and packs byte streams
// into bits using those codes.
type Encoder struct {
	frequencies FrequencyTable
	codes       [NumSymbols]Code
	minSize     byte
	maxSize     byte
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each byte value.  Byte values with a frequency of 0 get no
// code at all.
//
// If exactly one byte value has a non-zero frequency, its code is the empty
// code: each occurrence costs zero bits and the count is carried entirely by
// the frequency table.
//
// Returns ErrEmptyInput if every frequency is 0.
//
func (e *Encoder) Init(frequencies FrequencyTable) error {
	t, err := BuildTree(frequencies)
	if err != nil {
		return err
	}

	*e = Encoder{frequencies: frequencies}

	var hasMinMax bool
	t.Walk(func(symbol Symbol, hc Code) {
		assert.Assertf(frequencies[symbol] != 0, "leaf for symbol %d has zero frequency", symbol)
		e.codes[symbol] = hc
		if !hasMinMax {
			hasMinMax = true
			e.minSize = hc.Size
			e.maxSize = hc.Size
		} else if e.minSize > hc.Size {
			e.minSize = hc.Size
		} else if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	})
	return nil
}

// Encode returns the code for the given Symbol.  The second return value is
// false if the Symbol does not occur in the frequency table.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	if symbol < 0 || symbol > MaxSymbol || e.frequencies[symbol] == 0 {
		return Code{}, false
	}
	return e.codes[symbol], true
}

// Frequencies returns the frequency table this Encoder was initialized with.
func (e *Encoder) Frequencies() FrequencyTable {
	return e.frequencies
}

// MinSize is the bit length of the shortest assigned code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// PackedBits returns the exact number of bits Pack will produce for input
// matching the frequency table.
func (e *Encoder) PackedBits() uint64 {
	var total uint64
	for symbol, freq := range e.frequencies {
		total += freq * uint64(e.codes[symbol].Size)
	}
	return total
}

// Pack encodes data one byte at a time, writing each code's bits MSB-first
// into consecutive bytes.  The last byte is padded with zero bits.  It
// returns the packed bytes, exactly ceil(totalBits/8) of them, and the number
// of valid bits.
//
// Every byte of data must have a code.
//
func (e *Encoder) Pack(data []byte) ([]byte, uint64, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)*int(e.maxSize)/8 + 1)

	bw := bitio.NewWriter(&buf)
	var totalBits uint64
	for index, b := range data {
		hc, found := e.Encode(Symbol(b))
		if !found {
			return nil, 0, fmt.Errorf("byte %d at offset %d has no Huffman code", b, index)
		}
		for w := 0; w < len(hc.Bits); w++ {
			bits, n := hc.Word(w)
			if n == 0 {
				break
			}
			if err := bw.WriteBits(bits, n); err != nil {
				return nil, 0, err
			}
		}
		totalBits += uint64(hc.Size)
	}
	if err := bw.Close(); err != nil {
		return nil, 0, err
	}

	packed := buf.Bytes()
	assert.Assertf(uint64(len(packed)) == ceilBytes(totalBits), "packed %d bits into %d bytes", totalBits, len(packed))
	return packed, totalBits, nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.frequencies.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
