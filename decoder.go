package statichuff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// MaxDecodedSize is the largest output, in bytes, that Unpack will produce.
// Frequency tables claiming more are rejected as corrupt.
const MaxDecodedSize = 1 << 32

// Decoder rebuilds the Huffman tree from a frequency table and walks it to
// turn packed bits back into bytes.  Init must be called before any other
// method.
type Decoder struct {
	frequencies FrequencyTable
	tree        *Tree
}

// Init initializes this Decoder.  It builds exactly the tree that
// Encoder.Init builds for the same frequencies.
//
// Returns ErrEmptyInput if every frequency is 0.
//
func (d *Decoder) Init(frequencies FrequencyTable) error {
	t, err := BuildTree(frequencies)
	if err != nil {
		return err
	}
	*d = Decoder{frequencies: frequencies, tree: t}
	return nil
}

// Frequencies returns the frequency table this Decoder was initialized with.
func (d *Decoder) Frequencies() FrequencyTable {
	return d.frequencies
}

// Tree returns the Huffman tree.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Decode walks the tree along hc and returns the Symbol at the leaf where
// the path ends.  If the path ends on an internal node, or tries to descend
// below a leaf, it returns InvalidSymbol.
//
// For a single-leaf tree, only the empty code decodes.
//
func (d *Decoder) Decode(hc Code) Symbol {
	assert.Assertf(d.tree != nil, "Decoder.Decode called before Init")
	index := d.tree.Root()
	for i := byte(0); i < hc.Size; i++ {
		if d.tree.IsLeaf(index) {
			return InvalidSymbol
		}
		index = d.tree.Child(index, hc.Bit(i))
	}
	if !d.tree.IsLeaf(index) {
		return InvalidSymbol
	}
	return d.tree.Node(index).Symbol
}

// Unpack reads totalBits bits MSB-first from packed and walks the tree once
// per symbol, restarting at the root after each leaf.
//
// When totalBits is 0 the tree must be a single leaf, and its symbol is
// repeated as many times as its frequency says.
//
// The result is checked against the frequency table; any mismatch, a
// payload too short for totalBits, or bits that stop in the middle of a code
// yield a *CorruptArtifactError.
//
func (d *Decoder) Unpack(packed []byte, totalBits uint64) ([]byte, error) {
	assert.Assertf(d.tree != nil, "Decoder.Unpack called before Init")

	root := d.tree.Root()
	expectLen := d.frequencies.Total()

	if d.tree.IsLeaf(root) {
		if totalBits != 0 {
			return nil, corruptf(-1, "single-symbol payload must be empty, got %d bits", totalBits)
		}
		n := d.tree.Node(root)
		if n.Weight > MaxDecodedSize {
			return nil, corruptf(-1, "single-symbol count %d exceeds %d", n.Weight, uint64(MaxDecodedSize))
		}
		return bytes.Repeat([]byte{byte(n.Symbol)}, int(n.Weight)), nil
	}

	if expectLen > MaxDecodedSize {
		return nil, corruptf(-1, "decoded size %d exceeds %d", expectLen, uint64(MaxDecodedSize))
	}

	if totalBits == 0 {
		return nil, corruptf(-1, "payload is empty but the table has %d symbols", d.tree.Leaves())
	}
	if have, need := uint64(len(packed)), ceilBytes(totalBits); have < need {
		return nil, corruptf(-1, "payload has %d bytes, %d bits need %d", have, totalBits, need)
	}
	if expectLen > totalBits {
		// Every symbol costs at least one bit in a multi-symbol tree.
		return nil, corruptf(-1, "%d bits cannot hold %d symbols", totalBits, expectLen)
	}

	br := bitio.NewReader(bytes.NewReader(packed))
	out := make([]byte, 0, expectLen)
	index := root
	for i := uint64(0); i < totalBits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("failed to read bit %d: %w", i, err)
		}
		var b uint
		if bit {
			b = 1
		}
		index = d.tree.Child(index, b)
		if d.tree.IsLeaf(index) {
			if uint64(len(out)) == expectLen {
				return nil, corruptf(-1, "payload decodes to more than %d bytes", expectLen)
			}
			out = append(out, byte(d.tree.Node(index).Symbol))
			index = root
		}
	}

	if index != root {
		return nil, corruptf(-1, "payload ends in the middle of a code after %d bytes", len(out))
	}
	if uint64(len(out)) != expectLen {
		return nil, corruptf(-1, "payload decodes to %d bytes, expected %d", len(out), expectLen)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	assert.Assertf(d.tree != nil, "Decoder.Dump called before Init")
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", d.tree.Leaves())
	fmt.Fprintf(&buf, "\tInternal() = %d\n", d.tree.Internal())
	d.tree.Walk(func(symbol Symbol, hc Code) {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbol)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
