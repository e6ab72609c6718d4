package statichuff

import (
	"bytes"
	"strings"
	"testing"
)

func makeTestFrequencies(pairs ...uint64) FrequencyTable {
	var ft FrequencyTable
	for i := 0; i+1 < len(pairs); i += 2 {
		ft[pairs[i]] = pairs[i+1]
	}
	return ft
}

func TestEncoder(t *testing.T) {
	var e Encoder
	err := e.Init(makeTestFrequencies(0, 5, 1, 9, 2, 12, 3, 13, 4, 16, 5, 45))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, found := e.Encode(6); found {
		t.Errorf("Encode(6) found a code for a symbol with zero frequency")
	}
	if _, found := e.Encode(InvalidSymbol); found {
		t.Errorf("Encode(InvalidSymbol) found a code")
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	if err := e.Init(makeTestFrequencies('Z', 100)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	hc, found := e.Encode('Z')
	if !found {
		t.Fatalf("Encode('Z') found no code")
	}
	if hc.Size != 0 {
		t.Errorf("expected empty code, got %s", hc)
	}
	if e.MinSize() != 0 || e.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", e.MinSize(), e.MaxSize())
	}

	packed, totalBits, err := e.Pack(bytes.Repeat([]byte{'Z'}, 100))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if totalBits != 0 || len(packed) != 0 {
		t.Errorf("expected 0 bits in 0 bytes, got %d bits in %d bytes", totalBits, len(packed))
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	if err := e.Init(FrequencyTable{}); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEncoder_Pack(t *testing.T) {
	input := []byte("AAAABBBCCD")

	var e Encoder
	if err := e.Init(CountFrequencies(input)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	type testRow struct {
		symbol Symbol
		path   string
	}

	testData := [...]testRow{
		{'A', "0"},
		{'B', "10"},
		{'C', "111"},
		{'D', "110"},
	}
	for _, row := range testData {
		hc, _ := e.Encode(row.symbol)
		if actual := hc.Path(); actual != row.path {
			t.Errorf("Encode(%q): expected %q, got %q", rune(row.symbol), row.path, actual)
		}
	}

	packed, totalBits, err := e.Pack(input)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if totalBits != 19 {
		t.Errorf("expected 19 bits, got %d", totalBits)
	}
	if totalBits != e.PackedBits() {
		t.Errorf("PackedBits() = %d disagrees with Pack() = %d", e.PackedBits(), totalBits)
	}
	expectPacked := []byte{0x0a, 0xbf, 0xc0}
	if !bytes.Equal(expectPacked, packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, packed)
	}

	if _, _, err := e.Pack([]byte("ABCDE")); err == nil {
		t.Errorf("Pack of a byte without a code did not fail")
	}
}

func TestEncoder_DeepTree(t *testing.T) {
	// Weights 2^i make every merge absorb the next leaf, giving a chain.
	var ft FrequencyTable
	for i := 0; i < 64; i++ {
		ft[i] = uint64(1) << i
	}

	var e Encoder
	if err := e.Init(ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if e.MinSize() != 1 || e.MaxSize() != 63 {
		t.Errorf("expected sizes 1 .. 63, got %d .. %d", e.MinSize(), e.MaxSize())
	}

	hc, _ := e.Encode(0)
	if expect := strings.Repeat("0", 63); hc.Path() != expect {
		t.Errorf("Encode(0): expected %q, got %q", expect, hc.Path())
	}
	hc, _ = e.Encode(1)
	if expect := strings.Repeat("0", 62) + "1"; hc.Path() != expect {
		t.Errorf("Encode(1): expected %q, got %q", expect, hc.Path())
	}
	hc, _ = e.Encode(63)
	if hc.Path() != "1" {
		t.Errorf("Encode(63): expected %q, got %q", "1", hc.Path())
	}

	// 63 + 63 + 1 bits: everything zero except bits 125 and 126.
	packed, totalBits, err := e.Pack([]byte{0, 1, 63})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if totalBits != 127 {
		t.Errorf("expected 127 bits, got %d", totalBits)
	}
	expectPacked := make([]byte, 16)
	expectPacked[15] = 0x06
	if !bytes.Equal(expectPacked, packed) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, packed)
	}

	var d Decoder
	if err := d.Init(ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for symbol := Symbol(0); symbol < 64; symbol++ {
		hc, _ := e.Encode(symbol)
		if actual := d.Decode(hc); actual != symbol {
			t.Errorf("Decode(Encode(%d)) = %d", symbol, actual)
		}
	}
}
