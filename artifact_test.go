package statichuff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

var scenarioOneArtifact = []byte("4\nA 4\nB 3\nC 2\nD 1\n19\n\x0a\xbf\xc0")

func TestArtifact_WriteTo(t *testing.T) {
	a, err := Compress([]byte("AAAABBBCCD"))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(scenarioOneArtifact)), n)
	require.Equal(t, scenarioOneArtifact, buf.Bytes())
}

func TestArtifact_SingleSymbol(t *testing.T) {
	a, err := Compress(bytes.Repeat([]byte{'Z'}, 100))
	require.NoError(t, err)
	require.Equal(t, 1, a.Frequencies.Len())
	require.Equal(t, uint64(100), a.Frequencies['Z'])
	require.Equal(t, uint64(0), a.TotalBits)
	require.Empty(t, a.Payload)

	raw, err := a.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte("1\nZ 100\n0\n"), raw)
}

func TestReadArtifact(t *testing.T) {
	a, err := UnmarshalArtifact(scenarioOneArtifact)
	require.NoError(t, err)
	require.Equal(t, CountFrequencies([]byte("AAAABBBCCD")), a.Frequencies)
	require.Equal(t, uint64(19), a.TotalBits)
	require.Equal(t, []byte{0x0a, 0xbf, 0xc0}, a.Payload)
}

func TestReadArtifact_SeparatorSymbols(t *testing.T) {
	// Space, newline and digits must survive as raw symbol bytes.
	input := []byte("1 2\n3 4\n\n  99\n")
	a, err := Compress(input)
	require.NoError(t, err)

	raw, err := a.MarshalBinary()
	require.NoError(t, err)

	b, err := UnmarshalArtifact(raw)
	require.NoError(t, err)
	require.Equal(t, a, b)

	output, err := Decompress(b)
	require.NoError(t, err)
	require.Equal(t, input, output)
}

func TestReadArtifact_LegacyPlaceholder(t *testing.T) {
	// 16 bits fill two bytes exactly; older writers append one more byte.
	raw := []byte("2\nA 8\nB 8\n16\n\x00\xff\x00")
	a, err := UnmarshalArtifact(raw)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff}, a.Payload)

	output, err := Decompress(a)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAAAAAABBBBBBBB"), output)

	a, err = UnmarshalArtifact([]byte("1\nZ 3\n0\n\x00"))
	require.NoError(t, err)
	require.Empty(t, a.Payload)
}

func TestReadArtifact_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		raw  string
	}

	testData := [...]testRow{
		{"empty", ""},
		{"zero-leaves", "0\n0\n"},
		{"too-many-leaves", "257\n"},
		{"not-a-number", "x\n"},
		{"missing-number", "\n"},
		{"too-long", "123456789012345678901\n"},
		{"overflow", "18446744073709551616\n"},
		{"missing-space", "1\nZ100\n0\n"},
		{"zero-count", "1\nZ 0\n0\n"},
		{"duplicate-symbol", "2\nZ 1\nZ 1\n1\n\x00"},
		{"count-overflow", "2\nA 18446744073709551615\nB 1\n1\n\x00"},
		{"truncated-header", "1\nZ 100\n"},
		{"truncated-table", "2\nA 1\n"},
		{"trailing-bytes", "1\nZ 100\n0\nextra"},
		{"short-payload", "4\nA 4\nB 3\nC 2\nD 1\n19\n\x0a"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := UnmarshalArtifact([]byte(row.raw))
			require.ErrorIs(t, err, ErrCorruptArtifact)

			var cae *CorruptArtifactError
			require.ErrorAs(t, err, &cae)
			require.NotEmpty(t, cae.Reason)
		})
	}
}
