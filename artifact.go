package statichuff

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// Artifact is the persisted form of a compressed file:
//
//     <leafCount>\n
//     <byte> <count>\n      (leafCount times, ascending byte value)
//     <totalBits>\n
//     <packed payload>      (ceil(totalBits/8) bytes)
//
// Each <byte> is written raw, whatever its value, and is followed by a single
// space.  Numbers are unsigned decimal.
//
type Artifact struct {
	Frequencies FrequencyTable
	TotalBits   uint64
	Payload     []byte
}

// maxDecimalDigits is enough for any uint64.
const maxDecimalDigits = 20

// WriteTo writes the artifact to the given writer.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	symbols := a.Frequencies.Symbols()
	buf.Grow(len(symbols)*(3+maxDecimalDigits) + 2*maxDecimalDigits + len(a.Payload))

	var scratch [maxDecimalDigits]byte
	writeDecimal := func(x uint64) {
		buf.Write(strconv.AppendUint(scratch[:0], x, 10))
		buf.WriteByte('\n')
	}

	writeDecimal(uint64(len(symbols)))
	for _, symbol := range symbols {
		buf.WriteByte(byte(symbol))
		buf.WriteByte(' ')
		writeDecimal(a.Frequencies[symbol])
	}
	writeDecimal(a.TotalBits)
	buf.Write(a.Payload)
	return buf.WriteTo(w)
}

// MarshalBinary returns the artifact's serialized bytes.
func (a *Artifact) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadArtifact parses an artifact from r, reading r to the end.
//
// The payload may be either ceil(totalBits/8) bytes long or floor(totalBits/8)+1
// bytes long; the latter carries one trailing placeholder byte when totalBits
// is a multiple of 8, which is dropped.  Any other length, and any malformed
// header, is reported as a *CorruptArtifactError.
//
func ReadArtifact(r io.Reader) (*Artifact, error) {
	hr := headerReader{br: bufio.NewReader(r)}

	leafCount, err := hr.readDecimal("leaf count")
	if err != nil {
		return nil, err
	}
	if leafCount == 0 || leafCount > NumSymbols {
		return nil, corruptf(0, "leaf count %d is out of range [1, %d]", leafCount, NumSymbols)
	}

	a := &Artifact{}
	var total uint64
	for i := uint64(0); i < leafCount; i++ {
		offset := hr.offset
		b, err := hr.readByte()
		if err != nil {
			return nil, err
		}
		if err := hr.expect(' ', "space after symbol"); err != nil {
			return nil, err
		}
		count, err := hr.readDecimal("symbol count")
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, corruptf(offset, "symbol %d has a count of 0", b)
		}
		if a.Frequencies[b] != 0 {
			return nil, corruptf(offset, "symbol %d appears twice", b)
		}
		if total+count < total {
			return nil, corruptf(offset, "symbol counts overflow")
		}
		total += count
		a.Frequencies[b] = count
	}

	a.TotalBits, err = hr.readDecimal("bit count")
	if err != nil {
		return nil, err
	}

	payloadOffset := hr.offset
	payload, err := io.ReadAll(hr.br)
	if err != nil {
		return nil, err
	}

	have := uint64(len(payload))
	need := ceilBytes(a.TotalBits)
	switch {
	case have == need:
	case have == a.TotalBits/8+1:
		payload = payload[:need]
	default:
		return nil, corruptf(payloadOffset, "payload has %d bytes, %d bits need %d", have, a.TotalBits, need)
	}
	a.Payload = payload
	return a, nil
}

// UnmarshalArtifact parses an artifact from a byte slice.
func UnmarshalArtifact(data []byte) (*Artifact, error) {
	return ReadArtifact(bytes.NewReader(data))
}

type headerReader struct {
	br     *bufio.Reader
	offset int64
}

func (hr *headerReader) readByte() (byte, error) {
	b, err := hr.br.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, corruptf(hr.offset, "unexpected end of header")
	}
	if err != nil {
		return 0, err
	}
	hr.offset++
	return b, nil
}

func (hr *headerReader) expect(want byte, what string) error {
	offset := hr.offset
	b, err := hr.readByte()
	if err != nil {
		return err
	}
	if b != want {
		return corruptf(offset, "expected %s %q, got %q", what, want, b)
	}
	return nil
}

// readDecimal reads one or more ASCII digits terminated by '\n'.
func (hr *headerReader) readDecimal(what string) (uint64, error) {
	start := hr.offset
	var digits [maxDecimalDigits]byte
	n := 0
	for {
		offset := hr.offset
		b, err := hr.readByte()
		if err != nil {
			return 0, err
		}
		if b == '\n' {
			break
		}
		if b < '0' || b > '9' {
			return 0, corruptf(offset, "unexpected byte %q in %s", b, what)
		}
		if n == maxDecimalDigits {
			return 0, corruptf(start, "%s is too long", what)
		}
		digits[n] = b
		n++
	}
	if n == 0 {
		return 0, corruptf(start, "missing %s", what)
	}
	x, err := strconv.ParseUint(string(digits[:n]), 10, 64)
	if err != nil {
		return 0, corruptf(start, "invalid %s: %v", what, err)
	}
	return x, nil
}
