package statichuff

import (
	"fmt"
)

// Compress Huffman-codes data and returns the resulting Artifact.
//
// Returns ErrEmptyInput if data is empty.
//
func Compress(data []byte) (*Artifact, error) {
	frequencies := CountFrequencies(data)

	var e Encoder
	if err := e.Init(frequencies); err != nil {
		return nil, err
	}

	payload, totalBits, err := e.Pack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %d bytes: %w", len(data), err)
	}

	return &Artifact{
		Frequencies: frequencies,
		TotalBits:   totalBits,
		Payload:     payload,
	}, nil
}

// Decompress rebuilds the Huffman tree from the artifact's frequency table
// and decodes its payload.
func Decompress(a *Artifact) ([]byte, error) {
	var d Decoder
	if err := d.Init(a.Frequencies); err != nil {
		return nil, corruptf(-1, "frequency table: %v", err)
	}
	return d.Unpack(a.Payload, a.TotalBits)
}
