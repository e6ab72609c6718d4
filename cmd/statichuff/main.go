// Command statichuff compresses and decompresses files with static Huffman
// coding.
//
// Usage:
//
//     statichuff -c <file>    writes <file>.zz
//     statichuff -d <file>    writes <file>.yy
//
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/statichuff"
	"github.com/chronos-tachyon/statichuff/internal/logger"
)

const (
	progName = "statichuff"

	compressFlag   = "-c"
	decompressFlag = "-d"

	compressedExt   = ".zz"
	decompressedExt = ".yy"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usageText = "Usage: " + progName + " -c <file>    compress <file> into <file>" + compressedExt + "\n" +
	"       " + progName + " -d <file>    decompress <file> into <file>" + decompressedExt + "\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	log := logger.New(stderr, progName)

	err := dispatch(args, log)

	var usageErr *UsageError
	var flagErr *InvalidFlagError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usageErr), errors.As(err, &flagErr):
		log.Errorf("%v", err)
		fmt.Fprint(stderr, usageText)
		return exitUsage
	default:
		log.Errorf("%v", err)
		return exitFail
	}
}

func dispatch(args []string, log logger.Logger) error {
	if len(args) != 2 {
		return &UsageError{NumArgs: len(args)}
	}
	flag, path := args[0], args[1]
	switch flag {
	case compressFlag:
		return compressFile(path, log)
	case decompressFlag:
		return decompressFile(path, log)
	default:
		return &InvalidFlagError{Flag: flag}
	}
}

func compressFile(inPath string, log logger.Logger) error {
	data, err := readInput(inPath)
	if err != nil {
		return err
	}

	a, err := statichuff.Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress %q: %w", inPath, err)
	}

	outPath := inPath + compressedExt
	var written int64
	err = writeOutput(outPath, func(w io.Writer) error {
		var err error
		written, err = a.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}

	log.Infof("compressed %s (%d bytes) -> %s (%d bytes)", inPath, len(data), outPath, written)
	return nil
}

func decompressFile(inPath string, log logger.Logger) error {
	raw, err := readInput(inPath)
	if err != nil {
		return err
	}

	a, err := statichuff.UnmarshalArtifact(raw)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", inPath, err)
	}

	data, err := statichuff.Decompress(a)
	if err != nil {
		return fmt.Errorf("failed to decompress %q: %w", inPath, err)
	}

	outPath := inPath + decompressedExt
	err = writeOutput(outPath, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}

	log.Infof("decompressed %s (%d bytes) -> %s (%d bytes)", inPath, len(raw), outPath, len(data))
	return nil
}
