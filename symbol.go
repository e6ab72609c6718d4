package statichuff

// Symbol represents a byte value in the range [0, NumSymbols).  Negative
// symbols are not valid.
type Symbol int32

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies scans data once and returns its FrequencyTable.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Len returns the number of symbols that occur at least once.
func (ft *FrequencyTable) Len() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the original data.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if ft[symbol] != 0 {
			out = append(out, symbol)
		}
	}
	return out
}
