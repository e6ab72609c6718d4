// Package statichuff implements static Huffman coding over byte symbols,
// along with the ".zz" artifact format used to persist a compressed file.
//
// The code is whatever the greedy minimum-weight merge produces; it is not
// normalized into a canonical Huffman code.  Both sides rebuild the same tree
// from the frequency table alone, so the tie-break rule used while merging is
// part of the format: nodes are ordered by weight, then by the order in which
// they were created (leaves first, in ascending byte order).
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package statichuff
