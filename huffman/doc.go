// Package huffman implements a closed-vocabulary Huffman coder over byte
// strings.  A Codec is built from a sample text; it can then encode any text
// drawn from the sample's alphabet into a string of '0' and '1' bits, and
// decode such a bit string back into the original text.
//
// Tree construction uses a fixed total order on the priority queue, so the
// code table for a given text is fully deterministic:
//
//     1. frequency, ascending
//     2. leaves before internal nodes
//     3. leaves by symbol value, ascending
//     4. internal nodes by creation order, ascending
//
// A text with only one distinct symbol produces a tree whose root is a leaf.
// That symbol is assigned the one-bit code "0".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
