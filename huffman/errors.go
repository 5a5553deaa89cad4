package huffman

import "errors"

var (
	// ErrEmptyInput is returned when a tree or codec is built from zero
	// symbols.
	ErrEmptyInput = errors.New("huffman: input is empty")

	// ErrInvalidSymbol is returned when a FrequencyTable has a key outside
	// the byte alphabet.
	ErrInvalidSymbol = errors.New("huffman: symbol outside alphabet")

	// ErrUnknownSymbol is returned when encoding a symbol that is absent
	// from the codec's alphabet.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrMalformedEncoding is returned when a bit string does not resolve
	// to a sequence of complete codes.
	ErrMalformedEncoding = errors.New("huffman: malformed bit string")
)
