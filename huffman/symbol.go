package huffman

// Symbol represents a symbol in the byte alphabet.  Negative symbols are not
// valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes also carry it.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the byte alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// Byte returns the byte value of this Symbol.  The Symbol must be valid.
func (s Symbol) Byte() byte {
	return byte(s)
}
