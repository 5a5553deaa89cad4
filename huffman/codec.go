package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Codec encodes and decodes texts over the alphabet of the text it was built
// from.  A Codec is immutable, and may be shared between goroutines.
type Codec struct {
	root    *Node
	codes   [int(MaxSymbol) + 1]Code
	known   [int(MaxSymbol) + 1]bool
	count   int
	minSize int
	maxSize int
}

// NewCodec builds a Codec from the symbol frequencies of text.  It returns an
// error wrapping ErrEmptyInput if text is empty.
func NewCodec(text string) (*Codec, error) {
	return NewCodecFromFrequencies(CountFrequencies(text))
}

// NewCodecFromFrequencies builds a Codec from an existing FrequencyTable.  It
// fails with the same errors as BuildTree.
func NewCodecFromFrequencies(freqs FrequencyTable) (*Codec, error) {
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	c := &Codec{root: root}
	for symbol, hc := range BuildCodeTable(root) {
		size := hc.Size()
		if c.count == 0 {
			c.minSize, c.maxSize = size, size
		} else if c.minSize > size {
			c.minSize = size
		} else if c.maxSize < size {
			c.maxSize = size
		}
		c.codes[symbol] = hc
		c.known[symbol] = true
		c.count++
	}
	return c, nil
}

// Root returns the root of the Huffman tree.
func (c *Codec) Root() *Node {
	return c.root
}

// Lookup returns the Code for symbol, if symbol is in the alphabet.
func (c *Codec) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !c.known[symbol] {
		return "", false
	}
	return c.codes[symbol], true
}

// Codes returns a copy of the code table.
func (c *Codec) Codes() CodeTable {
	table := make(CodeTable, c.count)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if c.known[symbol] {
			table[symbol] = c.codes[symbol]
		}
	}
	return table
}

// NumSymbols is the number of symbols in the alphabet.
func (c *Codec) NumSymbols() int {
	return c.count
}

// MinSize is the bit length of the shortest code.
func (c *Codec) MinSize() int {
	return c.minSize
}

// MaxSize is the bit length of the longest code.
func (c *Codec) MaxSize() int {
	return c.maxSize
}

// Encode returns the concatenated codes of every byte of text.  It returns an
// error wrapping ErrUnknownSymbol if text contains a byte outside the
// alphabet.
func (c *Codec) Encode(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) * c.minSize)
	for i := 0; i < len(text); i++ {
		symbol := Symbol(text[i])
		if !c.known[symbol] {
			return "", fmt.Errorf("%w: byte %q at offset %d", ErrUnknownSymbol, text[i], i)
		}
		sb.WriteString(string(c.codes[symbol]))
	}
	return sb.String(), nil
}

// Decode walks the tree one bit at a time, emitting a symbol each time it
// reaches a leaf.  It returns an error wrapping ErrMalformedEncoding if bits
// contains anything other than '0' and '1', or if it ends partway through a
// code.
func (c *Codec) Decode(bits string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(bits) / c.maxSize)

	if c.root.IsLeaf() {
		ch := c.root.symbol.Byte()
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", malformedBit(bits[i], i)
			}
			sb.WriteByte(ch)
		}
		return sb.String(), nil
	}

	node := c.root
	start := 0
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			node = node.left
		case '1':
			node = node.right
		default:
			return "", malformedBit(bits[i], i)
		}
		if node.IsLeaf() {
			sb.WriteByte(node.symbol.Byte())
			node = c.root
			start = i + 1
		}
	}
	if node != c.root {
		return "", fmt.Errorf("%w: incomplete code %s at bit %d", ErrMalformedEncoding, Code(bits[start:]), start)
	}
	return sb.String(), nil
}

func malformedBit(ch byte, index int) error {
	if ch == '1' {
		return fmt.Errorf("%w: bit '1' at bit %d does not begin any code", ErrMalformedEncoding, index)
	}
	return fmt.Errorf("%w: byte %q at bit %d is not a bit", ErrMalformedEncoding, ch, index)
}

// Dump writes a programmer-readable debugging dump of the Codec's current
// state to the given writer.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codec{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", c.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", c.maxSize)
	list := make(byCode, 0, c.count)
	for symbol, hc := range c.Codes() {
		list = append(list, symbolAndCode{symbol, hc})
	}
	sort.Sort(list)
	for _, item := range list {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", item.symbol.Byte(), item.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (c *Codec) DebugString() string {
	var sb strings.Builder
	_, _ = c.Dump(&sb)
	return sb.String()
}

// String returns a brief summary of the Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, with coded lengths of %d .. %d bits)", c.count, c.minSize, c.maxSize)
}

var _ fmt.Stringer = (*Codec)(nil)
