package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the ASCII characters '0'
// and '1'.  The first character is the first bit.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix returns true iff other is a prefix of this Code.
func (hc Code) HasPrefix(other Code) bool {
	return strings.HasPrefix(string(hc), string(other))
}

// Append returns a new Code with one bit appended.
func (hc Code) Append(bit bool) Code {
	if bit {
		return hc + "1"
	}
	return hc + "0"
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each Symbol in a codec's alphabet to its Code.
type CodeTable map[Symbol]Code

// IsPrefixFree returns true iff no Code in the table is a prefix of another.
func (table CodeTable) IsPrefixFree() bool {
	for a, ca := range table {
		for b, cb := range table {
			if a != b && ca.HasPrefix(cb) {
				return false
			}
		}
	}
	return true
}

// type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// }}}
