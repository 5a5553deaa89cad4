package huffman

import (
	"sort"
)

// FrequencyTable maps each Symbol that occurs in a text to its number of
// occurrences.
type FrequencyTable map[Symbol]uint64

// CountFrequencies scans text once and returns its FrequencyTable.  An empty
// text yields an empty (non-nil) table.
func CountFrequencies(text string) FrequencyTable {
	var counts [int(MaxSymbol) + 1]uint64
	for i := 0; i < len(text); i++ {
		counts[text[i]]++
	}

	freqs := make(FrequencyTable)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if n := counts[symbol]; n != 0 {
			freqs[symbol] = n
		}
	}
	return freqs
}

// Total returns the sum of all counts, i.e. the length of the text that
// produced this table.
func (freqs FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range freqs {
		total = addSaturating(total, n)
	}
	return total
}

// Symbols returns the symbols present in this table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
