package huffman

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

// referenceCost computes the optimal weighted path length for freqs by the
// classical "sum of merged weights" identity, without building a tree.
func referenceCost(freqs FrequencyTable) uint64 {
	list := make([]uint64, 0, len(freqs))
	for _, n := range freqs {
		list = append(list, n)
	}
	if len(list) == 1 {
		return list[0]
	}
	var cost uint64
	for len(list) > 1 {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		merged := list[0] + list[1]
		cost += merged
		list = append(list[2:], merged)
	}
	return cost
}

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(FrequencyTable{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %p", root)
	}

	_, err = BuildTree(FrequencyTable{'a': 0})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for all-zero table, got %v", err)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree(CountFrequencies("aaaa"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !root.IsLeaf() {
		t.Fatalf("expected leaf root")
	}
	if root.Symbol() != 'a' || root.Freq() != 4 {
		t.Errorf("expected leaf {'a', 4}, got {%d, %d}", root.Symbol(), root.Freq())
	}
	if wpl := root.WeightedPathLength(); wpl != 4 {
		t.Errorf("expected weighted path length 4, got %d", wpl)
	}
}

func TestBuildTree_Shape(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 2, 'b': 3, 'c': 2})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	if root.Freq() != 7 || root.Symbol() != InvalidSymbol {
		t.Errorf("expected internal root with frequency 7, got {%d, %d}", root.Symbol(), root.Freq())
	}
	if l := root.Left(); !l.IsLeaf() || l.Symbol() != 'b' {
		t.Errorf("expected root.Left() to be leaf 'b'")
	}
	r := root.Right()
	if r.IsLeaf() || r.Freq() != 4 {
		t.Fatalf("expected root.Right() to be internal with frequency 4")
	}
	if r.Left().Symbol() != 'a' || r.Right().Symbol() != 'c' {
		t.Errorf("expected children {'a', 'c'}, got {%d, %d}", r.Left().Symbol(), r.Right().Symbol())
	}
}

func TestBuildTree_InternalFrequencies(t *testing.T) {
	root, err := BuildTree(CountFrequencies("she sells sea shells by the sea shore"))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var check func(n *Node)
	check = func(n *Node) {
		if n.IsLeaf() {
			if n.Right() != nil {
				t.Errorf("leaf %d has a right child", n.Symbol())
			}
			return
		}
		if n.Left().Freq()+n.Right().Freq() != n.Freq() {
			t.Errorf("internal node frequency %d != %d + %d", n.Freq(), n.Left().Freq(), n.Right().Freq())
		}
		check(n.Left())
		check(n.Right())
	}
	check(root)
}

func TestBuildTree_Optimal(t *testing.T) {
	type testRow struct {
		name  string
		freqs FrequencyTable
	}

	testData := [...]testRow{
		{name: "two", freqs: FrequencyTable{'x': 1, 'y': 100}},
		{name: "aabbbcc", freqs: CountFrequencies("aabbbcc")},
		{name: "clrs", freqs: FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}},
		{name: "fibonacci", freqs: FrequencyTable{'a': 1, 'b': 1, 'c': 2, 'd': 3, 'e': 5, 'f': 8, 'g': 13, 'h': 21}},
		{name: "uniform", freqs: FrequencyTable{'a': 7, 'b': 7, 'c': 7, 'd': 7, 'e': 7}},
		{name: "pangram", freqs: CountFrequencies("The quick brown fox jumps over the lazy dog.")},
		{name: "repeats", freqs: CountFrequencies(strings.Repeat("abracadabra", 17))},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root, err := BuildTree(row.freqs)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			expect := referenceCost(row.freqs)
			actual := root.WeightedPathLength()
			if expect != actual {
				t.Errorf("expected weighted path length %d, got %d", expect, actual)
			}
		})
	}
}

func TestBuildTree_KnownCost(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if wpl := root.WeightedPathLength(); wpl != 224 {
		t.Errorf("expected weighted path length 224, got %d", wpl)
	}

	expectSizes := map[Symbol]int{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1}
	for symbol, hc := range BuildCodeTable(root) {
		if hc.Size() != expectSizes[symbol] {
			t.Errorf("symbol %q: expected size %d, got %d", byte(symbol), expectSizes[symbol], hc.Size())
		}
	}
}

func TestBuildCodeTable_PrefixFree(t *testing.T) {
	var all strings.Builder
	for i := 0; i < 256; i++ {
		all.WriteString(strings.Repeat(string([]byte{byte(i)}), 1+i%7))
	}

	texts := []string{
		"aabbbcc",
		"ABABABA,,,...",
		"Mississippi",
		all.String(),
	}
	for _, text := range texts {
		root, err := BuildTree(CountFrequencies(text))
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		table := BuildCodeTable(root)
		if !table.IsPrefixFree() {
			t.Errorf("code table for %q is not prefix-free: %v", text, table)
		}
		if len(table) != len(CountFrequencies(text)) {
			t.Errorf("expected %d codes, got %d", len(CountFrequencies(text)), len(table))
		}
	}
}

func TestBuildTree_InvalidSymbol(t *testing.T) {
	root, err := BuildTree(FrequencyTable{300: 1, 'a': 1})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %p", root)
	}

	if _, err := NewCodecFromFrequencies(FrequencyTable{InvalidSymbol: 2}); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
}

// bruteForceCost returns the minimum weighted path length over every full
// binary tree whose leaves are exactly the weights selected by mask.  Each
// tree is a split of the leaf set into two non-empty halves; every leaf
// below a split gains one level, so the split adds the weight of the whole
// set.
func bruteForceCost(weights []uint64, mask int) uint64 {
	if mask&(mask-1) == 0 {
		return 0
	}
	var sum uint64
	for i, w := range weights {
		if mask&(1<<i) != 0 {
			sum += w
		}
	}
	best := ^uint64(0)
	for left := (mask - 1) & mask; left != 0; left = (left - 1) & mask {
		right := mask &^ left
		if left < right {
			continue
		}
		cost := bruteForceCost(weights, left) + bruteForceCost(weights, right)
		if cost < best {
			best = cost
		}
	}
	return sum + best
}

func TestBuildTree_BruteForceOptimal(t *testing.T) {
	testData := []FrequencyTable{
		{'a': 1, 'b': 1, 'c': 1, 'd': 1},
		{'a': 1, 'b': 2, 'c': 4, 'd': 8},
		{'a': 3, 'b': 3, 'c': 2, 'd': 7, 'e': 1},
		{'a': 10, 'b': 1, 'c': 1, 'd': 1, 'e': 1},
		{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16},
	}
	for _, freqs := range testData {
		weights := make([]uint64, 0, len(freqs))
		for _, symbol := range freqs.Symbols() {
			weights = append(weights, freqs[symbol])
		}
		expect := bruteForceCost(weights, 1<<len(weights)-1)

		root, err := BuildTree(freqs)
		if err != nil {
			t.Fatalf("BuildTree failed: %v", err)
		}
		if actual := root.WeightedPathLength(); actual != expect {
			t.Errorf("%v: expected weighted path length %d, got %d", weights, expect, actual)
		}
	}
}
