package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf owns a Symbol; an internal node
// owns exactly two children and carries InvalidSymbol.  Nodes are immutable
// once BuildTree returns.
type Node struct {
	symbol Symbol
	freq   uint64
	seq    int
	left   *Node
	right  *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the leaf's symbol, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Freq returns the node's weight: the leaf's count, or the sum of the
// children's weights.
func (n *Node) Freq() uint64 {
	return n.freq
}

// Left returns the "0" child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the "1" child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// WeightedPathLength returns the sum of freq × depth over all leaves, which is
// the length in bits of the encoding of the text this tree was built from.  A
// lone leaf root counts as depth 1, matching its one-bit code.
func (n *Node) WeightedPathLength() uint64 {
	if n.IsLeaf() {
		return n.freq
	}
	var total uint64
	walkTree(n, func(leaf *Node, depth int) {
		total = addSaturating(total, leaf.freq*uint64(depth))
	})
	return total
}

// BuildTree builds a Huffman tree from a FrequencyTable and returns its root.
// Symbols with a count of 0 are ignored.  It returns an error wrapping
// ErrInvalidSymbol if the table has a key outside 0 .. MaxSymbol, or
// ErrEmptyInput if no symbol has a non-zero count.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	h := nodeHeap{list: make([]*Node, 0, len(freqs))}
	for _, symbol := range freqs.Symbols() {
		if !symbol.IsValid() {
			return nil, fmt.Errorf("%w: symbol %d outside alphabet 0 .. %d", ErrInvalidSymbol, symbol, MaxSymbol)
		}
		if freq := freqs[symbol]; freq != 0 {
			h.list = append(h.list, &Node{symbol: symbol, freq: freq})
		}
	}
	if len(h.list) == 0 {
		return nil, fmt.Errorf("%w: cannot build a tree from zero symbols", ErrEmptyInput)
	}
	h.Init()

	// Pop two nodes, combine them into a new internal node, and push the
	// internal node back.  Internal nodes are numbered in creation order
	// so that ties between them are broken consistently.
	nextSeq := 0
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			symbol: InvalidSymbol,
			freq:   addSaturating(a.freq, b.freq),
			seq:    nextSeq,
			left:   a,
			right:  b,
		})
		nextSeq++
	}

	return heap.Pop(&h).(*Node), nil
}

// BuildCodeTable derives the CodeTable for a tree: the path to each leaf,
// with "0" for left and "1" for right.  A lone leaf root is assigned "0".
func BuildCodeTable(root *Node) CodeTable {
	assert.Assertf(root != nil, "BuildCodeTable called with nil root")

	if root.IsLeaf() {
		return CodeTable{root.symbol: "0"}
	}

	table := make(CodeTable)
	walkTreeCodes(root, func(leaf *Node, code Code) {
		table[leaf.symbol] = code
	})
	return table
}

// walkTreeCodes visits every leaf below root in left-to-right order.  The
// stack holds at most one pending right sibling per level, plus one.
func walkTreeCodes(root *Node, fn func(leaf *Node, code Code)) {
	type stackItem struct {
		node *Node
		code Code
	}

	stack := make([]stackItem, 0, 2*log2int(int(MaxSymbol)+1))
	stack = append(stack, stackItem{root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			fn(top.node, top.code)
			continue
		}

		assert.Assertf(top.node.right != nil, "internal node %p has a left child but no right child", top.node)

		// Push right first, so that left is visited first.
		stack = append(stack, stackItem{top.node.right, top.code.Append(true)})
		stack = append(stack, stackItem{top.node.left, top.code.Append(false)})
	}
}

func walkTree(root *Node, fn func(leaf *Node, depth int)) {
	walkTreeCodes(root, func(leaf *Node, code Code) {
		fn(leaf, code.Size())
	})
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
	if aLeaf != bLeaf {
		return aLeaf
	}
	if aLeaf {
		return a.symbol < b.symbol
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
