package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NoChild is the child index stored in both children of a leaf Node.
const NoChild = -1

// Node is one node of a Tree.
//
// A leaf has Left == Right == NoChild and carries the character in Symbol.
// An internal node has Symbol == InvalidSymbol and two children, and its Freq
// is the sum of its children's Freq.
type Node struct {
	Symbol rune
	Freq   int
	Left   int
	Right  int
}

// IsLeaf returns true iff this node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoChild
}

// Tree is a Huffman tree.  Nodes live in a single slice and refer to their
// children by index; each node is the child of at most one other node.
//
// The leaves occupy indices [0, NumLeaves()), ordered by Symbol.  Internal
// nodes follow in the order they were created, so the root is always the last
// node.
type Tree struct {
	nodes     []Node
	numLeaves int
}

// Build constructs the Huffman tree for the given frequencies.
//
// Nodes are merged lowest frequency first.  Ties are broken so that the
// result is reproducible: leaves go before merged nodes, leaves go in order of
// their character, and merged nodes go in the order they were created.  Of
// each pair, the node removed first becomes the left child.
//
// A FrequencyMap with a single character yields a tree whose root is a leaf.
// An empty FrequencyMap yields ErrEmptyAlphabet.
//
func Build(freq FrequencyMap) (*Tree, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyAlphabet
	}

	symbols := freq.Symbols()
	numLeaves := len(symbols)
	nodes := make([]Node, 0, 2*numLeaves-1)
	items := make([]indexAndFreq, 0, numLeaves)

	for _, r := range symbols {
		n := freq[r]
		if n <= 0 {
			return nil, fmt.Errorf("count for %q is %d: %w", r, n, ErrInvalidFrequency)
		}
		items = append(items, indexAndFreq{len(nodes), n})
		nodes = append(nodes, Node{Symbol: r, Freq: n, Left: NoChild, Right: NoChild})
	}

	// Pop two, merge, push back, until only the root remains.  Exactly
	// numLeaves-1 merges happen.

	h := freqHeap{items}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndFreq)
		b := heap.Pop(&h).(indexAndFreq)

		freqSum := saturatingAdd(a.freq, b.freq)
		index := len(nodes)
		nodes = append(nodes, Node{Symbol: InvalidSymbol, Freq: freqSum, Left: a.index, Right: b.index})
		heap.Push(&h, indexAndFreq{index, freqSum})
	}

	root := heap.Pop(&h).(indexAndFreq)
	assert.Assertf(root.index == len(nodes)-1, "root index %d, expected %d", root.index, len(nodes)-1)
	assert.Assertf(len(nodes) == 2*numLeaves-1, "%d nodes for %d leaves", len(nodes), numLeaves)

	return &Tree{nodes: nodes, numLeaves: numLeaves}, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int {
	return len(t.nodes) - 1
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the size of the alphabet.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Node returns the node at the given index.
func (t *Tree) Node(index int) Node {
	return t.nodes[index]
}

// IsLeaf returns true iff the node at the given index is a leaf.
func (t *Tree) IsLeaf(index int) bool {
	return t.nodes[index].IsLeaf()
}

// Freq returns the frequency stored at the root, which is the length of the
// text the tree was built from.
func (t *Tree) Freq() int {
	return t.nodes[t.Root()].Freq
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf{%q, %d}\n", index, node.Symbol, node.Freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = Internal{%d, %d, %d}\n", index, node.Freq, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type indexAndFreq + type freqHeap {{{

type indexAndFreq struct {
	index int
	freq  int
}

type freqHeap struct {
	list []indexAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by frequency, then by node index.  Leaf indices are assigned in
// character order and always precede internal node indices.
func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
