package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Assign walks the tree and returns the code word of every leaf: the path
// from the root, with '0' for each step to a left child and '1' for each step
// to a right child.
//
// If the root is itself a leaf, its character gets the code word "1" rather
// than the empty string.
//
func Assign(t *Tree) CodeMap {
	assert.Assertf(t != nil && t.Len() != 0, "Assign called on an empty *Tree")

	codes := make(CodeMap, t.NumLeaves())
	root := t.Root()
	if t.IsLeaf(root) {
		codes[t.Node(root).Symbol] = singletonCode
		return codes
	}

	// Walk the tree with an explicit stack, so that a badly skewed tree
	// cannot exhaust the goroutine stack.  Only internal nodes are pushed.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path always holds the code word of the node on top of the stack.

	type stackItem struct {
		index int
		x     byte
	}

	stack := make([]stackItem, 0, t.NumLeaves())
	path := make([]byte, 0, t.NumLeaves())

	stackPush := func(index int) {
		stack = append(stack, stackItem{index: index, x: 0})
	}

	stackPop := func() {
		stack = stack[:len(stack)-1]
		if len(path) != 0 {
			path = path[:len(path)-1]
		}
	}

	processChild := func(child int, bit byte) {
		path = append(path, bit)
		node := t.Node(child)
		if !node.IsLeaf() {
			stackPush(child)
			return
		}
		codes[node.Symbol] = string(path)
		path = path[:len(path)-1]
	}

	// And now the tree-walking loop.
	stackPush(root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := t.Node(top.index)
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(node.Left, Zero)
		case 1:
			processChild(node.Right, One)
		case 2:
			stackPop()
		}
	}

	assert.Assertf(len(codes) == t.NumLeaves(), "assigned %d code words for %d leaves", len(codes), t.NumLeaves())
	return codes
}
