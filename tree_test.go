package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyMap {
	return FrequencyMap{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
}

func TestBuild(t *testing.T) {
	tree, err := Build(makeTestFrequencies())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\tNode(0) = Leaf{'a', 5}\n",
		"\tNode(1) = Leaf{'b', 9}\n",
		"\tNode(2) = Leaf{'c', 12}\n",
		"\tNode(3) = Leaf{'d', 13}\n",
		"\tNode(4) = Leaf{'e', 16}\n",
		"\tNode(5) = Leaf{'f', 45}\n",
		"\tNode(6) = Internal{14, 0, 1}\n",
		"\tNode(7) = Internal{25, 2, 3}\n",
		"\tNode(8) = Internal{30, 6, 4}\n",
		"\tNode(9) = Internal{55, 7, 8}\n",
		"\tNode(10) = Internal{100, 5, 9}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if tree.Freq() != 100 {
		t.Errorf("wrong root frequency: expected 100, got %d", tree.Freq())
	}
	if tree.NumLeaves() != 6 || tree.Len() != 11 {
		t.Errorf("wrong shape: expected 6 leaves of 11 nodes, got %d of %d", tree.NumLeaves(), tree.Len())
	}
}

func TestBuild_Full(t *testing.T) {
	tree, err := Build(Count("it was the best of times, it was the worst of times"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	seen := make(map[int]bool, tree.Len())
	for index := 0; index < tree.Len(); index++ {
		node := tree.Node(index)
		if node.IsLeaf() {
			if node.Right != NoChild {
				t.Errorf("leaf %d has a right child", index)
			}
			continue
		}
		if node.Left == NoChild || node.Right == NoChild {
			t.Errorf("internal node %d lacks a child", index)
			continue
		}
		for _, child := range []int{node.Left, node.Right} {
			if seen[child] {
				t.Errorf("node %d has two parents", child)
			}
			seen[child] = true
		}
		if sum := tree.Node(node.Left).Freq + tree.Node(node.Right).Freq; sum != node.Freq {
			t.Errorf("node %d: frequency %d, children sum to %d", index, node.Freq, sum)
		}
	}
	if seen[tree.Root()] {
		t.Errorf("root has a parent")
	}
	if len(seen) != tree.Len()-1 {
		t.Errorf("expected %d children, got %d", tree.Len()-1, len(seen))
	}
}

func TestBuild_Ties(t *testing.T) {
	// All counts equal: leaves pair up in character order.
	freq := FrequencyMap{'d': 1, 'c': 1, 'b': 1, 'a': 1}
	for i := 0; i < 10; i++ {
		tree, err := Build(freq)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		codes := Assign(tree)
		expect := CodeMap{'a': "00", 'b': "01", 'c': "10", 'd': "11"}
		if codes.String() != expect.String() {
			t.Fatalf("wrong codes:\n\texpect: %s\n\tactual: %s", expect, codes)
		}
	}
}

func TestBuild_SingleSymbol(t *testing.T) {
	tree, err := Build(FrequencyMap{'a': 4})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tree.Len() != 1 || !tree.IsLeaf(tree.Root()) {
		t.Errorf("expected a lone leaf, got %d nodes", tree.Len())
	}
	if node := tree.Node(tree.Root()); node.Symbol != 'a' || node.Freq != 4 {
		t.Errorf("wrong root: %+v", node)
	}
}

func TestBuild_Empty(t *testing.T) {
	tree, err := Build(Count(""))
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected nil tree, got %v", tree)
	}
}

func TestBuild_InvalidFrequency(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := Build(FrequencyMap{'a': 2, 'b': n})
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("count %d: expected ErrInvalidFrequency, got %v", n, err)
		}
	}
}
