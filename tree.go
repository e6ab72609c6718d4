package statichuff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NoChild marks the child slots of a leaf Node.
const NoChild = -1

// Node is one node of a Tree.  A leaf holds a Symbol and has no children; an
// internal node has exactly two children and Symbol == InvalidSymbol.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   int32
	Right  int32
}

// IsLeaf returns true iff this node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoChild
}

// Tree is a Huffman tree stored as an arena of nodes addressed by index.
//
// The leaves occupy indexes [0, Leaves()) in ascending Symbol order.  Every
// merge appends one internal node, so the root is always the last node.
type Tree struct {
	nodes  []Node
	leaves int
}

// BuildTree constructs the Huffman tree for the given frequencies by
// repeatedly merging the two lowest-weight nodes.  Ties are broken by node
// index, i.e. leaves before internal nodes, lower symbols before higher ones,
// and older internal nodes before newer ones.  The first node popped becomes
// the left child and the second the right child.
//
// Returns ErrEmptyInput if no symbol has a non-zero frequency.
//
func BuildTree(frequencies FrequencyTable) (*Tree, error) {
	numLeaves := frequencies.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		nodes:  make([]Node, 0, 2*numLeaves-1),
		leaves: numLeaves,
	}
	h := nodeHeap{tree: t, list: make([]int32, 0, numLeaves)}
	for _, symbol := range frequencies.Symbols() {
		h.list = append(h.list, int32(len(t.nodes)))
		t.nodes = append(t.nodes, Node{
			Symbol: symbol,
			Weight: frequencies[symbol],
			Left:   NoChild,
			Right:  NoChild,
		})
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		// Compute weight using saturating addition
		wa, wb := t.nodes[a].Weight, t.nodes[b].Weight
		weight := wa + wb
		if weight < wa {
			weight = math.MaxUint64
		}

		next := int32(len(t.nodes))
		t.nodes = append(t.nodes, Node{
			Symbol: InvalidSymbol,
			Weight: weight,
			Left:   a,
			Right:  b,
		})
		heap.Push(&h, next)
	}

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes, expected %d", len(t.nodes), 2*numLeaves-1)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return int32(len(t.nodes) - 1)
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaf nodes in the tree.
func (t *Tree) Leaves() int {
	return t.leaves
}

// Internal returns the number of internal nodes in the tree.
func (t *Tree) Internal() int {
	return len(t.nodes) - t.leaves
}

// Node returns the node at the given index.
func (t *Tree) Node(index int32) Node {
	return t.nodes[index]
}

// IsLeaf returns true iff the node at the given index is a leaf.
func (t *Tree) IsLeaf(index int32) bool {
	return t.nodes[index].IsLeaf()
}

// Child returns the left child of an internal node if bit is 0, or its right
// child otherwise.
func (t *Tree) Child(index int32, bit uint) int32 {
	n := t.nodes[index]
	assert.Assertf(!n.IsLeaf(), "node %d is a leaf", index)
	if bit != 0 {
		return n.Right
	}
	return n.Left
}

// Walk visits every leaf in depth-first order, left before right, passing
// the leaf's Symbol and its path from the root.
//
// The walk uses an explicit stack, so its depth is not limited by the
// goroutine stack.  A tree consisting of a single leaf yields that leaf with
// the empty Code.
//
func (t *Tree) Walk(fn func(symbol Symbol, hc Code)) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		path  Code
		x     byte
	}

	root := t.Root()
	if t.IsLeaf(root) {
		fn(t.nodes[root].Symbol, Code{})
		return
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.leaves))+1)
	stack = append(stack, stackItem{index: root})

	processChild := func(child int32, path Code) {
		if n := t.nodes[child]; n.IsLeaf() {
			fn(n.Symbol, path)
			return
		}
		stack = append(stack, stackItem{index: child, path: path})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.index].Left, top.path.Append(0))
		case 1:
			processChild(t.nodes[top.index].Right, top.path.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, n := range t.nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%d: leaf %d weight %d\n", index, n.Symbol, n.Weight)
		} else {
			fmt.Fprintf(&buf, "\t%d: node %d+%d weight %d\n", index, n.Left, n.Right, n.Weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
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
	aw, bw := h.tree.nodes[a].Weight, h.tree.nodes[b].Weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
