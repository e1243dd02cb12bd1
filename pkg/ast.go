package shork

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Node is a single element of an AST arena: an id, the token that labels
// it, an optional parent id, and its ordered children ids. Node is mutated
// in place by the parser (re-parenting during precedence climbing) but
// never removed from its arena.
type Node struct {
	ID       int
	Tok      Token
	Parent   *int
	Children []int
}

// AST is a flat, append-only, id-addressed tree. Lookup by id sorts the
// backing storage and binary-searches it — a pure optimization that never
// renumbers ids, which are allocated by a single counter owned by the
// parser (see Parser.idOffset).
type AST struct {
	nodes []Node
}

// NewAST creates an empty arena.
func NewAST() *AST {
	return &AST{}
}

// Add appends a node to the arena.
func (a *AST) Add(n Node) {
	a.nodes = append(a.nodes, n)
}

// Get looks up a node by id. Failure means a parser or evaluator bug, not
// a problem with the source being processed.
func (a *AST) Get(id int) (*Node, error) {
	sort.Slice(a.nodes, func(i, j int) bool { return a.nodes[i].ID < a.nodes[j].ID })

	i := sort.Search(len(a.nodes), func(i int) bool { return a.nodes[i].ID >= id })
	if i >= len(a.nodes) || a.nodes[i].ID != id {
		return nil, fmt.Errorf("failed to find node %d in AST: this is an interpreter bug, not an error in your source code", id)
	}

	return &a.nodes[i], nil
}

// GetMut is Get, spelled out for call sites that intend to mutate the
// returned node in place (the arena already returns a pointer into its own
// storage, so Get and GetMut are the same operation in Go).
func (a *AST) GetMut(id int) (*Node, error) {
	return a.Get(id)
}

// Siblings returns the child list of n's parent, including n itself.
// Requesting siblings of a root node is an error.
func (a *AST) Siblings(n *Node) ([]int, error) {
	if n.Parent == nil {
		return nil, fmt.Errorf("requested siblings of a root node: this is an interpreter bug, not an error in your source code")
	}

	parent, err := a.Get(*n.Parent)
	if err != nil {
		return nil, err
	}

	return append([]int(nil), parent.Children...), nil
}

// Roots returns the ids of every node with no parent, in arena order.
func (a *AST) Roots() []int {
	var roots []int
	for _, n := range a.nodes {
		if n.Parent == nil {
			roots = append(roots, n.ID)
		}
	}

	return roots
}

// SetRootAll rewrites the parent of every current root to rootID. Used by
// the parser when an operator is promoted to dominate both its operands.
func (a *AST) SetRootAll(rootID int) {
	id := rootID
	for _, r := range a.Roots() {
		n, err := a.GetMut(r)
		if err != nil {
			// Roots() only ever returns ids that exist in this same arena.
			panic(err)
		}

		n.Parent = &id
	}
}

// CloneInto appends every node of a into dst. Ids are preserved; the
// parser guarantees disjoint id spaces across fragments via its shared
// counter, so this is a plain merge, never a renumbering.
func (a *AST) CloneInto(dst *AST) {
	dst.nodes = append(dst.nodes, a.nodes...)
}

// Print pretty-prints every root of the arena as an indented tree,
// coloring branch tokens blue and leaf tokens green unless NO_COLOR is
// set — the Go rendition of original_source's ptree-based AST.print.
func (a *AST) Print(w *strings.Builder) {
	_, noColor := os.LookupEnv("NO_COLOR")

	for _, r := range a.Roots() {
		a.printNode(w, r, 0, noColor)
	}
}

func (a *AST) printNode(w *strings.Builder, id int, depth int, noColor bool) {
	n, err := a.Get(id)
	if err != nil {
		return
	}

	label := fmt.Sprintf("%s %q", n.Tok.Typ, n.Tok.Text())
	if !noColor {
		if len(n.Children) == 0 {
			label = color.New(color.FgGreen, color.Bold).Sprint(label)
		} else {
			label = color.New(color.FgBlue, color.Faint).Sprint(label)
		}
	}

	w.WriteString(strings.Repeat("    ", depth))
	w.WriteString(label)
	w.WriteByte('\n')

	for _, c := range n.Children {
		a.printNode(w, c, depth+1, noColor)
	}
}
