// Package ast holds the tree nodes a compilation unit owns between phases.
// Nodes are identity-carrying records addressed by NodeID inside the unit's
// arena; this package defines storage only — producing trees is the
// parser's job, rewriting them the type checker's.
package ast

import "lyra/internal/source"

// NodeKind classifies a tree node.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeFile             // root of a parsed source file
	NodeIdent
	NodeLiteral
	NodeXMLLiteral
	NodeDef       // a named definition (class, object, method, val)
	NodeSynthetic // compiler-generated subtree awaiting splice-in
	NodeTyped     // node already carrying a resolved type
)

func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeIdent:
		return "ident"
	case NodeLiteral:
		return "literal"
	case NodeXMLLiteral:
		return "xml-literal"
	case NodeDef:
		return "def"
	case NodeSynthetic:
		return "synthetic"
	case NodeTyped:
		return "typed"
	default:
		return "invalid"
	}
}

// Node is one tree record. Name is empty for anonymous nodes; Kids are
// arena ids in source order.
type Node struct {
	Kind NodeKind
	Span source.Span
	Name string
	Kids []NodeID
}

// Tree is an arena of nodes owned by a single compilation unit.
type Tree struct {
	nodes *Arena[Node]
	root  NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: NewArena[Node](32)}
}

// Add allocates a node and returns its id.
func (t *Tree) Add(n Node) NodeID {
	return NodeID(t.nodes.Allocate(n))
}

// Get returns the node for id, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// SetRoot replaces the root node id. Later phases re-point it when they
// rewrite the whole file.
func (t *Tree) SetRoot(id NodeID) {
	t.root = id
}

// Root returns the current root id; NoNodeID before parsing populated it.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}
