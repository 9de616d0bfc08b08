package parser

import "fmt"

// NodeType represents the kind of AST node the analyzer cares about
type NodeType string

const (
	// NodeModule is the root of a parsed file
	NodeModule NodeType = "Module"

	// NodeFunctionDef is a function definition (def or async def)
	NodeFunctionDef NodeType = "FunctionDef"

	// Control flow and scoped-resource constructs
	NodeIf    NodeType = "If"
	NodeFor   NodeType = "For"
	NodeWhile NodeType = "While"
	NodeWith  NodeType = "With"
)

// Location represents the position of a node in the source code
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node represents an AST node. The tree only materializes the constructs the
// checks inspect; children are the nearest interesting descendants in
// document order, so ancestor relationships survive the compression.
type Node struct {
	Type     NodeType
	Location Location
	Children []*Node
	Parent   *Node

	// Name is the function name for FunctionDef nodes
	Name string

	// ParamCount is the declared parameter count for FunctionDef nodes
	ParamCount int
}

// NewNode creates a new AST node
func NewNode(nodeType NodeType) *Node {
	return &Node{Type: nodeType}
}

// AddChild adds a child node
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Walk traverses the AST depth-first in document order and calls the visitor
// for each node. If the visitor returns false, traversal of that branch stops.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visitor)
	}
}

// String returns a string representation of the node
func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s) at %s", n.Type, n.Name, n.Location)
	}
	return fmt.Sprintf("%s at %s", n.Type, n.Location)
}

// IsFunction returns true if the node is a function definition
func (n *Node) IsFunction() bool {
	return n.Type == NodeFunctionDef
}

// IsControlFlow returns true for the constructs that trigger nesting checks
func (n *Node) IsControlFlow() bool {
	switch n.Type {
	case NodeIf, NodeFor, NodeWhile:
		return true
	}
	return false
}

// AddsNesting returns true for constructs that contribute to nesting depth.
// With-blocks deepen nesting but never trigger a check themselves.
func (n *Node) AddsNesting() bool {
	switch n.Type {
	case NodeIf, NodeFor, NodeWhile, NodeWith:
		return true
	}
	return false
}
