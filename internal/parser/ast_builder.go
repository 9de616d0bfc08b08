package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// astBuilder converts a tree-sitter CST into the analyzer AST
type astBuilder struct {
	filename string
	source   []byte
}

func newASTBuilder(filename string, source []byte) *astBuilder {
	return &astBuilder{
		filename: filename,
		source:   source,
	}
}

// build creates the module root and collects all interesting constructs
func (b *astBuilder) build(root *sitter.Node) *Node {
	module := NewNode(NodeModule)
	module.Location = b.location(root)
	b.collect(root, module)
	return module
}

// collect attaches every interesting descendant of tsNode to parent,
// preserving document order. Constructs the checks ignore are skipped but
// still descended into, so nesting relationships stay intact.
func (b *astBuilder) collect(tsNode *sitter.Node, parent *Node) {
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		child := tsNode.NamedChild(i)
		if child == nil {
			continue
		}
		if node := b.convert(child); node != nil {
			parent.AddChild(node)
			b.collect(child, node)
		} else {
			b.collect(child, parent)
		}
	}
}

// convert maps a CST node to an AST node, or nil for uninteresting kinds
func (b *astBuilder) convert(tsNode *sitter.Node) *Node {
	switch tsNode.Type() {
	case "function_definition":
		return b.buildFunctionDef(tsNode)
	case "if_statement", "elif_clause":
		// elif clauses count as nested conditionals, matching the
		// nested-If shape of Python's own syntax tree
		return b.buildSimple(NodeIf, tsNode)
	case "for_statement":
		return b.buildSimple(NodeFor, tsNode)
	case "while_statement":
		return b.buildSimple(NodeWhile, tsNode)
	case "with_statement":
		return b.buildSimple(NodeWith, tsNode)
	}
	return nil
}

func (b *astBuilder) buildSimple(nodeType NodeType, tsNode *sitter.Node) *Node {
	node := NewNode(nodeType)
	node.Location = b.location(tsNode)
	return node
}

func (b *astBuilder) buildFunctionDef(tsNode *sitter.Node) *Node {
	node := NewNode(NodeFunctionDef)
	node.Location = b.location(tsNode)

	if nameNode := tsNode.ChildByFieldName("name"); nameNode != nil {
		node.Name = nameNode.Content(b.source)
	}
	if params := tsNode.ChildByFieldName("parameters"); params != nil {
		node.ParamCount = countParameters(params)
	}

	return node
}

// countParameters counts declared parameters, skipping comments and the
// bare positional/keyword separator markers ("/" and "*").
func countParameters(params *sitter.Node) int {
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "comment", "positional_separator", "keyword_separator":
			continue
		}
		count++
	}
	return count
}

// location converts tree-sitter points to 1-based source locations
func (b *astBuilder) location(tsNode *sitter.Node) Location {
	return Location{
		File:      b.filename,
		StartLine: int(tsNode.StartPoint().Row) + 1,
		StartCol:  int(tsNode.StartPoint().Column),
		EndLine:   int(tsNode.EndPoint().Row) + 1,
		EndCol:    int(tsNode.EndPoint().Column),
	}
}
