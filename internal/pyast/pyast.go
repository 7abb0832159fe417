// Package pyast wraps the Tree-Sitter Python grammar behind the small
// surface the extractors and analyzers need: function headers, per-function
// cyclomatic complexity, and self-recursion detection. Callers fall back
// to regex heuristics when the text does not parse as valid Python.
package pyast

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/quantalab/qce/internal/types"
)

// Source is a parsed Python source file. Close must be called to release
// the underlying tree.
type Source struct {
	tree    *tree_sitter.Tree
	content []byte
}

// Parse parses src with the Python grammar. ok is false when the text is
// not valid Python; callers should then fall back to regex extraction.
func Parse(src string) (*Source, bool) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	language := tree_sitter.NewLanguage(tree_sitter_python.Language())
	if err := parser.SetLanguage(language); err != nil {
		return nil, false
	}

	content := []byte(src)
	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, false
	}

	root := tree.RootNode()
	if root == nil || root.HasError() {
		tree.Close()
		return nil, false
	}

	return &Source{tree: tree, content: content}, true
}

// Close releases the parse tree.
func (s *Source) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

// Functions returns every function definition in the source, including
// methods and nested functions, with parameter names.
func (s *Source) Functions() []types.Function {
	var out []types.Function
	s.walk(s.tree.RootNode(), func(node *tree_sitter.Node) {
		if node.Kind() != "function_definition" {
			return
		}
		fn := types.Function{
			Line: int(node.StartPosition().Row) + 1,
		}
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			fn.Name = s.text(nameNode)
		}
		if params := node.ChildByFieldName("parameters"); params != nil {
			fn.Args = s.parameterNames(params)
		}
		if fn.Name != "" {
			out = append(out, fn)
		}
	})
	return out
}

// AverageComplexity computes cyclomatic complexity per function and
// integer-divides the total by the function count (minimum divisor 1).
// A source with no functions has base complexity 1.
func (s *Source) AverageComplexity() int {
	total := 0
	count := 0
	s.walk(s.tree.RootNode(), func(node *tree_sitter.Node) {
		if node.Kind() != "function_definition" {
			return
		}
		count++
		complexity := 1
		s.walkChildren(node, func(child *tree_sitter.Node) {
			switch child.Kind() {
			case "if_statement", "elif_clause",
				"for_statement", "while_statement",
				"except_clause", "boolean_operator",
				"conditional_expression":
				complexity++
			}
		})
		total += complexity
	})
	if count == 0 {
		return 1
	}
	return total / count
}

// HasRecursion reports whether any function calls itself by name
// anywhere within its own body.
func (s *Source) HasRecursion() bool {
	recursive := false
	s.walk(s.tree.RootNode(), func(node *tree_sitter.Node) {
		if recursive || node.Kind() != "function_definition" {
			return
		}
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return
		}
		name := s.text(nameNode)
		s.walkChildren(node, func(child *tree_sitter.Node) {
			if recursive || child.Kind() != "call" {
				return
			}
			callee := child.ChildByFieldName("function")
			if callee != nil && callee.Kind() == "identifier" && s.text(callee) == name {
				recursive = true
			}
		})
	})
	return recursive
}

func (s *Source) text(node *tree_sitter.Node) string {
	return string(s.content[node.StartByte():node.EndByte()])
}

// parameterNames extracts identifier names from a parameters node,
// unwrapping typed and defaulted forms.
func (s *Source) parameterNames(params *tree_sitter.Node) []string {
	var names []string
	for i := uint(0); i < params.ChildCount(); i++ {
		child := params.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier":
			names = append(names, s.text(child))
		case "typed_parameter", "default_parameter", "typed_default_parameter":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				names = append(names, s.text(nameNode))
			} else if first := child.Child(0); first != nil && first.Kind() == "identifier" {
				names = append(names, s.text(first))
			}
		}
	}
	return names
}

// walk visits node and every descendant in document order.
func (s *Source) walk(node *tree_sitter.Node, visit func(*tree_sitter.Node)) {
	if node == nil {
		return
	}
	visit(node)
	s.walkChildren(node, visit)
}

// walkChildren visits every descendant of node, excluding node itself.
func (s *Source) walkChildren(node *tree_sitter.Node, visit func(*tree_sitter.Node)) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		visit(child)
		s.walkChildren(child, visit)
	}
}
