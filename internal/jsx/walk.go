package jsx

// Path lists the ancestors of the node being visited, outermost first. It is
// only valid for the duration of the visitor call.
type Path []Node

// Parent returns the immediate parent, or nil at the root.
func (p Path) Parent() Node {
	return p.Ancestor(0)
}

// Ancestor returns the n-th ancestor (0 is the parent), or nil.
func (p Path) Ancestor(n int) Node {
	idx := len(p) - 1 - n
	if idx < 0 || idx >= len(p) {
		return nil
	}
	return p[idx]
}

// Visitor receives the node categories rules care about. The walker calls
// the method on entering a node, before any of its children. Attributes are
// reached through their JSXElement; their children are still walked.
type Visitor interface {
	ImportDeclaration(n *ImportDeclaration, path Path)
	VariableDeclarator(n *VariableDeclarator, path Path)
	CallExpression(n *CallExpression, path Path)
	JSXElement(n *JSXElement, path Path)
}

// BaseVisitor implements Visitor with no-op methods. Embed it to override
// only the callbacks a rule needs.
type BaseVisitor struct{}

func (BaseVisitor) ImportDeclaration(*ImportDeclaration, Path)   {}
func (BaseVisitor) VariableDeclarator(*VariableDeclarator, Path) {}
func (BaseVisitor) CallExpression(*CallExpression, Path)         {}
func (BaseVisitor) JSXElement(*JSXElement, Path)                 {}

// Multi fans every callback out to each visitor in order.
type Multi []Visitor

func (m Multi) ImportDeclaration(n *ImportDeclaration, path Path) {
	for _, v := range m {
		v.ImportDeclaration(n, path)
	}
}

func (m Multi) VariableDeclarator(n *VariableDeclarator, path Path) {
	for _, v := range m {
		v.VariableDeclarator(n, path)
	}
}

func (m Multi) CallExpression(n *CallExpression, path Path) {
	for _, v := range m {
		v.CallExpression(n, path)
	}
}

func (m Multi) JSXElement(n *JSXElement, path Path) {
	for _, v := range m {
		v.JSXElement(n, path)
	}
}

// Walk traverses root depth-first in document order.
func Walk(root Node, v Visitor) {
	w := walker{v: v}
	w.walk(root)
}

type walker struct {
	v    Visitor
	path Path
}

func (w *walker) walk(n Node) {
	if n == nil {
		return
	}

	switch n := n.(type) {
	case *ImportDeclaration:
		w.v.ImportDeclaration(n, w.path)
	case *VariableDeclarator:
		w.v.VariableDeclarator(n, w.path)
	case *CallExpression:
		w.v.CallExpression(n, w.path)
	case *JSXElement:
		w.v.JSXElement(n, w.path)
	}

	w.path = append(w.path, n)
	for _, child := range Children(n) {
		w.walk(child)
	}
	w.path = w.path[:len(w.path)-1]
}

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return n.Body
	case *ImportDeclaration:
		var out []Node
		if n.Source != nil {
			out = append(out, n.Source)
		}
		for _, spec := range n.Specifiers {
			if spec.Local != nil {
				out = append(out, spec.Local)
			}
		}
		return out
	case *VariableDeclarator:
		return compact(n.ID, n.Init)
	case *ObjectPattern:
		var out []Node
		for _, p := range n.Properties {
			out = append(out, compact(p.Value, p.Default)...)
		}
		return out
	case *CallExpression:
		return append(compact(n.Callee), n.Arguments...)
	case *JSXElement:
		out := make([]Node, 0, len(n.Attributes)+len(n.Children))
		out = append(out, n.Attributes...)
		return append(out, n.Children...)
	case *JSXAttribute:
		return compact(n.Value)
	case *JSXSpreadAttribute:
		return compact(n.Argument)
	case *JSXExpressionContainer:
		return compact(n.Expression)
	case *Other:
		return n.Children
	case *Identifier, *StringLiteral:
		return nil
	}
	return nil
}

func compact(nodes ...Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
