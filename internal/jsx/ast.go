// Package jsx models the part of a JavaScript/JSX syntax tree that spreadcss
// rules consume.
//
// The model is a closed set of node types. Syntax the rules do not inspect is
// kept as Other so that traversal still reaches calls and elements nested
// inside it (function bodies, conditionals, arrays, and so on).
package jsx

// Span is a half-open byte range [Start, End) into the source file.
type Span struct {
	Start int
	End   int
}

// Node is implemented by every syntax node. The set of implementations is
// sealed: only this package can add variants.
type Node interface {
	Span() Span
	isNode()
}

type node struct {
	span Span
}

func (n node) Span() Span { return n.span }

func (node) isNode() {}

// Program is the root of a parsed file.
type Program struct {
	node
	Body []Node
}

// ImportDeclaration is a static `import ... from 'source'` statement.
type ImportDeclaration struct {
	node
	Source     *StringLiteral
	Specifiers []ImportSpecifier
}

// ImportSpecifier binds Local to the export named Imported. Default imports
// use Imported "default", namespace imports use "*".
type ImportSpecifier struct {
	Imported string
	Local    *Identifier
}

// VariableDeclarator is one `id = init` entry of a var/let/const statement.
type VariableDeclarator struct {
	node
	ID   Node
	Init Node // nil when there is no initializer
}

// ObjectPattern is a destructuring pattern such as `{ css, foo: bar }`.
type ObjectPattern struct {
	node
	Properties []PatternProperty
}

// PatternProperty is one entry of an ObjectPattern.
type PatternProperty struct {
	// Key is the property name, or "" for computed keys.
	Key string
	// Value is the binding target: an *Identifier for plain bindings, a
	// nested pattern otherwise.
	Value Node
	// Default is the `= expr` default value, if any.
	Default Node
}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	node
	Callee    Node
	Arguments []Node
}

// Identifier is a bare name reference or binding.
type Identifier struct {
	node
	Name string
}

// StringLiteral holds the text between the quotes of a string literal.
type StringLiteral struct {
	node
	Value string
}

// JSXElement is a markup element. Attributes holds *JSXAttribute and
// *JSXSpreadAttribute nodes in source order.
type JSXElement struct {
	node
	Name       string
	Attributes []Node
	Children   []Node
}

// JSXAttribute is a named attribute such as `className="foo"`.
type JSXAttribute struct {
	node
	Name  string
	Value Node // nil for valueless attributes like `disabled`
}

// JSXSpreadAttribute is `{...argument}` in an element's attribute list.
type JSXSpreadAttribute struct {
	node
	Argument Node
}

// JSXExpressionContainer is `{expression}` used as an attribute value or
// element child.
type JSXExpressionContainer struct {
	node
	Expression Node // nil for `{}`
}

// Other is any syntax not modelled above. Kind is the parser's node kind.
type Other struct {
	node
	Kind     string
	Children []Node
}
