package jsx

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// converter turns a tree-sitter tree into the package's node model.
type converter struct {
	src []byte
}

func (c *converter) span(n sitter.Node) node {
	return node{span: Span{Start: int(n.StartByte()), End: int(n.EndByte())}}
}

func (c *converter) text(n sitter.Node) string {
	start, end := int(n.StartByte()), int(n.EndByte())
	if start < 0 || end > len(c.src) || start > end {
		return ""
	}
	return string(c.src[start:end])
}

// namedChildren returns the named children of n, dropping comments.
func namedChildren(n sitter.Node) []sitter.Node {
	var out []sitter.Node
	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

func field(n sitter.Node, name string) (sitter.Node, bool) {
	child := n.ChildByFieldName(name)
	if child.IsNull() {
		return child, false
	}
	return child, true
}

func (c *converter) program(root sitter.Node) *Program {
	return &Program{node: c.span(root), Body: c.list(namedChildren(root))}
}

func (c *converter) list(nodes []sitter.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if converted := c.convert(n); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

// optional converts the named field of n, returning an untyped nil when the
// field is absent.
func (c *converter) optional(n sitter.Node, name string) Node {
	child, ok := field(n, name)
	if !ok {
		return nil
	}
	return c.convert(child)
}

func (c *converter) convert(n sitter.Node) Node {
	switch n.Type() {
	case "import_statement":
		return c.importDeclaration(n)
	case "variable_declarator":
		return c.variableDeclarator(n)
	case "object_pattern":
		return c.objectPattern(n)
	case "call_expression":
		return c.callExpression(n)
	case "identifier":
		return &Identifier{node: c.span(n), Name: c.text(n)}
	case "string":
		return c.stringLiteral(n)
	case "jsx_element", "jsx_self_closing_element":
		return c.jsxElement(n)
	case "jsx_attribute":
		return c.jsxAttribute(n)
	case "jsx_expression":
		return c.jsxExpression(n)
	case "comment":
		return nil
	}
	return &Other{node: c.span(n), Kind: n.Type(), Children: c.list(namedChildren(n))}
}

func (c *converter) stringLiteral(n sitter.Node) *StringLiteral {
	return &StringLiteral{node: c.span(n), Value: unquote(c.text(n))}
}

// unquote strips one pair of matching quotes. Escape sequences are kept
// verbatim.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func (c *converter) importDeclaration(n sitter.Node) *ImportDeclaration {
	decl := &ImportDeclaration{node: c.span(n)}

	if source, ok := field(n, "source"); ok {
		decl.Source = c.stringLiteral(source)
	}

	for _, child := range namedChildren(n) {
		if child.Type() == "import_clause" {
			decl.Specifiers = c.importClause(child)
		}
	}

	return decl
}

func (c *converter) importClause(n sitter.Node) []ImportSpecifier {
	var specs []ImportSpecifier

	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "identifier":
			specs = append(specs, ImportSpecifier{
				Imported: "default",
				Local:    &Identifier{node: c.span(child), Name: c.text(child)},
			})
		case "namespace_import":
			for _, id := range namedChildren(child) {
				if id.Type() == "identifier" {
					specs = append(specs, ImportSpecifier{
						Imported: "*",
						Local:    &Identifier{node: c.span(id), Name: c.text(id)},
					})
				}
			}
		case "named_imports":
			for _, spec := range namedChildren(child) {
				if spec.Type() != "import_specifier" {
					continue
				}
				if s, ok := c.importSpecifier(spec); ok {
					specs = append(specs, s)
				}
			}
		}
	}

	return specs
}

// importSpecifier handles `name`, `name as alias` and `"name" as alias`.
func (c *converter) importSpecifier(n sitter.Node) (ImportSpecifier, bool) {
	name, ok := field(n, "name")
	if !ok {
		return ImportSpecifier{}, false
	}

	imported := c.text(name)
	if name.Type() == "string" {
		imported = unquote(imported)
	}

	local := name
	if alias, ok := field(n, "alias"); ok {
		local = alias
	} else if name.Type() != "identifier" {
		return ImportSpecifier{}, false
	}

	return ImportSpecifier{
		Imported: imported,
		Local:    &Identifier{node: c.span(local), Name: c.text(local)},
	}, true
}

func (c *converter) variableDeclarator(n sitter.Node) *VariableDeclarator {
	return &VariableDeclarator{
		node: c.span(n),
		ID:   c.optional(n, "name"),
		Init: c.optional(n, "value"),
	}
}

func (c *converter) objectPattern(n sitter.Node) *ObjectPattern {
	pattern := &ObjectPattern{node: c.span(n)}

	for _, child := range namedChildren(n) {
		switch child.Type() {
		case "shorthand_property_identifier_pattern":
			pattern.Properties = append(pattern.Properties, PatternProperty{
				Key:   c.text(child),
				Value: &Identifier{node: c.span(child), Name: c.text(child)},
			})
		case "pair_pattern":
			pattern.Properties = append(pattern.Properties, c.pairPattern(child))
		case "object_assignment_pattern":
			pattern.Properties = append(pattern.Properties, c.assignmentProperty(child))
		default:
			// rest_pattern and anything else: keep it walkable.
			pattern.Properties = append(pattern.Properties, PatternProperty{Value: c.convert(child)})
		}
	}

	return pattern
}

// pairPattern handles `key: value` and `key: value = default`.
func (c *converter) pairPattern(n sitter.Node) PatternProperty {
	var prop PatternProperty

	if key, ok := field(n, "key"); ok {
		switch key.Type() {
		case "property_identifier":
			prop.Key = c.text(key)
		case "string":
			prop.Key = unquote(c.text(key))
		}
	}

	value, ok := field(n, "value")
	if !ok {
		return prop
	}

	if value.Type() == "assignment_pattern" {
		prop.Value = c.optional(value, "left")
		prop.Default = c.optional(value, "right")
		return prop
	}

	prop.Value = c.convert(value)

	return prop
}

// assignmentProperty handles the shorthand-with-default form `{ key = default }`.
func (c *converter) assignmentProperty(n sitter.Node) PatternProperty {
	var prop PatternProperty

	if left, ok := field(n, "left"); ok {
		if left.Type() == "shorthand_property_identifier_pattern" {
			prop.Key = c.text(left)
			prop.Value = &Identifier{node: c.span(left), Name: c.text(left)}
		} else {
			prop.Value = c.convert(left)
		}
	}
	prop.Default = c.optional(n, "right")

	return prop
}

func (c *converter) callExpression(n sitter.Node) *CallExpression {
	call := &CallExpression{node: c.span(n), Callee: c.optional(n, "function")}

	if args, ok := field(n, "arguments"); ok {
		if args.Type() == "arguments" {
			call.Arguments = c.list(namedChildren(args))
		} else {
			// Tagged templates: css`...` has a single template argument.
			call.Arguments = c.list([]sitter.Node{args})
		}
	}

	return call
}

func isAttributeKind(kind string) bool {
	return kind == "jsx_attribute" || kind == "jsx_expression"
}

func (c *converter) jsxElement(n sitter.Node) *JSXElement {
	el := &JSXElement{node: c.span(n)}

	opening := n
	if n.Type() == "jsx_element" {
		open, ok := field(n, "open_tag")
		if !ok {
			return el
		}
		opening = open
	}

	if name, ok := field(opening, "name"); ok {
		el.Name = c.text(name)
	}

	for _, child := range namedChildren(opening) {
		if !isAttributeKind(child.Type()) {
			continue
		}
		if attr := c.jsxAttributeOrSpread(child); attr != nil {
			el.Attributes = append(el.Attributes, attr)
		}
	}

	if n.Type() == "jsx_element" {
		for _, child := range namedChildren(n) {
			switch child.Type() {
			case "jsx_opening_element", "jsx_closing_element":
				continue
			}
			if converted := c.convert(child); converted != nil {
				el.Children = append(el.Children, converted)
			}
		}
	}

	return el
}

// jsxAttributeOrSpread converts one entry of an opening tag's attribute list.
func (c *converter) jsxAttributeOrSpread(n sitter.Node) Node {
	if n.Type() == "jsx_attribute" {
		return c.jsxAttribute(n)
	}

	inner := namedChildren(n)
	if len(inner) == 1 && inner[0].Type() == "spread_element" {
		spread := &JSXSpreadAttribute{node: c.span(n)}
		if arg := namedChildren(inner[0]); len(arg) > 0 {
			spread.Argument = c.convert(arg[0])
		}
		return spread
	}

	return c.jsxExpression(n)
}

func (c *converter) jsxAttribute(n sitter.Node) *JSXAttribute {
	attr := &JSXAttribute{node: c.span(n)}

	children := namedChildren(n)
	if len(children) == 0 {
		return attr
	}

	attr.Name = c.text(children[0])
	if len(children) > 1 {
		attr.Value = c.convert(children[1])
	}

	return attr
}

func (c *converter) jsxExpression(n sitter.Node) *JSXExpressionContainer {
	container := &JSXExpressionContainer{node: c.span(n)}
	if inner := namedChildren(n); len(inner) > 0 {
		container.Expression = c.convert(inner[0])
	}
	return container
}
