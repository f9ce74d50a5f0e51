package jsx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, filename, code string) *Program {
	t.Helper()
	program, err := Parse(context.Background(), filename, []byte(code))
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

// collect gathers every node of type T in document order.
func collect[T Node](root Node) []T {
	var out []T
	var visit func(Node)
	visit = func(n Node) {
		if typed, ok := n.(T); ok {
			out = append(out, typed)
		}
		for _, child := range Children(n) {
			visit(child)
		}
	}
	visit(root)
	return out
}

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{filename: "a.js", want: true},
		{filename: "a.jsx", want: true},
		{filename: "a.mjs", want: true},
		{filename: "a.cjs", want: true},
		{filename: "a.ts", want: true},
		{filename: "a.tsx", want: true},
		{filename: "dir/Button.JSX", want: true},
		{filename: "a.css", want: false},
		{filename: "a.json", want: false},
		{filename: "Makefile", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Supported(tt.filename))
		})
	}
}

func TestParse_UnsupportedFile(t *testing.T) {
	_, err := Parse(context.Background(), "styles.css", []byte(".a {}"))
	require.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestParse_Imports(t *testing.T) {
	program := mustParse(t, "a.js", `
import React from 'react';
import * as ns from "./ns";
import { css, withStyles as ws } from '../themes/withStyles';
import './side-effect';
`)

	imports := collect[*ImportDeclaration](program)
	require.Len(t, imports, 4)

	type spec struct{ imported, local string }
	summarize := func(decl *ImportDeclaration) []spec {
		var out []spec
		for _, s := range decl.Specifiers {
			out = append(out, spec{imported: s.Imported, local: s.Local.Name})
		}
		return out
	}

	assert.Equal(t, "react", imports[0].Source.Value)
	assert.Equal(t, []spec{{imported: "default", local: "React"}}, summarize(imports[0]))

	assert.Equal(t, "./ns", imports[1].Source.Value)
	assert.Equal(t, []spec{{imported: "*", local: "ns"}}, summarize(imports[1]))

	assert.Equal(t, "../themes/withStyles", imports[2].Source.Value)
	assert.Equal(t, []spec{
		{imported: "css", local: "css"},
		{imported: "withStyles", local: "ws"},
	}, summarize(imports[2]))

	assert.Equal(t, "./side-effect", imports[3].Source.Value)
	assert.Empty(t, imports[3].Specifiers)
}

func TestParse_ObjectPattern(t *testing.T) {
	program := mustParse(t, "a.js", `const { css, css: bar, cx = other, 'quoted': q, [dyn]: d, ...rest } = require('withStyles');`)

	decls := collect[*VariableDeclarator](program)
	require.Len(t, decls, 1)

	pattern, ok := decls[0].ID.(*ObjectPattern)
	require.True(t, ok, "declarator id should be an object pattern, got %T", decls[0].ID)

	type prop struct {
		key, local string
		hasDefault bool
	}
	var got []prop
	for _, p := range pattern.Properties {
		local := ""
		if id, ok := p.Value.(*Identifier); ok {
			local = id.Name
		}
		got = append(got, prop{key: p.Key, local: local, hasDefault: p.Default != nil})
	}

	assert.Equal(t, []prop{
		{key: "css", local: "css"},
		{key: "css", local: "bar"},
		{key: "cx", local: "cx", hasDefault: true},
		{key: "quoted", local: "q"},
		{key: "", local: "d"},
		{key: "", local: ""},
	}, got)

	call, ok := decls[0].Init.(*CallExpression)
	require.True(t, ok)
	callee, ok := call.Callee.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "require", callee.Name)
	require.Len(t, call.Arguments, 1)
	lit, ok := call.Arguments[0].(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "withStyles", lit.Value)
}

func TestParse_JSXAttributes(t *testing.T) {
	code := `<div {...css(foo)} className="foo" style={{ color: 'red' }} disabled />`
	program := mustParse(t, "a.jsx", code)

	elements := collect[*JSXElement](program)
	require.Len(t, elements, 1)
	el := elements[0]
	assert.Equal(t, "div", el.Name)
	require.Len(t, el.Attributes, 4)

	spread, ok := el.Attributes[0].(*JSXSpreadAttribute)
	require.True(t, ok, "first attribute should be a spread, got %T", el.Attributes[0])
	call, ok := spread.Argument.(*CallExpression)
	require.True(t, ok)
	assert.Equal(t, "css(foo)", code[call.Span().Start:call.Span().End])

	className, ok := el.Attributes[1].(*JSXAttribute)
	require.True(t, ok)
	assert.Equal(t, "className", className.Name)
	value, ok := className.Value.(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "foo", value.Value)

	style, ok := el.Attributes[2].(*JSXAttribute)
	require.True(t, ok)
	assert.Equal(t, "style", style.Name)
	assert.IsType(t, &JSXExpressionContainer{}, style.Value)

	disabled, ok := el.Attributes[3].(*JSXAttribute)
	require.True(t, ok)
	assert.Equal(t, "disabled", disabled.Name)
	assert.Nil(t, disabled.Value)
}

func TestParse_JSXChildren(t *testing.T) {
	program := mustParse(t, "a.jsx", `<ul className="list"><li>{items.map(render)}</li><Item /></ul>`)

	elements := collect[*JSXElement](program)
	require.Len(t, elements, 3)
	assert.Equal(t, "ul", elements[0].Name)
	assert.Equal(t, "li", elements[1].Name)
	assert.Equal(t, "Item", elements[2].Name)

	// The closing tag is not a child; only the two nested elements are.
	var nested []string
	for _, child := range elements[0].Children {
		if el, ok := child.(*JSXElement); ok {
			nested = append(nested, el.Name)
		}
	}
	assert.Equal(t, []string{"li", "Item"}, nested)

	calls := collect[*CallExpression](program)
	require.Len(t, calls, 1)
}

func TestParse_ParenthesisedSpreadArgument(t *testing.T) {
	program := mustParse(t, "a.jsx", `<div {...(css(foo))} />`)

	spreads := collect[*JSXSpreadAttribute](program)
	require.Len(t, spreads, 1)

	other, ok := spreads[0].Argument.(*Other)
	require.True(t, ok, "parenthesised argument should stay wrapped, got %T", spreads[0].Argument)
	assert.Equal(t, "parenthesized_expression", other.Kind)
}

func TestParse_TypeScript(t *testing.T) {
	program := mustParse(t, "a.tsx", `
import { css } from 'withStyles';
type Props = { label: string };
export const Button = ({ label }: Props): JSX.Element => <button {...css(s.button)}>{label}</button>;
`)

	elements := collect[*JSXElement](program)
	require.Len(t, elements, 1)
	assert.Equal(t, "button", elements[0].Name)
	require.Len(t, collect[*JSXSpreadAttribute](program), 1)

	program = mustParse(t, "a.ts", `import { css } from 'withStyles'; const x: number = css(a);`)
	require.Len(t, collect[*ImportDeclaration](program), 1)
	require.Len(t, collect[*CallExpression](program), 1)
}

func TestParse_RecoversFromSyntaxErrors(t *testing.T) {
	program := mustParse(t, "a.jsx", `
import { css } from 'withStyles';
<div {...css(foo)} className="foo" />;
const = ;
`)

	require.Len(t, collect[*ImportDeclaration](program), 1)
	assert.NotEmpty(t, collect[*JSXElement](program))
}

func TestParse_CommentsDropped(t *testing.T) {
	program := mustParse(t, "a.js", "// leading\nfoo(/* inline */ a);\n")

	for _, n := range collect[*Other](program) {
		assert.NotEqual(t, "comment", n.Kind)
	}
	calls := collect[*CallExpression](program)
	require.Len(t, calls, 1)
	assert.Len(t, calls[0].Arguments, 1)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: `'withStyles'`, want: "withStyles"},
		{in: `"withStyles"`, want: "withStyles"},
		{in: "`withStyles`", want: "withStyles"},
		{in: `'a\'b'`, want: `a\'b`},
		{in: `'mismatched"`, want: `'mismatched"`},
		{in: `'`, want: `'`},
		{in: ``, want: ``},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, unquote(tt.in))
		})
	}
}
