package rule

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/spreadcss/internal/jsx"
)

type wantDiag struct {
	message string
	node    string
}

func conflict(attr, alias string) wantDiag {
	return wantDiag{message: ConflictMessage(attr, alias), node: "*jsx.JSXAttribute"}
}

var placement = wantDiag{message: PlacementMessage, node: "*jsx.CallExpression"}

func checkSource(t *testing.T, filename, code string) []Diagnostic {
	t.Helper()
	program, err := jsx.Parse(context.Background(), filename, []byte(code))
	require.NoError(t, err)
	return Check(program, []Rule{OnlySpreadCSS{}})
}

func summarize(diags []Diagnostic) []wantDiag {
	out := make([]wantDiag, 0, len(diags))
	for _, d := range diags {
		out = append(out, wantDiag{message: d.Message, node: fmt.Sprintf("%T", d.Node)})
	}
	return out
}

func trim(code string) string {
	lines := strings.Split(strings.TrimSpace(code), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func TestOnlySpreadCSS_Valid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{
			name: "plain className",
			code: `<div className="foo" />`,
		},
		{
			name: "spread alone",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo)} />
			`,
		},
		{
			name: "spread next to another object spread",
			code: `
				import { css } from 'withStyles';
				const bar = { baz: true };
				<div {...css(foo)} {...bar} />
			`,
		},
		{
			name: "spread next to an untracked call spread",
			code: `
				import { css } from 'withStyles';
				import { bar } from 'somethingElse';
				<div {...css(foo)} {...bar()} />
			`,
		},
		{
			name: "import from another module with className",
			code: `
				import { css } from 'somethingElse';
				<div {...css(foo)} className="foo" />
			`,
		},
		{
			name: "import from another module with style",
			code: `
				import { css } from 'somethingElse';
				<div {...css(foo)} style={{ color: 'red' }} />
			`,
		},
		{
			name: "require from another module with className",
			code: `
				const { css } = require('somethingElse');
				<div {...css(foo)} className="foo" />
			`,
		},
		{
			name: "require from another module with style",
			code: `
				const { css } = require('somethingElse');
				<div {...css(foo)} style={{ color: 'red' }} />
			`,
		},
		{
			name: "require with identifier argument",
			code: `
				require(foo);
				<div {...css(foo)} style={{ color: 'red' }} />
			`,
		},
		{
			name: "require without arguments",
			code: `
				require();
				<div {...css(foo)} style={{ color: 'red' }} />
			`,
		},
		{
			name: "destructured require without arguments",
			code: `
				const { css } = require();
				<div {...css(foo)} className="foo" />
			`,
		},
		{
			name: "withStyles as a prefix only",
			code: `
				import { css } from 'withStyles/css';
				<div {...css(foo)} className="foo" />
			`,
		},
		{
			name: "different export from withStyles",
			code: `
				import { cx } from 'withStyles';
				<div {...cx(foo)} className="foo" />
			`,
		},
		{
			name: "canonical name unused when aliased",
			code: `
				import { css as bar } from 'withStyles';
				<div {...css(foo)} className="foo" />
			`,
		},
		{
			name: "spread inside nested function",
			code: `
				import { css } from 'withStyles';
				function Button() {
					return <button {...css(styles.button)}>{label}</button>;
				}
			`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := checkSource(t, "test.jsx", trim(tt.code))
			assert.Empty(t, summarize(diags))
		})
	}
}

func TestOnlySpreadCSS_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []wantDiag
	}{
		{
			name: "deep package path",
			code: `
				import { css } from 'airbnb-dls-web/build/themes/withStyles';
				<div {...css(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "relative path",
			code: `
				import { css } from '../../themes/withStyles';
				<div {...css(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "className after spread",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "className before spread",
			code: `
				import { css } from 'withStyles';
				<div className="foo" {...css(foo)} />
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "style string",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo)} style="foo" />
			`,
			want: []wantDiag{conflict("style", "css")},
		},
		{
			name: "destructured result",
			code: `
				import { css } from 'withStyles';
				const { style } = css(foo);
			`,
			want: []wantDiag{placement},
		},
		{
			name: "className value",
			code: `
				import { css } from 'withStyles';
				<div className={css(foo)} />
			`,
			want: []wantDiag{placement},
		},
		{
			name: "style value",
			code: `
				import { css } from 'withStyles';
				<div style={css(foo)} />
			`,
			want: []wantDiag{placement},
		},
		{
			name: "className and style together",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo)} className="foo" style={{ color: 'red' }} />
			`,
			want: []wantDiag{conflict("className", "css"), conflict("style", "css")},
		},
		{
			name: "aliased import",
			code: `
				import { css as bar } from 'withStyles';
				<div {...bar(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "bar")},
		},
		{
			name: "require shorthand with className",
			code: `
				const { css } = require('withStyles');
				<div {...css(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "require shorthand with style",
			code: `
				const { css } = require('withStyles');
				<div {...css(foo)} style="foo" />
			`,
			want: []wantDiag{conflict("style", "css")},
		},
		{
			name: "aliased require",
			code: `
				const { css: bar } = require('withStyles');
				<div {...bar(foo)} className="foo" />
			`,
			want: []wantDiag{conflict("className", "bar")},
		},
		{
			name: "alias placement keeps canonical name",
			code: `
				import { css as bar } from 'withStyles';
				const props = bar(foo);
			`,
			want: []wantDiag{placement},
		},
		{
			name: "assignment",
			code: `
				import { css } from 'withStyles';
				const props = css(foo);
				<div {...props} />
			`,
			want: []wantDiag{placement},
		},
		{
			name: "passed as an argument",
			code: `
				import { css } from 'withStyles';
				merge(css(foo), other);
			`,
			want: []wantDiag{placement},
		},
		{
			name: "parenthesised spread argument",
			code: `
				import { css } from 'withStyles';
				<div {...(css(foo))} />
			`,
			want: []wantDiag{placement},
		},
		{
			name: "spread as element child",
			code: `
				import { css } from 'withStyles';
				<div>{...css(foo)}</div>
			`,
			want: []wantDiag{placement},
		},
		{
			name: "spread of a member of the result",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo).className} />
			`,
			want: []wantDiag{placement},
		},
		{
			name: "two tracked aliases",
			code: `
				import { css } from 'withStyles';
				const { css: themed } = require('../themes/withStyles');
				<div {...css(a)} className="a" />;
				<span {...themed(b)} style={{}} />
			`,
			want: []wantDiag{conflict("className", "css"), conflict("style", "themed")},
		},
		{
			name: "nested element inside an ok element",
			code: `
				import { css } from 'withStyles';
				<div {...css(outer)}>
					<span className="x" {...css(inner)} />
				</div>
			`,
			want: []wantDiag{conflict("className", "css")},
		},
		{
			name: "placement and conflict in one element",
			code: `
				import { css } from 'withStyles';
				<div {...css(foo)} className={css(bar)} />
			`,
			want: []wantDiag{conflict("className", "css"), placement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := checkSource(t, "test.jsx", trim(tt.code))
			assert.Equal(t, tt.want, summarize(diags))
		})
	}
}

func TestOnlySpreadCSS_TypeScript(t *testing.T) {
	code := trim(`
		import { css } from 'withStyles';
		type Props = { label: string };
		export function Button({ label }: Props) {
			return <button {...css(styles.button)} className="btn">{label}</button>;
		}
	`)

	diags := checkSource(t, "button.tsx", code)
	assert.Equal(t, []wantDiag{conflict("className", "css")}, summarize(diags))
}

func TestOnlySpreadCSS_DiagnosticAnchors(t *testing.T) {
	code := trim(`
		import { css } from 'withStyles';
		<div {...css(foo)} className="foo" style={{ color: 'red' }} />
	`)

	diags := checkSource(t, "test.jsx", code)
	require.Len(t, diags, 2)

	for _, d := range diags {
		assert.Equal(t, OnlySpreadCSSID, d.Rule)
	}

	first := diags[0].Node.Span()
	second := diags[1].Node.Span()
	assert.Equal(t, `className="foo"`, code[first.Start:first.End])
	assert.Equal(t, `style={{ color: 'red' }}`, code[second.Start:second.End])
}

func TestOnlySpreadCSS_Idempotent(t *testing.T) {
	code := trim(`
		import { css } from 'withStyles';
		const { style } = css(foo);
		<div {...css(foo)} className="foo" style={{ color: 'red' }} />
	`)

	program := parse(t, code)

	first := Check(program, []Rule{OnlySpreadCSS{}})
	second := Check(program, []Rule{OnlySpreadCSS{}})
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestOnlySpreadCSS_FreshStatePerFile(t *testing.T) {
	tracked := checkSource(t, "a.jsx", trim(`
		import { css } from 'withStyles';
		<div {...css(foo)} className="foo" />
	`))
	require.Len(t, tracked, 1)

	untracked := checkSource(t, "b.jsx", `<div {...css(foo)} className="foo" />`)
	assert.Empty(t, untracked)
}
