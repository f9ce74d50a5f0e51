package rule

import "github.com/yacobolo/spreadcss/internal/jsx"

// OnlySpreadCSSID is the ID of the only-spread-css rule.
const OnlySpreadCSSID = "only-spread-css"

// OnlySpreadCSS flags `{...css(...)}` combined with className or style, and
// css() results used anywhere but a direct spread into an element.
type OnlySpreadCSS struct{}

func (OnlySpreadCSS) ID() string { return OnlySpreadCSSID }

func (OnlySpreadCSS) Description() string {
	return "Prevent usage of `{...css(styles.foo)}` with `className` or `style` props"
}

func (r OnlySpreadCSS) NewVisitor(report Report) jsx.Visitor {
	tracker := NewAliasTracker()
	v := &onlySpreadCSSVisitor{tracker: tracker}
	v.validator = NewSpreadUsageValidator(tracker, func(n jsx.Node, message string) {
		report(Diagnostic{Rule: r.ID(), Node: n, Message: message})
	})
	return v
}

type onlySpreadCSSVisitor struct {
	jsx.BaseVisitor
	tracker   *AliasTracker
	validator *SpreadUsageValidator
}

func (v *onlySpreadCSSVisitor) ImportDeclaration(n *jsx.ImportDeclaration, _ jsx.Path) {
	if n.Source == nil {
		return
	}
	for _, spec := range n.Specifiers {
		if spec.Local == nil {
			continue
		}
		v.tracker.ObserveImport(n.Source.Value, spec.Imported, spec.Local.Name)
	}
}

// VariableDeclarator picks up `const { css } = require('...withStyles')`.
// Any other require shape, including require() and require(foo), is ignored.
func (v *onlySpreadCSSVisitor) VariableDeclarator(n *jsx.VariableDeclarator, _ jsx.Path) {
	pattern, ok := n.ID.(*jsx.ObjectPattern)
	if !ok {
		return
	}
	source, ok := requireSource(n.Init)
	if !ok {
		return
	}
	for _, prop := range pattern.Properties {
		local, ok := prop.Value.(*jsx.Identifier)
		if !ok || prop.Key == "" {
			continue
		}
		v.tracker.ObserveRequire(source, prop.Key, local.Name)
	}
}

func (v *onlySpreadCSSVisitor) CallExpression(n *jsx.CallExpression, path jsx.Path) {
	v.validator.CheckCall(n, path)
}

func (v *onlySpreadCSSVisitor) JSXElement(n *jsx.JSXElement, _ jsx.Path) {
	v.validator.CheckElement(n)
}

// requireSource returns the module path of a `require('path')` call.
func requireSource(init jsx.Node) (string, bool) {
	call, ok := init.(*jsx.CallExpression)
	if !ok {
		return "", false
	}
	callee, ok := call.Callee.(*jsx.Identifier)
	if !ok || callee.Name != "require" || len(call.Arguments) == 0 {
		return "", false
	}
	lit, ok := call.Arguments[0].(*jsx.StringLiteral)
	if !ok {
		return "", false
	}
	return lit.Value, true
}
