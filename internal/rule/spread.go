package rule

import (
	"fmt"

	"github.com/yacobolo/spreadcss/internal/jsx"
)

// Attribute names that must not be combined with a css() spread.
var conflictingAttributes = map[string]bool{
	"className": true,
	"style":     true,
}

// PlacementMessage is reported for css() calls outside a direct spread. It
// always names `css`, even when the call goes through an alias.
const PlacementMessage = "Only spread `css()` directly into an element, e.g. `<div {...css(foo)} />`."

// ConflictMessage is reported on a className/style attribute that sits next
// to a `{...alias()}` spread.
func ConflictMessage(attrName, alias string) string {
	return fmt.Sprintf("Do not use `%s` with `{...%s()}`.", attrName, alias)
}

// SpreadUsageValidator enforces how calls to tracked names are used.
type SpreadUsageValidator struct {
	tracker *AliasTracker
	report  func(node jsx.Node, message string)
}

// NewSpreadUsageValidator returns a validator that consults tracker and
// emits findings through report.
func NewSpreadUsageValidator(tracker *AliasTracker, report func(node jsx.Node, message string)) *SpreadUsageValidator {
	return &SpreadUsageValidator{tracker: tracker, report: report}
}

// CheckElement reports every className or style attribute on an element
// that also spreads a tracked call, regardless of attribute order.
func (v *SpreadUsageValidator) CheckElement(el *jsx.JSXElement) {
	alias, ok := v.trackedSpread(el)
	if !ok {
		return
	}

	for _, attr := range el.Attributes {
		named, ok := attr.(*jsx.JSXAttribute)
		if !ok || !conflictingAttributes[named.Name] {
			continue
		}
		v.report(named, ConflictMessage(named.Name, alias))
	}
}

// trackedSpread returns the callee alias of the first `{...alias(...)}`
// attribute whose callee is tracked.
func (v *SpreadUsageValidator) trackedSpread(el *jsx.JSXElement) (string, bool) {
	for _, attr := range el.Attributes {
		spread, ok := attr.(*jsx.JSXSpreadAttribute)
		if !ok {
			continue
		}
		call, ok := spread.Argument.(*jsx.CallExpression)
		if !ok {
			continue
		}
		if name, ok := v.trackedCallee(call); ok {
			return name, true
		}
	}
	return "", false
}

// CheckCall reports a tracked call unless it is the direct argument of a
// spread attribute in an element's attribute list.
func (v *SpreadUsageValidator) CheckCall(call *jsx.CallExpression, path jsx.Path) {
	if _, ok := v.trackedCallee(call); !ok {
		return
	}
	if isDirectSpread(call, path) {
		return
	}
	v.report(call, PlacementMessage)
}

func isDirectSpread(call *jsx.CallExpression, path jsx.Path) bool {
	spread, ok := path.Parent().(*jsx.JSXSpreadAttribute)
	if !ok || spread.Argument != jsx.Node(call) {
		return false
	}
	_, ok = path.Ancestor(1).(*jsx.JSXElement)
	return ok
}

func (v *SpreadUsageValidator) trackedCallee(call *jsx.CallExpression) (string, bool) {
	id, ok := call.Callee.(*jsx.Identifier)
	if !ok || !v.tracker.IsTracked(id.Name) {
		return "", false
	}
	return id.Name, true
}
