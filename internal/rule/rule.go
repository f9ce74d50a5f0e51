// Package rule defines the lint rule contract and the only-spread-css rule.
package rule

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/yacobolo/spreadcss/internal/jsx"
)

// ErrUnknownRule is returned when a rule ID is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Diagnostic is a single finding, anchored on the node it concerns.
type Diagnostic struct {
	Rule    string
	Node    jsx.Node
	Message string
}

// Report receives diagnostics as a rule finds them.
type Report func(Diagnostic)

// Rule defines the interface for lint rules.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "only-spread-css").
	ID() string
	// Description returns a brief description of what the rule checks.
	Description() string
	// NewVisitor returns a visitor holding fresh per-file state. The host
	// calls it once per file and walks the file's tree with the result.
	NewVisitor(report Report) jsx.Visitor
}

// Registry maintains a collection of rules.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates a registry holding rules.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	for _, rule := range rules {
		r.Register(rule)
	}
	return r
}

// Default returns a registry with every built-in rule.
func Default() *Registry {
	return NewRegistry(OnlySpreadCSS{})
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it will be replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
}

// Get returns the rule with the given ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns all registered rules sorted by ID.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// Select returns every rule not listed in disabled. Disabling an ID that is
// not registered is an error so typos in configuration surface early.
func (r *Registry) Select(disabled []string) ([]Rule, error) {
	skip := make(map[string]bool, len(disabled))
	for _, id := range disabled {
		if _, ok := r.Get(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}
		skip[id] = true
	}

	var selected []Rule
	for _, rule := range r.All() {
		if !skip[rule.ID()] {
			selected = append(selected, rule)
		}
	}
	return selected, nil
}

// Check runs rules over one parsed file and returns their diagnostics in
// the order they were reported. Every rule gets a fresh visitor, and all
// visitors share a single traversal.
func Check(program *jsx.Program, rules []Rule) []Diagnostic {
	var diags []Diagnostic
	report := func(d Diagnostic) { diags = append(diags, d) }

	visitors := make(jsx.Multi, 0, len(rules))
	for _, rule := range rules {
		visitors = append(visitors, rule.NewVisitor(report))
	}
	jsx.Walk(program, visitors)

	return diags
}
