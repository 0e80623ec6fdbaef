package usorules

import "fmt"

// Rule represents a sysfirst rule code (USO-series).
type Rule int

const (
	ruleInvalid Rule = iota

	USO010SystemFirst
)

// Code returns the stable diagnostic identifier of the rule.
// Example: "USO010".
func (r Rule) Code() string {
	switch r {
	case USO010SystemFirst:
		return "USO010"
	default:
		return fmt.Sprintf("rule-unknown(%d)", int(r))
	}
}

// String returns the canonical code and short name of the rule.
// Example: "USO010: SystemDirectivesFirst".
func (r Rule) String() string {
	switch r {
	case USO010SystemFirst:
		return "USO010: SystemDirectivesFirst"
	default:
		return fmt.Sprintf("rule-unknown(%d)", int(r))
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case USO010SystemFirst:
		return "System using directives must precede all other using directives."
	default:
		return "<Unknown rule code>"
	}
}

// Category returns the reporting category of the rule.
func (r Rule) Category() string {
	switch r {
	case USO010SystemFirst:
		return "ordering"
	default:
		return "<Unknown rule code>"
	}
}

// MessageTemplate returns the fmt template of the rule diagnostic.
// USO010 takes exactly two arguments: the offending directive name and
// the name of the directive it must appear before.
func (r Rule) MessageTemplate() string {
	switch r {
	case USO010SystemFirst:
		return "using directive for '%s' must appear before directive for '%s'"
	default:
		return "<Unknown rule code>"
	}
}

// All lists every defined rule in code order.
func All() []Rule {
	return []Rule{
		USO010SystemFirst,
	}
}
