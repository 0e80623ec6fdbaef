// Package usorules defines the canonical USO-series rule codes enforced by sysfirst.
//
// Each rule represents a verifiable invariant of using directive layout.
// The USO-series gives every rule a stable numeric and textual identity so
// violations can be reported, filtered and traced consistently across the
// analysis driver, rendered output and documentation.
//
// # Structure
//
// Rule codes follow the format “USO<NNN>: <Name>” and are grouped by
// functional area:
//
//	000–099  Directive ordering rules
//	100–149  Reserved for grouping and separation rules
//
// Example:
//
//	usorules.USO010SystemFirst.String()      → "USO010: SystemDirectivesFirst"
//	usorules.USO010SystemFirst.Description() → "System using directives must precede all other using directives."
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Rule metadata is immutable and statically constructed, the scanning
//     code keeps no per-rule state.
package usorules
