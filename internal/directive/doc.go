// Package directive defines structural types used to describe using
// directives and the lexical scopes that own them.
//
// The entities in this package provide a consistent vocabulary for the
// ordered directive lists collected from source text: one Directive per
// using statement, one Scope per region owning an independently ordered
// list (a compilation unit or a namespace body). Higher-level checks
// consume these lists without ever touching raw source again.
package directive
