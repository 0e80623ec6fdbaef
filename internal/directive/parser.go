package directive

import (
	"strings"

	"github.com/sirkon/sysfirst/internal/source"
)

// ParseFile extracts every scope of the file together with its ordered
// using directive list, in document order, the compilation unit first.
//
// The pass is purely lexical and best-effort: anything it cannot
// interpret is skipped without an error, a directive with a garbled
// path is kept in its list position with empty Segments. A scope stops
// collecting directives once its first non-directive member shows up,
// so `using` statements inside method bodies never register.
func ParseFile(f *source.File) []*Scope {
	p := &parser{
		file: f,
		src:  f.Content,
	}

	unit := &Scope{
		Kind: ScopeCompilationUnit,
		Span: f.Span(),
	}
	p.push(unit, 0)
	p.out = append(p.out, unit)

	p.run()

	return p.out
}

// openScope tracks one scope that is still being filled.
type openScope struct {
	scope *Scope

	// bodyDepth is the brace depth of the scope body content.
	bodyDepth int

	// header is true until the first member of the scope: only header
	// positions may hold using directives.
	header bool
}

type parser struct {
	file *source.File
	src  []byte

	pos   int
	depth int

	stack []*openScope
	out   []*Scope
}

func (p *parser) run() {
	for {
		p.skipTrivia()
		if p.pos >= len(p.src) {
			break
		}

		c := p.src[p.pos]
		switch {
		case c == '{':
			p.pos++
			p.depth++
			// A block that is not a namespace body: the scope header is over.
			p.top().header = false
		case c == '}':
			p.pos++
			if p.depth > 0 {
				p.depth--
			}
			p.popTo(p.depth)
		case c == '"' || c == '\'':
			p.skipLiteral(c)
		case c == '@' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '"':
			p.skipVerbatimString()
		case isIdentStart(c):
			p.word()
		default:
			p.pos++
		}
	}

	// EOF closes everything still open, file-scoped namespaces included.
	for _, sc := range p.stack {
		sc.scope.Span.End = uint32(len(p.src))
	}
}

func (p *parser) word() {
	start := p.pos
	w := p.readWord()
	top := p.top()

	switch {
	case w == "using" && top.header && p.depth == top.bodyDepth:
		p.directive(start, top.scope)
	case w == "namespace" && p.depth == top.bodyDepth:
		p.namespaceDecl(start, top)
	case w == "extern" && top.header && p.depth == top.bodyDepth:
		// `extern alias A;` may legally precede using directives.
		p.skipPast(';')
	default:
		if p.depth == top.bodyDepth {
			top.header = false
		}
	}
}

func (p *parser) namespaceDecl(start int, parent *openScope) {
	segs, _, ok := p.path()
	p.skipTrivia()
	parent.header = false
	if !ok || p.pos >= len(p.src) {
		return
	}

	sc := &Scope{
		Kind: ScopeNamespace,
		Name: strings.Join(segs, "."),
		Span: p.span(start, len(p.src)),
	}

	switch p.src[p.pos] {
	case '{':
		p.pos++
		p.depth++
		p.push(sc, p.depth)
	case ';':
		// File-scoped namespace, the body runs to the end of the file.
		p.pos++
		p.push(sc, p.depth)
	default:
		return
	}

	p.out = append(p.out, sc)
}

func (p *parser) directive(start int, sc *Scope) {
	var d Directive
	p.skipTrivia()

	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		// `using (…)` is a statement, not a directive.
		p.skipPast(';')
		return
	}

	if p.lookingAtWord("static") {
		p.readWord()
		d.IsStatic = true
	}

	segs, raw, ok := p.path()
	if !ok {
		// The malformed entry still occupies its position in the list.
		end := p.skipPast(';')
		d.Span = p.span(start, end)
		sc.Directives = append(sc.Directives, d)
		return
	}

	p.skipTrivia()
	if p.lookingAt("=") && !p.lookingAt("==") {
		p.pos++
		d.HasAlias = true
		// A well-formed alias is a single identifier.
		d.AliasName = strings.Join(segs, ".")

		segs, raw, ok = p.path()
		if !ok {
			end := p.skipPast(';')
			d.Span = p.span(start, end)
			sc.Directives = append(sc.Directives, d)
			return
		}
	}

	d.Segments = segs
	d.RawName = raw
	end := p.skipPast(';')
	d.Span = p.span(start, end)
	sc.Directives = append(sc.Directives, d)
}

// path reads `ident ( '::' ident )? ( '.' ident )*`. The returned
// segments hold the dotted path with the `qualifier::` marker dropped,
// raw keeps the full written form. ok is false when an identifier is
// missing where one is required.
func (p *parser) path() (segs []string, raw string, ok bool) {
	p.skipTrivia()

	name, ok := p.ident()
	if !ok {
		return nil, "", false
	}

	var b strings.Builder
	b.WriteString(name)
	segs = []string{name}

	for {
		p.skipTrivia()
		switch {
		case p.lookingAt("::"):
			p.pos += 2
			p.skipTrivia()
			next, ok := p.ident()
			if !ok {
				return nil, b.String(), false
			}
			b.WriteString("::")
			b.WriteString(next)
			// The qualifier does not take part in classification.
			segs = []string{next}
		case p.lookingAt(".") && !p.lookingAt(".."):
			p.pos++
			p.skipTrivia()
			next, ok := p.ident()
			if !ok {
				return nil, b.String(), false
			}
			b.WriteString(".")
			b.WriteString(next)
			segs = append(segs, next)
		default:
			return segs, b.String(), true
		}
	}
}

func (p *parser) push(sc *Scope, bodyDepth int) {
	p.stack = append(p.stack, &openScope{
		scope:     sc,
		bodyDepth: bodyDepth,
		header:    true,
	})
}

func (p *parser) top() *openScope {
	return p.stack[len(p.stack)-1]
}

// popTo closes every scope whose body lives deeper than depth.
func (p *parser) popTo(depth int) {
	for len(p.stack) > 1 && p.top().bodyDepth > depth {
		p.top().scope.Span.End = uint32(p.pos)
		p.stack = p.stack[:len(p.stack)-1]
	}
}

func (p *parser) span(start, end int) source.Span {
	return source.Span{
		File:  p.file.ID,
		Start: uint32(start),
		End:   uint32(end),
	}
}

// skipPast consumes everything up to and including stop. It refuses to
// cross a brace to keep the damage of unterminated constructs local.
func (p *parser) skipPast(stop byte) int {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case stop:
			p.pos++
			return p.pos
		case '{', '}':
			return p.pos
		case '"', '\'':
			p.skipLiteral(c)
		case '/':
			if p.lookingAt("//") || p.lookingAt("/*") {
				p.skipTrivia()
			} else {
				p.pos++
			}
		default:
			p.pos++
		}
	}

	return p.pos
}

// skipTrivia consumes whitespace, comments and preprocessor lines.
func (p *parser) skipTrivia() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '#':
			p.skipLine()
		case p.lookingAt("//"):
			p.skipLine()
		case p.lookingAt("/*"):
			p.pos += 2
			for p.pos < len(p.src) && !p.lookingAt("*/") {
				p.pos++
			}
			if p.pos < len(p.src) {
				p.pos += 2
			}
		default:
			return
		}
	}
}

func (p *parser) skipLine() {
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.pos++
	}
}

// skipLiteral consumes a quoted literal with backslash escapes.
func (p *parser) skipLiteral(quote byte) {
	p.pos++
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
		case quote:
			p.pos++
			return
		case '\n':
			// Unterminated literal, give up at the line end.
			return
		default:
			p.pos++
		}
	}
}

// skipVerbatimString consumes `@"…"` where a doubled quote escapes itself.
func (p *parser) skipVerbatimString() {
	p.pos += 2
	for p.pos < len(p.src) {
		if p.src[p.pos] != '"' {
			p.pos++
			continue
		}
		if p.pos+1 < len(p.src) && p.src[p.pos+1] == '"' {
			p.pos += 2
			continue
		}
		p.pos++
		return
	}
}

func (p *parser) lookingAt(s string) bool {
	return p.pos+len(s) <= len(p.src) && string(p.src[p.pos:p.pos+len(s)]) == s
}

func (p *parser) lookingAtWord(w string) bool {
	if !p.lookingAt(w) {
		return false
	}
	if p.pos+len(w) == len(p.src) {
		return true
	}

	return !isIdentPart(p.src[p.pos+len(w)])
}

func (p *parser) ident() (string, bool) {
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		return "", false
	}

	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}

	return string(p.src[start:p.pos]), true
}

func (p *parser) readWord() string {
	w, _ := p.ident()
	return w
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
