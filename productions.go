package htmltag

import "github.com/lestrrat-go/pdebug/v3"

func isWhiteSpace(c rune) bool {
	return c == ' ' || c == '\n' || c == '\t'
}

func isAttributeNameChar(c rune) bool {
	switch c {
	case EOF, ' ', '\n', '\t', '\'', '"', '=', '/', '>':
		return false
	}
	return true
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanWhile consumes the maximal run of characters accepted by fn. If
// nothing was consumed the cursor is restored and ok is false.
func (p *Parser) scanWhile(fn func(rune) bool) (string, bool) {
	start := p.Location()
	for !p.Done() && fn(p.Current()) {
		p.Advance()
	}

	if p.Position() == start.Pos {
		p.Backtrack(start)
		return "", false
	}
	return p.extractFrom(start), true
}

// ParseWhiteSpace consumes a run of spaces, newlines and tabs.
func (p *Parser) ParseWhiteSpace() (string, bool) {
	return p.scanWhile(isWhiteSpace)
}

// ParseAttributeName consumes an attribute name and returns it
// lower-cased. Any character other than whitespace, quotes, '=', '/'
// and '>' is allowed.
func (p *Parser) ParseAttributeName() (string, bool) {
	name, ok := p.scanWhile(isAttributeNameChar)
	if !ok {
		return "", false
	}

	if pdebug.Enabled {
		pdebug.Printf("ParseAttributeName: '%s' (ends at %d)", name, p.Position())
	}
	return p.lower.String(name), true
}

// ParseAttributeValue consumes a double-quoted value and returns the text
// between the quotes. A value that hits a newline or the end of the input
// before its closing quote does not match, and the cursor is left where
// it was.
func (p *Parser) ParseAttributeValue() (string, bool) {
	if p.Current() != '"' {
		return "", false
	}

	start := p.Location()
	p.Advance()
	content := p.Location()
	for !p.Done() && p.Current() != '"' && p.Current() != '\n' {
		p.Advance()
	}

	if p.Current() != '"' {
		if pdebug.Enabled {
			pdebug.Printf("ParseAttributeValue: unterminated value starting at %d", start.Pos)
		}
		p.Backtrack(start)
		return "", false
	}

	v := p.extractFrom(content)
	p.Advance() // closing quote
	return v, true
}

// ParseTagName consumes a run of ASCII letters and returns it lower-cased.
func (p *Parser) ParseTagName() (string, bool) {
	name, ok := p.scanWhile(isASCIILetter)
	if !ok {
		return "", false
	}
	return p.lower.String(name), true
}
