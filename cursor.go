package htmltag

import "github.com/pkg/errors"

func (p *Parser) charAt(pos int) rune {
	if pos < 0 || pos >= len(p.src) {
		return EOF
	}
	return p.src[pos]
}

// Len returns the number of characters in the source
func (p *Parser) Len() int {
	return len(p.src)
}

// Position returns the absolute offset of the cursor
func (p *Parser) Position() int {
	return p.loc.Pos
}

// Location returns a snapshot of the cursor. The returned value is a copy
// and stays valid after the cursor moves.
func (p *Parser) Location() Location {
	return p.loc
}

// Current returns the character under the cursor, or EOF.
func (p *Parser) Current() rune {
	return p.cur
}

// Done returns true if the cursor is at the end of the input
func (p *Parser) Done() bool {
	return p.cur == EOF
}

// Advance moves the cursor one character forward. It is a no-op at the
// end of the input.
func (p *Parser) Advance() {
	if p.loc.Pos >= len(p.src) {
		return
	}

	if p.cur == '\n' {
		p.loc.Row++
		p.loc.Col = 1
	} else {
		p.loc.Col++
	}
	p.loc.Pos++
	p.cur = p.charAt(p.loc.Pos)
}

// Backtrack restores the cursor to a location previously obtained
// from Location.
func (p *Parser) Backtrack(loc Location) {
	p.loc = loc
	p.cur = p.charAt(loc.Pos)
}

// Extract returns the characters in [start, end)
func (p *Parser) Extract(start, end int) (string, error) {
	if start < 0 || start > end || end > len(p.src) {
		return "", errors.Wrapf(ErrInvalidRange, `cannot extract [%d, %d) from %d characters`, start, end, len(p.src))
	}
	return string(p.src[start:end]), nil
}

// extractFrom returns everything consumed since loc. The range is always
// valid because loc was taken from this parser.
func (p *Parser) extractFrom(loc Location) string {
	return string(p.src[loc.Pos:p.loc.Pos])
}
