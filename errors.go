package htmltag

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/strcursor"
)

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.Location.Row,
		e.Location.Col,
		e.Line,
	)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// error wraps err with the current location and the text of the
// current line up to the cursor.
func (p *Parser) error(err error) error {
	// If it's wrapped, just return as is
	if _, ok := err.(*ParseError); ok {
		return err
	}

	return &ParseError{
		Err:      err,
		Location: p.Location(),
		Line:     p.lineAt(p.Position()),
	}
}

// lineAt returns the part of the line containing pos that comes before
// pos. The rune cursor only advances over buffered runes, so each rune is
// peeked before it is consumed.
func (p *Parser) lineAt(pos int) string {
	c := strcursor.NewRuneCursor(strings.NewReader(string(p.src)))
	for i := 0; i < pos; i++ {
		c.Cur()
		c.Advance(1)
	}
	return string(c.Line())
}
