package htmltag

import (
	"strings"

	"github.com/lestrrat-go/htmltag/encoding"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NewParser creates a parser over src. Line endings are normalized to LF
// and the text is decoded into characters before any scanning happens.
// Invalid UTF-8 sequences become U+FFFD.
func NewParser(src string) *Parser {
	p := &Parser{
		src:   []rune(newlineReplacer.Replace(src)),
		loc:   Location{Pos: 0, Row: 1, Col: 1},
		lower: cases.Lower(language.Und),
	}
	p.cur = p.charAt(0)
	return p
}

// NewParserBytes creates a parser over b, which is first decoded from the
// character encoding given by WithEncoding. The default is UTF-8.
func NewParserBytes(b []byte, options ...NewParserOption) (*Parser, error) {
	encName := "utf-8"
	for _, option := range options {
		switch option.Ident() {
		case identEncoding{}:
			encName = option.Value().(string)
		}
	}

	if pdebug.Enabled {
		pdebug.Printf("NewParserBytes: decoding %d bytes as %s", len(b), encName)
	}

	enc := encoding.Load(encName)
	if enc == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, `encoding '%s' not supported`, encName)
	}

	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode source as %s`, encName)
	}

	return NewParser(string(decoded)), nil
}
