package htmltag

import (
	"github.com/lestrrat-go/htmltag/sax"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identEncoding struct{}
type identSAX struct{}

// NewParserOption configures NewParserBytes
type NewParserOption interface {
	Option
	newParserOption()
}

type newParserOption struct{ Option }

func (*newParserOption) newParserOption() {}

// ParseOption configures Parse
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithEncoding specifies the character encoding of the source bytes,
// e.g. "euc-jp" or "iso-8859-1"
func WithEncoding(v string) NewParserOption {
	return &newParserOption{option.New(identEncoding{}, v)}
}

// WithSAX specifies a handler that is notified of each parsed element
func WithSAX(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAX{}, v)}
}
