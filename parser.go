package htmltag

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/htmltag/sax"
	"github.com/pkg/errors"
)

// Parse is a shortcut for NewParser(src).Parse(ctx, options...)
func Parse(ctx context.Context, src string, options ...ParseOption) (*Element, error) {
	return NewParser(src).Parse(ctx, options...)
}

// Parse parses exactly one element starting at the cursor. It does not
// loop over the rest of the input.
//
// If no element could be recognized the returned error satisfies
// errors.Is(err, ErrNoMatch), and the cursor is left untouched. Malformed
// input results in an error that can be unwrapped into a *ParseError.
func (p *Parser) Parse(ctx context.Context, options ...ParseOption) (*Element, error) {
	var handler sax.Handler
	for _, option := range options {
		switch option.Ident() {
		case identSAX{}:
			handler = option.Value().(sax.Handler)
		}
	}

	ctx, span := StartSpan(ctx, "htmltag.Parse")
	defer span.End()

	TraceEvent(ctx, "parse start",
		slog.Int("pos", p.Position()),
		slog.Int("len", p.Len()),
	)

	elem, err := p.ParseElement()
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			TraceEvent(ctx, "no element found", slog.Int("pos", p.Position()))
			return nil, err
		}
		TraceError(ctx, err, "parse error")
		return nil, errors.Wrap(err, `failed to parse element`)
	}

	TraceEvent(ctx, "parse done",
		slog.String("name", elem.Name()),
		slog.Int("attributes", len(elem.attributes)),
		slog.Int("end", elem.End().Pos),
	)

	if handler != nil {
		if err := handler.StartElement(ctx, elem); err != nil {
			return nil, errors.Wrap(err, `start element handler failed`)
		}
	}

	return elem, nil
}
