package sax

import "context"

type StartElementFunc func(context.Context, ParsedElement) error

// Handler receives events from the parser. Returning an error from any
// method aborts the parse.
type Handler interface {
	StartElement(context.Context, ParsedElement) error
}

type ParsedElement interface {
	Name() string
	Attributes() []ParsedAttribute
}

// ParsedAttribute is one attribute of a ParsedElement. Value returns
// false as its second value when the attribute had no '=value' part.
type ParsedAttribute interface {
	Name() string
	Value() (string, bool)
}

// SAX2 is a Handler built from callback functions. Callbacks that are
// left nil are skipped.
type SAX2 struct {
	StartElementHandler StartElementFunc
}
