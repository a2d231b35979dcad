// Package htmltag implements a backtracking recursive-descent parser for
// HTML start tags such as <a href="/" target="_blank">. It reports the tag
// name, the attributes, and exact character/row/column locations.
package htmltag

import (
	"errors"

	"golang.org/x/text/cases"
)

// Version is the version of this library
const Version = "0.0.1"

// EOF is returned by Current when the cursor is at the end of the input
const EOF rune = -1

var (
	ErrInvalidRange    = errors.New("extraction range out of bounds")
	ErrNoMatch         = errors.New("start tag expected, '<' followed by a tag name not found")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrValueRequired   = errors.New("quoted attribute value was required after '='")
)

// Location is a snapshot of the cursor. Pos is the 0-based offset in
// characters (not bytes), Row and Col are 1-based.
type Location struct {
	Pos int
	Row int
	Col int
}

// ParseError is returned when the input is malformed in a way that
// backtracking cannot repair.
type ParseError struct {
	Err      error
	Location Location
	// Line is the text of the failing line up to Location
	Line string
}

// Attribute is a single name/value pair of a start tag. HasValue is false
// for attributes written without '=', such as <input disabled>.
type Attribute struct {
	name     string
	value    string
	hasValue bool
}

// Element is one parsed start tag. End is the location right after the
// last attribute; the closing '>' is never consumed.
type Element struct {
	start      Location
	end        Location
	name       string
	attributes []Attribute
}

// Parser owns the decoded source and the cursor over it. A Parser is not
// safe for concurrent use, but independent Parsers share nothing.
type Parser struct {
	src   []rune
	loc   Location
	cur   rune
	lower cases.Caser
}
