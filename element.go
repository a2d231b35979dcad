package htmltag

import (
	"github.com/lestrrat-go/htmltag/internal/orderedmap"
	"github.com/lestrrat-go/htmltag/sax"
	"github.com/lestrrat-go/pdebug/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name returns the lower-cased attribute name
func (a Attribute) Name() string {
	return a.name
}

// Value returns the attribute value. The second return value is false if
// the attribute was written without a value.
func (a Attribute) Value() (string, bool) {
	return a.value, a.hasValue
}

// Start returns the location of the opening '<'
func (e *Element) Start() Location {
	return e.start
}

// End returns the location where parsing of the element stopped
func (e *Element) End() Location {
	return e.end
}

// Name returns the lower-cased tag name
func (e *Element) Name() string {
	return e.name
}

// Attributes returns the attributes in source order as sax.ParsedAttribute
func (e *Element) Attributes() []sax.ParsedAttribute {
	list := make([]sax.ParsedAttribute, len(e.attributes))
	for i, attr := range e.attributes {
		list[i] = attr
	}
	return list
}

// AttributeList returns the attributes in source order, including
// duplicates
func (e *Element) AttributeList() []Attribute {
	return append([]Attribute(nil), e.attributes...)
}

// Attr looks up an attribute by name, ignoring case. If the name
// appears more than once, the first occurrence wins.
func (e *Element) Attr(name string) (Attribute, bool) {
	name = cases.Lower(language.Und).String(name)
	for _, attr := range e.attributes {
		if attr.name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

// AttributeMap returns the attributes keyed by name, in source order. The
// second return value lists names that were seen more than once; only
// their first occurrence is stored in the map.
func (e *Element) AttributeMap() (*orderedmap.Map[string, Attribute], []string) {
	m := orderedmap.New[string, Attribute]()
	var dups []string
	for _, attr := range e.attributes {
		if err := m.Set(attr.name, attr); err != nil {
			dups = append(dups, attr.name)
		}
	}
	return m, dups
}

// ParseElement parses one start tag at the cursor:
//
//	Element ::= '<' TagName (S? AttrName S? ('=' S? AttrValue)?)*
//
// If there is no '<' or no tag name, ErrNoMatch is returned and the cursor
// is restored. An '=' that is not followed by a quoted value is fatal and
// results in a *ParseError. The closing '>' is not consumed.
func (p *Parser) ParseElement() (*Element, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	start := p.Location()
	if p.Current() != '<' {
		return nil, ErrNoMatch
	}
	p.Advance()

	name, ok := p.ParseTagName()
	if !ok {
		p.Backtrack(start)
		return nil, ErrNoMatch
	}

	var attrs []Attribute
	for {
		p.ParseWhiteSpace()
		attrName, ok := p.ParseAttributeName()
		if !ok {
			break
		}

		attr := Attribute{name: attrName}
		p.ParseWhiteSpace()
		if p.Current() == '=' {
			p.Advance()
			p.ParseWhiteSpace()
			v, ok := p.ParseAttributeValue()
			if !ok {
				return nil, p.error(ErrValueRequired)
			}
			attr.value = v
			attr.hasValue = true
		}
		attrs = append(attrs, attr)
	}

	if pdebug.Enabled {
		pdebug.Printf("ParseElement: <%s> with %d attributes", name, len(attrs))
	}

	return &Element{
		start:      start,
		end:        p.Location(),
		name:       name,
		attributes: attrs,
	}, nil
}
