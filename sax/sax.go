package sax

import "context"

func New() *SAX2 {
	return &SAX2{}
}

func (s *SAX2) StartElement(ctx context.Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}
