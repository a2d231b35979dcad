package sax_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lestrrat-go/htmltag/sax"
	"github.com/stretchr/testify/require"
)

type dummyElement struct {
	name string
}

func (e dummyElement) Name() string                      { return e.name }
func (e dummyElement) Attributes() []sax.ParsedAttribute { return nil }

func TestInterface(t *testing.T) {
	s := sax.New()
	var h sax.Handler = s
	_ = h
}

func TestStartElement(t *testing.T) {
	t.Run("nil handler", func(t *testing.T) {
		s := sax.New()
		require.NoError(t, s.StartElement(context.Background(), dummyElement{name: "div"}), "nil callback is a no-op")
	})
	t.Run("callback", func(t *testing.T) {
		var names []string
		s := &sax.SAX2{
			StartElementHandler: func(_ context.Context, e sax.ParsedElement) error {
				names = append(names, e.Name())
				return nil
			},
		}
		require.NoError(t, s.StartElement(context.Background(), dummyElement{name: "div"}))
		require.NoError(t, s.StartElement(context.Background(), dummyElement{name: "span"}))
		require.Equal(t, []string{"div", "span"}, names)
	})
	t.Run("callback error", func(t *testing.T) {
		errStop := errors.New("stop")
		s := &sax.SAX2{
			StartElementHandler: func(context.Context, sax.ParsedElement) error {
				return errStop
			},
		}
		require.ErrorIs(t, s.StartElement(context.Background(), dummyElement{name: "div"}), errStop)
	})
}
