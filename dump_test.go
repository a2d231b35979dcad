package htmltag_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/lestrrat-go/htmltag"
	"github.com/stretchr/testify/require"
)

func TestDumpElement(t *testing.T) {
	inputs := []struct {
		input    string
		expected string
	}{
		{`<div>`, `<div>`},
		{`<DIV CLASS="x">`, `<div class="x">`},
		{`<input   type = "checkbox" checked>`, `<input type="checkbox" checked>`},
		{"<a\n\thref=\"/\"\n>", `<a href="/">`},
		{`<p data-emoji="🎉">`, `<p data-emoji="🎉">`},
	}

	for _, c := range inputs {
		input, expected := c.input, c.expected
		elem, err := htmltag.Parse(context.Background(), input)
		require.NoError(t, err, "Parse should succeed for '%s'", input)

		var buf bytes.Buffer
		d := htmltag.Dumper{}
		require.NoError(t, d.DumpElement(&buf, elem), "DumpElement should succeed")
		require.Equal(t, expected, buf.String(), "dump of '%s' matches", input)
		require.Equal(t, expected, elem.String(), "String() of '%s' matches", input)
	}
}
