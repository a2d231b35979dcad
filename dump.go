package htmltag

import (
	"io"

	"github.com/lestrrat-go/htmltag/internal/pool"
)

type Dumper struct{}

func (d *Dumper) writeString(out io.Writer, content string) error {
	_, err := io.WriteString(out, content)
	return err
}

// DumpElement writes e back out as a start tag. Attribute values are
// always double quoted; attributes without a value are written bare.
func (d *Dumper) DumpElement(out io.Writer, e *Element) error {
	bs := pool.ByteSlice()
	buf := bs.Get()
	defer func() { bs.Put(buf) }()

	buf = appendElement(buf, e)
	return d.writeString(out, string(buf))
}

func appendElement(buf []byte, e *Element) []byte {
	buf = append(buf, '<')
	buf = append(buf, e.name...)
	for _, attr := range e.attributes {
		buf = append(buf, ' ')
		buf = append(buf, attr.name...)
		if attr.hasValue {
			buf = append(buf, '=', '"')
			buf = append(buf, attr.value...)
			buf = append(buf, '"')
		}
	}
	return append(buf, '>')
}

func (e *Element) String() string {
	bs := pool.ByteSlice()
	buf := bs.Get()
	defer func() { bs.Put(buf) }()

	buf = appendElement(buf, e)
	return string(buf)
}
