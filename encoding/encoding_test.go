package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF8", "EUC-JP", "euc_jp", "Shift_JIS", "iso-8859-1", "windows-1252", "koi8-r"} {
		require.NotNil(t, Load(name), "Load(%q) should find an encoding", name)
	}
	require.Nil(t, Load("ebcdic-klingon"), "unknown encodings return nil")
}

func TestISO88591(t *testing.T) {
	e := Load("iso-8859-1")
	require.NotNil(t, e)
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		// windows-1252 leaves some of these undefined
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, v1, "round trip of %#x", i)
	}
}

func TestEUCJP(t *testing.T) {
	s, err := Load("euc-jp").NewDecoder().String("\xa4\xb3\xa4\xf3")
	require.NoError(t, err)
	require.Equal(t, "こん", s)
}
