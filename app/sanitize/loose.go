package sanitize

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Loose is a numeric request field kept exactly as sent. Clients may send a JSON
// number or a string; null decodes as the empty string.
type Loose string

func (l *Loose) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Loose(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}
	*l = Loose(b)
	return nil
}

func (l Loose) String() string { return string(l) }
