package application

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// ParseHex decodes a hex dump. Whitespace, ':' and '-' separators and an
// optional 0x prefix are ignored, so tcpdump and wireshark copies work as is.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', '-':
			return -1
		}
		return r
	}, s)

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex input")
	}
	return b, nil
}
