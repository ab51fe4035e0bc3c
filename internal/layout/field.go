package layout

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rejdeboer/dhcp-decoder/pkg/decoder"
)

type Field struct {
	Name   string
	Kind   Kind
	Offset int
	// Size is the number of bytes consumed, including absent fixed strings.
	Size    int
	Value   any
	Present bool
}

// length returns the value of an unsigned integer field as a byte count.
func (f Field) length() int {
	switch v := f.Value.(type) {
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	}
	return 0
}

// String renders the value for display. Absent values render as "-".
func (f Field) String() string {
	if !f.Present {
		return "-"
	}

	switch v := f.Value.(type) {
	case []byte:
		if f.Kind == KindCString {
			return fmt.Sprintf("%q", v)
		}
		return hex.EncodeToString(v)
	case string:
		return fmt.Sprintf("%q", v)
	case netip.Addr:
		return v.String()
	case []netip.Addr:
		parts := make([]string, len(v))
		for i, addr := range v {
			parts[i] = addr.String()
		}
		return strings.Join(parts, ",")
	case []decoder.IPv4Pair:
		parts := make([]string, len(v))
		for i, pair := range v {
			parts[i] = pair.First.String() + "/" + pair.Second.String()
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

func (f Field) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", f.Name).
		Str("kind", string(f.Kind)).
		Int("offset", f.Offset).
		Int("size", f.Size).
		Bool("present", f.Present).
		Str("value", f.String())
}
