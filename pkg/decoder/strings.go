package decoder

import (
	"bytes"
	"unicode/utf8"
)

// ReadString reads n bytes of UTF-8 text.
func (d *Decoder) ReadString(n int) (string, error) {
	start := d.next
	b, err := d.ReadSlice(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		d.next = start
		return "", invalidEncoding(start)
	}
	return string(b), nil
}

// ReadConstString reads a size byte field holding null terminated text, such
// as the BOOTP sname and file fields. The returned text includes the
// terminator. ok is false when the field is empty (leading null) or, unless
// the decoder is strict, has no terminator at all. The whole field is
// consumed unless an error is returned.
func (d *Decoder) ReadConstString(size int) (string, bool, error) {
	start := d.next
	field, ok, err := d.terminated(size)
	if err != nil || !ok {
		return "", false, err
	}
	if !utf8.Valid(field) {
		d.next = start
		return "", false, invalidEncoding(start)
	}
	return string(field), true, nil
}

// ReadCString is ReadConstString without the UTF-8 check. The returned bytes
// are a copy and end with the null terminator.
func (d *Decoder) ReadCString(size int) ([]byte, bool, error) {
	field, ok, err := d.terminated(size)
	if err != nil || !ok {
		return nil, false, err
	}
	return bytes.Clone(field), true, nil
}

func (d *Decoder) terminated(size int) ([]byte, bool, error) {
	start := d.next
	field, err := d.fixed(size)
	if err != nil {
		return nil, false, err
	}

	switch n := bytes.IndexByte(field, 0); {
	case n == 0:
		return nil, false, nil
	case n > 0:
		return field[:n+1], true, nil
	case d.strict:
		d.next = start
		return nil, false, unterminated(start, size)
	default:
		return nil, false, nil
	}
}
