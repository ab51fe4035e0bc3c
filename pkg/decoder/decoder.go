// Package decoder reads big-endian wire fields (DHCP options and the like)
// from an in-memory buffer.
//
// A Decoder borrows its buffer and never writes to it. Every read either
// advances the position past exactly the bytes it consumed or fails and
// leaves the position where it was.
package decoder

import (
	"encoding/binary"
)

// Decoder is a read cursor over a borrowed byte slice. It is not safe for
// concurrent use.
type Decoder struct {
	buf    []byte
	next   int
	strict bool
}

// Option configures a Decoder.
type Option func(d *Decoder)

// WithStrictTermination makes ReadConstString and ReadCString fail with
// ErrUnterminated when a field has no null byte, instead of reporting the
// field as absent.
func WithStrictTermination() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

// From returns a decoder positioned at the start of buf. No validation is
// done here, an empty buffer fails on the first read.
func From(buf []byte, opts ...Option) *Decoder {
	d := &Decoder{
		buf:  buf,
		next: 0,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReadArray fills dst with the next len(dst) bytes. Pass a slice of a
// fixed size array to read a fixed width field without allocating.
func (d *Decoder) ReadArray(dst []byte) error {
	b, err := d.fixed(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.fixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.fixed(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *Decoder) ReadU32() (uint32, error) {
	b, err := d.fixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.fixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) ReadI32() (int32, error) {
	n, err := d.ReadU32()
	return int32(n), err
}

// ReadBool reads one byte. Only 0x01 is true; any other value is false.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// ReadVarU32 reads an unsigned LEB128 varint of at most 5 bytes.
func (d *Decoder) ReadVarU32() (uint32, error) {
	var num uint32 = 0
	var shift uint = 0

	for i := d.next; ; i++ {
		if i == len(d.buf) {
			return 0, &EndOfBufferError{Index: i + 1}
		}
		r := d.buf[i]

		// the 5th byte carries the top 4 bits and must end the varint
		if shift == 28 && r > 0b00001111 {
			return 0, ErrOverflow
		}

		num |= uint32(r&0b01111111) << shift
		shift += 7

		if r < 0b10000000 {
			d.next = i + 1
			return num, nil
		}
	}
}

// ReadSlice returns the next n bytes as a view into the source buffer. The
// view's capacity is clipped, so appending to it never touches the source.
func (d *Decoder) ReadSlice(n int) ([]byte, error) {
	return d.fixed(n)
}
