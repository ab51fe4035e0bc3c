package decoder

import "math"

// span checks that n bytes can be read at the current position and returns
// the end offset. The position is not modified.
func (d *Decoder) span(n int) (int, error) {
	if n < 0 || n > math.MaxInt-d.next {
		return 0, ErrOverflow
	}
	end := d.next + n
	if end > len(d.buf) {
		return 0, &EndOfBufferError{Index: end}
	}
	return end, nil
}

// fixed returns a view of the next n bytes and advances past them. Scalar
// reads decode straight out of the view so they never allocate.
func (d *Decoder) fixed(n int) ([]byte, error) {
	end, err := d.span(n)
	if err != nil {
		return nil, err
	}
	b := d.buf[d.next:end:end]
	d.next = end
	return b, nil
}

// Position returns the offset of the next unread byte.
func (d *Decoder) Position() int {
	return d.next
}

// Len returns the number of unread bytes.
func (d *Decoder) Len() int {
	return len(d.buf) - d.next
}

// Remaining returns the unread part of the buffer without advancing. The
// returned slice aliases the source buffer.
func (d *Decoder) Remaining() []byte {
	return d.buf[d.next:len(d.buf):len(d.buf)]
}
