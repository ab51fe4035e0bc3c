package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when the end offset of a read cannot be
	// represented, which only happens for corrupt or hostile length fields.
	ErrOverflow = errors.New("read offset overflow")
	// ErrEndOfBuffer matches every *EndOfBufferError via errors.Is.
	ErrEndOfBuffer = errors.New("end of buffer")
	// ErrNotEnoughBytes is returned when a length is not valid for the
	// record being read, e.g. an IPv4 list whose length is not a multiple of 4.
	ErrNotEnoughBytes = errors.New("not enough bytes for record")
	// ErrInvalidEncoding is returned when text fails UTF-8 validation.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrUnterminated is returned in strict mode for a fixed field without a
	// null terminator.
	ErrUnterminated = errors.New("missing null terminator")
)

// EndOfBufferError reports a read that would end past the buffer. Index is
// the end offset the read needed.
type EndOfBufferError struct {
	Index int
}

func (e *EndOfBufferError) Error() string {
	return fmt.Sprintf("end of buffer: read needs offset %d", e.Index)
}

func (e *EndOfBufferError) Is(target error) bool {
	return target == ErrEndOfBuffer
}

func invalidEncoding(offset int) error {
	return fmt.Errorf("%w: text at offset %d is not utf-8", ErrInvalidEncoding, offset)
}

func unterminated(offset, size int) error {
	return fmt.Errorf("%w: %d byte field at offset %d", ErrUnterminated, size, offset)
}
