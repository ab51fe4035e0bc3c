package layout

import (
	"github.com/pkg/errors"

	"github.com/rejdeboer/dhcp-decoder/pkg/decoder"
)

// Result is the outcome of running Plan over a buffer. It implements
// decoder.Decodable, so a Result can be filled by decoder.Unmarshal.
type Result struct {
	Plan   Plan
	Fields []Field
	// Trailing holds the bytes the plan did not consume. It aliases the
	// decoded buffer.
	Trailing []byte
}

var _ decoder.Decodable = (*Result)(nil)

func (r *Result) Decode(d *decoder.Decoder) error {
	fields, err := r.Plan.Run(d)
	r.Fields = fields
	r.Trailing = d.Remaining()
	return err
}

// Run executes the reads in order and returns the decoded fields. On error
// the fields decoded so far are returned along with the error, which wraps
// the decoder error and names the failing field.
func (p Plan) Run(d *decoder.Decoder) ([]Field, error) {
	fields := make([]Field, 0, len(p.Fields))
	sizes := make(map[string]int)

	for _, spec := range p.Fields {
		size := spec.Size
		if spec.SizeFrom != "" {
			n, ok := sizes[spec.SizeFrom]
			if !ok {
				return fields, errors.Errorf("field %q: size_from %q has not been decoded", spec.Name, spec.SizeFrom)
			}
			size = n
		} else if spec.Kind == KindIPv4 && size == 0 {
			size = 4
		}

		start := d.Position()
		f, err := read(d, spec.Kind, size)
		if err != nil {
			return fields, errors.Wrapf(err, "field %q (%s) at offset %d", spec.Name, spec.Kind, start)
		}
		f.Name = spec.Name
		f.Kind = spec.Kind
		f.Offset = start
		f.Size = d.Position() - start

		if lengths[spec.Kind] {
			sizes[spec.Name] = f.length()
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func read(d *decoder.Decoder, kind Kind, size int) (Field, error) {
	var (
		v   any
		ok  = true
		err error
	)

	switch kind {
	case KindU8:
		v, err = d.ReadU8()
	case KindU16:
		v, err = d.ReadU16()
	case KindU32:
		v, err = d.ReadU32()
	case KindU64:
		v, err = d.ReadU64()
	case KindI32:
		v, err = d.ReadI32()
	case KindBool:
		v, err = d.ReadBool()
	case KindVarU32:
		v, err = d.ReadVarU32()
	case KindBytes:
		v, err = d.ReadSlice(size)
	case KindString:
		v, err = d.ReadString(size)
	case KindConstString:
		v, ok, err = d.ReadConstString(size)
	case KindCString:
		v, ok, err = d.ReadCString(size)
	case KindIPv4:
		v, err = d.ReadIPv4(size)
	case KindIPv4s:
		v, err = d.ReadIPv4s(size)
	case KindIPv6s:
		v, err = d.ReadIPv6s(size)
	case KindIPv4Pairs:
		v, err = d.ReadPairIPv4s(size)
	case KindRemaining:
		v, err = d.ReadSlice(d.Len())
	default:
		return Field{}, errors.Errorf("unknown kind %q", kind)
	}
	if err != nil {
		return Field{}, err
	}

	if !ok {
		v = nil
	}
	return Field{Value: v, Present: ok}, nil
}
