package decoder

// Decodable is implemented by types that know how to read themselves from a
// Decoder. Decode should return the first error it hits unchanged.
type Decodable interface {
	Decode(d *Decoder) error
}

// Unmarshal decodes v from the start of buf.
func Unmarshal(buf []byte, v Decodable, opts ...Option) error {
	return v.Decode(From(buf, opts...))
}

// FromBytes decodes a new T from the start of buf, where *T is Decodable.
func FromBytes[T any, PT interface {
	*T
	Decodable
}](buf []byte, opts ...Option) (T, error) {
	var v T
	if err := PT(&v).Decode(From(buf, opts...)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
