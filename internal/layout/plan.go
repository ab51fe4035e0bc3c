package layout

import (
	"io"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

type Kind string

const (
	KindU8          Kind = "u8"
	KindU16         Kind = "u16"
	KindU32         Kind = "u32"
	KindU64         Kind = "u64"
	KindI32         Kind = "i32"
	KindBool        Kind = "bool"
	KindVarU32      Kind = "varu32"
	KindBytes       Kind = "bytes"
	KindString      Kind = "string"
	KindConstString Kind = "const_string"
	KindCString     Kind = "cstring"
	KindIPv4        Kind = "ipv4"
	KindIPv4s       Kind = "ipv4s"
	KindIPv6s       Kind = "ipv6s"
	KindIPv4Pairs   Kind = "ipv4_pairs"
	KindRemaining   Kind = "remaining"
)

// sized kinds take their length from Size or from an earlier integer field.
var sized = map[Kind]bool{
	KindBytes:       true,
	KindString:      true,
	KindConstString: true,
	KindCString:     true,
	KindIPv4:        true,
	KindIPv4s:       true,
	KindIPv6s:       true,
	KindIPv4Pairs:   true,
}

// lengths are fields whose decoded value may be used by SizeFrom.
var lengths = map[Kind]bool{
	KindU8:     true,
	KindU16:    true,
	KindU32:    true,
	KindVarU32: true,
}

func (k Kind) valid() bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64, KindI32, KindBool, KindVarU32, KindRemaining:
		return true
	}
	return sized[k]
}

// FieldSpec describes one read. Size is a byte count; for fixed string kinds
// it is the field width. SizeFrom names an earlier integer field whose value
// is the byte count, which is how TLV style options are described.
type FieldSpec struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Size     int    `yaml:"size,omitempty"`
	SizeFrom string `yaml:"size_from,omitempty"`
}

// Plan is an ordered list of reads over one buffer.
type Plan struct {
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

func Load(r io.Reader) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Plan{}, errors.Wrap(err, "error decoding layout")
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

func LoadFile(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, errors.Wrap(err, "error opening layout")
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return Plan{}, errors.Wrapf(err, "layout %s", path)
	}
	return p, nil
}

func (p Plan) Validate() error {
	if len(p.Fields) == 0 {
		return errors.New("layout has no fields")
	}

	seen := make(map[string]Kind, len(p.Fields))
	for i, f := range p.Fields {
		if f.Name == "" {
			return errors.Errorf("field %d has no name", i)
		}
		if _, ok := seen[f.Name]; ok {
			return errors.Errorf("duplicate field %q", f.Name)
		}
		if !f.Kind.valid() {
			return errors.Errorf("field %q has unknown kind %q", f.Name, f.Kind)
		}
		if f.Kind == KindRemaining && i != len(p.Fields)-1 {
			return errors.Errorf("field %q: %s must be the last field", f.Name, KindRemaining)
		}
		if f.Size < 0 {
			return errors.Errorf("field %q has negative size %d", f.Name, f.Size)
		}

		if !sized[f.Kind] {
			if f.Size != 0 || f.SizeFrom != "" {
				return errors.Errorf("field %q: kind %s takes no size", f.Name, f.Kind)
			}
		} else if f.SizeFrom != "" {
			if f.Size != 0 {
				return errors.Errorf("field %q sets both size and size_from", f.Name)
			}
			kind, ok := seen[f.SizeFrom]
			if !ok {
				return errors.Errorf("field %q: size_from %q is not an earlier field", f.Name, f.SizeFrom)
			}
			if !lengths[kind] {
				return errors.Errorf("field %q: size_from %q is a %s, not an unsigned integer", f.Name, f.SizeFrom, kind)
			}
		} else if f.Size == 0 && f.Kind != KindIPv4 && f.Kind != KindBytes && f.Kind != KindString {
			return errors.Errorf("field %q: kind %s needs a size", f.Name, f.Kind)
		}

		seen[f.Name] = f.Kind
	}
	return nil
}
