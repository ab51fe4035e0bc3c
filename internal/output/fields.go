package output

import (
	"strconv"

	"github.com/rejdeboer/dhcp-decoder/internal/layout"
)

// FieldTable renders decoded layout fields, one row per field.
type FieldTable []layout.Field

func (t FieldTable) Headers() []string {
	return []string{"Offset", "Size", "Name", "Kind", "Value"}
}

func (t FieldTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, f := range t {
		rows = append(rows, []string{
			strconv.Itoa(f.Offset),
			strconv.Itoa(f.Size),
			f.Name,
			string(f.Kind),
			f.String(),
		})
	}
	return rows
}
