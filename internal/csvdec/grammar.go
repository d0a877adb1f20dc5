package csvdec

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrColumnCount reports a line with the wrong number of fields for its
// grammar.
var ErrColumnCount = errors.New("wrong column count")

// ColumnFunc parses one field of a line. The field aliases the line buffer;
// copy before retaining. A non-nil return aborts the line.
type ColumnFunc func(field []byte, index int) error

// Grammar is a fixed-N line format: a separator and one callback per column.
type Grammar struct {
	Sep     byte
	Columns []ColumnFunc
}

// Apply splits line on the separator into exactly len(Columns) fields and
// dispatches each to its callback in order. The first callback error is
// returned.
func (g Grammar) Apply(line []byte) error {
	fields := bytes.Split(line, []byte{g.Sep})
	if len(fields) != len(g.Columns) {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(fields), len(g.Columns))
	}
	for i, field := range fields {
		if err := g.Columns[i](field, i); err != nil {
			return err
		}
	}
	return nil
}
