package csvdec

import "io"

// DatasetReader composes the stream tokenizer and a line grammar. The first
// line of the stream is treated as a header and skipped. For every other
// line it calls BeforeLine with the raw bytes, applies the grammar, then
// hands the raw line and the grammar's verdict to AfterLine, which commits
// the scratch record or records the reject. A non-nil AfterLine return halts
// the whole dataset.
type DatasetReader struct {
	Grammar    Grammar
	BeforeLine func(raw []byte)
	AfterLine  func(raw []byte, lineErr error) error
}

// Read consumes r line by line.
func (d DatasetReader) Read(r io.Reader) error {
	header := true
	return EachToken(r, '\n', func(line []byte) error {
		if header {
			header = false
			return nil
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if d.BeforeLine != nil {
			d.BeforeLine(line)
		}
		lineErr := d.Grammar.Apply(line)
		if d.AfterLine != nil {
			return d.AfterLine(line, lineErr)
		}
		return lineErr
	})
}
