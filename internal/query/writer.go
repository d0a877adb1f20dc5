// Package query parses query scripts, dispatches them through the fixed
// catalogue of ten query types and renders results in the compact or the
// formatted style.
package query

import (
	"fmt"
	"io"
)

// Writer renders query output either to a stream or to an in-memory line
// list. Unformatted mode joins each object's fields with ';' on one line;
// formatted mode opens each object with a numbered banner and prints one
// "key: value" line per field, with a blank line between objects.
type Writer struct {
	out       io.Writer
	formatted bool
	buffered  bool
	lines     []string
	objects   int
	line      string
	open      bool
	first     bool
	err       error
}

// NewWriter renders to out.
func NewWriter(out io.Writer, formatted bool) *Writer {
	return &Writer{out: out, formatted: formatted}
}

// NewBuffered records lines in memory; Lines returns them.
func NewBuffered(formatted bool) *Writer {
	return &Writer{buffered: true, formatted: formatted}
}

// BeginObject starts the next output object, closing the previous one.
func (w *Writer) BeginObject() {
	w.endObject()
	w.objects++
	if w.formatted {
		if w.objects > 1 {
			w.emit("")
		}
		w.emit(fmt.Sprintf("--- %d ---", w.objects))
	}
	w.open = true
	w.first = true
}

// Field appends one field to the current object. The key only shows in
// formatted mode.
func (w *Writer) Field(key, value string) {
	if !w.open {
		return
	}
	if w.formatted {
		w.emit(key + ": " + value)
		return
	}
	if w.first {
		w.line = value
		w.first = false
		return
	}
	w.line += ";" + value
}

// Objects reports how many objects were begun.
func (w *Writer) Objects() int { return w.objects }

// Close flushes the last object and reports any write error.
func (w *Writer) Close() error {
	w.endObject()
	return w.err
}

// Lines closes the writer and returns the recorded lines (buffered mode).
func (w *Writer) Lines() []string {
	w.endObject()
	return w.lines
}

func (w *Writer) endObject() {
	if w.open && !w.formatted {
		w.emit(w.line)
		w.line = ""
	}
	w.open = false
}

func (w *Writer) emit(line string) {
	if w.buffered {
		w.lines = append(w.lines, line)
		return
	}
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, line+"\n")
}
