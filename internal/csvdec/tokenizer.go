// Package csvdec is the callback-driven two-level CSV decoder used on the
// ingestion hot path. It splits a stream on an outer delimiter, applies a
// fixed-column grammar to each line, and lets hooks observe the raw line so
// rejects can be echoed byte-exact.
package csvdec

import (
	"bufio"
	"io"
)

// TokenFunc receives one delimiter-stripped token. The token aliases the
// read buffer and must be copied if retained. A non-nil return halts the
// stream and is propagated.
type TokenFunc func(token []byte) error

// EachToken splits r on delim and invokes fn once per token. A final token
// without a trailing delimiter is still yielded; a trailing delimiter does
// not produce a phantom empty token.
func EachToken(r io.Reader, delim byte, fn TokenFunc) error {
	reader := bufio.NewReader(r)
	for {
		token, err := reader.ReadBytes(delim)
		if len(token) > 0 {
			if token[len(token)-1] == delim {
				token = token[:len(token)-1]
			}
			if len(token) > 0 || err == nil {
				if cbErr := fn(token); cbErr != nil {
					return cbErr
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
