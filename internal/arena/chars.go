package arena

import "unsafe"

const charChunkSize = 64 * 1024

// CharPool stores string payloads in large byte chunks. Copy returns a
// string header aliasing chunk memory; the bytes stay put until Reset, so the
// returned strings are stable for the pool's lifetime.
type CharPool struct {
	chunks [][]byte
	used   int
}

// Copy stores s in the pool and returns the pooled copy.
func (p *CharPool) Copy(s string) string {
	if len(s) == 0 {
		return ""
	}
	top := len(p.chunks) - 1
	if top < 0 || len(p.chunks[top])+len(s) > cap(p.chunks[top]) {
		size := charChunkSize
		if len(s) > size {
			// Oversized strings get a dedicated chunk.
			size = len(s)
		}
		p.chunks = append(p.chunks, make([]byte, 0, size))
		top++
	}
	offset := len(p.chunks[top])
	p.chunks[top] = append(p.chunks[top], s...)
	p.used += len(s)
	return unsafe.String(&p.chunks[top][offset], len(s))
}

// CopyBytes stores b and returns it as a pooled string.
func (p *CharPool) CopyBytes(b []byte) string {
	return p.Copy(string(b))
}

// BytesUsed reports the payload bytes currently stored.
func (p *CharPool) BytesUsed() int { return p.used }

// Reset discards all stored strings. Previously returned strings must not be
// used afterwards.
func (p *CharPool) Reset() {
	p.chunks = nil
	p.used = 0
}
