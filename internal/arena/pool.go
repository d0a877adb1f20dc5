// Package arena provides the bulk allocators backing the in-memory database.
// Every record and owned string lives in one of these pools; nothing is freed
// individually, a Reset invalidates the whole pool at once.
package arena

const defaultBlockItems = 512

// Pool hands out stable pointers to values of T from a growing list of
// fixed-capacity blocks. A block is never reallocated once created, so every
// pointer returned by New remains valid until Reset.
type Pool[T any] struct {
	blocks   [][]T
	arrays   [][]T
	blockCap int
	count    int
}

// NewPool returns a pool whose blocks hold blockCap items each. A
// non-positive capacity selects the default.
func NewPool[T any](blockCap int) *Pool[T] {
	if blockCap <= 0 {
		blockCap = defaultBlockItems
	}
	return &Pool[T]{blockCap: blockCap}
}

// New allocates one zeroed item and returns its address.
func (p *Pool[T]) New() *T {
	top := len(p.blocks) - 1
	if top < 0 || len(p.blocks[top]) == cap(p.blocks[top]) {
		p.blocks = append(p.blocks, make([]T, 0, p.blockCap))
		top++
	}
	p.blocks[top] = append(p.blocks[top], *new(T))
	p.count++
	return &p.blocks[top][len(p.blocks[top])-1]
}

// NewN allocates n contiguous zeroed items. The run lives in its own block
// and is excluded from ForEach, which only visits items allocated with New.
func (p *Pool[T]) NewN(n int) []T {
	if n <= 0 {
		return nil
	}
	block := make([]T, n)
	p.arrays = append(p.arrays, block)
	return block
}

// ForEach visits every item allocated with New, in allocation order, until
// fn returns false.
func (p *Pool[T]) ForEach(fn func(*T) bool) {
	for _, block := range p.blocks {
		for i := range block {
			if !fn(&block[i]) {
				return
			}
		}
	}
}

// Len reports how many items New has handed out since the last Reset.
func (p *Pool[T]) Len() int { return p.count }

// Reset discards every allocation. All previously returned pointers are
// invalid afterwards.
func (p *Pool[T]) Reset() {
	p.blocks = nil
	p.arrays = nil
	p.count = 0
}
