package arena

// InternPool is a deduplicating CharPool: equal inputs always map to the
// same pooled string. Intended for high-repetition fields (airlines, plane
// models, hotel names).
type InternPool struct {
	chars CharPool
	index map[string]string
}

// Intern returns the canonical pooled copy of s, allocating it on first use.
func (p *InternPool) Intern(s string) string {
	if len(s) == 0 {
		return ""
	}
	if p.index == nil {
		p.index = make(map[string]string)
	}
	if pooled, ok := p.index[s]; ok {
		return pooled
	}
	pooled := p.chars.Copy(s)
	p.index[pooled] = pooled
	return pooled
}

// Len reports the number of distinct strings held.
func (p *InternPool) Len() int { return len(p.index) }

// Reset discards all held strings.
func (p *InternPool) Reset() {
	p.chars.Reset()
	p.index = nil
}
