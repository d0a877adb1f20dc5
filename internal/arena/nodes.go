package arena

// NilNode marks the empty list.
const NilNode = int32(-1)

type listNode struct {
	next int32
	id   uint32
}

// NodePool is a shared slab of singly-linked list nodes holding one 32-bit
// identifier each. Lists are identified by the index of their head node, so
// the whole structure is freed by a single Reset.
type NodePool struct {
	nodes []listNode
}

// Prepend pushes id onto the list starting at head and returns the new head.
func (p *NodePool) Prepend(head int32, id uint32) int32 {
	p.nodes = append(p.nodes, listNode{next: head, id: id})
	return int32(len(p.nodes) - 1)
}

// Walk visits the list ids from the most recently prepended until fn returns
// false.
func (p *NodePool) Walk(head int32, fn func(uint32) bool) {
	for i := head; i != NilNode; i = p.nodes[i].next {
		if !fn(p.nodes[i].id) {
			return
		}
	}
}

// Remove drops the first occurrence of id from the list starting at head
// and returns the new head. The node's slab slot is not reclaimed.
func (p *NodePool) Remove(head int32, id uint32) int32 {
	if head == NilNode {
		return head
	}
	if p.nodes[head].id == id {
		return p.nodes[head].next
	}
	for i := head; p.nodes[i].next != NilNode; i = p.nodes[i].next {
		next := p.nodes[i].next
		if p.nodes[next].id == id {
			p.nodes[i].next = p.nodes[next].next
			break
		}
	}
	return head
}

// Count reports the length of the list starting at head.
func (p *NodePool) Count(head int32) int {
	n := 0
	for i := head; i != NilNode; i = p.nodes[i].next {
		n++
	}
	return n
}

// Len reports the total nodes allocated across all lists.
func (p *NodePool) Len() int { return len(p.nodes) }

// Reset discards every list. Previously returned heads are invalid.
func (p *NodePool) Reset() { p.nodes = nil }
