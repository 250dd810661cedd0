package playlist

// Reverse flips the direction of every link. The old head becomes the new
// last node.
func (p *Playlist) Reverse() {
	if p.size < 2 {
		return
	}

	head := p.last.next
	prev := p.last
	cur := head
	for i := 0; i < p.size; i++ {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	p.last = head
}
