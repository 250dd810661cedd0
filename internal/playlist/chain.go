package playlist

// chain is a nil-terminated run of nodes cut out of a ring.
type chain struct {
	head *Node
	tail *Node
	size int
}

func (c *chain) pop() *Node {
	n := c.head
	c.head = n.next
	if c.head == nil {
		c.tail = nil
	}
	c.size--
	return n
}

func (c *chain) push(n *Node) {
	n.next = nil
	if c.head == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

// pushAll attaches rest after the tail, keeping its order.
func (c *chain) pushAll(rest chain) {
	if rest.head == nil {
		return
	}
	if c.head == nil {
		*c = rest
		return
	}
	c.tail.next = rest.head
	c.tail = rest.tail
	c.size += rest.size
}

// split cuts the chain after its first size/2 nodes.
func (c chain) split() (chain, chain) {
	mid := c.size / 2
	n := c.head
	for i := 1; i < mid; i++ {
		n = n.next
	}
	left := chain{head: c.head, tail: n, size: mid}
	right := chain{head: n.next, tail: c.tail, size: c.size - mid}
	n.next = nil
	return left, right
}

// detach opens the ring into a chain and leaves the playlist empty.
func (p *Playlist) detach() chain {
	if p.last == nil {
		return chain{}
	}
	c := chain{head: p.last.next, tail: p.last, size: p.size}
	p.last.next = nil
	p.clear()
	return c
}

// attach closes c into a ring and makes it the playlist's content.
func (p *Playlist) attach(c chain) {
	if c.head == nil {
		p.clear()
		return
	}
	c.tail.next = c.head
	p.last = c.tail
	p.size = c.size
}
