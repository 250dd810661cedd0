package playlist

import (
	"fmt"

	"github.com/jaki95/playlist-library/internal/domain"
)

// Node holds one song and the link to the next node of the ring.
type Node struct {
	song domain.Song
	next *Node
}

// Song returns the song held by the node.
func (n *Node) Song() domain.Song {
	return n.song
}

// Next returns the successor of the node.
func (n *Node) Next() *Node {
	return n.next
}

// Playlist is a circular singly linked list of songs. Only the last node is
// referenced; the first node is always last.next.
//
// The zero value is an empty playlist.
type Playlist struct {
	last *Node
	size int
}

// New creates an empty playlist.
func New() *Playlist {
	return &Playlist{}
}

// FromSongs builds a playlist holding the songs in the given order.
func FromSongs(songs ...domain.Song) *Playlist {
	p := New()
	for _, song := range songs {
		p.appendNode(&Node{song: song})
	}
	return p
}

// Last returns the tail node, or nil if the playlist is empty.
func (p *Playlist) Last() *Node {
	return p.last
}

// First returns the head node, or nil if the playlist is empty.
func (p *Playlist) First() *Node {
	if p.last == nil {
		return nil
	}
	return p.last.next
}

// Size returns the number of songs in the playlist.
func (p *Playlist) Size() int {
	return p.size
}

// IsEmpty reports whether the playlist holds no songs.
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// Songs returns the songs from head to tail.
func (p *Playlist) Songs() []domain.Song {
	songs := make([]domain.Song, 0, p.size)
	if p.last == nil {
		return songs
	}
	n := p.last.next
	for i := 0; i < p.size && n != nil; i++ {
		songs = append(songs, n.song)
		n = n.next
	}
	return songs
}

// Validate checks that the ring holds exactly Size nodes and that the
// successor of Last is the head.
func (p *Playlist) Validate() error {
	if p.last == nil {
		if p.size != 0 {
			return fmt.Errorf("%w: no last node but size %d", ErrMalformedRing, p.size)
		}
		return nil
	}
	if p.size <= 0 {
		return fmt.Errorf("%w: last node set but size %d", ErrMalformedRing, p.size)
	}

	first := p.last.next
	n := first
	for i := 1; i < p.size; i++ {
		if n == nil || n == p.last {
			return fmt.Errorf("%w: ring shorter than size %d", ErrMalformedRing, p.size)
		}
		n = n.next
	}
	if n != p.last {
		return fmt.Errorf("%w: node %d is not last", ErrMalformedRing, p.size)
	}
	if n.next != first {
		return fmt.Errorf("%w: last does not link back to first", ErrMalformedRing)
	}
	return nil
}

// appendNode links n in as the new tail.
func (p *Playlist) appendNode(n *Node) {
	if p.last == nil {
		n.next = n
	} else {
		n.next = p.last.next
		p.last.next = n
	}
	p.last = n
	p.size++
}

// unlink splices cur out of the ring. prev must be its predecessor.
func (p *Playlist) unlink(prev, cur *Node) {
	if p.size == 1 {
		p.last = nil
	} else {
		prev.next = cur.next
		if cur == p.last {
			p.last = prev
		}
	}
	cur.next = nil
	p.size--
}

// removeAt unlinks and returns the node at the 1-based position.
func (p *Playlist) removeAt(position int) (*Node, error) {
	if position < 1 || position > p.size {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPosition, position, p.size)
	}

	prev := p.last
	for i := 1; i < position; i++ {
		prev = prev.next
		if prev == nil {
			return nil, ErrMalformedRing
		}
	}
	cur := prev.next
	if cur == nil {
		return nil, ErrMalformedRing
	}

	p.unlink(prev, cur)
	return cur, nil
}

// clear drops every node reference without touching the nodes.
func (p *Playlist) clear() {
	p.last = nil
	p.size = 0
}
