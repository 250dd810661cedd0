package playlist

import (
	"fmt"

	"github.com/jaki95/playlist-library/internal/domain"
)

// Insert adds song at the 1-based position. Valid positions are 1 (new head)
// through Size()+1 (new tail). On error the playlist is left unchanged.
func (p *Playlist) Insert(position int, song domain.Song) error {
	if position < 1 || position > p.size+1 {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPosition, position, p.size+1)
	}

	n := &Node{song: song}

	if p.last == nil {
		n.next = n
		p.last = n
		p.size = 1
		return nil
	}

	if position == 1 {
		n.next = p.last.next
		p.last.next = n
		p.size++
		return nil
	}

	prev := p.last.next
	if prev == nil {
		return ErrMalformedRing
	}
	for i := 1; i < position-1; i++ {
		prev = prev.next
		if prev == nil {
			return ErrMalformedRing
		}
	}
	if prev.next == nil {
		return ErrMalformedRing
	}

	n.next = prev.next
	prev.next = n
	if position == p.size+1 {
		p.last = n
	}
	p.size++
	return nil
}

// Remove deletes the first occurrence of song, scanning from the head.
func (p *Playlist) Remove(song domain.Song) error {
	if p.last == nil {
		return ErrSongNotFound
	}

	prev := p.last
	cur := p.last.next
	for i := 0; i < p.size; i++ {
		if cur == nil {
			return ErrMalformedRing
		}
		if cur.song.Equal(song) {
			p.unlink(prev, cur)
			return nil
		}
		prev = cur
		cur = cur.next
	}

	return ErrSongNotFound
}
