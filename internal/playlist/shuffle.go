package playlist

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Rand supplies uniformly distributed integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a Rand seeded with seed. A zero seed uses the current time.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Shuffle rebuilds the playlist by repeatedly removing a random node and
// appending it to a new ring. Each removal walks the ring, so a shuffle
// costs O(n^2).
func (p *Playlist) Shuffle(rng Rand) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	shuffled := New()
	for p.size > 0 {
		position := rng.IntN(p.size) + 1
		n, err := p.removeAt(position)
		if err != nil {
			for p.size > 0 {
				n, _ = p.removeAt(1)
				shuffled.appendNode(n)
			}
			p.last, p.size = shuffled.last, shuffled.size
			return fmt.Errorf("shuffle: %w", err)
		}
		shuffled.appendNode(n)
	}

	p.last, p.size = shuffled.last, shuffled.size
	return nil
}
