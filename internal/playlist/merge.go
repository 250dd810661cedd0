package playlist

// Merge moves every song of other into p. Both playlists must already be in
// non-increasing popularity order; the result keeps that order. On equal
// popularity the song from p comes first. other is left empty.
func (p *Playlist) Merge(other *Playlist) {
	if other == nil || other == p {
		return
	}
	p.attach(mergeChains(p.detach(), other.detach()))
}

// mergeChains merges two chains sorted by non-increasing popularity. Ties
// are taken from a. Whichever side is left over is attached as is, so the
// tail of the result is the tail of that side.
func mergeChains(a, b chain) chain {
	var out chain
	for a.head != nil && b.head != nil {
		if b.head.song.Popularity > a.head.song.Popularity {
			out.push(b.pop())
		} else {
			out.push(a.pop())
		}
	}
	out.pushAll(a)
	out.pushAll(b)
	return out
}
