package playlist

// Sort orders the playlist by non-increasing popularity. The sort is a
// stable merge sort: songs with equal popularity keep their relative order.
func (p *Playlist) Sort() {
	if p.size < 2 {
		return
	}
	p.attach(mergeSort(p.detach()))
}

func mergeSort(c chain) chain {
	if c.size < 2 {
		return c
	}
	left, right := c.split()
	return mergeChains(mergeSort(left), mergeSort(right))
}
