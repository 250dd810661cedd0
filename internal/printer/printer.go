package printer

import (
	"fmt"
	"io"

	"github.com/jaki95/playlist-library/internal/playlist"
)

// PrintPlaylist writes the playlist from head to tail, marking the link from
// the last song back to the first.
func PrintPlaylist(w io.Writer, index int, p *playlist.Playlist) {
	fmt.Fprintf(w, "\nPlaylist at index %d (%d song(s)):\n", index, p.Size())
	if p.Last() == nil {
		fmt.Fprintln(w, "EMPTY")
		return
	}

	n := p.First()
	for n != p.Last() {
		fmt.Fprintf(w, "%s -> ", n.Song())
		n = n.Next()
	}
	fmt.Fprintf(w, "%s - POINTS TO FRONT\n", p.Last().Song())
}

// PrintLibrary writes every playlist in index order.
func PrintLibrary(w io.Writer, playlists []*playlist.Playlist) {
	if len(playlists) == 0 {
		fmt.Fprintln(w, "\nYour library is empty!")
		return
	}
	for i, p := range playlists {
		PrintPlaylist(w, i, p)
	}
}
