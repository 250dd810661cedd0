package domain

import "fmt"

// Song represents a single song in a playlist.
type Song struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	Popularity int    `json:"popularity"`

	// Link is the playback reference. Empty means the song has no link.
	Link string `json:"link,omitempty"`
}

// NewSong creates a new song.
func NewSong(title, artist string, year, popularity int, link string) Song {
	return Song{
		Title:      title,
		Artist:     artist,
		Year:       year,
		Popularity: popularity,
		Link:       link,
	}
}

// Equal reports whether both songs carry the same content.
func (s Song) Equal(other Song) bool {
	return s.Title == other.Title &&
		s.Artist == other.Artist &&
		s.Year == other.Year &&
		s.Popularity == other.Popularity &&
		s.Link == other.Link
}

// HasLink reports whether the song can be played.
func (s Song) HasLink() bool {
	return s.Link != ""
}

func (s Song) String() string {
	return fmt.Sprintf("%s, %s, %d, %d, %s", s.Title, s.Artist, s.Year, s.Popularity, s.Link)
}
