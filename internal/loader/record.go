package loader

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jaki95/playlist-library/internal/domain"
	"github.com/jaki95/playlist-library/internal/playlist"
)

// RecordFields is the number of fields in a song record:
// title, artist, year, popularity, link.
const RecordFields = 5

// ParseRecord converts one record into a song.
func ParseRecord(fields []string) (domain.Song, error) {
	if len(fields) != RecordFields {
		return domain.Song{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, RecordFields, len(fields))
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.Song{}, fmt.Errorf("%w: year %q is not a number", ErrMalformedRecord, fields[2])
	}

	popularity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Song{}, fmt.Errorf("%w: popularity %q is not a number", ErrMalformedRecord, fields[3])
	}

	return domain.NewSong(fields[0], fields[1], year, popularity, fields[4]), nil
}

// builder links parsed records into a playlist in the order they arrive,
// skipping the ones that do not parse.
type builder struct {
	source  string
	songs   []domain.Song
	skipped int
}

func (b *builder) add(line int, fields []string) {
	song, err := ParseRecord(fields)
	if err != nil {
		b.skipped++
		slog.Debug("Skipping record", "source", b.source, "line", line, "error", err)
		return
	}
	b.songs = append(b.songs, song)
}

func (b *builder) playlist() *playlist.Playlist {
	if b.skipped > 0 {
		slog.Info("Skipped malformed records", "source", b.source, "skipped", b.skipped, "loaded", len(b.songs))
	}
	return playlist.FromSongs(b.songs...)
}
