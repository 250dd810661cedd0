package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jaki95/playlist-library/internal/domain"
	"github.com/jaki95/playlist-library/internal/loader"
	"github.com/jaki95/playlist-library/internal/playlist"
	"github.com/jaki95/playlist-library/internal/progress"
)

// Library is an ordered collection of playlists addressed by index.
// It is not safe for concurrent use.
type Library struct {
	importer  loader.Importer
	rng       playlist.Rand
	tracker   *progress.ProgressTracker
	playlists []*playlist.Playlist
}

type Option func(*Library)

// WithRand sets the random source used by ShufflePlaylist.
func WithRand(rng playlist.Rand) Option {
	return func(l *Library) {
		l.rng = rng
	}
}

// WithProgress reports AddAllPlaylists progress to tracker.
func WithProgress(tracker *progress.ProgressTracker) Option {
	return func(l *Library) {
		l.tracker = tracker
	}
}

// New creates an empty library that loads playlists with importer.
func New(importer loader.Importer, opts ...Option) *Library {
	l := &Library{importer: importer}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = playlist.NewRand(0)
	}
	return l
}

// Len returns the number of playlists.
func (l *Library) Len() int {
	return len(l.playlists)
}

// Playlists returns the playlists in index order.
func (l *Library) Playlists() []*playlist.Playlist {
	out := make([]*playlist.Playlist, len(l.playlists))
	copy(out, l.playlists)
	return out
}

// Playlist resolves the playlist at index.
func (l *Library) Playlist(index int) (*playlist.Playlist, error) {
	if index < 0 || index >= len(l.playlists) {
		return nil, fmt.Errorf("%w: %d (library has %d)", ErrInvalidIndex, index, len(l.playlists))
	}
	return l.playlists[index], nil
}

// Add puts p at index. An index at or past the end appends.
func (l *Library) Add(index int, p *playlist.Playlist) error {
	if p == nil {
		return ErrNilPlaylist
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if index >= len(l.playlists) {
		l.playlists = append(l.playlists, p)
		return nil
	}
	l.playlists = append(l.playlists, nil)
	copy(l.playlists[index+1:], l.playlists[index:])
	l.playlists[index] = p
	return nil
}

// AddPlaylist loads a playlist from source and puts it at index.
func (l *Library) AddPlaylist(ctx context.Context, source string, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	p, err := l.importer.Import(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load playlist %s: %w", source, err)
	}
	slog.Debug("Playlist loaded", "source", source, "songs", p.Size(), "index", index)
	return l.Add(index, p)
}

// AddAllPlaylists loads each source in order and appends it, so the i-th
// source of an empty library ends up at index i.
func (l *Library) AddAllPlaylists(ctx context.Context, sources []string) error {
	l.report(func(t *progress.ProgressTracker) {
		t.UpdateProgress(progress.StageLoading, 0, fmt.Sprintf("Loading %d playlist(s)", len(sources)))
	})

	for i, source := range sources {
		index := len(l.playlists)
		if err := l.AddPlaylist(ctx, source, index); err != nil {
			l.report(func(t *progress.ProgressTracker) { t.SetError(err) })
			return err
		}
		l.report(func(t *progress.ProgressTracker) {
			t.UpdatePlaylistProgress(i, len(sources), source, l.playlists[index].Size())
		})
	}

	l.report(func(t *progress.ProgressTracker) {
		t.UpdateProgress(progress.StageComplete, 100, "Library loaded")
	})
	return nil
}

func (l *Library) report(update func(*progress.ProgressTracker)) {
	if l.tracker != nil {
		update(l.tracker)
	}
}

// RemovePlaylist deletes the playlist at index. It returns false if the
// index is out of bounds.
func (l *Library) RemovePlaylist(index int) bool {
	if index < 0 || index >= len(l.playlists) {
		return false
	}
	l.playlists = append(l.playlists[:index], l.playlists[index+1:]...)
	return true
}

// InsertSong adds song at the 1-based position of the playlist at index.
func (l *Library) InsertSong(index, position int, song domain.Song) bool {
	p, err := l.Playlist(index)
	if err != nil {
		slog.Debug("Insert rejected", "index", index, "error", err)
		return false
	}
	if err := p.Insert(position, song); err != nil {
		slog.Debug("Insert rejected", "index", index, "position", position, "error", err)
		return false
	}
	return true
}

// RemoveSong deletes the first occurrence of song from the playlist at index.
func (l *Library) RemoveSong(index int, song domain.Song) bool {
	p, err := l.Playlist(index)
	if err != nil {
		slog.Debug("Remove rejected", "index", index, "error", err)
		return false
	}
	if err := p.Remove(song); err != nil {
		if !errors.Is(err, playlist.ErrSongNotFound) {
			slog.Warn("Remove failed", "index", index, "error", err)
		}
		return false
	}
	return true
}

// ReversePlaylist reverses the playlist at index.
func (l *Library) ReversePlaylist(index int) error {
	p, err := l.Playlist(index)
	if err != nil {
		return err
	}
	p.Reverse()
	return nil
}

// MergePlaylists merges two playlists that are each sorted by non-increasing
// popularity. The result is stored at the lower index and the playlist at
// the higher index is removed. On equal popularity, songs from the lower
// index come first.
func (l *Library) MergePlaylists(index1, index2 int) error {
	if index1 == index2 {
		return fmt.Errorf("%w: cannot merge playlist %d with itself", ErrInvalidIndex, index1)
	}
	low, high := min(index1, index2), max(index1, index2)

	first, err := l.Playlist(low)
	if err != nil {
		return err
	}
	second, err := l.Playlist(high)
	if err != nil {
		return err
	}

	first.Merge(second)
	l.RemovePlaylist(high)
	return nil
}

// ShufflePlaylist shuffles the playlist at index with the library's random
// source.
func (l *Library) ShufflePlaylist(index int) error {
	p, err := l.Playlist(index)
	if err != nil {
		return err
	}
	return p.Shuffle(l.rng)
}

// SortPlaylist sorts the playlist at index by non-increasing popularity.
func (l *Library) SortPlaylist(index int) error {
	p, err := l.Playlist(index)
	if err != nil {
		return err
	}
	p.Sort()
	return nil
}
