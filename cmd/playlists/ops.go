package main

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jaki95/playlist-library/internal/domain"
	"github.com/jaki95/playlist-library/internal/library"
	"github.com/jaki95/playlist-library/internal/loader"
)

const (
	opPrint   = "print"
	opInsert  = "insert"
	opRemove  = "remove"
	opReverse = "reverse"
	opMerge   = "merge"
	opShuffle = "shuffle"
	opSort    = "sort"
)

type options struct {
	op       string
	index    int
	with     int
	position int
	song     string
}

// apply runs the requested operation and returns the index of the playlist
// it produced.
func apply(lib *library.Library, opts options) (int, error) {
	switch opts.op {
	case opPrint:
		return opts.index, nil
	case opInsert:
		song, err := parseSong(opts.song)
		if err != nil {
			return 0, err
		}
		if !lib.InsertSong(opts.index, opts.position, song) {
			return 0, fmt.Errorf("could not insert %q at position %d of playlist %d", song.Title, opts.position, opts.index)
		}
		return opts.index, nil
	case opRemove:
		song, err := parseSong(opts.song)
		if err != nil {
			return 0, err
		}
		if !lib.RemoveSong(opts.index, song) {
			return 0, fmt.Errorf("song %q not found in playlist %d", song.Title, opts.index)
		}
		return opts.index, nil
	case opReverse:
		return opts.index, lib.ReversePlaylist(opts.index)
	case opMerge:
		return min(opts.index, opts.with), lib.MergePlaylists(opts.index, opts.with)
	case opShuffle:
		return opts.index, lib.ShufflePlaylist(opts.index)
	case opSort:
		return opts.index, lib.SortPlaylist(opts.index)
	default:
		return 0, fmt.Errorf("unknown operation: %s", opts.op)
	}
}

func parseSong(record string) (domain.Song, error) {
	if record == "" {
		return domain.Song{}, fmt.Errorf("missing -song")
	}
	reader := csv.NewReader(strings.NewReader(record))
	reader.FieldsPerRecord = -1
	fields, err := reader.Read()
	if err != nil {
		return domain.Song{}, fmt.Errorf("invalid -song: %w", err)
	}
	return loader.ParseRecord(fields)
}
