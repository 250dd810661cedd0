package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jaki95/playlist-library/internal/playlist"
	"github.com/jaki95/playlist-library/internal/storage"
)

// CSVImporter reads one song per line in the form
// title,artist,year,popularity,link.
type CSVImporter struct {
	store storage.Storage
}

func NewCSVImporter(store storage.Storage) *CSVImporter {
	return &CSVImporter{store: store}
}

func (c *CSVImporter) Name() string {
	return CSVSource
}

func (c *CSVImporter) Supports(source string) bool {
	return !isURL(source) && !isHTML(source)
}

func (c *CSVImporter) Import(ctx context.Context, source string) (*playlist.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := c.store.GetReader(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist file: %w", err)
	}
	defer file.Close()

	return ReadCSV(ctx, source, file)
}

// ReadCSV builds a playlist from the records in r. Lines with the wrong
// number of fields or non-numeric year/popularity are skipped.
func ReadCSV(ctx context.Context, source string, r io.Reader) (*playlist.Playlist, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	b := &builder{source: source}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			b.skipped++
			slog.Debug("Skipping unreadable record", "source", source, "line", parseErr.Line, "error", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		b.add(line, record)
	}

	return b.playlist(), nil
}

// WriteCSV writes the playlist from head to tail in the record format read
// by ReadCSV.
func WriteCSV(w io.Writer, p *playlist.Playlist) error {
	writer := csv.NewWriter(w)
	for _, song := range p.Songs() {
		record := []string{
			song.Title,
			song.Artist,
			strconv.Itoa(song.Year),
			strconv.Itoa(song.Popularity),
			song.Link,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save exports the playlist to name through store.
func Save(store storage.Storage, name string, p *playlist.Playlist) error {
	w, err := store.GetWriter(name)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", name, err)
	}
	if err := WriteCSV(w, p); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	slog.Info("Playlist saved", "name", name, "songs", p.Size())
	return nil
}
