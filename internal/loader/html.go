package loader

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jaki95/playlist-library/internal/playlist"
	"github.com/jaki95/playlist-library/internal/storage"
)

// songRowSelector matches the rows of an HTML playlist table. Each song row
// has five <td> cells in record order; header rows have none and are skipped.
const songRowSelector = "table tr"

// HTMLImporter reads a playlist from an HTML table stored as a file.
type HTMLImporter struct {
	store storage.Storage
}

func NewHTMLImporter(store storage.Storage) *HTMLImporter {
	return &HTMLImporter{store: store}
}

func (h *HTMLImporter) Name() string {
	return HTMLSource
}

func (h *HTMLImporter) Supports(source string) bool {
	return !isURL(source) && isHTML(source)
}

func (h *HTMLImporter) Import(ctx context.Context, source string) (*playlist.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := h.store.GetReader(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist page: %w", err)
	}
	defer file.Close()

	return ReadHTML(source, file)
}

// ReadHTML builds a playlist from the song table rows in r.
func ReadHTML(source string, r io.Reader) (*playlist.Playlist, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	b := &builder{source: source}
	doc.Find(songRowSelector).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		fields := cells.Map(func(_ int, cell *goquery.Selection) string {
			if href, ok := cell.Find("a").Attr("href"); ok {
				return strings.TrimSpace(href)
			}
			return strings.TrimSpace(cell.Text())
		})
		b.add(i+1, fields)
	})

	return b.playlist(), nil
}
