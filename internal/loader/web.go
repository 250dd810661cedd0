package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"github.com/jaki95/playlist-library/internal/playlist"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// WebImporter scrapes a playlist table from an http(s) page.
type WebImporter struct {
	userAgent string
	timeout   time.Duration
}

func NewWebImporter() *WebImporter {
	return &WebImporter{
		userAgent: defaultUserAgent,
		timeout:   30 * time.Second,
	}
}

func (w *WebImporter) Name() string {
	return WebSource
}

func (w *WebImporter) Supports(source string) bool {
	return isURL(source)
}

func (w *WebImporter) Import(ctx context.Context, url string) (*playlist.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
		colly.UserAgent(w.userAgent),
	)
	c.SetRequestTimeout(w.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		slog.Warn("Playlist request failed", "url", r.Request.URL.String(), "status", r.StatusCode, "error", err)
		scrapeErr = err
	})

	b := &builder{source: url}
	row := 0
	c.OnHTML(songRowSelector, func(e *colly.HTMLElement) {
		row++
		var fields []string
		e.ForEach("td", func(_ int, cell *colly.HTMLElement) {
			if href := cell.ChildAttr("a", "href"); href != "" {
				fields = append(fields, strings.TrimSpace(href))
				return
			}
			fields = append(fields, strings.TrimSpace(cell.Text))
		})
		if len(fields) == 0 {
			return
		}
		b.add(row, fields)
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if scrapeErr != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, scrapeErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return b.playlist(), nil
}
