package loader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/playlist-library/internal/domain"
	"github.com/jaki95/playlist-library/internal/storage"
)

const sampleRecords = `Yellow,Coldplay,2000,82,yellow.wav
Broken line,Nobody,2001
Hey Ya!,OutKast,2003,79,heya.wav
Bad Year,Someone,two thousand,50,bad.wav
Mr. Brightside,The Killers,2004,88,
`

func newStore(t *testing.T) (storage.Storage, string) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	store, err := storage.NewLocalFileStorage(dataDir, filepath.Join(root, "output"))
	require.NoError(t, err)
	return store, dataDir
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		expected domain.Song
		wantErr  bool
	}{
		{
			name:     "valid",
			fields:   []string{"Yellow", "Coldplay", "2000", "82", "yellow.wav"},
			expected: domain.NewSong("Yellow", "Coldplay", 2000, 82, "yellow.wav"),
		},
		{
			name:     "numbers with spaces",
			fields:   []string{"Yellow", "Coldplay", " 2000", "82 ", ""},
			expected: domain.NewSong("Yellow", "Coldplay", 2000, 82, ""),
		},
		{name: "too few fields", fields: []string{"Yellow", "Coldplay", "2000", "82"}, wantErr: true},
		{name: "too many fields", fields: []string{"Yellow", "Coldplay", "2000", "82", "a", "b"}, wantErr: true},
		{name: "bad year", fields: []string{"Yellow", "Coldplay", "y2k", "82", ""}, wantErr: true},
		{name: "bad popularity", fields: []string{"Yellow", "Coldplay", "2000", "high", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song, err := ParseRecord(tt.fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, song)
		})
	}
}

func TestReadCSVSkipsMalformedRecords(t *testing.T) {
	p, err := ReadCSV(context.Background(), "sample", strings.NewReader(sampleRecords))

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, []domain.Song{
		domain.NewSong("Yellow", "Coldplay", 2000, 82, "yellow.wav"),
		domain.NewSong("Hey Ya!", "OutKast", 2003, 79, "heya.wav"),
		domain.NewSong("Mr. Brightside", "The Killers", 2004, 88, ""),
	}, p.Songs())
	assert.Equal(t, "Mr. Brightside", p.Last().Song().Title)
}

func TestReadCSVEmpty(t *testing.T) {
	p, err := ReadCSV(context.Background(), "empty", strings.NewReader(""))

	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.NoError(t, p.Validate())
}

func TestReadCSVCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadCSV(ctx, "sample", strings.NewReader(sampleRecords))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	original, err := ReadCSV(context.Background(), "sample", strings.NewReader(sampleRecords))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, original))
	assert.Equal(t, "Yellow,Coldplay,2000,82,yellow.wav\nHey Ya!,OutKast,2003,79,heya.wav\nMr. Brightside,The Killers,2004,88,\n", buf.String())

	reloaded, err := ReadCSV(context.Background(), "buffer", &buf)
	require.NoError(t, err)
	assert.Equal(t, original.Songs(), reloaded.Songs())
}

func TestCSVImporter(t *testing.T) {
	store, dataDir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "2000s.csv"), []byte(sampleRecords), 0644))

	importer := NewCSVImporter(store)
	assert.True(t, importer.Supports("2000s.csv"))
	assert.True(t, importer.Supports("playlists/rock"))
	assert.False(t, importer.Supports("rock.html"))
	assert.False(t, importer.Supports("https://example.com/rock"))

	p, err := importer.Import(context.Background(), "2000s.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())

	_, err = importer.Import(context.Background(), "missing.csv")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	store, dataDir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "2000s.csv"), []byte(sampleRecords), 0644))

	p, err := NewCSVImporter(store).Import(context.Background(), "2000s.csv")
	require.NoError(t, err)
	p.Sort()

	require.NoError(t, Save(store, "2000s-sorted.csv", p))

	written, err := os.ReadFile(filepath.Join(filepath.Dir(dataDir), "output", "2000s-sorted.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Mr. Brightside,The Killers,2004,88,\nYellow,Coldplay,2000,82,yellow.wav\nHey Ya!,OutKast,2003,79,heya.wav\n", string(written))
}

const samplePage = `<html><body>
<table>
  <tr><th>Title</th><th>Artist</th><th>Year</th><th>Popularity</th><th>Link</th></tr>
  <tr><td>Yellow</td><td>Coldplay</td><td>2000</td><td>82</td><td><a href="yellow.wav">play</a></td></tr>
  <tr><td>Broken</td><td>Nobody</td><td>2001</td></tr>
  <tr><td> Hey Ya! </td><td>OutKast</td><td>2003</td><td>79</td><td>heya.wav</td></tr>
  <tr><td>Mr. Brightside</td><td>The Killers</td><td>?</td><td>88</td><td></td></tr>
</table>
</body></html>`

func TestReadHTML(t *testing.T) {
	p, err := ReadHTML("page", strings.NewReader(samplePage))

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, []domain.Song{
		domain.NewSong("Yellow", "Coldplay", 2000, 82, "yellow.wav"),
		domain.NewSong("Hey Ya!", "OutKast", 2003, 79, "heya.wav"),
	}, p.Songs())
}

func TestHTMLImporter(t *testing.T) {
	store, dataDir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "rock.html"), []byte(samplePage), 0644))

	importer := NewHTMLImporter(store)
	assert.True(t, importer.Supports("rock.html"))
	assert.True(t, importer.Supports("ROCK.HTM"))
	assert.False(t, importer.Supports("rock.csv"))
	assert.False(t, importer.Supports("https://example.com/rock.html"))

	p, err := importer.Import(context.Background(), "rock.html")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Size())
}

func TestWebImporter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlists/rock" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, samplePage)
	}))
	defer server.Close()

	importer := NewWebImporter()
	assert.True(t, importer.Supports(server.URL))
	assert.False(t, importer.Supports("rock.html"))

	p, err := importer.Import(context.Background(), server.URL+"/playlists/rock")
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, []string{"Yellow", "Hey Ya!"}, []string{p.Songs()[0].Title, p.Songs()[1].Title})
	assert.Equal(t, "yellow.wav", p.First().Song().Link)

	_, err = importer.Import(context.Background(), server.URL+"/missing")
	assert.Error(t, err)
}

func TestCompositeImporter(t *testing.T) {
	store, dataDir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "2000s.csv"), []byte(sampleRecords), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "rock.html"), []byte(samplePage), 0644))

	importer := NewImporter(store)
	assert.Equal(t, "composite", importer.Name())

	p, err := importer.Import(context.Background(), "2000s.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())

	p, err = importer.Import(context.Background(), "rock.html")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Size())

	_, err = importer.Import(context.Background(), "missing.csv")
	assert.ErrorContains(t, err, "csv")

	_, err = NewCompositeImporter().Import(context.Background(), "2000s.csv")
	assert.ErrorIs(t, err, ErrUnsupported)
}
