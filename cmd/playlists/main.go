package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/jaki95/playlist-library/config"
	"github.com/jaki95/playlist-library/internal/library"
	"github.com/jaki95/playlist-library/internal/loader"
	"github.com/jaki95/playlist-library/internal/playlist"
	"github.com/jaki95/playlist-library/internal/printer"
	"github.com/jaki95/playlist-library/internal/progress"
	"github.com/jaki95/playlist-library/internal/storage"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to the configuration file")
	var opts options
	flag.StringVar(&opts.op, "op", opPrint, "Operation: print, insert, remove, reverse, merge, shuffle, sort")
	flag.IntVar(&opts.index, "index", 0, "Index of the playlist to operate on")
	flag.IntVar(&opts.with, "with", 1, "Index of the second playlist (merge)")
	flag.IntVar(&opts.position, "position", 1, "1-based position of the new song (insert)")
	flag.StringVar(&opts.song, "song", "", "Song record title,artist,year,popularity,link (insert, remove)")
	save := flag.String("save", "", "Export the resulting playlist under this name")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s: [flags] [playlist sources...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := run(cfg, opts, *save, flag.Args()); err != nil {
		slog.Error("Playlist operation failed", "op", opts.op, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts options, save string, extraSources []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer store.Close()

	sources := append(append([]string{}, cfg.Playlists...), extraSources...)

	bar := progressbar.NewOptions(
		len(sources),
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Loading playlists..."),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)

	tracker := progress.NewProgressTracker()
	tracker.AddListener(func(event progress.Event) {
		if event.PlaylistDetails != nil {
			bar.Add(1)
		}
		slog.Debug("Library progress", "event", event)
	})

	lib := library.New(
		loader.NewImporter(store),
		library.WithRand(playlist.NewRand(cfg.Shuffle.Seed)),
		library.WithProgress(tracker),
	)
	if err := lib.AddAllPlaylists(ctx, sources); err != nil {
		return err
	}
	bar.Finish()

	slog.Info("Library loaded", "playlists", lib.Len())

	target, err := apply(lib, opts)
	if err != nil {
		return err
	}

	printer.PrintLibrary(os.Stdout, lib.Playlists())

	if save == "" {
		return nil
	}
	p, err := lib.Playlist(target)
	if err != nil {
		return err
	}
	return loader.Save(store, save, p)
}
