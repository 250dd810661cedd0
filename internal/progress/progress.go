package progress

import (
	"sync"
	"time"
)

// Stage represents the current stage of loading a library
type Stage string

const (
	StageInitializing Stage = "initializing"
	StageLoading      Stage = "loading"
	StageComplete     Stage = "complete"
	StageError        Stage = "error"
)

// Event represents a progress event
type Event struct {
	Stage           Stage            `json:"stage"`
	Progress        float64          `json:"progress"`
	Message         string           `json:"message"`
	Timestamp       time.Time        `json:"timestamp"`
	PlaylistDetails *PlaylistDetails `json:"playlistDetails,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// PlaylistDetails describes the playlist that was just loaded
type PlaylistDetails struct {
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	Source string `json:"source"`
	Songs  int    `json:"songs"`
}

// ProgressTracker manages progress tracking
type ProgressTracker struct {
	mu              sync.RWMutex
	stage           Stage
	progress        float64
	message         string
	playlistDetails *PlaylistDetails
	err             error
	listeners       []func(Event)
}

// NewProgressTracker creates a new ProgressTracker instance
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		stage:     StageInitializing,
		listeners: make([]func(Event), 0),
	}
}

// AddListener adds a new progress event listener
func (pt *ProgressTracker) AddListener(listener func(Event)) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.listeners = append(pt.listeners, listener)
}

// UpdateProgress updates the progress and notifies all listeners
func (pt *ProgressTracker) UpdateProgress(stage Stage, progress float64, message string) {
	pt.mu.Lock()
	pt.stage = stage
	pt.progress = progress
	pt.message = message
	pt.mu.Unlock()

	pt.notifyListeners(Event{
		Stage:     stage,
		Progress:  progress,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// UpdatePlaylistProgress records that the playlist at index (of total) has
// been loaded from source.
func (pt *ProgressTracker) UpdatePlaylistProgress(index, total int, source string, songs int) {
	details := &PlaylistDetails{
		Index:  index,
		Total:  total,
		Source: source,
		Songs:  songs,
	}

	pt.mu.Lock()
	pt.stage = StageLoading
	pt.playlistDetails = details
	if total > 0 {
		pt.progress = float64(index+1) * 100 / float64(total)
	}
	event := Event{
		Stage:           pt.stage,
		Progress:        pt.progress,
		Message:         pt.message,
		Timestamp:       time.Now(),
		PlaylistDetails: details,
	}
	pt.mu.Unlock()

	pt.notifyListeners(event)
}

// SetError sets an error state and notifies all listeners
func (pt *ProgressTracker) SetError(err error) {
	pt.mu.Lock()
	pt.stage = StageError
	pt.err = err
	progress := pt.progress
	pt.mu.Unlock()

	pt.notifyListeners(Event{
		Stage:     StageError,
		Progress:  progress,
		Message:   err.Error(),
		Timestamp: time.Now(),
		Error:     err.Error(),
	})
}

// notifyListeners sends an event to all registered listeners
func (pt *ProgressTracker) notifyListeners(event Event) {
	pt.mu.RLock()
	listeners := make([]func(Event), len(pt.listeners))
	copy(listeners, pt.listeners)
	pt.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// GetCurrentState returns the current progress state
func (pt *ProgressTracker) GetCurrentState() Event {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	event := Event{
		Stage:           pt.stage,
		Progress:        pt.progress,
		Message:         pt.message,
		Timestamp:       time.Now(),
		PlaylistDetails: pt.playlistDetails,
	}
	if pt.err != nil {
		event.Error = pt.err.Error()
	}
	return event
}
