// Package imageload decodes decoration images off the event thread.
//
// Loads are keyed by a monotonically increasing request id per region and
// resolve last-write-wins: a completion that is no longer the latest
// outstanding request for its region is discarded silently, so a slow first
// upload can never overwrite a faster second one.
package imageload

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"

	_ "golang.org/x/image/tiff"
)

// Completion is the result of one load request.
type Completion struct {
	RegionID  string
	RequestID uint64
	Image     image.Image
	Err       error
}

// Loader tracks the latest outstanding request per region and funnels
// accepted completions into a single sink.
type Loader struct {
	mu     sync.Mutex
	nextID uint64
	latest map[string]uint64

	// sink receives accepted completions, possibly on a decode goroutine;
	// the app state serializes application behind its own lock.
	sink func(Completion)
}

// New creates a Loader delivering accepted completions to sink.
func New(sink func(Completion)) *Loader {
	return &Loader{
		latest: make(map[string]uint64),
		sink:   sink,
	}
}

// Begin allocates a request id and marks it as the latest for the region.
// Any earlier outstanding request for that region is now stale.
func (l *Loader) Begin(regionID string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.latest[regionID] = l.nextID
	return l.nextID
}

// Complete resolves a request. Returns true if the completion was accepted
// and delivered, false if it was stale and dropped.
func (l *Loader) Complete(c Completion) bool {
	l.mu.Lock()
	current := l.latest[c.RegionID] == c.RequestID
	if current {
		delete(l.latest, c.RegionID)
	}
	l.mu.Unlock()

	if !current {
		// Stale by design, not an error.
		return false
	}
	if l.sink != nil {
		l.sink(c)
	}
	return true
}

// Cancel discards the outstanding request for a region, if any. A later
// completion for it will be dropped.
func (l *Loader) Cancel(regionID string) {
	l.mu.Lock()
	delete(l.latest, regionID)
	l.mu.Unlock()
}

// Load decodes an image from r on a background goroutine and resolves the
// request. The returned id identifies the request in completions.
func (l *Loader) Load(regionID string, r io.Reader) uint64 {
	id := l.Begin(regionID)
	go func() {
		img, _, err := image.Decode(r)
		if err != nil {
			err = fmt.Errorf("decode image for region %q: %w", regionID, err)
		}
		l.Complete(Completion{RegionID: regionID, RequestID: id, Image: img, Err: err})
	}()
	return id
}

// LoadFile decodes an image file on a background goroutine and resolves
// the request.
func (l *Loader) LoadFile(regionID, path string) uint64 {
	id := l.Begin(regionID)
	go func() {
		c := Completion{RegionID: regionID, RequestID: id}
		f, err := os.Open(path)
		if err != nil {
			c.Err = fmt.Errorf("open image for region %q: %w", regionID, err)
			l.Complete(c)
			return
		}
		defer f.Close()

		c.Image, _, err = image.Decode(f)
		if err != nil {
			c.Err = fmt.Errorf("decode %s for region %q: %w", path, regionID, err)
		}
		l.Complete(c)
	}()
	return id
}
