// Package app provides the owned application state and its event wiring.
package app

import (
	"image"
	"image/color"
	"io"
	"log"
	"sync"

	"garment-studio/internal/compositor"
	"garment-studio/internal/garment"
	"garment-studio/internal/gesture"
	"garment-studio/internal/imageload"
	"garment-studio/internal/noise"
	"garment-studio/internal/placement"
	"garment-studio/internal/projection"
)

// EventType identifies application events.
type EventType int

const (
	EventTextureUpdated EventType = iota
	EventViewChanged
	EventGarmentChanged
	EventImageLoaded
	EventPlacementChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State owns every mutable piece of the engine: the active garment's region
// table, the placement store, the gesture controller, the compositor, and
// the image loader. It is constructed explicitly and passed by pointer;
// there are no package-level singletons.
type State struct {
	mu sync.Mutex

	garmentType string
	regions     []garment.Region
	placements  *placement.Store
	baseColor   color.RGBA
	viewID      string

	comp    *compositor.Compositor
	loader  *imageload.Loader
	gest    *gesture.Controller
	texture *image.RGBA

	listenerMu sync.RWMutex
	listeners  map[EventType][]EventListener
}

// NewState creates the application state with session-random fabric grain.
func NewState() *State {
	return NewStateWithSeed(noise.NewRandom(), compositor.DefaultOptions())
}

// NewStateWithSeed creates the state over an explicit noise synthesizer and
// compositor options. Tests use this for reproducible rasters.
func NewStateWithSeed(n *noise.Synthesizer, opts compositor.Options) *State {
	regions, err := garment.RegionsFor(garment.DefaultType)
	if err != nil {
		// The default garment table is compiled in; this is unreachable
		// short of a broken build.
		panic(err)
	}

	s := &State{
		garmentType: garment.DefaultType,
		regions:     regions,
		placements:  placement.NewStore(regions),
		baseColor:   color.RGBA{R: 235, G: 235, B: 235, A: 255},
		viewID:      "front",
		comp:        compositor.New(n, opts),
		listeners:   make(map[EventType][]EventListener),
	}
	s.loader = imageload.New(s.applyLoad)
	s.gest = gesture.New(s, func(string) {
		s.Recomposite()
		s.Emit(EventPlacementChanged, nil)
	})
	return s
}

// UpdateFromGesture applies one gesture step to the placement store. Going
// through the state lock serializes drags against image-load completions
// arriving on decode goroutines.
func (s *State) UpdateFromGesture(regionID string, d placement.Delta) {
	s.mu.Lock()
	s.placements.UpdateFromGesture(regionID, d)
	s.mu.Unlock()
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.listenerMu.RLock()
	listeners := s.listeners[event]
	s.listenerMu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Gestures returns the gesture controller the UI feeds pointer events into.
func (s *State) Gestures() *gesture.Controller {
	return s.gest
}

// GarmentType returns the active garment type id.
func (s *State) GarmentType() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.garmentType
}

// Regions returns the active region table in draw order.
func (s *State) Regions() []garment.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regions
}

// ViewID returns the current raw camera-view id.
func (s *State) ViewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewID
}

// BaseColor returns the current base garment color.
func (s *State) BaseColor() color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseColor
}

// Placement returns a copy of a region's placement.
func (s *State) Placement(regionID string) (placement.Placement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placements.Get(regionID)
}

// SetGarment switches the active garment type, reseeding every placement.
// Unknown types fall back to the default garment with a warning so the
// viewer never ends up without regions.
func (s *State) SetGarment(garmentType string) {
	regions, err := garment.RegionsFor(garmentType)
	if err != nil {
		log.Printf("app: %v, falling back to %q", err, garment.DefaultType)
		garmentType = garment.DefaultType
		regions, _ = garment.RegionsFor(garmentType)
	}

	s.mu.Lock()
	s.garmentType = garmentType
	s.regions = regions
	s.placements.Reset(regions)
	s.mu.Unlock()

	s.gest.Cancel()
	s.Emit(EventGarmentChanged, garmentType)
	s.Recomposite()
}

// SetView records a camera-view change and republishes overlay projections.
func (s *State) SetView(viewID string) {
	s.mu.Lock()
	s.viewID = viewID
	s.mu.Unlock()
	s.Emit(EventViewChanged, s.Projections())
}

// Projections returns the overlay descriptors for the current camera view,
// in region draw order.
func (s *State) Projections() []projection.Projection {
	s.mu.Lock()
	viewID := s.viewID
	regions := s.regions
	s.mu.Unlock()
	return projection.ProjectID(viewID, regions)
}

// SetBaseColor changes the base garment color and recomposites.
func (s *State) SetBaseColor(c color.Color) {
	r, g, b, a := c.RGBA()
	s.mu.Lock()
	s.baseColor = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	s.mu.Unlock()
	s.Recomposite()
}

// LoadImage starts an async decode for a region. The placement updates only
// if this request is still the latest when the decode finishes.
func (s *State) LoadImage(regionID string, r io.Reader) uint64 {
	return s.loader.Load(regionID, r)
}

// LoadImageFile starts an async decode of an image file for a region.
func (s *State) LoadImageFile(regionID, path string) uint64 {
	return s.loader.LoadFile(regionID, path)
}

// applyLoad is the loader sink; stale completions never reach it.
func (s *State) applyLoad(c imageload.Completion) {
	if c.Err != nil {
		log.Printf("app: image load failed, region %q stays empty: %v", c.RegionID, c.Err)
		s.Emit(EventImageLoaded, c)
		return
	}

	s.mu.Lock()
	s.placements.SetImage(c.RegionID, c.Image)
	s.mu.Unlock()

	s.Emit(EventImageLoaded, c)
	s.Recomposite()
}

// SetImage places an already-decoded image on a region.
func (s *State) SetImage(regionID string, img image.Image) {
	s.mu.Lock()
	s.placements.SetImage(regionID, img)
	s.mu.Unlock()
	s.Recomposite()
}

// ClearRegion removes a region's decoration (placement.All clears every
// region) and cancels any outstanding load for it.
func (s *State) ClearRegion(regionID string) {
	s.loader.Cancel(regionID)
	s.mu.Lock()
	s.placements.Clear(regionID)
	s.mu.Unlock()
	s.Recomposite()
}

// ApplyPreset applies a named placement preset to a region.
func (s *State) ApplyPreset(regionID, presetName string) {
	s.mu.Lock()
	s.placements.ApplyPreset(regionID, presetName)
	s.mu.Unlock()
	s.Recomposite()
}

// Texture returns the most recently composed raster.
func (s *State) Texture() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texture
}

// Recomposite regenerates the combined raster and, when it changed, hands
// it to EventTextureUpdated listeners (the 3D renderer binds it as the
// material color map).
func (s *State) Recomposite() {
	s.mu.Lock()
	result := s.comp.Compose(s.garmentType, s.regions, s.placements.Snapshot(), s.baseColor, s.placements.Version())
	s.texture = result.Image
	s.mu.Unlock()

	if result.Updated {
		s.Emit(EventTextureUpdated, result.Image)
	}
}
