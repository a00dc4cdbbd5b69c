// Package view owns the state of the dashboard between mount and unmount.
//
// The hosting loop calls Poll once per tick; that is the only place the
// retrieval result is committed, so every state change happens on the loop's
// goroutine. The retrieval itself runs on its own goroutine and only ever
// sends its outcome on a channel.
package view

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/temidaradev/ebicrypto/internal/chart"
	"github.com/temidaradev/ebicrypto/internal/market"
	"github.com/temidaradev/ebicrypto/internal/selection"
)

var (
	ErrMounted   = errors.New("view already mounted")
	ErrUnmounted = errors.New("view unmounted")
	ErrNotLoaded = errors.New("asset list not loaded yet")
)

// Phase is the coarse state of the view.
type Phase int

const (
	// Initial: nothing retrieved, nothing selected.
	Initial Phase = iota
	// Loaded: retrieval settled, nothing selected. A failed retrieval also
	// lands here with an empty list.
	Loaded
	// Detailed: an asset is selected.
	Detailed
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Loaded:
		return "loaded"
	case Detailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// Loader provides the asset list.
type Loader interface {
	Load(ctx context.Context) (market.Collection, error)
}

type result struct {
	assets market.Collection
	err    error
}

// View is one mounted instance of the dashboard.
type View struct {
	id     string
	loader Loader
	log    zerolog.Logger

	mu        sync.Mutex
	phase     Phase
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc
	results   chan result
	assets    market.Collection
	selection selection.State
}

// New returns an unmounted view.
func New(loader Loader, log zerolog.Logger) *View {
	id := uuid.NewString()
	return &View{
		id:      id,
		loader:  loader,
		log:     log.With().Str("view", id).Logger(),
		results: make(chan result, 1),
	}
}

// ID identifies this view instance in logs.
func (v *View) ID() string {
	return v.id
}

// Mount starts the one retrieval of this view's lifetime. It does not wait
// for it; Poll commits the outcome.
func (v *View) Mount(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted {
		return ErrUnmounted
	}
	if v.mounted {
		return ErrMounted
	}
	v.mounted = true

	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	results := v.results
	loader := v.loader

	v.log.Debug().Msg("view mounted, requesting assets")
	go func() {
		c, err := loader.Load(ctx)
		results <- result{assets: c, err: err}
	}()
	return nil
}

// Poll commits a settled retrieval. It never blocks and reports whether it
// committed anything. Results arriving after Unmount are dropped.
func (v *View) Poll() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted || v.phase != Initial {
		return false
	}

	select {
	case r := <-v.results:
		if r.err != nil {
			v.log.Warn().Err(r.err).Msg("asset retrieval failed, showing empty list")
		}
		v.assets = r.assets
		v.phase = Loaded
		v.log.Info().Int("assets", v.assets.Len()).Msg("assets loaded")
		return true
	default:
		return false
	}
}

// Select makes the asset at index the selection, replacing any previous one.
func (v *View) Select(index int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.selectable(); err != nil {
		return err
	}
	if err := v.selection.Select(v.assets, index); err != nil {
		return err
	}
	v.phase = Detailed
	v.log.Debug().Int("index", index).Str("asset", v.assets.At(index).ID).Msg("asset selected")
	return nil
}

// SelectID is Select by asset identifier.
func (v *View) SelectID(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.selectable(); err != nil {
		return err
	}
	if err := v.selection.SelectID(v.assets, id); err != nil {
		return err
	}
	v.phase = Detailed
	v.log.Debug().Str("asset", id).Msg("asset selected")
	return nil
}

func (v *View) selectable() error {
	if !v.mounted {
		return ErrUnmounted
	}
	if v.phase == Initial {
		return ErrNotLoaded
	}
	return nil
}

// Unmount cancels an in-flight retrieval and drops all state. The view
// cannot be mounted again.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted {
		v.unmounted = true
		return
	}
	v.cancel()
	v.mounted = false
	v.unmounted = true
	v.selection.Clear()
	v.assets = market.Collection{}
	v.log.Debug().Msg("view unmounted")
}

func (v *View) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// Assets returns the loaded assets in server order.
func (v *View) Assets() []market.Asset {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.assets.Assets()
}

// Selected returns the selected asset, if any.
func (v *View) Selected() (market.Asset, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Resolve(v.assets)
}

// SelectedIndex returns the position of the selected asset, or -1.
func (v *View) SelectedIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selection.Resolve(v.assets); !ok {
		return -1
	}
	return v.selection.Index()
}

// Series is the chart series of the current selection; empty without one.
func (v *View) Series() chart.Series {
	a, ok := v.Selected()
	if !ok {
		return chart.Project(nil)
	}
	return chart.Project(&a)
}
