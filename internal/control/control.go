// Package control turns one frame of user input into view changes. It knows
// nothing about the drawing library; the renderer samples the devices and
// passes an Input each tick.
package control

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/temidaradev/ebicrypto/internal/display"
	"github.com/temidaradev/ebicrypto/internal/layout"
	"github.com/temidaradev/ebicrypto/internal/view"
)

// ErrClosed is returned by Update once the run context is done.
var ErrClosed = errors.New("dashboard closed")

const scrollStep = 40.0

// Metrics are the text sizes the layout depends on, in screen pixels.
type Metrics struct {
	Scale       float64
	LineHeight  float64
	TitleHeight float64
}

// Input is what happened during one tick.
type Input struct {
	Width, Height int
	WheelY        float64 // positive scrolls up
	Clicked       bool
	X, Y          int // cursor, in screen coordinates
}

// Controller applies input to a view and keeps the scroll position.
type Controller struct {
	ctx     context.Context
	view    *view.View
	metrics Metrics
	log     zerolog.Logger

	width, height int
	scroll        float64
	lastPhase     view.Phase
}

func New(ctx context.Context, v *view.View, m Metrics, log zerolog.Logger) *Controller {
	return &Controller{ctx: ctx, view: v, metrics: m, log: log}
}

// Update runs one tick: commit a settled retrieval, scroll, then resolve a
// click against the card grid as currently scrolled.
func (c *Controller) Update(in Input) error {
	if c.ctx.Err() != nil {
		return ErrClosed
	}
	c.width, c.height = in.Width, in.Height

	if c.view.Poll() {
		c.log.Debug().Int("assets", len(c.view.Assets())).Msg("asset list committed")
	}

	page, lay := c.Frame()
	c.scroll -= in.WheelY * scrollStep * c.scale()
	c.scroll = layout.ClampScroll(c.scroll, lay.Height, c.height)

	if in.Clicked {
		if i := layout.HitTest(lay.Cards, in.X, in.Y+int(c.scroll)); i >= 0 {
			if err := c.view.Select(i); err != nil {
				c.log.Warn().Err(err).Int("index", i).Msg("selection rejected")
			} else {
				c.log.Info().Str("asset", page.Cards[i].ID).Int("index", i).Msg("asset clicked")
			}
		}
	}

	if p := c.view.Phase(); p != c.lastPhase {
		c.log.Debug().Stringer("from", c.lastPhase).Stringer("to", p).Msg("phase changed")
		c.lastPhase = p
	}
	return nil
}

// Frame is the page and its placement for the last known screen size, in
// content coordinates.
func (c *Controller) Frame() (display.Page, layout.Page) {
	page := display.Build(c.view)
	return page, layout.Compute(layout.Params{
		Width:       c.width,
		Height:      c.height,
		Scale:       c.metrics.Scale,
		LineHeight:  c.metrics.LineHeight,
		TitleHeight: c.metrics.TitleHeight,
		Cards:       len(page.Cards),
		Details:     page.Details != nil,
	})
}

// Scroll is the vertical offset of the content, in pixels.
func (c *Controller) Scroll() float64 {
	return c.scroll
}

func (c *Controller) scale() float64 {
	if c.metrics.Scale <= 0 {
		return 1
	}
	return c.metrics.Scale
}
