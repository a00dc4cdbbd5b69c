// Package layout places the dashboard's blocks on screen. All values are in
// screen pixels; the caller applies the device scale once through Params.
package layout

import (
	"image"
	"math"
)

// Columns is the number of cards per row.
const Columns = 3

// Params describes the screen and the content to place.
type Params struct {
	Width, Height int
	Scale         float64
	LineHeight    float64 // height of one line of body text
	TitleHeight   float64 // height of one line of heading text
	Cards         int
	Details       bool
}

// Page holds the position of every block, in content coordinates (before
// scrolling).
type Page struct {
	Badge    image.Point
	Title    image.Point
	Subtitle image.Point

	Cards []image.Rectangle

	Heading         image.Point
	DetailsSubtitle image.Point
	Chart           image.Rectangle

	Height int // total content height
}

// Compute lays out a page for p.
func Compute(p Params) Page {
	s := p.Scale
	if s <= 0 {
		s = 1
	}
	pad := 10.0 * s
	gap := 20.0 * s
	chartPadding := 30.0 * s
	minChart := 240.0 * s

	var page Page
	y := pad

	page.Badge = image.Pt(int(pad), int(y))
	y += p.LineHeight + gap/2
	page.Title = image.Pt(int(pad), int(y))
	y += p.TitleHeight
	page.Subtitle = image.Pt(int(pad), int(y))
	y += p.LineHeight + gap

	cardW := (float64(p.Width) - 2*pad - float64(Columns-1)*gap) / Columns
	if cardW < 1 {
		cardW = 1
	}
	cardH := 3*p.LineHeight + 2*pad
	page.Cards = make([]image.Rectangle, p.Cards)
	for i := range page.Cards {
		col := i % Columns
		row := i / Columns
		x0 := pad + float64(col)*(cardW+gap)
		y0 := y + float64(row)*(cardH+gap)
		page.Cards[i] = image.Rect(int(x0), int(y0), int(x0+cardW), int(y0+cardH))
	}
	rows := (p.Cards + Columns - 1) / Columns
	if rows > 0 {
		y += float64(rows)*(cardH+gap) - gap
	}

	if !p.Details {
		page.Height = int(math.Ceil(y + pad))
		return page
	}

	y += gap * 2
	page.Heading = image.Pt(int(pad), int(y))
	y += p.TitleHeight
	page.DetailsSubtitle = image.Pt(int(pad), int(y))
	y += p.LineHeight + gap

	chartH := float64(p.Height) - chartPadding - y
	if chartH < minChart {
		chartH = minChart
	}
	page.Chart = image.Rect(int(chartPadding), int(y), p.Width-int(chartPadding), int(y+chartH))
	y += chartH + chartPadding

	page.Height = int(math.Ceil(y))
	return page
}

// HitTest returns the index of the card containing (x, y), or -1.
func HitTest(cards []image.Rectangle, x, y int) int {
	pt := image.Pt(x, y)
	for i, r := range cards {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

// ClampScroll keeps a vertical scroll offset inside the content.
func ClampScroll(offset float64, content, viewport int) float64 {
	max := float64(content - viewport)
	if max < 0 {
		max = 0
	}
	return math.Max(0, math.Min(offset, max))
}
