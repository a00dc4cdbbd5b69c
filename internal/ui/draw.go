package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/esset/v2"

	"github.com/temidaradev/ebicrypto/internal/chart"
	"github.com/temidaradev/ebicrypto/internal/display"
)

var (
	backgroundColor = color.RGBA{25, 25, 25, 255}
	panelColor      = color.RGBA{50, 50, 50, 255}
	badgeColor      = color.RGBA{70, 70, 90, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	mutedColor      = color.RGBA{150, 150, 150, 255}
	highlightColor  = color.RGBA{248, 113, 113, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.initWhiteImage()
	screen.Fill(backgroundColor)

	page, lay := g.control.Frame()
	dy := -int(g.control.Scroll())

	g.drawText(screen, page.Hero.Badge, g.fonts.Body, lay.Badge.Add(image.Pt(0, dy)), mutedColor)
	g.drawText(screen, page.Hero.Title, g.fonts.Title, lay.Title.Add(image.Pt(0, dy)), textColor)
	g.drawText(screen, page.Hero.Subtitle, g.fonts.Body, lay.Subtitle.Add(image.Pt(0, dy)), mutedColor)

	for i, card := range page.Cards {
		g.drawCard(screen, card, lay.Cards[i].Add(image.Pt(0, dy)))
	}

	if page.Details == nil {
		return
	}
	g.drawText(screen, page.Details.Heading, g.fonts.Title, lay.Heading.Add(image.Pt(0, dy)), textColor)
	g.drawText(screen, page.Details.Subtitle, g.fonts.Body, lay.DetailsSubtitle.Add(image.Pt(0, dy)), mutedColor)
	g.drawChart(screen, page.Details.Series, lay.Chart.Add(image.Pt(0, dy)))
}

func (g *Game) drawText(screen *ebiten.Image, s string, face text.Face, at image.Point, clr color.RGBA) {
	esset.DrawText(screen, s, 0, float64(at.X), float64(at.Y), face, clr)
}

func (g *Game) drawCard(screen *ebiten.Image, card display.Card, r image.Rectangle) {
	if r.Max.Y < 0 || r.Min.Y > g.height {
		return
	}
	fillRect(screen, r, panelColor)
	if card.Selected {
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2*float32(g.deviceScale), highlightColor, true)
	}

	pad := 10.0 * g.deviceScale
	x := float64(r.Min.X) + pad
	y := float64(r.Min.Y) + pad

	symbolW, symbolH := text.Measure(card.Symbol, g.fonts.Body, 0)
	radius := math.Max(symbolW, symbolH)/2 + 4*g.deviceScale
	vector.DrawFilledCircle(screen, float32(x+radius), float32(y+g.lineHeight/2), float32(radius), badgeColor, true)
	esset.DrawText(screen, card.Symbol, 0, x+radius-symbolW/2, y+g.lineHeight/2-symbolH/2, g.fonts.Body, textColor)

	esset.DrawText(screen, card.Name, 0, x, y+g.lineHeight, g.fonts.Body, textColor)
	esset.DrawText(screen, card.MarketCap, 0, x, y+2*g.lineHeight, g.fonts.Body, mutedColor)
}

// drawChart draws the price line. Values that do not parse break the line,
// the last point gets a dot, and an empty series gets a placeholder.
func (g *Game) drawChart(screen *ebiten.Image, series chart.Series, chartRect image.Rectangle) {
	fillRect(screen, chartRect, panelColor)

	plot := chart.Fit(series.Price().Values(), chartRect)
	if plot.Empty {
		g.drawCentered(screen, "No history data yet.", chartRect)
		return
	}

	if len(plot.Lines) > 0 {
		path := &vector.Path{}
		for _, line := range plot.Lines {
			path.MoveTo(float32(line[0].X), float32(line[0].Y))
			for _, pt := range line[1:] {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
		g.strokePath(screen, path, 2.0*float32(g.deviceScale), g.lineColor)
	}
	vector.DrawFilledCircle(screen, float32(plot.Dot.X), float32(plot.Dot.Y), 3.0*float32(g.deviceScale), g.lineColor, true)

	g.drawAxisLabels(screen, series, chartRect, plot.Min, plot.Max)
}

func (g *Game) drawAxisLabels(screen *ebiten.Image, series chart.Series, chartRect image.Rectangle, minPrice, maxPrice float64) {
	below := float64(chartRect.Max.Y) + 4*g.deviceScale
	if n := len(series.Labels); n > 0 {
		esset.DrawText(screen, series.Labels[0], 0, float64(chartRect.Min.X), below, g.fonts.Body, mutedColor)
		if n > 1 {
			last := series.Labels[n-1]
			w, _ := text.Measure(last, g.fonts.Body, 0)
			esset.DrawText(screen, last, 0, float64(chartRect.Max.X)-w, below, g.fonts.Body, mutedColor)
		}
	}

	inset := 4 * g.deviceScale
	esset.DrawText(screen, fmt.Sprintf("%.2f", maxPrice), 0, float64(chartRect.Min.X)+inset, float64(chartRect.Min.Y)+inset, g.fonts.Body, mutedColor)
	_, h := text.Measure("0", g.fonts.Body, 0)
	esset.DrawText(screen, fmt.Sprintf("%.2f", minPrice), 0, float64(chartRect.Min.X)+inset, float64(chartRect.Max.Y)-h-inset, g.fonts.Body, mutedColor)
}

func (g *Game) drawCentered(screen *ebiten.Image, message string, r image.Rectangle) {
	w, h := text.Measure(message, g.fonts.Body, 0)
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2.0
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2.0
	esset.DrawText(screen, message, 0, x, y, g.fonts.Body, mutedColor)
}

func (g *Game) strokePath(screen *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})

	r, gr, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = gr
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, g.whiteSubImage, op)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
