// Package ui draws the dashboard with Ebitengine and feeds it user input.
package ui

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	"github.com/temidaradev/ebicrypto/internal/chart"
	"github.com/temidaradev/ebicrypto/internal/control"
	"github.com/temidaradev/ebicrypto/internal/view"
)

// Fonts are the two faces the dashboard uses.
type Fonts struct {
	Body  text.Face
	Title text.Face
}

// Game adapts a view.View to ebiten.Game. Update samples the mouse and hands
// it to the controller; Draw renders what the controller lays out.
type Game struct {
	control *control.Controller

	fonts         Fonts
	lineHeight    float64
	deviceScale   float64
	width, height int
	lineColor     color.RGBA
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
}

// NewGame returns a Game drawing v. The game ends once ctx is done.
func NewGame(ctx context.Context, v *view.View, fonts Fonts, deviceScale float64, log zerolog.Logger) *Game {
	lineColor, err := chart.ParseHexColor(chart.LineColor)
	if err != nil {
		lineColor = color.RGBA{0xf8, 0x71, 0x71, 0xff}
	}
	_, bodyH := text.Measure("Hg", fonts.Body, 0)
	_, titleH := text.Measure("Hg", fonts.Title, 0)
	lineHeight := bodyH*1.5 + 5.0*deviceScale

	return &Game{
		control: control.New(ctx, v, control.Metrics{
			Scale:       deviceScale,
			LineHeight:  lineHeight,
			TitleHeight: titleH * 1.3,
		}, log),
		fonts:       fonts,
		lineHeight:  lineHeight,
		deviceScale: deviceScale,
		lineColor:   lineColor,
	}
}

func (g *Game) initWhiteImage() {
	if g.whiteImage == nil {
		g.whiteImage = ebiten.NewImage(3, 3)
		g.whiteImage.Fill(color.White)
		g.whiteSubImage = g.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	err := g.control.Update(control.Input{
		Width:   g.width,
		Height:  g.height,
		WheelY:  wheelY,
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:       mx,
		Y:       my,
	})
	if errors.Is(err, control.ErrClosed) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width = int(float64(outsideWidth) * g.deviceScale)
	g.height = int(float64(outsideHeight) * g.deviceScale)
	return g.width, g.height
}
