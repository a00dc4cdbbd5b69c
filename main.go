package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/temidaradev/esset/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/temidaradev/ebicrypto/internal/config"
	"github.com/temidaradev/ebicrypto/internal/logger"
	"github.com/temidaradev/ebicrypto/internal/market"
	"github.com/temidaradev/ebicrypto/internal/ui"
	"github.com/temidaradev/ebicrypto/internal/view"
)

const glyphsToPreload = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,:/$- "

const titleScale = 2

func loadFonts(size int, deviceScale float64) (ui.Fonts, error) {
	scaled := int(float64(size) * deviceScale)
	body, err := esset.GetFont(goregular.TTF, scaled)
	if err != nil {
		return ui.Fonts{}, fmt.Errorf("body font at size %d: %w", scaled, err)
	}
	title, err := esset.GetFont(goregular.TTF, scaled*titleScale)
	if err != nil {
		return ui.Fonts{}, fmt.Errorf("title font at size %d: %w", scaled*titleScale, err)
	}

	tempImage := ebiten.NewImage(1, 1)
	opts := &text.DrawOptions{}
	text.Draw(tempImage, glyphsToPreload, body, opts)
	text.Draw(tempImage, glyphsToPreload, title, opts)
	return ui.Fonts{Body: body, Title: title}, nil
}

func main() {
	if err := config.LoadConfig(); err != nil {
		logger.L().Fatal().Err(err).Msg("configuration error")
	}
	logger.Init()
	cfg := config.AppConfig
	log := logger.L()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)

	deviceScale := ebiten.Monitor().DeviceScaleFactor()
	log.Debug().Msg("glyph caching")
	fonts, err := loadFonts(cfg.Window.FontSize, deviceScale)
	if err != nil {
		log.Fatal().Err(err).Msg("font could not be loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := market.NewClient(cfg.Market.URL, cfg.Market.DataPath, cfg.Market.Timeout)
	v := view.New(market.NewRepository(client), logger.Component("view"))
	if err := v.Mount(ctx); err != nil {
		log.Fatal().Err(err).Msg("view mount failed")
	}

	g := ui.NewGame(ctx, v, fonts, deviceScale, logger.Component("ui"))
	log.Info().Str("url", cfg.Market.URL).Str("view", v.ID()).Msg("dashboard starting")

	err = ebiten.RunGame(g)
	v.Unmount()
	if err != nil {
		log.Fatal().Err(err).Msg("dashboard stopped")
	}
	log.Info().Msg("dashboard closed")
}
