package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	ASSETS_URL=https://api.coincap.io/v2/assets
//	ASSETS_PATH=$.data
//	HTTP_TIMEOUT=10s
//	WINDOW_WIDTH=960
//	WINDOW_HEIGHT=720
//	WINDOW_TITLE=Crypto Dashboard
//	FONT_SIZE=12
type Config struct {
	Market MarketConfig // Remote asset listing
	Window WindowConfig // Desktop window
}

// MarketConfig locates the asset listing.
//
// Fields:
//   - URL: endpoint queried once per view with a plain GET.
//   - DataPath: JSONPath of the asset array inside the response body.
//   - Timeout: upper bound for the whole request.
type MarketConfig struct {
	URL      string
	DataPath string
	Timeout  time.Duration
}

// WindowConfig sizes the window and its text.
type WindowConfig struct {
	Width    int
	Height   int
	Title    string
	FontSize int
}

// AppConfig is populated once by LoadConfig.
var AppConfig Config

// LoadConfig initializes AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env (loaded into the process environment).
//  3. Environment variables already set.
//
// A missing .env is fine; one that does not parse is an error.
// The .env file goes through godotenv rather than viper so that packages
// reading os.Getenv directly, such as the logger, see the same values.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	viper.SetDefault("ASSETS_URL", "https://api.coincap.io/v2/assets")
	viper.SetDefault("ASSETS_PATH", "$.data")
	viper.SetDefault("HTTP_TIMEOUT", "10s")

	viper.SetDefault("WINDOW_WIDTH", 960)
	viper.SetDefault("WINDOW_HEIGHT", 720)
	viper.SetDefault("WINDOW_TITLE", "Crypto Dashboard")
	viper.SetDefault("FONT_SIZE", 12)

	viper.AutomaticEnv()

	AppConfig = Config{
		Market: MarketConfig{
			URL:      viper.GetString("ASSETS_URL"),
			DataPath: viper.GetString("ASSETS_PATH"),
			Timeout:  viper.GetDuration("HTTP_TIMEOUT"),
		},
		Window: WindowConfig{
			Width:    viper.GetInt("WINDOW_WIDTH"),
			Height:   viper.GetInt("WINDOW_HEIGHT"),
			Title:    viper.GetString("WINDOW_TITLE"),
			FontSize: viper.GetInt("FONT_SIZE"),
		},
	}

	return validateConfig(AppConfig)
}

// validateConfig reports every missing or out-of-range field at once.
func validateConfig(c Config) error {
	var missing []string

	if c.Market.URL == "" {
		missing = append(missing, "ASSETS_URL")
	}
	if c.Market.DataPath == "" {
		missing = append(missing, "ASSETS_PATH")
	}
	if c.Market.Timeout <= 0 {
		missing = append(missing, "HTTP_TIMEOUT")
	}
	if c.Window.Width <= 0 {
		missing = append(missing, "WINDOW_WIDTH")
	}
	if c.Window.Height <= 0 {
		missing = append(missing, "WINDOW_HEIGHT")
	}
	if c.Window.FontSize <= 0 {
		missing = append(missing, "FONT_SIZE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid configuration: %v", missing)
	}
	return nil
}
