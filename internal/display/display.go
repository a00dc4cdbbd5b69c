// Package display builds what the dashboard shows from the view state,
// independent of how it is drawn.
package display

import (
	"github.com/temidaradev/ebicrypto/internal/chart"
	"github.com/temidaradev/ebicrypto/internal/market"
)

const (
	HeroBadge    = "Welcome to Your Crypto Dashboard"
	HeroTitle    = "Track Your Crypto Assets"
	HeroSubtitle = "Click on an asset to view details and price development."

	DetailsSubtitle = "Price development over time."
)

type Hero struct {
	Badge    string
	Title    string
	Subtitle string
}

// Card is one clickable asset tile.
type Card struct {
	ID        string
	Symbol    string
	Name      string
	MarketCap string
	Selected  bool
}

// Details is shown once an asset is selected.
type Details struct {
	Heading  string
	Subtitle string
	Series   chart.Series
}

// Page is the whole view. Details is nil until something is selected.
type Page struct {
	Hero    Hero
	Cards   []Card
	Details *Details
}

// Source is the state a Page is built from.
type Source interface {
	Assets() []market.Asset
	Selected() (market.Asset, bool)
	SelectedIndex() int
}

// Build renders src into a Page.
func Build(src Source) Page {
	page := Page{
		Hero: Hero{Badge: HeroBadge, Title: HeroTitle, Subtitle: HeroSubtitle},
	}

	selected, ok := src.Selected()
	selectedIndex := -1
	if ok {
		selectedIndex = src.SelectedIndex()
	}

	assets := src.Assets()
	page.Cards = make([]Card, len(assets))
	for i, a := range assets {
		page.Cards[i] = Card{
			ID:        a.ID,
			Symbol:    a.Symbol,
			Name:      a.Name,
			MarketCap: MarketCapText(a.MarketCapUSD),
			Selected:  i == selectedIndex,
		}
	}

	if ok {
		page.Details = &Details{
			Heading:  selected.Name + " Details",
			Subtitle: DetailsSubtitle,
			Series:   chart.Project(&selected),
		}
	}
	return page
}
