// Package chart turns an asset's price history into the series handed to
// the line renderer.
package chart

import "github.com/temidaradev/ebicrypto/internal/market"

const (
	// PriceLabel names the only dataset drawn.
	PriceLabel = "Price"
	// LineColor is used for both the line and its points.
	LineColor = "#f87171"
)

// Dataset is one line of a Series. Data keeps the provider's raw strings;
// converting them to numbers is the renderer's job.
type Dataset struct {
	Label           string   `json:"label"`
	Data            []string `json:"data"`
	Fill            bool     `json:"fill"`
	BackgroundColor string   `json:"backgroundColor"`
	BorderColor     string   `json:"borderColor"`
}

// Series is the data object consumed by the chart renderer.
type Series struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Project builds the price series of asset. A nil asset, or one without
// history, yields empty but non-nil labels and data.
func Project(asset *market.Asset) Series {
	var history []market.HistoryPoint
	if asset != nil {
		history = asset.History
	}

	labels := make([]string, len(history))
	data := make([]string, len(history))
	for i, p := range history {
		labels[i] = p.Date
		data[i] = p.PriceUSD
	}

	return Series{
		Labels: labels,
		Datasets: []Dataset{{
			Label:           PriceLabel,
			Data:            data,
			Fill:            false,
			BackgroundColor: LineColor,
			BorderColor:     LineColor,
		}},
	}
}

// Len is the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Price returns the single dataset of the series.
func (s Series) Price() Dataset {
	if len(s.Datasets) == 0 {
		return Dataset{Label: PriceLabel, Data: []string{}}
	}
	return s.Datasets[0]
}
