package market

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HistoryPoint is one sample of an asset's price history. Both fields keep
// the provider's string encoding.
type HistoryPoint struct {
	Date     string `json:"date"`
	PriceUSD string `json:"priceUsd"`
}

// Asset is a tradable instrument as listed by the market-data provider.
type Asset struct {
	ID           string         `json:"id"`
	Rank         string         `json:"rank,omitempty"`
	Symbol       string         `json:"symbol"`
	Name         string         `json:"name"`
	MarketCapUSD string         `json:"marketCapUsd"`
	PriceUSD     string         `json:"priceUsd,omitempty"`
	History      []HistoryPoint `json:"history,omitempty"`
}

// Collection is the ordered list of assets returned by one retrieval.
// It is never mutated once built.
type Collection struct {
	assets []Asset
}

// NewCollection copies assets into a new Collection, keeping their order.
func NewCollection(assets []Asset) Collection {
	if len(assets) == 0 {
		return Collection{}
	}
	c := make([]Asset, len(assets))
	copy(c, assets)
	return Collection{assets: c}
}

func (c Collection) Len() int {
	return len(c.assets)
}

// At returns a pointer to the i-th asset, or nil when i is out of range.
func (c Collection) At(i int) *Asset {
	if i < 0 || i >= len(c.assets) {
		return nil
	}
	return &c.assets[i]
}

// IndexOf returns the index of the first asset with the given id, or -1.
func (c Collection) IndexOf(id string) int {
	for i := range c.assets {
		if c.assets[i].ID == id {
			return i
		}
	}
	return -1
}

// Assets returns a copy of the assets in server order.
func (c Collection) Assets() []Asset {
	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// text accepts a JSON string, number or null where the provider documents a
// string.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = text(v)
	case json.Number:
		*t = text(v.String())
	default:
		return fmt.Errorf("expected string or number, got %T", v)
	}
	return nil
}

type wirePoint struct {
	Date     text `json:"date"`
	PriceUSD text `json:"priceUsd"`
}

// UnmarshalJSON decodes one listing record. The history is only read when an
// asset is selected, so a history that is not a list of points is dropped
// instead of failing the record.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var w struct {
		ID           text            `json:"id"`
		Rank         text            `json:"rank"`
		Symbol       text            `json:"symbol"`
		Name         text            `json:"name"`
		MarketCapUSD text            `json:"marketCapUsd"`
		PriceUSD     text            `json:"priceUsd"`
		History      json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*a = Asset{
		ID:           string(w.ID),
		Rank:         string(w.Rank),
		Symbol:       string(w.Symbol),
		Name:         string(w.Name),
		MarketCapUSD: string(w.MarketCapUSD),
		PriceUSD:     string(w.PriceUSD),
		History:      decodeHistory(w.History),
	}
	return nil
}

// decodeHistory returns nil for anything but an array of points.
func decodeHistory(raw json.RawMessage) []HistoryPoint {
	if len(raw) == 0 {
		return nil
	}
	var points []wirePoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil
	}
	if points == nil {
		return nil
	}
	out := make([]HistoryPoint, len(points))
	for i, p := range points {
		out[i] = HistoryPoint{Date: string(p.Date), PriceUSD: string(p.PriceUSD)}
	}
	return out
}
