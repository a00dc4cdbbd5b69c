package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Values converts the raw data to numbers. Entries that do not parse become
// NaN and are drawn as gaps.
func (d Dataset) Values() []float64 {
	out := make([]float64, len(d.Data))
	for i, raw := range d.Data {
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = v.InexactFloat64()
	}
	return out
}

// Bounds returns the smallest and largest finite value. ok is false when
// there is none.
func Bounds(values []float64) (min, max float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// ParseHexColor parses a "#rrggbb" color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
