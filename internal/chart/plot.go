package chart

import (
	"image"
	"math"
)

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Plot is the geometry of a line chart inside a rectangle.
type Plot struct {
	// Lines are the runs of consecutive drawable values with at least two
	// points. An unparsable value ends a run.
	Lines [][]Point
	// Dot marks the last drawable value.
	Dot Point
	// Empty is set when no value can be drawn; Lines and Dot are unset.
	Empty bool
	// Min and Max are the bounds of the drawable values.
	Min, Max float64
}

// Fit scales values into r. X is spread evenly over the width by index, so a
// gap keeps its place; a single value sits in the middle. A flat series is
// drawn at mid height.
func Fit(values []float64, r image.Rectangle) Plot {
	min, max, ok := Bounds(values)
	if !ok {
		return Plot{Empty: true}
	}

	lo, span := min, max-min
	if span == 0 {
		lo, span = min-0.5, 1.0
	}

	xAt := func(i int) float64 {
		if len(values) == 1 {
			return float64(r.Min.X) + float64(r.Dx())/2.0
		}
		return float64(r.Min.X) + (float64(i)/float64(len(values)-1))*float64(r.Dx())
	}
	yAt := func(v float64) float64 {
		return float64(r.Max.Y) - ((v-lo)/span)*float64(r.Dy())
	}

	p := Plot{Min: min, Max: max}
	var run []Point
	flush := func() {
		if len(run) > 1 {
			p.Lines = append(p.Lines, run)
		}
		run = nil
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			flush()
			continue
		}
		pt := Point{X: xAt(i), Y: yAt(v)}
		run = append(run, pt)
		p.Dot = pt
	}
	flush()
	return p
}
