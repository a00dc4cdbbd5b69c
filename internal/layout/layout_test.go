package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(cards int, details bool) Params {
	return Params{Width: 960, Height: 720, Scale: 1, LineHeight: 23, TitleHeight: 46, Cards: cards, Details: details}
}

func TestCompute_Grid(t *testing.T) {
	p := Compute(params(7, false))
	require.Len(t, p.Cards, 7)

	// three per row, same row shares Y, next row starts below
	assert.Equal(t, p.Cards[0].Min.Y, p.Cards[2].Min.Y)
	assert.Less(t, p.Cards[0].Max.X, p.Cards[1].Min.X)
	assert.Less(t, p.Cards[2].Max.Y, p.Cards[3].Min.Y)
	assert.Equal(t, p.Cards[0].Min.X, p.Cards[3].Min.X)
	assert.Equal(t, p.Cards[6].Min.X, p.Cards[0].Min.X)

	for i := 1; i < len(p.Cards); i++ {
		assert.False(t, p.Cards[i].Overlaps(p.Cards[i-1]), "card %d overlaps %d", i, i-1)
	}
	assert.LessOrEqual(t, p.Cards[2].Max.X, 960)
	assert.Greater(t, p.Cards[0].Min.Y, p.Subtitle.Y)
	assert.True(t, p.Chart.Empty())
	assert.GreaterOrEqual(t, p.Height, p.Cards[6].Max.Y)
}

func TestCompute_NoCards(t *testing.T) {
	p := Compute(params(0, false))
	assert.Empty(t, p.Cards)
	assert.Greater(t, p.Height, p.Subtitle.Y)
}

func TestCompute_Details(t *testing.T) {
	p := Compute(params(4, true))

	assert.Greater(t, p.Heading.Y, p.Cards[3].Max.Y)
	assert.Greater(t, p.DetailsSubtitle.Y, p.Heading.Y)
	assert.Greater(t, p.Chart.Min.Y, p.DetailsSubtitle.Y)
	assert.False(t, p.Chart.Empty())
	assert.GreaterOrEqual(t, p.Chart.Dy(), 240)
	assert.Greater(t, p.Height, p.Chart.Max.Y)
}

func TestCompute_ChartKeepsMinimumHeight(t *testing.T) {
	pr := params(60, true)
	pr.Height = 300
	p := Compute(pr)
	assert.Equal(t, 240, p.Chart.Dy())
	assert.Greater(t, p.Height, pr.Height, "content overflows and scrolls")
}

func TestHitTest(t *testing.T) {
	cards := []image.Rectangle{
		image.Rect(0, 0, 10, 10),
		image.Rect(20, 0, 30, 10),
	}
	assert.Equal(t, 0, HitTest(cards, 5, 5))
	assert.Equal(t, 1, HitTest(cards, 20, 0))
	assert.Equal(t, -1, HitTest(cards, 15, 5))
	assert.Equal(t, -1, HitTest(cards, 30, 5), "max edge is exclusive")
	assert.Equal(t, -1, HitTest(nil, 0, 0))
}

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 0.0, ClampScroll(-5, 1000, 500))
	assert.Equal(t, 120.0, ClampScroll(120, 1000, 500))
	assert.Equal(t, 500.0, ClampScroll(900, 1000, 500))
	assert.Equal(t, 0.0, ClampScroll(50, 300, 500))
}
