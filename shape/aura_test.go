package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vtt/shape"
)

func TestAuraMissingPathIsNotAnError(t *testing.T) {
	a := shape.Aura{UUID: "a1", Value: 20, Dim: 10, Angle: 360}
	assert.False(t, a.HasPath())
	assert.Nil(t, a.LastPath)

	p := a.Outline(16)
	require.NotNil(t, p)
	assert.True(t, a.HasPath())
	assert.Same(t, p, a.Outline(64), "cached path is reused")

	a.InvalidatePath()
	assert.False(t, a.HasPath())
}

func TestAuraEmptyPathDistinctFromMissing(t *testing.T) {
	a := shape.Aura{UUID: "a1", Value: 0, Angle: 360}
	p := a.Outline(16)
	require.NotNil(t, p)
	assert.True(t, p.Empty())
	assert.True(t, a.HasPath())
}

func TestSectorPathFullCircle(t *testing.T) {
	p := shape.SectorPath(30, 360, 0, 12)
	require.Len(t, p.Points, 12)
	assert.True(t, p.Closed)

	for _, pt := range p.Points {
		assert.InDelta(t, 30, math.Hypot(pt.X, pt.Y), 1e-9)
	}

	min, max, ok := p.Bounds()
	require.True(t, ok)
	assert.InDelta(t, -30, min.X, 1e-9)
	assert.InDelta(t, 30, max.X, 1e-9)
}

func TestSectorPathCone(t *testing.T) {
	p := shape.SectorPath(10, 90, 90, 4)
	require.Len(t, p.Points, 6)
	assert.Equal(t, shape.Point{}, p.Points[0])

	first := p.Points[1]
	last := p.Points[len(p.Points)-1]
	assert.InDelta(t, 10*math.Cos(math.Pi/4), first.X, 1e-9)
	assert.InDelta(t, 10*math.Sin(math.Pi/4), first.Y, 1e-9)
	assert.InDelta(t, -10*math.Cos(math.Pi/4), last.X, 1e-9)
	assert.InDelta(t, 10*math.Sin(math.Pi/4), last.Y, 1e-9)

	min, _, ok := p.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, min.Y, 1e-9, "cone facing +Y stays above the centre")
}

func TestSectorPathDegenerate(t *testing.T) {
	assert.True(t, shape.SectorPath(0, 360, 0, 8).Empty())
	assert.True(t, shape.SectorPath(10, 0, 0, 8).Empty())
	assert.True(t, shape.SectorPath(math.NaN(), 360, 0, 8).Empty())
	assert.Len(t, shape.SectorPath(5, 360, 0, 1).Points, shape.MinArcSegments)

	_, _, ok := (&shape.Path{}).Bounds()
	assert.False(t, ok)
}

func TestAuraSameGeometry(t *testing.T) {
	a := shape.Aura{Value: 20, Dim: 10, Angle: 360}
	b := a
	b.Visible = true
	b.Colour = "#fff"
	assert.True(t, a.SameGeometry(&b))

	b.Direction = 90
	assert.False(t, a.SameGeometry(&b))
	assert.Equal(t, 30.0, a.Radius())
}

func TestAuraCloneSharesNoPath(t *testing.T) {
	a := shape.NewAura("Torch")
	a.Value = 10
	a.Outline(8)

	b := a.Clone()
	require.NotSame(t, a.LastPath, b.LastPath)
	assert.True(t, a.LastPath.Equal(b.LastPath))

	b.LastPath.Points[0].X = 42
	assert.False(t, a.LastPath.Equal(b.LastPath))

	var missing *shape.Path
	assert.True(t, missing.Equal(nil))
	assert.False(t, missing.Equal(&shape.Path{}))
}
