package shape_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/vtt/shape"
)

func TestConstructorsAssignUUIDs(t *testing.T) {
	tr := shape.NewTracker("HP")
	au := shape.NewAura("Torch")
	lb := shape.NewLabel("note", "Trap", "gm")

	for _, id := range []string{tr.UUID, au.UUID, lb.UUID} {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, tr.UUID, au.UUID)

	assert.Equal(t, shape.DefaultTrackerPrimaryColor, tr.PrimaryColor)
	assert.Equal(t, shape.DefaultTrackerSecondaryColor, tr.SecondaryColor)
	assert.Equal(t, shape.FullCircle, au.Angle)
	assert.Equal(t, shape.DefaultAuraColour, au.BorderColour)
	assert.False(t, au.Active)
	assert.Equal(t, "gm", lb.User)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "tracker", shape.KindTracker.String())
	assert.Equal(t, "aura", shape.KindAura.String())
	assert.Equal(t, "label", shape.KindLabel.String())
	assert.Equal(t, "unknown", shape.Kind(0).String())
}

func TestTrackerFlagsIndependent(t *testing.T) {
	for _, visible := range []bool{false, true} {
		for _, draw := range []bool{false, true} {
			tr := shape.Tracker{UUID: "t1"}
			tr.Visible = visible
			tr.Draw = draw
			assert.Equal(t, visible, tr.Visible)
			assert.Equal(t, draw, tr.Draw)
		}
	}
}

func TestAuraFlagsIndependent(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		a := shape.Aura{UUID: "a1"}
		a.Active = mask&1 != 0
		a.VisionSource = mask&2 != 0
		a.Visible = mask&4 != 0
		assert.Equal(t, mask&1 != 0, a.Active, "mask %d", mask)
		assert.Equal(t, mask&2 != 0, a.VisionSource, "mask %d", mask)
		assert.Equal(t, mask&4 != 0, a.Visible, "mask %d", mask)
	}
}

func TestTrackerRange(t *testing.T) {
	tests := []struct {
		value, max float64
		inRange    bool
		fraction   float64
	}{
		{7, 10, true, 0.7},
		{0, 10, true, 0},
		{10, 10, true, 1},
		{11, 10, false, 1},
		{-1, 10, false, 0},
		{0, 0, true, 0},
	}

	for _, tt := range tests {
		tr := shape.Tracker{Value: tt.value, MaxValue: tt.max}
		assert.Equal(t, tt.inRange, tr.InRange(), "%v/%v", tt.value, tt.max)
		assert.InDelta(t, tt.fraction, tr.Fraction(), 1e-9, "%v/%v", tt.value, tt.max)
	}
}

func TestLabelMatches(t *testing.T) {
	l := shape.Label{Category: "note", Name: "Trap here"}
	assert.True(t, l.Matches("note", ""))
	assert.True(t, l.Matches("note", "Trap here"))
	assert.False(t, l.Matches("note", "Chest"))
	assert.False(t, l.Matches("loot", ""))
}
