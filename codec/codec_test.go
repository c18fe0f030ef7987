package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vtt/codec"
	"github.com/plus3/vtt/shape"
)

func seedTracker() shape.Tracker {
	return shape.Tracker{UUID: "t1", Visible: true, Name: "HP", Value: 7, MaxValue: 10, Draw: true,
		PrimaryColor: "#ff0000", SecondaryColor: "#880000"}
}

func seedAura() shape.Aura {
	return shape.Aura{UUID: "a1", Active: true, VisionSource: false, Visible: true, Name: "Torchlight",
		Value: 20, Dim: 10, Colour: "#ffcc00", BorderColour: "#000000", Angle: 360, Direction: 0}
}

func seedLabel() shape.Label {
	return shape.Label{UUID: "l1", Category: "note", Name: "Trap here", Visible: false, User: "gm"}
}

func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	bz, err := codec.Encode(v)
	require.NoError(t, err)
	out, err := codec.Decode[T](bz)
	require.NoError(t, err)
	return out
}

func TestTrackerRoundTrip(t *testing.T) {
	in := seedTracker()
	assert.Equal(t, in, roundTrip(t, in))
}

func TestLabelRoundTrip(t *testing.T) {
	in := seedLabel()
	assert.Equal(t, in, roundTrip(t, in))
}

func TestAuraRoundTrip(t *testing.T) {
	t.Run("without path", func(t *testing.T) {
		in := seedAura()
		out := roundTrip(t, in)
		assert.Equal(t, in, out)
		assert.Nil(t, out.LastPath)
	})

	t.Run("with empty path", func(t *testing.T) {
		in := seedAura()
		in.LastPath = &shape.Path{}
		out := roundTrip(t, in)
		require.NotNil(t, out.LastPath)
		assert.True(t, out.LastPath.Empty())
		assert.Equal(t, in, out)
	})

	t.Run("with empty point list", func(t *testing.T) {
		in := seedAura()
		in.LastPath = &shape.Path{Points: []shape.Point{}, Closed: true}
		out := roundTrip(t, in)
		assert.Equal(t, in, out)
		assert.NotNil(t, out.LastPath.Points)
	})

	t.Run("with computed path", func(t *testing.T) {
		in := seedAura()
		in.Angle = 90
		in.Outline(8)
		out := roundTrip(t, in)
		assert.Equal(t, in, out)
	})
}

func TestWireKeys(t *testing.T) {
	bz, err := codec.Encode(seedTracker())
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"t1","visible":true,"name":"HP","value":7,"maxvalue":10,"draw":true,
		"primaryColor":"#ff0000","secondaryColor":"#880000"}`, string(bz))

	bz, err = codec.Encode(seedAura())
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"a1","active":true,"visionSource":false,"visible":true,"name":"Torchlight",
		"value":20,"dim":10,"colour":"#ffcc00","borderColour":"#000000","angle":360,"direction":0}`, string(bz))

	bz, err = codec.Encode(seedLabel())
	require.NoError(t, err)
	assert.JSONEq(t, `{"uuid":"l1","category":"note","name":"Trap here","visible":false,"user":"gm"}`, string(bz))
}

func TestDecodeFromClient(t *testing.T) {
	aura, err := codec.Decode[shape.Aura]([]byte(`{"uuid":"a2","active":false,"visionSource":true,
		"visible":false,"name":"Darkvision","value":60,"dim":0,"colour":"rgba(0,0,0,0)",
		"borderColour":"rgba(0,0,0,0)","angle":120,"direction":45}`))
	require.NoError(t, err)
	assert.Equal(t, "a2", aura.UUID)
	assert.True(t, aura.VisionSource)
	assert.Equal(t, 45.0, aura.Direction)
	assert.Nil(t, aura.LastPath)
}

func TestDecodeSlice(t *testing.T) {
	labels, err := codec.DecodeSlice[shape.Label]([]byte(`[{"uuid":"l1","category":"note"},{"uuid":"l2","category":"loot"}]`))
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "loot", labels[1].Category)
}

func TestDecodeError(t *testing.T) {
	_, err := codec.Decode[shape.Tracker]([]byte(`{"uuid": 12}`))
	assert.ErrorContains(t, err, "decode shape.Tracker")

	_, err = codec.DecodeSlice[shape.Label]([]byte(`{`))
	assert.ErrorContains(t, err, "decode []shape.Label")
}
