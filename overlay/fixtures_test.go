package overlay_test

import "github.com/plus3/vtt/shape"

func hpTracker() shape.Tracker {
	return shape.Tracker{UUID: "t1", Visible: true, Name: "HP", Value: 7, MaxValue: 10, Draw: true,
		PrimaryColor: "#ff0000", SecondaryColor: "#880000"}
}

func torchAura() shape.Aura {
	return shape.Aura{UUID: "a1", Active: true, VisionSource: false, Visible: true, Name: "Torchlight",
		Value: 20, Dim: 10, Colour: "#ffcc00", BorderColour: "#000000", Angle: 360, Direction: 0}
}

func trapLabel() shape.Label {
	return shape.Label{UUID: "l1", Category: "note", Name: "Trap here", Visible: false, User: "gm"}
}
