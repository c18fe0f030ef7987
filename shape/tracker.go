package shape

const (
	DefaultTrackerPrimaryColor   = "#00FF00"
	DefaultTrackerSecondaryColor = "#888888"
)

// Tracker is a numeric indicator (health, resource, ...) drawn on a game element.
// Visible and Draw are independent flags; neither implies the other.
type Tracker struct {
	UUID           string  `json:"uuid"`
	Visible        bool    `json:"visible"`
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	MaxValue       float64 `json:"maxvalue"`
	Draw           bool    `json:"draw"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
}

// NewTracker creates a hidden tracker with a fresh UUID and the default bar colours.
func NewTracker(name string) Tracker {
	return Tracker{
		UUID:           NewUUID(),
		Name:           name,
		PrimaryColor:   DefaultTrackerPrimaryColor,
		SecondaryColor: DefaultTrackerSecondaryColor,
	}
}

// InRange reports whether 0 <= Value <= MaxValue.
func (t Tracker) InRange() bool {
	return t.Value >= 0 && t.Value <= t.MaxValue
}

// Finite reports whether Value and MaxValue are neither NaN nor infinite.
func (t Tracker) Finite() bool {
	return finite(t.Value, t.MaxValue)
}

// Fraction returns Value/MaxValue clamped to [0, 1]. A zero maximum yields 0.
func (t Tracker) Fraction() float64 {
	if t.MaxValue <= 0 {
		return 0
	}
	f := t.Value / t.MaxValue
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
