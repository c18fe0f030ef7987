package shape

const (
	DefaultAuraColour = "rgba(0,0,0,0)"
	FullCircle        = 360.0
)

// Aura is a light or vision field anchored to a game element.
//
// Value is the bright radius and Dim the extra falloff ring beyond it, so the
// outer edge sits at Value+Dim. Angle is the field of view and Direction its
// heading, both in degrees; Direction 0 points along +X and grows
// counter-clockwise.
//
// LastPath caches the most recently computed outline. A nil LastPath means the
// outline has not been computed yet; a non-nil empty path is a computed outline
// with no area.
type Aura struct {
	UUID         string  `json:"uuid"`
	Active       bool    `json:"active"`
	VisionSource bool    `json:"visionSource"`
	Visible      bool    `json:"visible"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Dim          float64 `json:"dim"`
	Colour       string  `json:"colour"`
	BorderColour string  `json:"borderColour"`
	Angle        float64 `json:"angle"`
	Direction    float64 `json:"direction"`
	LastPath     *Path   `json:"lastPath,omitempty"`
}

// NewAura creates an inactive full circle aura with a fresh UUID.
func NewAura(name string) Aura {
	return Aura{
		UUID:         NewUUID(),
		Name:         name,
		Colour:       DefaultAuraColour,
		BorderColour: DefaultAuraColour,
		Angle:        FullCircle,
	}
}

// Radius returns the outer edge of the aura.
func (a *Aura) Radius() float64 {
	return a.Value + a.Dim
}

// Outline returns the cached outline, computing it with the given number of
// arc segments when no path has been cached yet.
func (a *Aura) Outline(segments int) *Path {
	if a.LastPath == nil {
		a.LastPath = SectorPath(a.Radius(), a.Angle, a.Direction, segments)
	}
	return a.LastPath
}

// InvalidatePath drops the cached outline.
func (a *Aura) InvalidatePath() {
	a.LastPath = nil
}

// HasPath reports whether an outline is cached.
func (a *Aura) HasPath() bool {
	return a.LastPath != nil
}

// SameGeometry reports whether a and b would produce the same outline.
func (a *Aura) SameGeometry(b *Aura) bool {
	return a.Value == b.Value && a.Dim == b.Dim && a.Angle == b.Angle && a.Direction == b.Direction
}

// Clone returns a copy of a that shares no memory with it.
func (a Aura) Clone() Aura {
	if a.LastPath != nil {
		a.LastPath = a.LastPath.Clone()
	}
	return a
}

// Finite reports whether every numeric field, including the cached outline,
// is neither NaN nor infinite.
func (a *Aura) Finite() bool {
	if !finite(a.Value, a.Dim, a.Angle, a.Direction) {
		return false
	}
	return a.LastPath == nil || a.LastPath.Finite()
}
