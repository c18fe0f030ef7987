package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rotisserie/eris"
)

var ErrInvalidColour = eris.New("invalid colour")

// Colour is a parsed colour string with a separate alpha channel in [0, 1].
type Colour struct {
	colorful.Color
	Alpha float64
}

// ParseColour accepts the colour notations the client emits:
// #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a).
func ParseColour(s string) (Colour, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v, s)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgba("):len(v)-1], true, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(v[len("rgb("):len(v)-1], false, s)
	}
	return Colour{}, eris.Wrapf(ErrInvalidColour, "%q", s)
}

// ValidColour reports whether s parses.
func ValidColour(s string) bool {
	_, err := ParseColour(s)
	return err == nil
}

func parseHex(v, raw string) (Colour, error) {
	switch len(v) {
	case 4, 7:
		c, err := colorful.Hex(v)
		if err != nil {
			return Colour{}, eris.Wrapf(ErrInvalidColour, "%q", raw)
		}
		return Colour{Color: c, Alpha: 1}, nil
	case 9:
		c, err := colorful.Hex(v[:7])
		if err != nil {
			return Colour{}, eris.Wrapf(ErrInvalidColour, "%q", raw)
		}
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return Colour{}, eris.Wrapf(ErrInvalidColour, "%q: alpha", raw)
		}
		return Colour{Color: c, Alpha: float64(a) / 255}, nil
	}
	return Colour{}, eris.Wrapf(ErrInvalidColour, "%q: hex length", raw)
}

func parseFunctional(body string, withAlpha bool, raw string) (Colour, error) {
	parts := strings.Split(body, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Colour{}, eris.Wrapf(ErrInvalidColour, "%q: expected %d components", raw, want)
	}

	var rgb [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Colour{}, eris.Wrapf(ErrInvalidColour, "%q: component %d", raw, i)
		}
		rgb[i] = float64(n) / 255
	}

	alpha := 1.0
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || !(a >= 0 && a <= 1) {
			return Colour{}, eris.Wrapf(ErrInvalidColour, "%q: alpha", raw)
		}
		alpha = a
	}

	return Colour{Color: colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, Alpha: alpha}, nil
}

// CSS renders the colour as #rrggbb when opaque and rgba(...) otherwise.
func (c Colour) CSS() string {
	if c.Alpha >= 1 {
		return c.Hex()
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

// Transparent reports whether the colour has zero alpha.
func (c Colour) Transparent() bool {
	return c.Alpha == 0
}
