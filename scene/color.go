package scene

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/utils"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common colors.
var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
)

// NewColor returns an opaque color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex returns the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) Hex() string {
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(math.Round(utils.Clamp(c.A, 0, 1)*255)))
}

func (c Color) String() string {
	return fmt.Sprintf("%s (%4.2f,%4.2f,%4.2f,%4.2f)", c.Hex(), c.R, c.G, c.B, c.A)
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa. Colors without an alpha byte are opaque.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, "invalid alpha in color %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return Color{R: parsed.R, G: parsed.G, B: parsed.B, A: alpha}, nil
}

// ColorDecodeHook lets mapstructure decode a hex string into a Color. Maps with r, g, b, a keys
// decode through the default struct path.
func ColorDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(Color{}) || from.Kind() != reflect.String {
			return data, nil
		}
		str, ok := data.(string)
		if !ok {
			return nil, utils.NewUnexpectedTypeError("", data)
		}
		return ParseHexColor(str)
	}
}

// ColorForVelocity maps a velocity onto the min, mid, max color ramp. The ratio
// velocity/maxVelocity is clamped to [0, 1]; a non-positive maxVelocity is treated as ratio 0.
// The result is always opaque.
func ColorForVelocity(velocity, maxVelocity float64, minColor, midColor, maxColor Color) Color {
	ratio := 0.0
	if maxVelocity > 0 {
		ratio = utils.Clamp(velocity/maxVelocity, 0, 1)
	}

	if ratio < 0.5 {
		return lerp(minColor, midColor, ratio*2)
	}
	return lerp(midColor, maxColor, (ratio-0.5)*2)
}

// lerp returns to*l + from*(1-l), exact at both ends.
func lerp(from, to Color, l float64) Color {
	return Color{
		R: to.R*l + from.R*(1-l),
		G: to.G*l + from.G*(1-l),
		B: to.B*l + from.B*(1-l),
		A: 1,
	}
}
