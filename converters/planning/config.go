package planning

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/scene"
)

// DrivableAreaStyle selects how the drivable area bounds are drawn.
type DrivableAreaStyle string

// The drivable area styles.
const (
	DrivableAreaOutline DrivableAreaStyle = "outline"
	DrivableAreaFilled  DrivableAreaStyle = "filled"
)

// PathSettings configures the velocity colored ribbon.
type PathSettings struct {
	ViewPath          settings.Toggle `json:"viewPath"`
	PathWidth         float64         `json:"pathWidth"`
	PathAlpha         float64         `json:"pathAlpha"`
	MinVelocityColor  scene.Color     `json:"minVelocityColor"`
	MidVelocityColor  scene.Color     `json:"midVelocityColor"`
	MaxVelocityColor  scene.Color     `json:"maxVelocityColor"`
	FadeOutDistance   float64         `json:"fadeOutDistance"`
	ColorBorderVelMax float64         `json:"colorBorderVelMax"`
}

// VelocitySettings configures velocity arrows and velocity labels.
type VelocitySettings struct {
	ViewVelocity          settings.Toggle `json:"viewVelocity"`
	VelocityAlpha         float64         `json:"velocityAlpha"`
	VelocityScale         float64         `json:"velocityScale"`
	VelocityConstantColor bool            `json:"velocityConstantColor"`
	VelocityColor         scene.Color     `json:"velocityColor"`
	ViewVelocityText      settings.Toggle `json:"viewVelocityText"`
	VelocityTextScale     float64         `json:"velocityTextScale"`
}

// FootprintSettings configures the vehicle outline drawn at each point.
type FootprintSettings struct {
	ViewFootprint      settings.Toggle `json:"viewFootprint"`
	FootprintAlpha     float64         `json:"footprintAlpha"`
	FootprintColor     scene.Color     `json:"footprintColor"`
	OffsetFromBaselink float64         `json:"offsetFromBaselink"`
}

// PointSettings configures the sphere markers.
type PointSettings struct {
	ViewPoint   settings.Toggle `json:"viewPoint"`
	PointAlpha  float64         `json:"pointAlpha"`
	PointColor  scene.Color     `json:"pointColor"`
	PointRadius float64         `json:"pointRadius"`
	PointOffset float64         `json:"pointOffset"`
}

// DrivableAreaSettings applies to paths only.
type DrivableAreaSettings struct {
	ViewDrivableArea  settings.Toggle   `json:"viewDrivableArea"`
	DrivableAreaAlpha float64           `json:"drivableAreaAlpha"`
	DrivableAreaColor scene.Color       `json:"drivableAreaColor"`
	DrivableAreaWidth float64           `json:"drivableAreaWidth"`
	DrivableAreaStyle DrivableAreaStyle `json:"drivableAreaStyle" jsonschema:"enum=outline,enum=filled"`
}

// TimeTextSettings applies to trajectories only.
type TimeTextSettings struct {
	ViewTimeText  settings.Toggle `json:"viewTimeText"`
	TimeTextScale float64         `json:"timeTextScale"`
}

// LaneIDSettings applies to paths with lane ids only.
type LaneIDSettings struct {
	ViewLaneID      settings.Toggle `json:"viewLaneId"`
	LaneIDTextScale float64         `json:"laneIdTextScale"`
}

// CommonSettings are the settings every planning kind accepts.
type CommonSettings struct {
	PathSettings
	VelocitySettings
	FootprintSettings
	PointSettings
}

// RenderConfig is the full set of planning settings. Fields that do not apply to a message kind
// are ignored when that kind is converted.
type RenderConfig struct {
	CommonSettings
	DrivableAreaSettings
	TimeTextSettings
	LaneIDSettings
}

// DefaultConfig returns the defaults for the given kind.
func DefaultConfig(kind Kind) RenderConfig {
	cfg := RenderConfig{
		CommonSettings: CommonSettings{
			PathSettings: PathSettings{
				ViewPath:          settings.On,
				PathWidth:         2.0,
				PathAlpha:         0.4,
				MinVelocityColor:  scene.NewColor(0.247, 0.18, 0.89),
				MidVelocityColor:  scene.NewColor(0.125, 0.541, 0.682),
				MaxVelocityColor:  scene.NewColor(0.0, 0.902, 0.471),
				FadeOutDistance:   0,
				ColorBorderVelMax: 3.0,
			},
			VelocitySettings: VelocitySettings{
				ViewVelocity:          settings.Off,
				VelocityAlpha:         1.0,
				VelocityScale:         0.3,
				VelocityConstantColor: false,
				VelocityColor:         scene.Black,
				ViewVelocityText:      settings.Off,
				VelocityTextScale:     0.3,
			},
			FootprintSettings: FootprintSettings{
				ViewFootprint:      settings.Off,
				FootprintAlpha:     1.0,
				FootprintColor:     scene.NewColor(0.902, 0.902, 0.196),
				OffsetFromBaselink: 0,
			},
			PointSettings: PointSettings{
				ViewPoint:   settings.Off,
				PointAlpha:  1.0,
				PointColor:  scene.NewColor(0.0, 0.235, 1.0),
				PointRadius: 0.1,
				PointOffset: 0,
			},
		},
		DrivableAreaSettings: DrivableAreaSettings{
			ViewDrivableArea:  settings.Off,
			DrivableAreaAlpha: 0.999,
			DrivableAreaColor: scene.NewColor(0.0, 0.58, 0.8),
			DrivableAreaWidth: 0.3,
			DrivableAreaStyle: DrivableAreaOutline,
		},
		TimeTextSettings: TimeTextSettings{
			ViewTimeText:  settings.Off,
			TimeTextScale: 0.3,
		},
		LaneIDSettings: LaneIDSettings{
			ViewLaneID:      settings.Off,
			LaneIDTextScale: 0.3,
		},
	}
	if kind == KindTrajectory {
		cfg.PathAlpha = 0.9999
	}
	return cfg
}

// Merge decodes override on top of the kind's defaults. Keys matching no setting are an error.
func Merge(kind Kind, override map[string]interface{}) (RenderConfig, error) {
	cfg := DefaultConfig(kind)
	if err := settings.DecodeStrict(override, &cfg); err != nil {
		return RenderConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return cfg, nil
}

// CheckSettings reports whether override would merge cleanly for any planning kind.
func CheckSettings(override map[string]interface{}) error {
	_, err := Merge(KindPath, override)
	return err
}

func (cfg RenderConfig) numbers() map[string]float64 {
	return map[string]float64{
		"pathWidth":          cfg.PathWidth,
		"pathAlpha":          cfg.PathAlpha,
		"fadeOutDistance":    cfg.FadeOutDistance,
		"colorBorderVelMax":  cfg.ColorBorderVelMax,
		"velocityAlpha":      cfg.VelocityAlpha,
		"velocityScale":      cfg.VelocityScale,
		"velocityTextScale":  cfg.VelocityTextScale,
		"footprintAlpha":     cfg.FootprintAlpha,
		"offsetFromBaselink": cfg.OffsetFromBaselink,
		"pointAlpha":         cfg.PointAlpha,
		"pointRadius":        cfg.PointRadius,
		"pointOffset":        cfg.PointOffset,
		"drivableAreaAlpha":  cfg.DrivableAreaAlpha,
		"drivableAreaWidth":  cfg.DrivableAreaWidth,
		"timeTextScale":      cfg.TimeTextScale,
		"laneIdTextScale":    cfg.LaneIDTextScale,
	}
}

func (cfg RenderConfig) colors() map[string]scene.Color {
	return map[string]scene.Color{
		"minVelocityColor":  cfg.MinVelocityColor,
		"midVelocityColor":  cfg.MidVelocityColor,
		"maxVelocityColor":  cfg.MaxVelocityColor,
		"velocityColor":     cfg.VelocityColor,
		"footprintColor":    cfg.FootprintColor,
		"pointColor":        cfg.PointColor,
		"drivableAreaColor": cfg.DrivableAreaColor,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// Validate rejects settings that would produce degenerate geometry.
func (cfg RenderConfig) Validate() error {
	var err error
	numbers := cfg.numbers()
	for _, name := range sortedKeys(numbers) {
		err = multierr.Append(err, settings.CheckFinite(name, numbers[name]))
	}
	colors := cfg.colors()
	for _, name := range sortedKeys(colors) {
		err = multierr.Append(err, settings.CheckFiniteColor(name, colors[name]))
	}
	if cfg.PathWidth < 0 {
		err = multierr.Append(err, errors.Errorf("pathWidth must not be negative, got %v", cfg.PathWidth))
	}
	if cfg.FadeOutDistance < 0 {
		err = multierr.Append(err, errors.Errorf("fadeOutDistance must not be negative, got %v", cfg.FadeOutDistance))
	}
	if cfg.PointRadius < 0 {
		err = multierr.Append(err, errors.Errorf("pointRadius must not be negative, got %v", cfg.PointRadius))
	}
	switch cfg.DrivableAreaStyle {
	case DrivableAreaOutline, DrivableAreaFilled:
	default:
		err = multierr.Append(err, errors.Errorf("unknown drivableAreaStyle %q", cfg.DrivableAreaStyle))
	}
	return err
}
