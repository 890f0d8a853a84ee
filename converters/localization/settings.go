package localization

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/converters/settings"
)

// Settings configures the ego position history. TrajectoryFadeTime is the history window in
// seconds of message time.
type Settings struct {
	ViewTrajectoryPoints settings.Toggle `json:"viewTrajectoryPoints"`
	TrajectoryFadeTime   float64         `json:"trajectoryFadeTime"`
	TrajectoryPointSize  float64         `json:"trajectoryPointSize"`
}

// DefaultSettings returns the localization defaults.
func DefaultSettings() Settings {
	return Settings{
		ViewTrajectoryPoints: settings.Off,
		TrajectoryFadeTime:   5,
		TrajectoryPointSize:  0.3,
	}
}

// MergeSettings decodes override on top of the defaults. Keys matching no setting are an error.
func MergeSettings(override map[string]interface{}) (Settings, error) {
	cfg := DefaultSettings()
	if err := settings.DecodeStrict(override, &cfg); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// CheckSettings reports whether override would merge cleanly.
func CheckSettings(override map[string]interface{}) error {
	_, err := MergeSettings(override)
	return err
}

// Validate requires a finite positive fade time and point size.
func (cfg Settings) Validate() error {
	err := multierr.Combine(
		settings.CheckFinite("trajectoryFadeTime", cfg.TrajectoryFadeTime),
		settings.CheckFinite("trajectoryPointSize", cfg.TrajectoryPointSize),
	)
	if cfg.TrajectoryFadeTime <= 0 {
		err = multierr.Append(err, errors.Errorf("trajectoryFadeTime must be positive, got %v", cfg.TrajectoryFadeTime))
	}
	if cfg.TrajectoryPointSize <= 0 {
		err = multierr.Append(err, errors.Errorf("trajectoryPointSize must be positive, got %v", cfg.TrajectoryPointSize))
	}
	return err
}
