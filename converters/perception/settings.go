package perception

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/converters/settings"
)

// Settings configures predicted path drawing.
type Settings struct {
	ViewPredictedPaths     settings.Toggle `json:"viewPredictedPaths"`
	PredictedPathThickness float64         `json:"predictedPathThickness"`
	MaxPredictedPaths      int             `json:"maxPredictedPaths" jsonschema:"minimum=0,maximum=3"`
}

// DefaultSettings returns the perception defaults.
func DefaultSettings() Settings {
	return Settings{
		ViewPredictedPaths:     settings.On,
		PredictedPathThickness: 0.1,
		MaxPredictedPaths:      MaxPredictedPaths,
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

// Validate bounds the path count and requires a finite positive thickness.
func (cfg Settings) Validate() error {
	err := settings.CheckFinite("predictedPathThickness", cfg.PredictedPathThickness)
	if cfg.MaxPredictedPaths < 0 || cfg.MaxPredictedPaths > MaxPredictedPaths {
		err = multierr.Append(err, errors.Errorf("maxPredictedPaths must be between 0 and %d, got %d",
			MaxPredictedPaths, cfg.MaxPredictedPaths))
	}
	if cfg.PredictedPathThickness <= 0 {
		err = multierr.Append(err, errors.Errorf("predictedPathThickness must be positive, got %v", cfg.PredictedPathThickness))
	}
	return err
}
