// Package vehicle holds the vehicle geometry profiles used to size the ego cube and footprints,
// and the selector that tracks which profile is current.
package vehicle

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/utils"
)

// Profile is the geometry of one vehicle model, in meters.
type Profile struct {
	Name          string  `json:"name"`
	WheelBase     float64 `json:"wheel_base"`
	WheelTread    float64 `json:"wheel_tread"`
	FrontOverhang float64 `json:"front_overhang"`
	RearOverhang  float64 `json:"rear_overhang"`
	LeftOverhang  float64 `json:"left_overhang"`
	RightOverhang float64 `json:"right_overhang"`
	Height        float64 `json:"vehicle_height"`
}

// Length is front overhang plus wheel base plus rear overhang.
func (p Profile) Length() float64 {
	return p.FrontOverhang + p.WheelBase + p.RearOverhang
}

// Width is wheel tread plus the left and right overhangs.
func (p Profile) Width() float64 {
	return p.WheelTread + p.LeftOverhang + p.RightOverhang
}

// Validate ensures the profile describes a box with positive extent.
func (p Profile) Validate(path string) error {
	if p.Name == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "name")
	}
	var err error
	if p.Length() <= 0 {
		err = multierr.Append(err, errors.Errorf("length must be positive, got %v", p.Length()))
	}
	if p.Width() <= 0 {
		err = multierr.Append(err, errors.Errorf("width must be positive, got %v", p.Width()))
	}
	if p.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("vehicle_height must be positive, got %v", p.Height))
	}
	if err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	return nil
}
