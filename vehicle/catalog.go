package vehicle

import (
	"bytes"
	"encoding/json"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/utils"
)

// DefaultCatalog returns the built-in vehicle profiles. The first entry is the default
// selection.
func DefaultCatalog() []Profile {
	return []Profile{
		{
			Name:          "lexus",
			WheelBase:     2.79,
			WheelTread:    1.64,
			FrontOverhang: 1.0,
			RearOverhang:  1.1,
			LeftOverhang:  0.128,
			RightOverhang: 0.128,
			Height:        2.5,
		},
		{
			Name:          "taxi",
			WheelBase:     2.75,
			WheelTread:    1.485,
			FrontOverhang: 0.8,
			RearOverhang:  0.85,
			LeftOverhang:  0.105,
			RightOverhang: 0.105,
			Height:        2.5,
		},
		{
			Name:          "medium_bus",
			WheelBase:     4.76,
			WheelTread:    1.754,
			FrontOverhang: 0.9154,
			RearOverhang:  1.498,
			LeftOverhang:  0.273,
			RightOverhang: 0.273,
			Height:        3.06,
		},
		{
			Name:          "large_bus",
			WheelBase:     5.3,
			WheelTread:    2.065,
			FrontOverhang: 2.8,
			RearOverhang:  2.83,
			LeftOverhang:  0.25,
			RightOverhang: 0.25,
			Height:        3.1,
		},
		{
			Name:          "cargo_transport",
			WheelBase:     1.335,
			WheelTread:    0.955,
			FrontOverhang: 0.53,
			RearOverhang:  0.375,
			LeftOverhang:  0.0725,
			RightOverhang: 0.0725,
			Height:        1.87,
		},
	}
}

// Lookup returns the profile with the given name.
func Lookup(catalog []Profile, name string) (Profile, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// ValidateCatalog checks every profile and that names are unique, returning all problems found.
func ValidateCatalog(catalog []Profile) error {
	if len(catalog) == 0 {
		return errors.New("vehicle catalog is empty")
	}
	var allErrs error
	seen := make(map[string]struct{}, len(catalog))
	for idx, p := range catalog {
		path := utils.JoinPath("vehicles", idx)
		if err := p.Validate(path); err != nil {
			allErrs = multierr.Append(allErrs, err)
			continue
		}
		if _, ok := seen[p.Name]; ok {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(path, errors.Errorf("duplicate vehicle name %q", p.Name)))
		}
		seen[p.Name] = struct{}{}
	}
	return allErrs
}

// LoadCatalog reads a JSON array of profiles from path, expanding environment variables first.
func LoadCatalog(path string) ([]Profile, error) {
	buf, err := envsubst.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vehicle catalog %q", path)
	}
	var catalog []Profile
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&catalog); err != nil {
		return nil, errors.Wrapf(err, "failed to decode vehicle catalog %q", path)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}
