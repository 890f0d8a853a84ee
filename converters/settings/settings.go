// Package settings decodes the per-topic override maps handed to converters and describes the
// fields each converter accepts.
package settings

import (
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/utils"
)

// Toggle is an On/Off layer switch.
type Toggle string

// The two toggle values.
const (
	On  Toggle = "On"
	Off Toggle = "Off"
)

// Enabled reports whether the toggle is On.
func (t Toggle) Enabled() bool {
	return t == On
}

// JSONSchema constrains toggles to their two values.
func (Toggle) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Enum: []interface{}{string(Off), string(On)}}
}

// ParseToggle accepts "on"/"off" in any case.
func ParseToggle(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return On, nil
	case "off":
		return Off, nil
	default:
		return "", errors.Errorf("invalid toggle %q, expected On or Off", s)
	}
}

// ToggleFromBool maps true to On.
func ToggleFromBool(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// ToggleDecodeHook lets mapstructure decode strings in any case and booleans into a Toggle.
func ToggleDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(Toggle("")) {
			return data, nil
		}
		switch v := data.(type) {
		case bool:
			return ToggleFromBool(v), nil
		case string:
			return ParseToggle(v)
		case Toggle:
			return ParseToggle(string(v))
		default:
			return nil, utils.NewUnexpectedTypeError("", data)
		}
	}
}

// Decode decodes override onto out, which must be a pointer to a struct already holding the
// defaults. Keys absent from override leave the defaults untouched. The returned keys were not
// recognized.
func Decode(override map[string]interface{}, out interface{}) ([]string, error) {
	if len(override) == 0 {
		return nil, nil
	}
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		Metadata:         &md,
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			ToggleDecodeHook(),
			scene.ColorDecodeHook(),
		),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(override); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	sort.Strings(md.Unused)
	return md.Unused, nil
}

// DecodeStrict is Decode, except that keys out does not recognize are an error.
func DecodeStrict(override map[string]interface{}, out interface{}) error {
	unused, err := Decode(override, out)
	if err != nil {
		return err
	}
	if len(unused) > 0 {
		return NewUnknownSettingsError(unused)
	}
	return nil
}

// UnknownSettingsError reports override keys that no setting field matched.
type UnknownSettingsError struct {
	Keys []string
}

func (e *UnknownSettingsError) Error() string {
	return "unknown settings " + strings.Join(e.Keys, ", ")
}

// NewUnknownSettingsError is used when override keys match no setting field.
func NewUnknownSettingsError(keys []string) error {
	return &UnknownSettingsError{Keys: keys}
}

// IsUnknownSettingsError reports whether err, or anything it wraps, is an UnknownSettingsError.
func IsUnknownSettingsError(err error) bool {
	var target *UnknownSettingsError
	return errors.As(err, &target)
}

// CheckFinite returns an error naming the setting if v is NaN or infinite.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("%s must be a finite number, got %v", name, v)
	}
	return nil
}

// CheckFiniteColor is CheckFinite applied to each channel of c.
func CheckFiniteColor(name string, c scene.Color) error {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("%s must have finite channels, got %v", name, c)
		}
	}
	return nil
}

// Description is the settings surface of one converter: the JSON schema of the accepted fields
// and their defaults.
type Description struct {
	Schema   *jsonschema.Schema `json:"schema"`
	Defaults interface{}        `json:"defaults"`
}

// Describe reflects the schema of defaults' type and pairs it with the default values.
func Describe(defaults interface{}) Description {
	reflector := jsonschema.Reflector{ExpandedStruct: true, RequiredFromJSONSchemaTags: true}
	return Description{Schema: reflector.Reflect(defaults), Defaults: defaults}
}
