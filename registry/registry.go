// Package registry operates the global registry of message converters, keyed by the schema name
// of the message they consume.
package registry

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/history"
	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/vehicle"
)

// Env is the cross-call state a converter may read. Vehicle is the profile current when the
// message was dispatched.
type Env struct {
	Vehicle vehicle.Profile
	History *history.Trajectories
}

// Event is one message delivered on a topic, with the topic's settings override.
type Event struct {
	Topic    string
	Schema   string
	Data     json.RawMessage
	Settings map[string]interface{}
}

// A ConvertFunc turns one message into a scene update.
type ConvertFunc func(env Env, event Event) (*scene.Update, error)

// A SettingsFunc describes the settings a converter accepts.
type SettingsFunc func() settings.Description

// A SettingsCheckFunc validates a topic's settings override before any message is converted.
type SettingsCheckFunc func(override map[string]interface{}) error

// Registration is the info for a converter. A converter without Check accepts no settings.
type Registration struct {
	Convert  ConvertFunc
	Settings SettingsFunc
	Check    SettingsCheckFunc
}

// CheckSettings validates override against the converter's settings.
func (r Registration) CheckSettings(override map[string]interface{}) error {
	if len(override) == 0 {
		return nil
	}
	if r.Check == nil {
		return settings.NewUnknownSettingsError(sortedKeys(override))
	}
	return r.Check(override)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Registration{}
)

// RegisterConverter registers a converter for a schema name.
func RegisterConverter(schema string, reg Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, old := registry[schema]; old {
		panic(errors.Errorf("trying to register two converters with same schema %s", schema))
	}
	if reg.Convert == nil {
		panic(errors.Errorf("cannot register a nil converter for schema %s", schema))
	}
	registry[schema] = reg
}

// DeregisterConverter removes a previously registered converter.
func DeregisterConverter(schema string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, schema)
}

// ConverterLookup looks up a converter by the given schema name. False is returned if
// there is no converter registered.
func ConverterLookup(schema string) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[schema]
	return reg, ok
}

// RegisteredSchemas returns every registered schema name, sorted.
func RegisteredSchemas() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedKeys(registry)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// ConverterNotFoundError is returned when no converter handles a schema.
type ConverterNotFoundError struct {
	Schema string
}

func (e *ConverterNotFoundError) Error() string {
	return "no converter registered for schema " + strconv.Quote(e.Schema)
}

// NewConverterNotFoundError is used when no converter handles a schema.
func NewConverterNotFoundError(schema string) error {
	return &ConverterNotFoundError{Schema: schema}
}

// IsConverterNotFoundError reports whether err, or anything it wraps, is a
// ConverterNotFoundError.
func IsConverterNotFoundError(err error) bool {
	var target *ConverterNotFoundError
	return errors.As(err, &target)
}
