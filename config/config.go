// Package config defines the structures to configure a sceneconv run.
package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/autoware-viz/sceneconv/logging"
	"github.com/autoware-viz/sceneconv/registry"
	"github.com/autoware-viz/sceneconv/utils"
	"github.com/autoware-viz/sceneconv/vehicle"
)

// A Config describes which topics to convert, how, and for which vehicle.
type Config struct {
	ConfigFilePath string `json:"-"`

	// Vehicle names the initially selected profile. Empty selects the first in the catalog.
	Vehicle string `json:"vehicle,omitempty"`

	// VehicleCatalog is a path to a JSON list of profiles, relative to the config file.
	VehicleCatalog string `json:"vehicle_catalog,omitempty"`

	Vehicles []vehicle.Profile `json:"vehicles,omitempty"`

	Topics      []TopicConfig                 `json:"topics,omitempty"`
	Diagnostics []string                      `json:"diagnostics,omitempty"`
	Log         []logging.LoggerPatternConfig `json:"log,omitempty"`
}

// TopicConfig binds a topic to the converter for its schema, with per-topic setting overrides.
type TopicConfig struct {
	Topic    string                 `json:"topic"`
	Schema   string                 `json:"schema"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (tc *TopicConfig) Validate(path string) error {
	if tc.Topic == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "topic")
	}
	if tc.Schema == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "schema")
	}
	reg, ok := registry.ConverterLookup(tc.Schema)
	if !ok {
		return utils.NewConfigValidationError(path, registry.NewConverterNotFoundError(tc.Schema))
	}
	if err := reg.CheckSettings(tc.Settings); err != nil {
		return utils.NewConfigValidationError(utils.JoinPath(path, "settings"), err)
	}
	return nil
}

// DefaultTopics returns the usual Autoware topics for every built in converter.
func DefaultTopics() []TopicConfig {
	return []TopicConfig{
		{Topic: "/localization/kinematic_state", Schema: "nav_msgs/msg/Odometry"},
		{Topic: "/perception/object_recognition/detection/objects", Schema: "autoware_perception_msgs/msg/DetectedObjects"},
		{Topic: "/perception/object_recognition/tracking/objects", Schema: "autoware_perception_msgs/msg/TrackedObjects"},
		{Topic: "/perception/object_recognition/objects", Schema: "autoware_perception_msgs/msg/PredictedObjects"},
		{
			Topic:  "/planning/scenario_planning/lane_driving/behavior_planning/path_with_lane_id",
			Schema: "autoware_internal_planning_msgs/msg/PathWithLaneId",
		},
		{Topic: "/planning/scenario_planning/lane_driving/behavior_planning/path", Schema: "autoware_planning_msgs/msg/Path"},
		{Topic: "/planning/scenario_planning/trajectory", Schema: "autoware_planning_msgs/msg/Trajectory"},
	}
}

// Catalog returns the vehicle profiles to choose from: the inline list, else the catalog file,
// else the built in catalog.
func (c *Config) Catalog() ([]vehicle.Profile, error) {
	switch {
	case len(c.Vehicles) > 0:
		return c.Vehicles, nil
	case c.VehicleCatalog != "":
		path := c.VehicleCatalog
		if !filepath.IsAbs(path) && c.ConfigFilePath != "" {
			path = filepath.Join(filepath.Dir(c.ConfigFilePath), path)
		}
		return vehicle.LoadCatalog(path)
	default:
		return vehicle.DefaultCatalog(), nil
	}
}

// Ensure validates the config and reports every problem found rather than only the first.
func (c *Config) Ensure() error {
	var allErrs error

	if len(c.Vehicles) > 0 && c.VehicleCatalog != "" {
		allErrs = multierr.Append(allErrs, errors.New("only one of vehicles and vehicle_catalog may be set"))
	}
	catalog, err := c.Catalog()
	if err == nil {
		err = vehicle.ValidateCatalog(catalog)
	}
	switch {
	case err != nil:
		allErrs = multierr.Append(allErrs, err)
	case c.Vehicle != "":
		if _, ok := vehicle.Lookup(catalog, c.Vehicle); !ok {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError("vehicle",
				errors.Errorf("unknown vehicle %q", c.Vehicle)))
		}
	}

	seen := map[string]int{}
	for idx := range c.Topics {
		path := utils.JoinPath("topics", idx)
		if err := c.Topics[idx].Validate(path); err != nil {
			allErrs = multierr.Append(allErrs, err)
			continue
		}
		if prev, ok := seen[c.Topics[idx].Topic]; ok {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(path,
				errors.Errorf("topic %q already configured at topics.%d", c.Topics[idx].Topic, prev)))
			continue
		}
		seen[c.Topics[idx].Topic] = idx
	}

	for idx, topic := range c.Diagnostics {
		if topic == "" {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(utils.JoinPath("diagnostics", idx),
				errors.New("topic must not be empty")))
		}
	}

	for idx, pattern := range c.Log {
		path := utils.JoinPath("log", idx)
		if !logging.ValidatePattern(pattern.Pattern) {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(path,
				errors.Errorf("invalid logger pattern %q", pattern.Pattern)))
		}
		if _, err := logging.LevelFromString(pattern.Level); err != nil {
			allErrs = multierr.Append(allErrs, utils.NewConfigValidationError(path, err))
		}
	}
	return allErrs
}

// Topic returns the configuration for topic.
func (c *Config) Topic(topic string) (TopicConfig, bool) {
	for _, tc := range c.Topics {
		if tc.Topic == topic {
			return tc, true
		}
	}
	return TopicConfig{}, false
}

// TopicNames returns every configured topic, including diagnostics topics, in config order.
func (c *Config) TopicNames() []string {
	names := make([]string, 0, len(c.Topics)+len(c.Diagnostics))
	for _, tc := range c.Topics {
		names = append(names, tc.Topic)
	}
	return append(names, c.Diagnostics...)
}
