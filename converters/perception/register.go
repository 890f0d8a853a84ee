package perception

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/msgs"
	"github.com/autoware-viz/sceneconv/registry"
	"github.com/autoware-viz/sceneconv/scene"
)

// Schema names handled by this package. Each list is registered under both the current and the
// legacy autoware_auto package.
var (
	DetectedObjectsSchemas = []string{
		"autoware_perception_msgs/msg/DetectedObjects",
		"autoware_auto_perception_msgs/msg/DetectedObjects",
	}
	TrackedObjectsSchemas = []string{
		"autoware_perception_msgs/msg/TrackedObjects",
		"autoware_auto_perception_msgs/msg/TrackedObjects",
	}
	PredictedObjectsSchemas = []string{
		"autoware_perception_msgs/msg/PredictedObjects",
		"autoware_auto_perception_msgs/msg/PredictedObjects",
	}
)

func describe() settings.Description {
	return settings.Describe(DefaultSettings())
}

func init() {
	for _, schema := range DetectedObjectsSchemas {
		registry.RegisterConverter(schema, registry.Registration{Convert: convertDetected})
	}
	for _, schema := range TrackedObjectsSchemas {
		registry.RegisterConverter(schema, registry.Registration{Convert: convertTracked})
	}
	for _, schema := range PredictedObjectsSchemas {
		registry.RegisterConverter(schema, registry.Registration{
			Convert:  convertPredicted,
			Settings: describe,
			Check:    CheckSettings,
		})
	}
}

func convertDetected(_ registry.Env, event registry.Event) (*scene.Update, error) {
	var msg msgs.DetectedObjects
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to decode DetectedObjects")
	}
	return ConvertDetectedObjects(msg), nil
}

func convertTracked(_ registry.Env, event registry.Event) (*scene.Update, error) {
	var msg msgs.TrackedObjects
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TrackedObjects")
	}
	return ConvertTrackedObjects(msg), nil
}

func convertPredicted(_ registry.Env, event registry.Event) (*scene.Update, error) {
	var msg msgs.PredictedObjects
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to decode PredictedObjects")
	}
	cfg, err := MergeSettings(event.Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid settings for topic %q", event.Topic)
	}
	return ConvertPredictedObjects(msg, cfg), nil
}
