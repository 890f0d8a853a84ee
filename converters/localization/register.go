package localization

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/msgs"
	"github.com/autoware-viz/sceneconv/registry"
	"github.com/autoware-viz/sceneconv/scene"
)

// OdometrySchema is the schema name handled by this package.
const OdometrySchema = "nav_msgs/msg/Odometry"

func init() {
	registry.RegisterConverter(OdometrySchema, registry.Registration{
		Convert: convert,
		Settings: func() settings.Description {
			return settings.Describe(DefaultSettings())
		},
		Check: CheckSettings,
	})
}

func convert(env registry.Env, event registry.Event) (*scene.Update, error) {
	var msg msgs.Odometry
	if err := json.Unmarshal(event.Data, &msg); err != nil {
		return nil, errors.Wrap(err, "failed to decode Odometry")
	}
	cfg, err := MergeSettings(event.Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid settings for topic %q", event.Topic)
	}
	return ConvertOdometry(msg, event.Topic, env.Vehicle, cfg, env.History), nil
}
