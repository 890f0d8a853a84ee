package planning

import (
	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/registry"
	"github.com/autoware-viz/sceneconv/scene"
)

// Schema names handled by this package.
const (
	PathSchema           = "autoware_planning_msgs/msg/Path"
	PathWithLaneIDSchema = "autoware_internal_planning_msgs/msg/PathWithLaneId"
	TrajectorySchema     = "autoware_planning_msgs/msg/Trajectory"
)

// Schemas maps each handled schema name to its kind.
var Schemas = map[string]Kind{
	PathSchema:           KindPath,
	PathWithLaneIDSchema: KindPathWithLaneID,
	TrajectorySchema:     KindTrajectory,
}

func init() {
	for schema, kind := range Schemas {
		registry.RegisterConverter(schema, registry.Registration{
			Convert: converterFor(kind),
			Settings: func() settings.Description {
				return SettingsFor(kind)
			},
			Check: CheckSettings,
		})
	}
}

func converterFor(kind Kind) registry.ConvertFunc {
	return func(env registry.Env, event registry.Event) (*scene.Update, error) {
		in, err := DecodeInput(kind, event.Data)
		if err != nil {
			return nil, err
		}
		cfg, err := Merge(kind, event.Settings)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid settings for topic %q", event.Topic)
		}
		return Convert(in, cfg, env.Vehicle, event.Topic), nil
	}
}
