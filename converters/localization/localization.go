// Package localization converts odometry into the ego vehicle cube and its fading position
// history.
package localization

import (
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/autoware-viz/sceneconv/history"
	"github.com/autoware-viz/sceneconv/msgs"
	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/spatialmath"
	"github.com/autoware-viz/sceneconv/vehicle"
)

// Lifetime is how long, in seconds, ego entities stay visible without a refresh.
const Lifetime = 1.0

// ReferenceTopicMarker marks topics carrying the reference rather than the estimated state.
const ReferenceTopicMarker = "reference_kinematic_state"

// Entity ids.
const (
	EgoEntityID               = "ego_vehicle"
	ReferenceEgoEntityID      = "reference_ego_vehicle"
	EgoTrajectoryEntityPrefix = "ego_trajectory_"
)

// Ego colors.
var (
	EgoColor          = scene.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.7}
	ReferenceEgoColor = scene.Color{R: 1.0, G: 0.5, B: 0.0, A: 0.5}
)

// IsReferenceTopic reports whether topic carries the reference kinematic state.
func IsReferenceTopic(topic string) bool {
	return strings.Contains(topic, ReferenceTopicMarker)
}

// EgoCube returns the vehicle box for a base_link pose: the box is shifted forward so its rear
// face is RearOverhang behind the pose, and up so it rests on the pose z.
func EgoCube(pose msgs.Pose, profile vehicle.Profile, color scene.Color) scene.Cube {
	length, width, height := profile.Length(), profile.Width(), profile.Height
	yaw := spatialmath.YawFromQuaternion(spatialmath.QuatFromMsg(pose.Orientation))
	center := spatialmath.OffsetAlongYaw(pose.Position.Vec(), yaw, length/2-profile.RearOverhang, 0)
	center.Z += height / 2
	return scene.Cube{
		Pose:  scene.NewPose(center, pose.Orientation),
		Size:  scene.Vector3{X: length, Y: width, Z: height},
		Color: color,
	}
}

// ConvertOdometry draws the ego cube and, when enabled and hist is set, records the pose in the
// topic's history and draws what remains of it as spheres that fade with age.
func ConvertOdometry(
	msg msgs.Odometry,
	topic string,
	profile vehicle.Profile,
	cfg Settings,
	hist *history.Trajectories,
) *scene.Update {
	id, color := EgoEntityID, EgoColor
	if IsReferenceTopic(topic) {
		id, color = ReferenceEgoEntityID, ReferenceEgoColor
	}
	pose := msg.Pose.Pose

	ego := scene.NewEntity(id, msg.Header, scene.Lifetime(Lifetime))
	ego.Cubes = append(ego.Cubes, EgoCube(pose, profile, color))
	update := scene.NewUpdate(ego)

	if !cfg.ViewTrajectoryPoints.Enabled() || hist == nil {
		return update
	}
	samples := hist.Update(topic, history.Sample{Position: pose.Position.Vec(), Stamp: msg.Header.Stamp}, cfg.TrajectoryFadeTime)
	update.Add(trajectoryEntity(topic, msg.Header, samples, color, cfg))
	return update
}

func trajectoryEntity(topic string, header msgs.Header, samples []history.Sample, color scene.Color, cfg Settings) scene.Entity {
	ent := scene.NewEntity(EgoTrajectoryEntityPrefix+topic, header, scene.Lifetime(Lifetime))
	latest := header.Stamp.Seconds()
	size := cfg.TrajectoryPointSize
	for _, s := range samples {
		age := latest - s.Stamp.Seconds()
		freshness := 1.0
		if cfg.TrajectoryFadeTime > 0 {
			freshness = math.Max(0, 1-age/cfg.TrajectoryFadeTime)
		}
		ent.Spheres = append(ent.Spheres, scene.Sphere{
			Pose:  scene.NewPose(s.Position, msgs.Quaternion{W: 1}),
			Size:  scene.NewVector3(r3.Vector{X: size, Y: size, Z: size}),
			Color: color.WithAlpha(color.A * freshness),
		})
	}
	return ent
}
