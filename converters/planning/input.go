// Package planning converts planning paths, paths with lane ids and trajectories into ribbons,
// arrows, footprints and labels.
package planning

import (
	"encoding/json"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/msgs"
)

// Kind identifies which planning message an Input was built from.
type Kind int

// The planning message kinds.
const (
	KindPath Kind = iota
	KindPathWithLaneID
	KindTrajectory
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "Path"
	case KindPathWithLaneID:
		return "PathWithLaneId"
	case KindTrajectory:
		return "Trajectory"
	default:
		return "Unknown"
	}
}

// HasBounds reports whether messages of this kind carry drivable area bounds.
func (k Kind) HasBounds() bool {
	return k == KindPath || k == KindPathWithLaneID
}

// HasTimeFromStart reports whether points of this kind carry a time from start.
func (k Kind) HasTimeFromStart() bool {
	return k == KindTrajectory
}

// HasLaneIDs reports whether points of this kind carry lane ids.
func (k Kind) HasLaneIDs() bool {
	return k == KindPathWithLaneID
}

// Point is one planning point in any of the three message kinds.
type Point struct {
	Pose     msgs.Pose
	Velocity float64
	// TimeFromStart is set only for trajectories.
	TimeFromStart *msgs.Duration
	// LaneIDs is set only for paths with lane ids.
	LaneIDs []int64
}

// Position returns the point position as a vector.
func (p Point) Position() r3.Vector {
	return p.Pose.Position.Vec()
}

// Input is a planning message resolved once into a single shape.
type Input struct {
	Kind       Kind
	Header     msgs.Header
	Points     []Point
	LeftBound  []r3.Vector
	RightBound []r3.Vector
}

// HasBounds reports whether both drivable area bounds have at least one point.
func (in Input) HasBounds() bool {
	return in.Kind.HasBounds() && len(in.LeftBound) > 0 && len(in.RightBound) > 0
}

// Positions returns the position of every point in order.
func (in Input) Positions() []r3.Vector {
	positions := make([]r3.Vector, 0, len(in.Points))
	for _, p := range in.Points {
		positions = append(positions, p.Position())
	}
	return positions
}

func boundVectors(points []msgs.Point) []r3.Vector {
	out := make([]r3.Vector, 0, len(points))
	for _, p := range points {
		out = append(out, p.Vec())
	}
	return out
}

// FromPath normalizes a Path.
func FromPath(msg msgs.Path) Input {
	in := Input{
		Kind:       KindPath,
		Header:     msg.Header,
		Points:     make([]Point, 0, len(msg.Points)),
		LeftBound:  boundVectors(msg.LeftBound),
		RightBound: boundVectors(msg.RightBound),
	}
	for _, p := range msg.Points {
		in.Points = append(in.Points, Point{Pose: p.Pose, Velocity: p.LongitudinalVelocityMps})
	}
	return in
}

// FromPathWithLaneID normalizes a PathWithLaneId.
func FromPathWithLaneID(msg msgs.PathWithLaneID) Input {
	in := Input{
		Kind:       KindPathWithLaneID,
		Header:     msg.Header,
		Points:     make([]Point, 0, len(msg.Points)),
		LeftBound:  boundVectors(msg.LeftBound),
		RightBound: boundVectors(msg.RightBound),
	}
	for _, p := range msg.Points {
		in.Points = append(in.Points, Point{
			Pose:     p.Point.Pose,
			Velocity: p.Point.LongitudinalVelocityMps,
			LaneIDs:  p.LaneIDs,
		})
	}
	return in
}

// FromTrajectory normalizes a Trajectory.
func FromTrajectory(msg msgs.Trajectory) Input {
	in := Input{
		Kind:   KindTrajectory,
		Header: msg.Header,
		Points: make([]Point, 0, len(msg.Points)),
	}
	for _, p := range msg.Points {
		timeFromStart := p.TimeFromStart
		in.Points = append(in.Points, Point{
			Pose:          p.Pose,
			Velocity:      p.LongitudinalVelocityMps,
			TimeFromStart: &timeFromStart,
		})
	}
	return in
}

// DecodeInput decodes a JSON message of the given kind.
func DecodeInput(kind Kind, data []byte) (Input, error) {
	switch kind {
	case KindPath:
		var msg msgs.Path
		if err := json.Unmarshal(data, &msg); err != nil {
			return Input{}, errors.Wrap(err, "failed to decode Path")
		}
		return FromPath(msg), nil
	case KindPathWithLaneID:
		var msg msgs.PathWithLaneID
		if err := json.Unmarshal(data, &msg); err != nil {
			return Input{}, errors.Wrap(err, "failed to decode PathWithLaneId")
		}
		return FromPathWithLaneID(msg), nil
	case KindTrajectory:
		var msg msgs.Trajectory
		if err := json.Unmarshal(data, &msg); err != nil {
			return Input{}, errors.Wrap(err, "failed to decode Trajectory")
		}
		return FromTrajectory(msg), nil
	default:
		return Input{}, errors.Errorf("unknown planning kind %d", kind)
	}
}
