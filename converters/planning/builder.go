package planning

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/spatialmath"
	"github.com/autoware-viz/sceneconv/vehicle"
)

// BaseZHeight lifts every planning primitive off the ground plane.
const BaseZHeight = 0.01

// Lifetime is how long, in seconds, planning entities stay visible without a refresh.
const Lifetime = 0.2

// Arrow dimensions, in meters.
const (
	arrowShaftLength   = 0.2
	arrowShaftDiameter = 0.04
	arrowHeadLength    = 0.1
	arrowHeadDiameter  = 0.08
)

// Layer heights above BaseZHeight.
const (
	velocityTextZ = 0.04
	footprintZ    = 0.02
	pointZ        = 0.03
	drivableAreaZ = 0.05
	timeTextZ     = 0.04
	laneIDTextZ   = 0.08

	footprintThickness = 0.05
	minTimeTextScale   = 0.0001
)

// Entity id prefixes. The topic name is appended to each.
const (
	PathEntityPrefix         = "path_"
	VelocityEntityPrefix     = "velocity_"
	VelocityTextEntityPrefix = "velocity_text_"
	FootprintEntityPrefix    = "footprint_"
	PointsEntityPrefix       = "points_"
	DrivableAreaEntityPrefix = "drivable_area_"
	TimeTextEntityPrefix     = "time_text_"
	LaneIDEntityPrefix       = "lane_id_"
)

// Convert builds one entity per enabled layer that has something to draw. An input without
// points yields an update with no entities.
func Convert(in Input, cfg RenderConfig, profile vehicle.Profile, topic string) *scene.Update {
	update := scene.NewUpdate()
	if len(in.Points) == 0 {
		return update
	}
	b := &builder{in: in, cfg: cfg, profile: profile, topic: topic}

	if cfg.ViewPath.Enabled() {
		update.Add(b.ribbon())
	}
	if cfg.ViewVelocity.Enabled() {
		update.Add(b.velocityArrows())
	}
	if cfg.ViewVelocityText.Enabled() {
		update.Add(b.velocityTexts())
	}
	if cfg.ViewFootprint.Enabled() {
		update.Add(b.footprints())
	}
	if cfg.ViewPoint.Enabled() {
		update.Add(b.points())
	}
	if in.Kind.HasBounds() && cfg.ViewDrivableArea.Enabled() {
		update.Add(b.drivableArea())
	}
	if in.Kind.HasTimeFromStart() && cfg.ViewTimeText.Enabled() {
		update.Add(b.timeTexts())
	}
	if in.Kind.HasLaneIDs() && cfg.ViewLaneID.Enabled() {
		update.Add(b.laneIDTexts())
	}
	return update
}

type builder struct {
	in      Input
	cfg     RenderConfig
	profile vehicle.Profile
	topic   string
}

func (b *builder) entity(prefix string) scene.Entity {
	return scene.NewEntity(prefix+b.topic, b.in.Header, scene.Lifetime(Lifetime))
}

func (b *builder) velocityColor(velocity float64) scene.Color {
	return scene.ColorForVelocity(
		velocity,
		b.cfg.ColorBorderVelMax,
		b.cfg.MinVelocityColor,
		b.cfg.MidVelocityColor,
		b.cfg.MaxVelocityColor,
	)
}

func lifted(p r3.Vector, dz float64) scene.Vector3 {
	return scene.NewVector3(r3.Vector{X: p.X, Y: p.Y, Z: p.Z + dz})
}

func (b *builder) ribbon() scene.Entity {
	ent := b.entity(PathEntityPrefix)
	alphas := FadeAlphas(b.in.Positions(), b.cfg.PathAlpha, b.cfg.FadeOutDistance)
	halfWidth := b.cfg.PathWidth / 2

	vertices := make([]scene.Vector3, 0, 2*len(b.in.Points))
	colors := make([]scene.Color, 0, 2*len(b.in.Points))
	for i, p := range b.in.Points {
		color := b.velocityColor(p.Velocity).WithAlpha(alphas[i])
		q := spatialmath.QuatFromMsg(p.Pose.Orientation)
		position := p.Position()

		right := position.Add(spatialmath.RotateVector(q, r3.Vector{Y: halfWidth}))
		left := position.Add(spatialmath.RotateVector(q, r3.Vector{Y: -halfWidth}))
		vertices = append(vertices, lifted(right, BaseZHeight), lifted(left, BaseZHeight))
		colors = append(colors, color, color)
	}

	indices := []uint32{}
	for i := 0; i < len(vertices)-2; i += 2 {
		v := uint32(i)
		indices = append(indices, v, v+1, v+2, v+1, v+2, v+3)
	}

	ent.Triangles = append(ent.Triangles, scene.TriangleList{
		Pose:    scene.IdentityPose(),
		Points:  vertices,
		Color:   scene.White,
		Colors:  colors,
		Indices: indices,
	})
	return ent
}

func (b *builder) velocityArrows() scene.Entity {
	ent := b.entity(VelocityEntityPrefix)
	for _, p := range b.in.Points {
		color := b.cfg.VelocityColor
		if !b.cfg.VelocityConstantColor {
			color = b.velocityColor(p.Velocity)
		}
		ent.Arrows = append(ent.Arrows, scene.Arrow{
			Pose: scene.Pose{
				Position:    lifted(p.Position(), math.Max(BaseZHeight, p.Velocity*b.cfg.VelocityScale)),
				Orientation: p.Pose.Orientation,
			},
			ShaftLength:   arrowShaftLength,
			ShaftDiameter: arrowShaftDiameter,
			HeadLength:    arrowHeadLength,
			HeadDiameter:  arrowHeadDiameter,
			Color:         color.WithAlpha(b.cfg.VelocityAlpha),
		})
	}
	return ent
}

func (b *builder) label(p Point, dz, fontSize float64, text string) scene.Text {
	return scene.Text{
		Pose: scene.Pose{
			Position:    lifted(p.Position(), BaseZHeight+dz),
			Orientation: p.Pose.Orientation,
		},
		Billboard: true,
		FontSize:  fontSize,
		Color:     scene.White,
		Text:      text,
	}
}

func (b *builder) velocityTexts() scene.Entity {
	ent := b.entity(VelocityTextEntityPrefix)
	for _, p := range b.in.Points {
		ent.Texts = append(ent.Texts, b.label(p, velocityTextZ, b.cfg.VelocityTextScale, fmt.Sprintf("%.2f", p.Velocity)))
	}
	return ent
}

func segment(start, end scene.Vector3, thickness float64, color scene.Color) scene.Line {
	return scene.Line{
		Type:      scene.LineList,
		Pose:      scene.IdentityPose(),
		Thickness: thickness,
		Points:    []scene.Vector3{start, end},
		Color:     color,
		Colors:    []scene.Color{color, color},
		Indices:   []uint32{0, 1},
	}
}

func (b *builder) footprints() scene.Entity {
	ent := b.entity(FootprintEntityPrefix)
	top := b.profile.Length() - b.profile.RearOverhang - b.cfg.OffsetFromBaselink
	bottom := -b.profile.RearOverhang + b.cfg.OffsetFromBaselink
	halfWidth := b.profile.Width() / 2
	corners := [4][2]float64{
		{top, -halfWidth},
		{top, halfWidth},
		{bottom, halfWidth},
		{bottom, -halfWidth},
	}
	color := b.cfg.FootprintColor.WithAlpha(b.cfg.FootprintAlpha)

	for _, p := range b.in.Points {
		yaw := spatialmath.YawFromQuaternion(spatialmath.QuatFromMsg(p.Pose.Orientation))
		position := p.Position()
		var world [4]scene.Vector3
		for i, c := range corners {
			world[i] = lifted(spatialmath.OffsetAlongYaw(position, yaw, c[0], c[1]), BaseZHeight+footprintZ)
		}
		for i := range world {
			ent.Lines = append(ent.Lines, segment(world[i], world[(i+1)%4], footprintThickness, color))
		}
	}
	return ent
}

func (b *builder) points() scene.Entity {
	ent := b.entity(PointsEntityPrefix)
	color := b.cfg.PointColor.WithAlpha(b.cfg.PointAlpha)
	diameter := 2 * b.cfg.PointRadius
	for _, p := range b.in.Points {
		yaw := spatialmath.YawFromQuaternion(spatialmath.QuatFromMsg(p.Pose.Orientation))
		center := spatialmath.OffsetAlongYaw(p.Position(), yaw, b.cfg.PointOffset, 0)
		ent.Spheres = append(ent.Spheres, scene.Sphere{
			Pose:  scene.Pose{Position: lifted(center, BaseZHeight+pointZ), Orientation: scene.IdentityPose().Orientation},
			Size:  scene.Vector3{X: diameter, Y: diameter, Z: diameter},
			Color: color,
		})
	}
	return ent
}

func (b *builder) drivableArea() scene.Entity {
	ent := b.entity(DrivableAreaEntityPrefix)
	if !b.in.HasBounds() {
		return ent
	}
	dz := BaseZHeight + drivableAreaZ

	if b.cfg.DrivableAreaStyle == DrivableAreaFilled {
		n := min(len(b.in.LeftBound), len(b.in.RightBound))
		if n < 2 {
			return ent
		}
		vertices := make([]scene.Vector3, 0, 2*n)
		for i := 0; i < n; i++ {
			vertices = append(vertices, lifted(b.in.LeftBound[i], dz), lifted(b.in.RightBound[i], dz))
		}
		indices := make([]uint32, 0, 6*(n-1))
		for i := 0; i < n-1; i++ {
			v := uint32(2 * i)
			indices = append(indices, v, v+1, v+2, v+1, v+2, v+3)
		}
		ent.Triangles = append(ent.Triangles, scene.TriangleList{
			Pose:    scene.IdentityPose(),
			Points:  vertices,
			Color:   b.cfg.DrivableAreaColor.WithAlpha(b.cfg.DrivableAreaAlpha),
			Colors:  []scene.Color{},
			Indices: indices,
		})
		return ent
	}

	edgeColor := b.cfg.DrivableAreaColor.WithAlpha(1)
	for _, bound := range [][]r3.Vector{b.in.LeftBound, b.in.RightBound} {
		for i := 0; i+1 < len(bound); i++ {
			ent.Lines = append(ent.Lines, segment(lifted(bound[i], dz), lifted(bound[i+1], dz), b.cfg.DrivableAreaWidth, edgeColor))
		}
	}
	return ent
}

func (b *builder) timeTexts() scene.Entity {
	ent := b.entity(TimeTextEntityPrefix)
	fontSize := math.Max(minTimeTextScale, b.cfg.TimeTextScale)
	for _, p := range b.in.Points {
		if p.TimeFromStart == nil {
			continue
		}
		text := b.label(p, timeTextZ, fontSize, fmt.Sprintf("%.2f", p.TimeFromStart.Seconds()))
		text.ScaleInvariant = true
		ent.Texts = append(ent.Texts, text)
	}
	return ent
}

func (b *builder) laneIDTexts() scene.Entity {
	ent := b.entity(LaneIDEntityPrefix)
	for _, p := range b.in.Points {
		if len(p.LaneIDs) == 0 {
			continue
		}
		ids := make([]string, 0, len(p.LaneIDs))
		for _, id := range p.LaneIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		ent.Texts = append(ent.Texts, b.label(p, laneIDTextZ, b.cfg.LaneIDTextScale, strings.Join(ids, ",")))
	}
	return ent
}
