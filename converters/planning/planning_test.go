package planning

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.viam.com/test"

	"github.com/autoware-viz/sceneconv/converters/settings"
	"github.com/autoware-viz/sceneconv/msgs"
	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/spatialmath"
	"github.com/autoware-viz/sceneconv/vehicle"
)

const topic = "/planning/scenario_planning/trajectory"

var (
	header = msgs.Header{Stamp: msgs.Time{Sec: 10, Nsec: 500}, FrameID: "map"}
	lexus  = vehicle.DefaultCatalog()[0]
)

func straightInput(kind Kind, n int, velocity float64) Input {
	in := Input{Kind: kind, Header: header}
	for i := 0; i < n; i++ {
		p := Point{
			Pose: msgs.Pose{
				Position:    msgs.Point{X: float64(i), Z: 1},
				Orientation: msgs.Quaternion{W: 1},
			},
			Velocity: velocity,
		}
		if kind == KindTrajectory {
			p.TimeFromStart = &msgs.Duration{Sec: int32(i), Nsec: 500000000}
		}
		if kind == KindPathWithLaneID {
			p.LaneIDs = []int64{int64(100 + i)}
		}
		in.Points = append(in.Points, p)
	}
	return in
}

func onlyLayer(t *testing.T, kind Kind, override map[string]interface{}) RenderConfig {
	t.Helper()
	base := map[string]interface{}{"viewPath": "Off"}
	for k, v := range override {
		base[k] = v
	}
	cfg, err := Merge(kind, base)
	test.That(t, err, test.ShouldBeNil)
	return cfg
}

func entityByID(t *testing.T, update *scene.Update, id string) scene.Entity {
	t.Helper()
	for _, ent := range update.Entities {
		if ent.ID == id {
			return ent
		}
	}
	t.Fatalf("no entity %q in update", id)
	return scene.Entity{}
}

func TestEmptyPointsProduceNoEntities(t *testing.T) {
	for _, kind := range []Kind{KindPath, KindPathWithLaneID, KindTrajectory} {
		cfg := DefaultConfig(kind)
		cfg.ViewVelocity = settings.On
		cfg.ViewFootprint = settings.On
		update := Convert(Input{Kind: kind, Header: header}, cfg, lexus, topic)
		test.That(t, update.Entities, test.ShouldHaveLength, 0)
		test.That(t, update.Deletions, test.ShouldHaveLength, 0)
	}
}

func TestDefaultsPerKind(t *testing.T) {
	test.That(t, DefaultConfig(KindTrajectory).PathAlpha, test.ShouldEqual, 0.9999)
	test.That(t, DefaultConfig(KindPath).PathAlpha, test.ShouldEqual, 0.4)
	test.That(t, DefaultConfig(KindPathWithLaneID).PathAlpha, test.ShouldEqual, 0.4)

	cfg := DefaultConfig(KindPath)
	test.That(t, cfg.ViewPath, test.ShouldEqual, settings.On)
	test.That(t, cfg.ViewVelocity, test.ShouldEqual, settings.Off)
	test.That(t, cfg.PathWidth, test.ShouldEqual, 2.0)
	test.That(t, cfg.ColorBorderVelMax, test.ShouldEqual, 3.0)
	test.That(t, cfg.DrivableAreaStyle, test.ShouldEqual, DrivableAreaOutline)
	test.That(t, cfg.Validate(), test.ShouldBeNil)

	// only the ribbon by default
	update := Convert(straightInput(KindPath, 3, 1), cfg, lexus, topic)
	test.That(t, update.Entities, test.ShouldHaveLength, 1)
	test.That(t, update.Entities[0].ID, test.ShouldEqual, "path_"+topic)
}

func TestRibbonGeometry(t *testing.T) {
	cfg := DefaultConfig(KindTrajectory)
	update := Convert(straightInput(KindTrajectory, 4, 1.5), cfg, lexus, topic)
	ent := entityByID(t, update, PathEntityPrefix+topic)

	test.That(t, ent.Timestamp, test.ShouldResemble, header.Stamp)
	test.That(t, ent.FrameID, test.ShouldEqual, "map")
	test.That(t, ent.Lifetime, test.ShouldResemble, msgs.Duration{Nsec: 200000000})
	test.That(t, ent.Triangles, test.ShouldHaveLength, 1)

	tri := ent.Triangles[0]
	test.That(t, tri.Points, test.ShouldHaveLength, 8)
	test.That(t, tri.Colors, test.ShouldHaveLength, 8)
	test.That(t, tri.Indices, test.ShouldResemble, []uint32{
		0, 1, 2, 1, 2, 3,
		2, 3, 4, 3, 4, 5,
		4, 5, 6, 5, 6, 7,
	})

	expected := []scene.Vector3{
		{X: 0, Y: 1, Z: 1.01}, {X: 0, Y: -1, Z: 1.01},
		{X: 1, Y: 1, Z: 1.01}, {X: 1, Y: -1, Z: 1.01},
	}
	if diff := cmp.Diff(expected, tri.Points[:4], cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected ribbon vertices (-want +got):\n%s", diff)
	}

	// velocity is half of colorBorderVelMax, so the ribbon is the mid color
	test.That(t, tri.Colors[0], test.ShouldResemble, cfg.MidVelocityColor.WithAlpha(0.9999))
}

func TestRibbonFollowsOrientation(t *testing.T) {
	in := straightInput(KindPath, 2, 0)
	for i := range in.Points {
		in.Points[i].Pose.Orientation = spatialmath.QuatToMsg(spatialmath.QuaternionFromYaw(math.Pi / 2))
	}
	cfg := DefaultConfig(KindPath)
	cfg.PathWidth = 4
	tri := entityByID(t, Convert(in, cfg, lexus, topic), PathEntityPrefix+topic).Triangles[0]

	// +y in the body frame is -x in the world once rotated by 90 degrees
	test.That(t, tri.Points[0].X, test.ShouldAlmostEqual, -2, 1e-12)
	test.That(t, tri.Points[0].Y, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, tri.Points[1].X, test.ShouldAlmostEqual, 2, 1e-12)
	test.That(t, tri.Colors[0], test.ShouldResemble, cfg.MinVelocityColor.WithAlpha(0.4))
}

func TestRibbonWithoutFadeUsesBaseAlpha(t *testing.T) {
	for _, n := range []int{1, 2, 7} {
		cfg := DefaultConfig(KindPath)
		cfg.PathAlpha = 0.65
		tri := entityByID(t, Convert(straightInput(KindPath, n, 2), cfg, lexus, topic), PathEntityPrefix+topic).Triangles[0]
		test.That(t, tri.Colors, test.ShouldHaveLength, 2*n)
		for _, c := range tri.Colors {
			test.That(t, c.A, test.ShouldEqual, 0.65)
		}
	}
}

func TestFadeAlphas(t *testing.T) {
	positions := []r3.Vector{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}

	alphas := FadeAlphas(positions, 0.8, 2.5)
	test.That(t, alphas[5], test.ShouldEqual, 0)
	test.That(t, alphas[4], test.ShouldAlmostEqual, 0.8*1/2.5, 1e-12)
	test.That(t, alphas[3], test.ShouldAlmostEqual, 0.8*2/2.5, 1e-12)
	test.That(t, alphas[2], test.ShouldEqual, 0.8)
	test.That(t, alphas[0], test.ShouldEqual, 0.8)
	for i := len(alphas) - 1; i > 0; i-- {
		test.That(t, alphas[i-1], test.ShouldBeGreaterThanOrEqualTo, alphas[i])
	}

	// exactly at the fade distance still ramps
	alphas = FadeAlphas(positions, 1, 2)
	test.That(t, alphas[3], test.ShouldEqual, 1)
	test.That(t, alphas[2], test.ShouldEqual, 1)

	test.That(t, FadeAlphas(positions, 0.5, 0), test.ShouldResemble, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5})
	test.That(t, FadeAlphas(positions[:1], 0.5, 3), test.ShouldResemble, []float64{0})
	test.That(t, FadeAlphas(nil, 0.5, 3), test.ShouldBeEmpty)
}

func TestRibbonFade(t *testing.T) {
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewPath": "On", "fadeOutDistance": 100.0})
	tri := entityByID(t, Convert(straightInput(KindPath, 5, 1), cfg, lexus, topic), PathEntityPrefix+topic).Triangles[0]
	last := len(tri.Colors) - 1
	test.That(t, tri.Colors[last].A, test.ShouldEqual, 0)
	test.That(t, tri.Colors[last-1].A, test.ShouldEqual, 0)
	for i := last; i > 1; i -= 2 {
		test.That(t, tri.Colors[i-2].A, test.ShouldBeGreaterThanOrEqualTo, tri.Colors[i].A)
		test.That(t, math.IsNaN(tri.Colors[i].A), test.ShouldBeFalse)
	}
}

func TestVelocityArrows(t *testing.T) {
	in := straightInput(KindTrajectory, 2, 0)
	in.Points[1].Velocity = 2

	cfg := onlyLayer(t, KindTrajectory, map[string]interface{}{"viewVelocity": "On", "velocityAlpha": 0.5})
	ent := entityByID(t, Convert(in, cfg, lexus, topic), VelocityEntityPrefix+topic)
	test.That(t, ent.Arrows, test.ShouldHaveLength, 2)

	test.That(t, ent.Arrows[0].Pose.Position.Z, test.ShouldAlmostEqual, 1+BaseZHeight, 1e-12)
	test.That(t, ent.Arrows[1].Pose.Position.Z, test.ShouldAlmostEqual, 1+2*0.3, 1e-12)
	test.That(t, ent.Arrows[0].ShaftLength, test.ShouldEqual, 0.2)
	test.That(t, ent.Arrows[0].ShaftDiameter, test.ShouldEqual, 0.04)
	test.That(t, ent.Arrows[0].HeadLength, test.ShouldEqual, 0.1)
	test.That(t, ent.Arrows[0].HeadDiameter, test.ShouldEqual, 0.08)
	test.That(t, ent.Arrows[0].Color, test.ShouldResemble, cfg.MinVelocityColor.WithAlpha(0.5))
	test.That(t, ent.Arrows[1].Pose.Orientation, test.ShouldResemble, msgs.Quaternion{W: 1})

	cfg = onlyLayer(t, KindTrajectory, map[string]interface{}{
		"viewVelocity":          true,
		"velocityConstantColor": true,
		"velocityColor":         "#ff0000",
	})
	ent = entityByID(t, Convert(in, cfg, lexus, topic), VelocityEntityPrefix+topic)
	for _, arrow := range ent.Arrows {
		test.That(t, arrow.Color, test.ShouldResemble, scene.NewColor(1, 0, 0))
	}
}

func TestVelocityTexts(t *testing.T) {
	in := straightInput(KindPath, 2, 1.23456)
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewVelocityText": "On", "velocityTextScale": 0.5})
	ent := entityByID(t, Convert(in, cfg, lexus, topic), VelocityTextEntityPrefix+topic)
	test.That(t, ent.Texts, test.ShouldHaveLength, 2)
	test.That(t, ent.Texts[0].Text, test.ShouldEqual, "1.23")
	test.That(t, ent.Texts[0].Billboard, test.ShouldBeTrue)
	test.That(t, ent.Texts[0].FontSize, test.ShouldEqual, 0.5)
	test.That(t, ent.Texts[0].Color, test.ShouldResemble, scene.White)
	test.That(t, ent.Texts[0].Pose.Position.Z, test.ShouldAlmostEqual, 1.05, 1e-12)
}

func TestFootprints(t *testing.T) {
	in := straightInput(KindPath, 2, 1)
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewFootprint": "On", "footprintAlpha": 0.3})
	ent := entityByID(t, Convert(in, cfg, lexus, topic), FootprintEntityPrefix+topic)
	test.That(t, ent.Lines, test.ShouldHaveLength, 8)

	first := ent.Lines[0]
	test.That(t, first.Type, test.ShouldEqual, scene.LineList)
	test.That(t, first.Thickness, test.ShouldEqual, 0.05)
	test.That(t, first.Indices, test.ShouldResemble, []uint32{0, 1})
	test.That(t, first.Color, test.ShouldResemble, cfg.FootprintColor.WithAlpha(0.3))

	top := lexus.Length() - lexus.RearOverhang
	half := lexus.Width() / 2
	expected := []scene.Vector3{{X: top, Y: -half, Z: 1.03}, {X: top, Y: half, Z: 1.03}}
	if diff := cmp.Diff(expected, first.Points, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected footprint edge (-want +got):\n%s", diff)
	}
	// the rectangle closes on its first corner
	test.That(t, ent.Lines[3].Points[1], test.ShouldResemble, first.Points[0])
	test.That(t, ent.Lines[2].Points[0].X, test.ShouldAlmostEqual, -lexus.RearOverhang, 1e-12)

	cfg.OffsetFromBaselink = 0.5
	shifted := entityByID(t, Convert(in, cfg, lexus, topic), FootprintEntityPrefix+topic)
	test.That(t, shifted.Lines[0].Points[0].X, test.ShouldAlmostEqual, top-0.5, 1e-12)
	test.That(t, shifted.Lines[2].Points[0].X, test.ShouldAlmostEqual, -lexus.RearOverhang+0.5, 1e-12)
}

func TestPointMarkers(t *testing.T) {
	in := straightInput(KindPath, 1, 0)
	in.Points[0].Pose.Orientation = spatialmath.QuatToMsg(spatialmath.QuaternionFromYaw(math.Pi / 2))
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewPoint": "On", "pointOffset": 2.0, "pointRadius": 0.25})
	ent := entityByID(t, Convert(in, cfg, lexus, topic), PointsEntityPrefix+topic)
	test.That(t, ent.Spheres, test.ShouldHaveLength, 1)

	sphere := ent.Spheres[0]
	test.That(t, sphere.Size, test.ShouldResemble, scene.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	test.That(t, sphere.Pose.Position.X, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, sphere.Pose.Position.Y, test.ShouldAlmostEqual, 2, 1e-12)
	test.That(t, sphere.Pose.Position.Z, test.ShouldAlmostEqual, 1.04, 1e-12)
	test.That(t, sphere.Color, test.ShouldResemble, cfg.PointColor)
}

func boundedInput(kind Kind) Input {
	in := straightInput(kind, 3, 1)
	in.LeftBound = []r3.Vector{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	in.RightBound = []r3.Vector{{X: 0, Y: -2}, {X: 2, Y: -2}}
	return in
}

func TestDrivableAreaOutline(t *testing.T) {
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewDrivableArea": "On"})
	ent := entityByID(t, Convert(boundedInput(KindPath), cfg, lexus, topic), DrivableAreaEntityPrefix+topic)
	test.That(t, ent.Lines, test.ShouldHaveLength, 3)
	for _, line := range ent.Lines {
		test.That(t, line.Thickness, test.ShouldEqual, 0.3)
		test.That(t, line.Color.A, test.ShouldEqual, 1)
		test.That(t, line.Points, test.ShouldHaveLength, 2)
		test.That(t, line.Points[0].Z, test.ShouldAlmostEqual, 0.06, 1e-12)
	}
	test.That(t, ent.Lines[2].Points[0].Y, test.ShouldEqual, -2)
}

func TestDrivableAreaFilled(t *testing.T) {
	cfg := onlyLayer(t, KindPathWithLaneID, map[string]interface{}{"viewDrivableArea": "On", "drivableAreaStyle": "filled"})
	ent := entityByID(t, Convert(boundedInput(KindPathWithLaneID), cfg, lexus, topic), DrivableAreaEntityPrefix+topic)
	test.That(t, ent.Lines, test.ShouldHaveLength, 0)
	test.That(t, ent.Triangles, test.ShouldHaveLength, 1)
	test.That(t, ent.Triangles[0].Points, test.ShouldHaveLength, 4)
	test.That(t, ent.Triangles[0].Indices, test.ShouldResemble, []uint32{0, 1, 2, 1, 2, 3})
	test.That(t, ent.Triangles[0].Color.A, test.ShouldEqual, 0.999)
}

func TestDrivableAreaRequiresBothBounds(t *testing.T) {
	cfg := onlyLayer(t, KindPath, map[string]interface{}{"viewDrivableArea": "On"})
	in := boundedInput(KindPath)
	in.RightBound = nil
	test.That(t, Convert(in, cfg, lexus, topic).Entities, test.ShouldHaveLength, 0)

	// trajectories never draw a drivable area
	traj := boundedInput(KindTrajectory)
	cfg = onlyLayer(t, KindTrajectory, map[string]interface{}{"viewDrivableArea": "On"})
	test.That(t, Convert(traj, cfg, lexus, topic).Entities, test.ShouldHaveLength, 0)
}

func TestTimeTexts(t *testing.T) {
	cfg := onlyLayer(t, KindTrajectory, map[string]interface{}{"viewTimeText": "On", "timeTextScale": 0})
	ent := entityByID(t, Convert(straightInput(KindTrajectory, 3, 1), cfg, lexus, topic), TimeTextEntityPrefix+topic)
	test.That(t, ent.Texts, test.ShouldHaveLength, 3)
	test.That(t, ent.Texts[0].Text, test.ShouldEqual, "0.50")
	test.That(t, ent.Texts[2].Text, test.ShouldEqual, "2.50")
	test.That(t, ent.Texts[0].FontSize, test.ShouldEqual, 0.0001)
	test.That(t, ent.Texts[0].ScaleInvariant, test.ShouldBeTrue)

	// paths have no time from start
	cfg = onlyLayer(t, KindPath, map[string]interface{}{"viewTimeText": "On"})
	test.That(t, Convert(straightInput(KindPath, 3, 1), cfg, lexus, topic).Entities, test.ShouldHaveLength, 0)
}

func TestLaneIDTexts(t *testing.T) {
	in := straightInput(KindPathWithLaneID, 3, 1)
	in.Points[0].LaneIDs = []int64{7, 8}
	in.Points[1].LaneIDs = nil
	cfg := onlyLayer(t, KindPathWithLaneID, map[string]interface{}{"viewLaneId": "On"})
	ent := entityByID(t, Convert(in, cfg, lexus, topic), LaneIDEntityPrefix+topic)
	test.That(t, ent.Texts, test.ShouldHaveLength, 2)
	test.That(t, ent.Texts[0].Text, test.ShouldEqual, "7,8")
	test.That(t, ent.Texts[1].Text, test.ShouldEqual, "102")
	test.That(t, ent.Texts[0].Pose.Position.Z, test.ShouldAlmostEqual, 1.09, 1e-12)
}

func TestMerge(t *testing.T) {
	cfg, err := Merge(KindTrajectory, map[string]interface{}{
		"viewVelocity":     "on",
		"pathWidth":        1.5,
		"minVelocityColor": map[string]interface{}{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ViewVelocity, test.ShouldEqual, settings.On)
	test.That(t, cfg.PathWidth, test.ShouldEqual, 1.5)
	test.That(t, cfg.MinVelocityColor, test.ShouldResemble, scene.NewColor(1, 0, 0))

	expected := DefaultConfig(KindTrajectory)
	expected.ViewVelocity = settings.On
	expected.PathWidth = 1.5
	expected.MinVelocityColor = scene.NewColor(1, 0, 0)
	test.That(t, cfg, test.ShouldResemble, expected)

	cfg, err = Merge(KindPath, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg, test.ShouldResemble, DefaultConfig(KindPath))

	_, err = Merge(KindPath, map[string]interface{}{"pathWidth": map[string]interface{}{"a": 1}})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = Merge(KindPath, map[string]interface{}{"drivableAreaStyle": "hatched", "pathWidth": -1.0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "hatched")
	test.That(t, err.Error(), test.ShouldContainSubstring, "pathWidth")
}

func TestMergeRejectsNonFinite(t *testing.T) {
	for _, override := range []map[string]interface{}{
		{"fadeOutDistance": "NaN"},
		{"pathWidth": "Inf"},
		{"velocityScale": math.Inf(-1)},
		{"pointOffset": math.NaN()},
		{"pointColor": map[string]interface{}{"r": "NaN", "g": 0, "b": 0, "a": 1}},
	} {
		_, err := Merge(KindPath, override)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "finite")
	}

	_, err := Merge(KindTrajectory, map[string]interface{}{"fadeOutDistance": "NaN", "timeTextScale": "Inf"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "fadeOutDistance")
	test.That(t, err.Error(), test.ShouldContainSubstring, "timeTextScale")
}

func TestMergeRejectsUnknownKeys(t *testing.T) {
	_, err := Merge(KindPath, map[string]interface{}{"viewPath": "Off", "pathWidht": 5})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, settings.IsUnknownSettingsError(err), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "pathWidht")

	test.That(t, CheckSettings(map[string]interface{}{"viewLaneId": "On", "viewTimeText": "On"}), test.ShouldBeNil)
	test.That(t, CheckSettings(map[string]interface{}{"viewLaneIds": "On"}), test.ShouldNotBeNil)
}

func settingsKeys(t *testing.T, kind Kind) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(SettingsFor(kind).Defaults)
	test.That(t, err, test.ShouldBeNil)
	var keys map[string]interface{}
	test.That(t, json.Unmarshal(data, &keys), test.ShouldBeNil)
	return keys
}

func TestSettingsFor(t *testing.T) {
	path := settingsKeys(t, KindPath)
	test.That(t, path, test.ShouldContainKey, "viewDrivableArea")
	test.That(t, path, test.ShouldNotContainKey, "viewTimeText")
	test.That(t, path, test.ShouldNotContainKey, "viewLaneId")
	test.That(t, path["pathAlpha"], test.ShouldEqual, 0.4)
	test.That(t, path["viewPath"], test.ShouldEqual, "On")

	lanes := settingsKeys(t, KindPathWithLaneID)
	test.That(t, lanes, test.ShouldContainKey, "viewDrivableArea")
	test.That(t, lanes, test.ShouldContainKey, "viewLaneId")
	test.That(t, lanes, test.ShouldNotContainKey, "viewTimeText")

	traj := settingsKeys(t, KindTrajectory)
	test.That(t, traj, test.ShouldContainKey, "viewTimeText")
	test.That(t, traj, test.ShouldNotContainKey, "viewDrivableArea")
	test.That(t, traj["pathAlpha"], test.ShouldEqual, 0.9999)

	schema, err := json.Marshal(SettingsFor(KindTrajectory).Schema)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(schema), test.ShouldContainSubstring, "timeTextScale")
	test.That(t, string(schema), test.ShouldNotContainSubstring, "drivableAreaWidth")
}

func TestDecodeInput(t *testing.T) {
	data := []byte(`{
		"header": {"stamp": {"sec": 1, "nanosec": 2}, "frame_id": "map"},
		"points": [
			{"point": {"pose": {"position": {"x": 1, "y": 2, "z": 3}, "orientation": {"w": 1}},
				"longitudinal_velocity_mps": 4.5}, "lane_ids": [11, 12]}
		],
		"left_bound": [{"x": 0, "y": 1, "z": 0}],
		"right_bound": [{"x": 0, "y": -1, "z": 0}]
	}`)
	in, err := DecodeInput(KindPathWithLaneID, data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, in.Kind, test.ShouldEqual, KindPathWithLaneID)
	test.That(t, in.Header.Stamp, test.ShouldResemble, msgs.Time{Sec: 1, Nsec: 2})
	test.That(t, in.Points, test.ShouldHaveLength, 1)
	test.That(t, in.Points[0].Velocity, test.ShouldEqual, 4.5)
	test.That(t, in.Points[0].LaneIDs, test.ShouldResemble, []int64{11, 12})
	test.That(t, in.Points[0].TimeFromStart, test.ShouldBeNil)
	test.That(t, in.HasBounds(), test.ShouldBeTrue)

	traj, err := DecodeInput(KindTrajectory, []byte(`{"points": [{"time_from_start": {"sec": 2, "nanosec": 0}}]}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, traj.Points[0].TimeFromStart, test.ShouldResemble, &msgs.Duration{Sec: 2})
	test.That(t, traj.HasBounds(), test.ShouldBeFalse)

	_, err = DecodeInput(KindPath, []byte(`{"points": 5}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to decode Path")
}

func TestKindString(t *testing.T) {
	test.That(t, KindPath.String(), test.ShouldEqual, "Path")
	test.That(t, KindPathWithLaneID.String(), test.ShouldEqual, "PathWithLaneId")
	test.That(t, KindTrajectory.String(), test.ShouldEqual, "Trajectory")
}
