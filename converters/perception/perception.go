// Package perception converts detected, tracked and predicted object lists into bounding cubes
// and dashed predicted path segments.
package perception

import (
	"math"

	"github.com/autoware-viz/sceneconv/msgs"
	"github.com/autoware-viz/sceneconv/scene"
)

// Lifetime is how long, in seconds, object entities stay visible without a refresh.
const Lifetime = 1.0

// Entity ids, one per object list kind.
const (
	DetectedObjectsEntityID  = "detected_objects"
	TrackedObjectsEntityID   = "tracked_objects"
	PredictedObjectsEntityID = "predicted_objects"
)

// palette is indexed by classification label.
var palette = [...]scene.Color{
	{R: 1.0, G: 1.0, B: 1.0, A: 0.5},   // white
	{R: 1.0, G: 0.0, B: 0.0, A: 0.5},   // red
	{R: 1.0, G: 0.5, B: 0.5, A: 0.5},   // pink
	{R: 0.0, G: 0.5, B: 1.0, A: 0.5},   // blue
	{R: 0.0, G: 0.5, B: 1.0, A: 0.5},   // blue
	{R: 1.0, G: 0.5, B: 0.5, A: 0.5},   // pink
	{R: 1.0, G: 1.0, B: 0.5, A: 0.5},   // yellow
	{R: 0.75, G: 1.0, B: 0.25, A: 0.5}, // green
}

// predictedPathAlphas is the alpha of each predicted path by rank.
var predictedPathAlphas = [...]float64{0.7, 0.3, 0.1}

// MaxPredictedPaths is the most predicted paths drawn per object.
const MaxPredictedPaths = len(predictedPathAlphas)

// ColorForLabel returns the palette color of a label, or opaque white for labels outside it.
func ColorForLabel(label uint8) scene.Color {
	if int(label) < len(palette) {
		return palette[label]
	}
	return scene.White
}

// object is the part of every object kind the converter draws.
type object struct {
	classification []msgs.ObjectClassification
	pose           msgs.Pose
	dimensions     msgs.Vector3
	predictedPaths []msgs.PredictedPath
}

func (o object) label() (uint8, bool) {
	if len(o.classification) == 0 {
		return 0, false
	}
	return o.classification[0].Label, true
}

// cube sits the box on the pose z rather than centering it there.
func (o object) cube(color scene.Color) scene.Cube {
	position := o.pose.Position.Vec()
	position.Z += o.dimensions.Z / 2
	return scene.Cube{
		Pose:  scene.NewPose(position, o.pose.Orientation),
		Size:  scene.NewVector3(o.dimensions.Vec()),
		Color: color,
	}
}

// showsPredictions filters out unknown objects and objects whose initial position is not
// ahead of the origin.
func (o object) showsPredictions(label uint8) bool {
	return label != msgs.ClassificationUnknown && math.Floor(o.pose.Position.X) > 0
}

func (o object) predictedSegments(color scene.Color, cfg Settings) []scene.Line {
	lines := []scene.Line{}
	count := min(len(o.predictedPaths), cfg.MaxPredictedPaths, MaxPredictedPaths)
	for rank := 0; rank < count; rank++ {
		pathColor := color.WithAlpha(predictedPathAlphas[rank])
		path := o.predictedPaths[rank].Path
		for i := 0; i+1 < len(path); i += 2 {
			lines = append(lines, scene.Line{
				Type:      scene.LineList,
				Pose:      scene.IdentityPose(),
				Thickness: cfg.PredictedPathThickness,
				Points: []scene.Vector3{
					scene.NewVector3(path[i].Position.Vec()),
					scene.NewVector3(path[i+1].Position.Vec()),
				},
				Color:   pathColor,
				Colors:  []scene.Color{},
				Indices: []uint32{},
			})
		}
	}
	return lines
}

func convert(id string, header msgs.Header, objects []object, cfg Settings, predictions bool) *scene.Update {
	ent := scene.NewEntity(id, header, scene.Lifetime(Lifetime))
	for _, o := range objects {
		label, ok := o.label()
		if !ok {
			continue
		}
		color := ColorForLabel(label)
		ent.Cubes = append(ent.Cubes, o.cube(color))
		if predictions && cfg.ViewPredictedPaths.Enabled() && o.showsPredictions(label) {
			ent.Lines = append(ent.Lines, o.predictedSegments(color, cfg)...)
		}
	}
	return scene.NewUpdate(ent)
}

// ConvertDetectedObjects draws a cube per classified object.
func ConvertDetectedObjects(msg msgs.DetectedObjects) *scene.Update {
	objects := make([]object, 0, len(msg.Objects))
	for _, o := range msg.Objects {
		objects = append(objects, object{
			classification: o.Classification,
			pose:           o.Kinematics.PoseWithCovariance.Pose,
			dimensions:     o.Shape.Dimensions,
		})
	}
	return convert(DetectedObjectsEntityID, msg.Header, objects, DefaultSettings(), false)
}

// ConvertTrackedObjects draws a cube per classified object.
func ConvertTrackedObjects(msg msgs.TrackedObjects) *scene.Update {
	objects := make([]object, 0, len(msg.Objects))
	for _, o := range msg.Objects {
		objects = append(objects, object{
			classification: o.Classification,
			pose:           o.Kinematics.PoseWithCovariance.Pose,
			dimensions:     o.Shape.Dimensions,
		})
	}
	return convert(TrackedObjectsEntityID, msg.Header, objects, DefaultSettings(), false)
}

// ConvertPredictedObjects draws a cube per classified object at its initial pose plus, for
// known objects, dashed segments along their highest ranked predicted paths.
func ConvertPredictedObjects(msg msgs.PredictedObjects, cfg Settings) *scene.Update {
	objects := make([]object, 0, len(msg.Objects))
	for _, o := range msg.Objects {
		objects = append(objects, object{
			classification: o.Classification,
			pose:           o.Kinematics.InitialPoseWithCovariance.Pose,
			dimensions:     o.Shape.Dimensions,
			predictedPaths: o.Kinematics.PredictedPaths,
		})
	}
	return convert(PredictedObjectsEntityID, msg.Header, objects, cfg, true)
}
