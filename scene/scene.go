// Package scene defines the 3D scene primitives the converters emit. Field names and JSON tags
// follow the foxglove SceneUpdate schema so an update can be handed to a viewer unchanged.
package scene

import (
	"github.com/golang/geo/r3"

	"github.com/autoware-viz/sceneconv/msgs"
)

// LineType is how a line primitive's points are connected.
type LineType int

// The known line types.
const (
	LineStrip LineType = iota
	LineLoop
	LineList
)

// Vector3 is a point or size in meters.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewVector3 converts an r3.Vector.
func NewVector3(v r3.Vector) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Pose is a position and orientation in the entity frame.
type Pose struct {
	Position    Vector3         `json:"position"`
	Orientation msgs.Quaternion `json:"orientation"`
}

// NewPose builds a pose from a vector and a quaternion message.
func NewPose(position r3.Vector, orientation msgs.Quaternion) Pose {
	return Pose{Position: NewVector3(position), Orientation: orientation}
}

// IdentityPose is a pose at the origin with no rotation.
func IdentityPose() Pose {
	return Pose{Orientation: msgs.Quaternion{W: 1}}
}

// Arrow is an ArrowPrimitive.
type Arrow struct {
	Pose          Pose    `json:"pose"`
	ShaftLength   float64 `json:"shaft_length"`
	ShaftDiameter float64 `json:"shaft_diameter"`
	HeadLength    float64 `json:"head_length"`
	HeadDiameter  float64 `json:"head_diameter"`
	Color         Color   `json:"color"`
}

// Cube is a CubePrimitive.
type Cube struct {
	Pose  Pose    `json:"pose"`
	Size  Vector3 `json:"size"`
	Color Color   `json:"color"`
}

// Sphere is a SpherePrimitive. Size is the diameter along each axis.
type Sphere struct {
	Pose  Pose    `json:"pose"`
	Size  Vector3 `json:"size"`
	Color Color   `json:"color"`
}

// Cylinder is a CylinderPrimitive.
type Cylinder struct {
	Pose        Pose    `json:"pose"`
	Size        Vector3 `json:"size"`
	BottomScale float64 `json:"bottom_scale"`
	TopScale    float64 `json:"top_scale"`
	Color       Color   `json:"color"`
}

// Line is a LinePrimitive.
type Line struct {
	Type           LineType  `json:"type"`
	Pose           Pose      `json:"pose"`
	Thickness      float64   `json:"thickness"`
	ScaleInvariant bool      `json:"scale_invariant"`
	Points         []Vector3 `json:"points"`
	Color          Color     `json:"color"`
	Colors         []Color   `json:"colors"`
	Indices        []uint32  `json:"indices"`
}

// TriangleList is a TriangleListPrimitive. When Colors is non-empty it holds one color per
// point and overrides Color.
type TriangleList struct {
	Pose    Pose      `json:"pose"`
	Points  []Vector3 `json:"points"`
	Color   Color     `json:"color"`
	Colors  []Color   `json:"colors"`
	Indices []uint32  `json:"indices"`
}

// Text is a TextPrimitive.
type Text struct {
	Pose           Pose    `json:"pose"`
	Billboard      bool    `json:"billboard"`
	FontSize       float64 `json:"font_size"`
	ScaleInvariant bool    `json:"scale_invariant"`
	Color          Color   `json:"color"`
	Text           string  `json:"text"`
}

// Model is a ModelPrimitive.
type Model struct {
	Pose          Pose    `json:"pose"`
	Scale         Vector3 `json:"scale"`
	Color         Color   `json:"color"`
	OverrideColor bool    `json:"override_color"`
	URL           string  `json:"url"`
	MediaType     string  `json:"media_type"`
	Data          []byte  `json:"data"`
}

// KeyValuePair is entity metadata.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Entity is one independently addressable bundle of primitives sharing a frame and lifetime.
type Entity struct {
	Timestamp   msgs.Time      `json:"timestamp"`
	FrameID     string         `json:"frame_id"`
	ID          string         `json:"id"`
	Lifetime    msgs.Duration  `json:"lifetime"`
	FrameLocked bool           `json:"frame_locked"`
	Metadata    []KeyValuePair `json:"metadata"`
	Arrows      []Arrow        `json:"arrows"`
	Cubes       []Cube         `json:"cubes"`
	Spheres     []Sphere       `json:"spheres"`
	Cylinders   []Cylinder     `json:"cylinders"`
	Lines       []Line         `json:"lines"`
	Triangles   []TriangleList `json:"triangles"`
	Texts       []Text         `json:"texts"`
	Models      []Model        `json:"models"`
}

// NewEntity returns an entity with every primitive list empty but non-nil.
func NewEntity(id string, header msgs.Header, lifetime msgs.Duration) Entity {
	return Entity{
		Timestamp: header.Stamp,
		FrameID:   header.FrameID,
		ID:        id,
		Lifetime:  lifetime,
		Metadata:  []KeyValuePair{},
		Arrows:    []Arrow{},
		Cubes:     []Cube{},
		Spheres:   []Sphere{},
		Cylinders: []Cylinder{},
		Lines:     []Line{},
		Triangles: []TriangleList{},
		Texts:     []Text{},
		Models:    []Model{},
	}
}

// IsEmpty reports whether the entity carries no primitives.
func (e Entity) IsEmpty() bool {
	return len(e.Arrows)+len(e.Cubes)+len(e.Spheres)+len(e.Cylinders)+
		len(e.Lines)+len(e.Triangles)+len(e.Texts)+len(e.Models) == 0
}

// DeletionType selects which entities a Deletion removes.
type DeletionType int

// The known deletion types.
const (
	DeletionMatchingID DeletionType = iota
	DeletionAll
)

// Deletion is a SceneEntityDeletion.
type Deletion struct {
	Timestamp msgs.Time    `json:"timestamp"`
	Type      DeletionType `json:"type"`
	ID        string       `json:"id"`
}

// Update is a SceneUpdate.
type Update struct {
	Deletions []Deletion `json:"deletions"`
	Entities  []Entity   `json:"entities"`
}

// NewUpdate returns an update holding the given entities and no deletions.
func NewUpdate(entities ...Entity) *Update {
	if entities == nil {
		entities = []Entity{}
	}
	return &Update{Deletions: []Deletion{}, Entities: entities}
}

// Add appends the entity if it carries any primitives.
func (u *Update) Add(e Entity) {
	if e.IsEmpty() {
		return
	}
	u.Entities = append(u.Entities, e)
}

// Lifetime returns a duration of the given fractional seconds.
func Lifetime(seconds float64) msgs.Duration {
	t := msgs.NewTime(seconds)
	return msgs.Duration{Sec: t.Sec, Nsec: t.Nsec}
}
