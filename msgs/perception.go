package msgs

// Object classification labels from autoware_perception_msgs/ObjectClassification.
const (
	ClassificationUnknown    uint8 = 0
	ClassificationCar        uint8 = 1
	ClassificationTruck      uint8 = 2
	ClassificationBus        uint8 = 3
	ClassificationTrailer    uint8 = 4
	ClassificationMotorcycle uint8 = 5
	ClassificationBicycle    uint8 = 6
	ClassificationPedestrian uint8 = 7
)

// ObjectClassification is one ranked label for an object.
type ObjectClassification struct {
	Label       uint8   `json:"label"`
	Probability float64 `json:"probability"`
}

// Point32 is geometry_msgs/Point32.
type Point32 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Polygon is geometry_msgs/Polygon.
type Polygon struct {
	Points []Point32 `json:"points"`
}

// Shape is autoware_perception_msgs/Shape.
type Shape struct {
	Type       uint8   `json:"type"`
	Footprint  Polygon `json:"footprint"`
	Dimensions Vector3 `json:"dimensions"`
}

// UUID is unique_identifier_msgs/UUID.
type UUID struct {
	UUID [16]uint8 `json:"uuid"`
}

// DetectedObjectKinematics is autoware_perception_msgs/DetectedObjectKinematics.
type DetectedObjectKinematics struct {
	PoseWithCovariance    PoseWithCovariance  `json:"pose_with_covariance"`
	HasPositionCovariance bool                `json:"has_position_covariance"`
	OrientationAvailable  uint8               `json:"orientation_availability"`
	TwistWithCovariance   TwistWithCovariance `json:"twist_with_covariance"`
	HasTwist              bool                `json:"has_twist"`
	HasTwistCovariance    bool                `json:"has_twist_covariance"`
}

// DetectedObject is autoware_perception_msgs/DetectedObject.
type DetectedObject struct {
	ExistenceProbability float64                  `json:"existence_probability"`
	Classification       []ObjectClassification   `json:"classification"`
	Kinematics           DetectedObjectKinematics `json:"kinematics"`
	Shape                Shape                    `json:"shape"`
}

// DetectedObjects is autoware_perception_msgs/DetectedObjects.
type DetectedObjects struct {
	Header  Header           `json:"header"`
	Objects []DetectedObject `json:"objects"`
}

// TrackedObjectKinematics is autoware_perception_msgs/TrackedObjectKinematics.
type TrackedObjectKinematics struct {
	PoseWithCovariance         PoseWithCovariance  `json:"pose_with_covariance"`
	OrientationAvailable       uint8               `json:"orientation_availability"`
	TwistWithCovariance        TwistWithCovariance `json:"twist_with_covariance"`
	AccelerationWithCovariance AccelWithCovariance `json:"acceleration_with_covariance"`
	IsStationary               bool                `json:"is_stationary"`
}

// TrackedObject is autoware_perception_msgs/TrackedObject.
type TrackedObject struct {
	ObjectID             UUID                    `json:"object_id"`
	ExistenceProbability float64                 `json:"existence_probability"`
	Classification       []ObjectClassification  `json:"classification"`
	Kinematics           TrackedObjectKinematics `json:"kinematics"`
	Shape                Shape                   `json:"shape"`
}

// TrackedObjects is autoware_perception_msgs/TrackedObjects.
type TrackedObjects struct {
	Header  Header          `json:"header"`
	Objects []TrackedObject `json:"objects"`
}

// PredictedPath is one candidate future path of a predicted object.
type PredictedPath struct {
	Path       []Pose   `json:"path"`
	TimeStep   Duration `json:"time_step"`
	Confidence float64  `json:"confidence"`
}

// PredictedObjectKinematics is autoware_perception_msgs/PredictedObjectKinematics.
type PredictedObjectKinematics struct {
	InitialPoseWithCovariance         PoseWithCovariance  `json:"initial_pose_with_covariance"`
	InitialTwistWithCovariance        TwistWithCovariance `json:"initial_twist_with_covariance"`
	InitialAccelerationWithCovariance AccelWithCovariance `json:"initial_acceleration_with_covariance"`
	PredictedPaths                    []PredictedPath     `json:"predicted_paths"`
}

// PredictedObject is autoware_perception_msgs/PredictedObject.
type PredictedObject struct {
	ObjectID             UUID                      `json:"object_id"`
	ExistenceProbability float64                   `json:"existence_probability"`
	Classification       []ObjectClassification    `json:"classification"`
	Kinematics           PredictedObjectKinematics `json:"kinematics"`
	Shape                Shape                     `json:"shape"`
}

// PredictedObjects is autoware_perception_msgs/PredictedObjects.
type PredictedObjects struct {
	Header  Header            `json:"header"`
	Objects []PredictedObject `json:"objects"`
}
