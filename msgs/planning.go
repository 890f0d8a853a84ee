package msgs

// PathPoint is autoware_planning_msgs/PathPoint.
type PathPoint struct {
	Pose                    Pose    `json:"pose"`
	LongitudinalVelocityMps float64 `json:"longitudinal_velocity_mps"`
	LateralVelocityMps      float64 `json:"lateral_velocity_mps"`
	HeadingRateRps          float64 `json:"heading_rate_rps"`
	IsFinal                 bool    `json:"is_final"`
}

// Path is autoware_planning_msgs/Path.
type Path struct {
	Header     Header      `json:"header"`
	Points     []PathPoint `json:"points"`
	LeftBound  []Point     `json:"left_bound"`
	RightBound []Point     `json:"right_bound"`
}

// PathPointWithLaneID is autoware_internal_planning_msgs/PathPointWithLaneId.
type PathPointWithLaneID struct {
	Point   PathPoint `json:"point"`
	LaneIDs []int64   `json:"lane_ids"`
}

// PathWithLaneID is autoware_internal_planning_msgs/PathWithLaneId.
type PathWithLaneID struct {
	Header     Header                `json:"header"`
	Points     []PathPointWithLaneID `json:"points"`
	LeftBound  []Point               `json:"left_bound"`
	RightBound []Point               `json:"right_bound"`
}

// TrajectoryPoint is autoware_planning_msgs/TrajectoryPoint.
type TrajectoryPoint struct {
	TimeFromStart           Duration `json:"time_from_start"`
	Pose                    Pose     `json:"pose"`
	LongitudinalVelocityMps float64  `json:"longitudinal_velocity_mps"`
	LateralVelocityMps      float64  `json:"lateral_velocity_mps"`
	AccelerationMps2        float64  `json:"acceleration_mps2"`
	HeadingRateRps          float64  `json:"heading_rate_rps"`
	FrontWheelAngleRad      float64  `json:"front_wheel_angle_rad"`
	RearWheelAngleRad       float64  `json:"rear_wheel_angle_rad"`
}

// Trajectory is autoware_planning_msgs/Trajectory.
type Trajectory struct {
	Header Header            `json:"header"`
	Points []TrajectoryPoint `json:"points"`
}
