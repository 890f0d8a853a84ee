// Package diagnostics decodes and accumulates driving log replayer evaluation results.
package diagnostics

import (
	"bytes"
	"encoding/json"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Result topics published by the driving log replayer.
const (
	DiagnosticsResultsTopic    = "/driving_log_replayer/diagnostics/results"
	LocalizationResultsTopic   = "/driving_log_replayer/localization/results"
	PlanningFactorResultsTopic = "/driving_log_replayer/planning_factor/results"
)

// ResultTopics lists every known result topic.
var ResultTopics = []string{DiagnosticsResultsTopic, LocalizationResultsTopic, PlanningFactorResultsTopic}

// Result is the overall outcome of the evaluation so far.
type Result struct {
	Success bool   `json:"Success"`
	Summary string `json:"Summary"`
}

// Stamp holds the wall clock and ROS times of a result.
type Stamp struct {
	System float64 `json:"System"`
	ROS    float64 `json:"ROS"`
}

// ConditionResult is a condition's cumulative and per-frame outcome, e.g. "Success" or "Fail".
type ConditionResult struct {
	Total string `json:"Total"`
	Frame string `json:"Frame"`
}

// Condition is one evaluated condition within a frame.
type Condition struct {
	Result ConditionResult        `json:"Result"`
	Info   map[string]interface{} `json:"Info,omitempty"`
}

// ResultMessage is a single decoded result payload.
type ResultMessage struct {
	Result *Result              `json:"Result"`
	Stamp  Stamp                `json:"Stamp"`
	Frame  map[string]Condition `json:"Frame"`
}

// Decode parses a result payload. The payload is either the std_msgs/String form
// `{"data": "<json>"}`, a bare JSON string holding the result, or the result object itself.
func Decode(data []byte) (ResultMessage, error) {
	inner, err := unwrap(data)
	if err != nil {
		return ResultMessage{}, err
	}
	var msg ResultMessage
	if err := json.Unmarshal(inner, &msg); err != nil {
		return ResultMessage{}, err
	}
	return msg, nil
}

func unwrap(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	}

	var envelope struct {
		Data   *string         `json:"data"`
		Result json.RawMessage `json:"Result"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data != nil && envelope.Result == nil {
		return []byte(*envelope.Data), nil
	}
	return trimmed, nil
}

// ConvergenceInfo is the Info block of a localization Convergence condition.
type ConvergenceInfo struct {
	LateralDistance    float64 `mapstructure:"LateralDistance"`
	HorizontalDistance float64 `mapstructure:"HorizontalDistance"`
	ExeTimeMs          float64 `mapstructure:"ExeTimeMs"`
	IterationNum       int     `mapstructure:"IterationNum"`
}

// EgoInfo is the ego pose reported in a localization result frame.
type EgoInfo struct {
	TransformStamped struct {
		Transform struct {
			Translation struct{ X, Y, Z float64 }    `mapstructure:"translation"`
			Rotation    struct{ X, Y, Z, W float64 } `mapstructure:"rotation"`
		} `mapstructure:"transform"`
	} `mapstructure:"TransformStamped"`
	RotationEuler struct{ Roll, Pitch, Yaw float64 } `mapstructure:"rotation_euler"`
}

// FrameConvergence extracts the Convergence condition details of a localization result.
func FrameConvergence(msg ResultMessage) (ConvergenceInfo, bool, error) {
	cond, ok := msg.Frame["Convergence"]
	if !ok {
		return ConvergenceInfo{}, false, nil
	}
	var info ConvergenceInfo
	if err := decodeInfo(cond.Info, &info); err != nil {
		return ConvergenceInfo{}, false, errors.Wrap(err, "failed to decode Convergence info")
	}
	return info, true, nil
}

// FrameEgo extracts the ego pose of a localization result. The Ego entry is not a regular
// condition, so it is read from the raw payload.
func FrameEgo(data []byte) (EgoInfo, bool, error) {
	inner, err := unwrap(data)
	if err != nil {
		return EgoInfo{}, false, err
	}
	var raw struct {
		Frame map[string]map[string]interface{} `json:"Frame"`
	}
	if err := json.Unmarshal(inner, &raw); err != nil {
		return EgoInfo{}, false, err
	}
	ego, ok := raw.Frame["Ego"]
	if !ok {
		return EgoInfo{}, false, nil
	}
	if _, ok := ego["TransformStamped"]; !ok {
		return EgoInfo{}, false, nil
	}
	if _, ok := ego["rotation_euler"]; !ok {
		return EgoInfo{}, false, nil
	}
	var info EgoInfo
	if err := decodeInfo(ego, &info); err != nil {
		return EgoInfo{}, false, errors.Wrap(err, "failed to decode Ego info")
	}
	return info, true, nil
}

func decodeInfo(in map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
