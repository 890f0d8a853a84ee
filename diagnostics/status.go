package diagnostics

import (
	"strings"

	"github.com/autoware-viz/sceneconv/scene"
)

// Status is the display class of a result value.
type Status int

// Statuses, in increasing order of concern.
const (
	StatusUnknown Status = iota
	StatusSuccess
	StatusWarning
	StatusFailure
)

var statusHex = map[Status]string{
	StatusSuccess: "#28a745",
	StatusFailure: "#dc3545",
	StatusWarning: "#ffc107",
	StatusUnknown: "#6c757d",
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Hex returns the #rrggbb display color of the status.
func (s Status) Hex() string {
	return statusHex[s]
}

// Color returns the display color of the status.
func (s Status) Color() scene.Color {
	c, err := scene.ParseHexColor(s.Hex())
	if err != nil {
		return scene.Black
	}
	return c
}

// StatusOf classifies a bool or a result string such as "Success", "OK", "Fail" or "Warn".
// Anything else is unknown.
func StatusOf(v interface{}) Status {
	switch val := v.(type) {
	case bool:
		if val {
			return StatusSuccess
		}
		return StatusFailure
	case string:
		switch strings.ToLower(val) {
		case "success", "ok":
			return StatusSuccess
		case "failure", "error", "fail":
			return StatusFailure
		case "warn", "warning":
			return StatusWarning
		}
	}
	return StatusUnknown
}
