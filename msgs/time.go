// Package msgs declares the ROS message shapes consumed by the converters. Field names follow the
// ROS 2 message definitions so the structs decode directly from the JSON form of a message.
package msgs

import (
	"encoding/json"
	"fmt"
	"math"
)

// Time is a ROS timestamp.
type Time struct {
	Sec  int32  `json:"sec"`
	Nsec uint32 `json:"nsec"`
}

// Duration is a ROS duration, e.g. a trajectory point's time from start.
type Duration struct {
	Sec  int32  `json:"sec"`
	Nsec uint32 `json:"nsec"`
}

// stampFields holds every spelling of the two stamp fields seen across ROS 1, ROS 2 and
// foxglove JSON encodings.
type stampFields struct {
	Sec     *int32  `json:"sec"`
	Secs    *int32  `json:"secs"`
	Nsec    *uint32 `json:"nsec"`
	Nsecs   *uint32 `json:"nsecs"`
	Nanosec *uint32 `json:"nanosec"`
}

func (f stampFields) resolve() (int32, uint32) {
	var sec int32
	var nsec uint32
	switch {
	case f.Sec != nil:
		sec = *f.Sec
	case f.Secs != nil:
		sec = *f.Secs
	}
	switch {
	case f.Nsec != nil:
		nsec = *f.Nsec
	case f.Nanosec != nil:
		nsec = *f.Nanosec
	case f.Nsecs != nil:
		nsec = *f.Nsecs
	}
	return sec, nsec
}

// UnmarshalJSON accepts `sec`/`secs` and `nsec`/`nsecs`/`nanosec`.
func (t *Time) UnmarshalJSON(data []byte) error {
	var f stampFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.Sec, t.Nsec = f.resolve()
	return nil
}

// UnmarshalJSON accepts `sec`/`secs` and `nsec`/`nsecs`/`nanosec`.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var f stampFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	d.Sec, d.Nsec = f.resolve()
	return nil
}

// NewTime builds a Time from fractional seconds.
func NewTime(seconds float64) Time {
	sec := math.Floor(seconds)
	nsec := math.Round((seconds - sec) * 1e9)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return Time{Sec: int32(sec), Nsec: uint32(nsec)}
}

// Seconds returns the timestamp as fractional seconds.
func (t Time) Seconds() float64 {
	return float64(t.Sec) + float64(t.Nsec)/1e9
}

// Nanoseconds returns the timestamp as integer nanoseconds.
func (t Time) Nanoseconds() int64 {
	return int64(t.Sec)*1e9 + int64(t.Nsec)
}

// Before reports whether t is strictly earlier than other.
func (t Time) Before(other Time) bool {
	return t.Nanoseconds() < other.Nanoseconds()
}

// After reports whether t is strictly later than other.
func (t Time) After(other Time) bool {
	return t.Nanoseconds() > other.Nanoseconds()
}

func (t Time) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.Nsec)
}

// Seconds returns the duration as fractional seconds.
func (d Duration) Seconds() float64 {
	return float64(d.Sec) + float64(d.Nsec)/1e9
}
