package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/autoware-viz/sceneconv/diagnostics"
	"github.com/autoware-viz/sceneconv/vehicle"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := NewApp(&out, &errOut).Run(append([]string{"sceneconv"}, args...))
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func TestVehicleTable(t *testing.T) {
	rendered := VehicleTable(vehicle.DefaultCatalog(), "taxi")
	for _, p := range vehicle.DefaultCatalog() {
		test.That(t, rendered, test.ShouldContainSubstring, p.Name)
	}
	var marked []string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, "*") {
			marked = append(marked, line)
		}
	}
	test.That(t, marked, test.ShouldHaveLength, 1)
	test.That(t, marked[0], test.ShouldContainSubstring, "taxi")
}

func TestVehiclesAction(t *testing.T) {
	out, _, err := runApp(t, "vehicles")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "lexus")
	test.That(t, out, test.ShouldContainSubstring, "WHEEL BASE")

	_, _, err = runApp(t, "vehicles", "--vehicle", "unicycle")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `unknown vehicle "unicycle"`)
}

func TestSettingsAction(t *testing.T) {
	out, _, err := runApp(t, "settings")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "nav_msgs/msg/Odometry")
	test.That(t, out, test.ShouldContainSubstring, "autoware_auto_perception_msgs/msg/DetectedObjects")

	out, _, err = runApp(t, "settings", "--schema", "autoware_planning_msgs/msg/Trajectory")
	test.That(t, err, test.ShouldBeNil)
	var desc map[string]interface{}
	test.That(t, json.Unmarshal([]byte(out), &desc), test.ShouldBeNil)
	test.That(t, desc, test.ShouldContainKey, "schema")
	test.That(t, desc, test.ShouldContainKey, "defaults")
	test.That(t, out, test.ShouldContainSubstring, "pathWidth")

	out, _, err = runApp(t, "settings", "--schema", "autoware_perception_msgs/msg/DetectedObjects")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "has no settings")

	_, _, err = runApp(t, "settings", "--schema", "std_msgs/msg/Empty")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no converter registered")
}

func TestConvertAction(t *testing.T) {
	input := writeFile(t, "messages.jsonl", strings.Join([]string{
		`{"topic": "/localization/kinematic_state", "stamp": {"sec": 1}, "data": {"header": {"stamp": {"sec": 1}, "frame_id": "map"}, "pose": {"pose": {"orientation": {"w": 1}}}}}`,
		`{"topic": "/localization/kinematic_state", "stamp": {"sec": 2}, "data": {"header": "bad"}}`,
		`{"topic": "/driving_log_replayer/diagnostics/results", "stamp": {"sec": 3}, "data": {"data": "{}"}}`,
		`{"topic": "/not/configured", "stamp": {"sec": 4}, "data": {}}`,
	}, "\n"))

	out, errOut, err := runApp(t, "convert", "--input", input, "--vehicle", "medium_bus")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, lines, test.ShouldHaveLength, 1)

	var rec struct {
		Topic  string `json:"topic"`
		Schema string `json:"schema"`
		Update struct {
			Entities []struct {
				ID string `json:"id"`
			} `json:"entities"`
		} `json:"update"`
	}
	test.That(t, json.Unmarshal([]byte(lines[0]), &rec), test.ShouldBeNil)
	test.That(t, rec.Schema, test.ShouldEqual, "nav_msgs/msg/Odometry")
	test.That(t, rec.Update.Entities, test.ShouldHaveLength, 1)
	test.That(t, rec.Update.Entities[0].ID, test.ShouldEqual, "ego_vehicle")
	test.That(t, errOut, test.ShouldContainSubstring, "1 of 4 messages could not be converted")

	output := filepath.Join(t.TempDir(), "out.jsonl")
	_, _, err = runApp(t, "convert", "--input", input, "--output", output)
	test.That(t, err, test.ShouldBeNil)
	written, err := os.ReadFile(output)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Count(string(written), "\n"), test.ShouldEqual, 1)
}

func TestConvertActionErrors(t *testing.T) {
	_, _, err := runApp(t, "convert")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "is required")

	_, _, err = runApp(t, "convert", "--bag", "a.bag", "--input", "b.jsonl")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "only one of")

	_, _, err = runApp(t, "convert", "--input", filepath.Join(t.TempDir(), "missing.jsonl"))
	test.That(t, err, test.ShouldNotBeNil)

	_, _, err = runApp(t, "convert", "--input", "-", "--vehicle", "unicycle")
	test.That(t, err, test.ShouldNotBeNil)

	cfg := writeFile(t, "config.json", `{"topics": [{"topic": "/x", "schema": "std_msgs/msg/Empty"}]}`)
	_, _, err = runApp(t, "--config", cfg, "convert", "--input", "-")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "topics.0")
}

func TestDiagnosticsAction(t *testing.T) {
	payload := func(result string) string {
		data, err := json.Marshal(map[string]interface{}{
			"topic": diagnostics.DiagnosticsResultsTopic,
			"data":  map[string]string{"data": result},
		})
		test.That(t, err, test.ShouldBeNil)
		return string(data)
	}
	input := writeFile(t, "results.jsonl", strings.Join([]string{
		payload(`{"Result": {"Success": true, "Summary": "Passed:Diag (Success), Blind Spot (Success)"},
			"Frame": {"Diag": {"Result": {"Total": "Success", "Frame": "Success"}, "Info": {"Level": 0}}}}`),
		`{"topic": "/other", "data": {}}`,
	}, "\n"))

	out, _, err := runApp(t, "diagnostics", "--input", input, "--topic", diagnostics.DiagnosticsResultsTopic)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, diagnostics.DiagnosticsResultsTopic)
	test.That(t, out, test.ShouldContainSubstring, "Result: Passed")
	test.That(t, out, test.ShouldContainSubstring, "Blind Spot")
	test.That(t, out, test.ShouldContainSubstring, "no details reported")
	test.That(t, out, test.ShouldContainSubstring, "Level=0")
	test.That(t, out, test.ShouldNotContainSubstring, "/other")

	out, _, err = runApp(t, "diagnostics", "--input", input)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "/other")
	test.That(t, out, test.ShouldContainSubstring, "Parsed data but missing Result field")
}

func TestLogFile(t *testing.T) {
	input := writeFile(t, "messages.jsonl", `{"topic": "/localization/kinematic_state", "data": {"header": "bad"}}`)
	logFile := filepath.Join(t.TempDir(), "sceneconv.log")

	_, _, err := runApp(t, "--log-file", logFile, "convert", "--input", input)
	test.That(t, err, test.ShouldBeNil)
	contents, err := os.ReadFile(logFile)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(contents), test.ShouldContainSubstring, "dropping message")
	test.That(t, string(contents), test.ShouldContainSubstring, "conversion done")
}
