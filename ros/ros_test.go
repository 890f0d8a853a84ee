package ros

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/autoware-viz/sceneconv/msgs"
)

func TestReadMessages(t *testing.T) {
	input := `{"topic": "/a", "schema": "nav_msgs/msg/Odometry", "stamp": {"sec": 1, "nanosec": 5}, "data": {"x": 1}}

{"topic": "/b", "stamp": {"secs": 2}, "data": "plain"}
`
	all, err := ReadMessages(context.Background(), strings.NewReader(input))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, all, test.ShouldHaveLength, 2)
	test.That(t, all[0].Topic, test.ShouldEqual, "/a")
	test.That(t, all[0].Schema, test.ShouldEqual, "nav_msgs/msg/Odometry")
	test.That(t, all[0].Stamp, test.ShouldResemble, msgs.Time{Sec: 1, Nsec: 5})
	test.That(t, string(all[0].Data), test.ShouldEqual, `{"x": 1}`)
	test.That(t, all[1].Schema, test.ShouldEqual, "")
	test.That(t, all[1].Stamp.Sec, test.ShouldEqual, int32(2))
}

func TestReadMessagesErrors(t *testing.T) {
	_, err := ReadMessages(context.Background(), strings.NewReader("{\"topic\": \"/a\"}\n{oops"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "line 2")

	_, err = ReadMessages(context.Background(), strings.NewReader(`{"data": {}}`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no topic")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadMessages(ctx, strings.NewReader(`{"topic": "/a"}`))
	test.That(t, err, test.ShouldEqual, context.Canceled)
}

func TestWriteMessagesRoundTrip(t *testing.T) {
	in := []Message{
		{Topic: "/a", Stamp: msgs.Time{Sec: 3}, Data: []byte(`{"data":"x"}`)},
		{Topic: "/b", Schema: "s", Stamp: msgs.Time{Sec: 4, Nsec: 2}, Data: []byte(`[]`)},
	}
	var buf bytes.Buffer
	test.That(t, WriteMessages(&buf, in), test.ShouldBeNil)
	test.That(t, strings.Count(buf.String(), "\n"), test.ShouldEqual, 2)

	out, err := ReadMessages(context.Background(), &buf)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldResemble, in)
}

func TestDecodeBagRecord(t *testing.T) {
	msg, err := decodeBagRecord("/imu", []byte(`{"meta": {"Secs": 7, "Nsecs": 9}, "data": {"header": {}}}`+"\n"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, msg.Topic, test.ShouldEqual, "/imu")
	test.That(t, msg.Stamp, test.ShouldResemble, msgs.Time{Sec: 7, Nsec: 9})
	test.That(t, string(msg.Data), test.ShouldEqual, `{"header": {}}`)

	_, err = decodeBagRecord("/imu", []byte(`nope`))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReadBagMissingFile(t *testing.T) {
	_, err := ReadBag(filepath.Join(t.TempDir(), "missing.bag"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unable to open input file")
}
