package ros

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/msgs"
)

// Message is one recorded message. Data holds the message in its JSON form using ROS field
// names. Schema is empty when the source does not record it.
type Message struct {
	Topic  string          `json:"topic"`
	Schema string          `json:"schema,omitempty"`
	Stamp  msgs.Time       `json:"stamp"`
	Data   json.RawMessage `json:"data"`
}

// bagRecord is the envelope gobag writes for each message.
type bagRecord struct {
	Meta msgs.Time       `json:"meta"`
	Data json.RawMessage `json:"data"`
}

const maxLineSize = 64 << 20

// ReadMessages reads one Message per line. Blank lines are skipped.
func ReadMessages(ctx context.Context, r io.Reader) ([]Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	var all []Message
	for lineNum := 1; scanner.Scan(); lineNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var msg Message
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		if msg.Topic == "" {
			return nil, errors.Errorf("line %d: message has no topic", lineNum)
		}
		all = append(all, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read messages")
	}
	return all, nil
}

// WriteMessages writes msgs one per line in the form ReadMessages accepts.
func WriteMessages(w io.Writer, messages []Message) error {
	enc := json.NewEncoder(w)
	for _, msg := range messages {
		if err := enc.Encode(msg); err != nil {
			return errors.Wrapf(err, "failed to write message on topic %q", msg.Topic)
		}
	}
	return nil
}
