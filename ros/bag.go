// Package ros reads recorded ROS messages, from bag files or JSON lines, for conversion.
package ros

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/edaniels/gobag/rosbag"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// ReadBag reads the contents of a rosbag into a gobag data structure.
func ReadBag(filename string) (rb *rosbag.RosBag, err error) {
	//nolint:gosec
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open input file")
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()

	rb = rosbag.NewRosBag()
	if err := rb.Read(f); err != nil {
		return nil, errors.Wrapf(err, "unable to create ros bag, error")
	}
	return rb, nil
}

// MessagesForTopics returns every message on the given topics, ordered by record time. Messages
// with equal times keep the order of topics. An empty topics list selects every topic.
func MessagesForTopics(ctx context.Context, rb *rosbag.RosBag, topics []string) ([]Message, error) {
	wanted := lo.SliceToMap(topics, func(topic string) (string, struct{}) { return topic, struct{}{} })
	topicFilter := func(topic string) bool {
		if len(wanted) == 0 {
			return true
		}
		_, ok := wanted[topic]
		return ok
	}
	if err := rb.ParseTopicsToJSON("", func(int64) bool { return true }, topicFilter, false); err != nil {
		return nil, errors.Wrapf(err, "error while parsing bag to JSON")
	}

	names := topics
	if len(names) == 0 {
		names = lo.Keys(rb.TopicsAsJSON)
		sort.Strings(names)
	}

	var all []Message
	for _, topic := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf := rb.TopicsAsJSON[topic]
		if buf == nil {
			continue
		}
		for {
			line, err := buf.ReadBytes('\n')
			if len(line) > 0 {
				msg, decodeErr := decodeBagRecord(topic, line)
				if decodeErr != nil {
					return nil, decodeErr
				}
				all = append(all, msg)
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, err
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Stamp.Before(all[j].Stamp)
	})
	return all, nil
}

func decodeBagRecord(topic string, line []byte) (Message, error) {
	var rec bagRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return Message{}, errors.Wrapf(err, "malformed record on topic %q", topic)
	}
	return Message{Topic: topic, Stamp: rec.Meta, Data: rec.Data}, nil
}
