package scene

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/msgs"
)

// Record is one line of encoder output: the update produced for a message on a topic.
type Record struct {
	Topic  string    `json:"topic"`
	Schema string    `json:"schema"`
	Stamp  msgs.Time `json:"stamp"`
	Update *Update   `json:"update"`
}

// Encoder writes records as JSON lines.
type Encoder struct {
	mu    sync.Mutex
	enc   *json.Encoder
	count int
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes a single record followed by a newline.
func (e *Encoder) Encode(rec Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if rec.Update == nil {
		rec.Update = NewUpdate()
	}
	if err := e.enc.Encode(rec); err != nil {
		return errors.Wrapf(err, "failed to encode update for topic %q", rec.Topic)
	}
	e.count++
	return nil
}

// Count returns the number of records written so far.
func (e *Encoder) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}
