// Package history keeps the per-topic ego position history drawn behind the vehicle cube.
package history

import (
	"sync"

	"github.com/golang/geo/r3"

	"github.com/autoware-viz/sceneconv/msgs"
)

// Sample is one recorded ego position.
type Sample struct {
	Position r3.Vector
	Stamp    msgs.Time
}

// Trajectories maps topic names to their recorded samples, oldest first. Pruning is driven only
// by message stamps, never by wall-clock time.
type Trajectories struct {
	mu     sync.Mutex
	topics map[string][]Sample
}

// NewTrajectories returns an empty history.
func NewTrajectories() *Trajectories {
	return &Trajectories{topics: map[string][]Sample{}}
}

// Update appends sample to the topic's history, then drops every sample older than
// sample.Stamp - window or newer than sample.Stamp. It returns a copy of what remains.
func (tr *Trajectories) Update(topic string, sample Sample, window float64) []Sample {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	latest := sample.Stamp.Nanoseconds()
	oldest := latest - int64(window*1e9)

	samples := append(tr.topics[topic], sample)
	kept := samples[:0]
	for _, s := range samples {
		stamp := s.Stamp.Nanoseconds()
		if stamp < oldest || stamp > latest {
			continue
		}
		kept = append(kept, s)
	}
	tr.topics[topic] = kept
	return append([]Sample(nil), kept...)
}

// Samples returns a copy of the topic's current history.
func (tr *Trajectories) Samples(topic string) []Sample {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]Sample(nil), tr.topics[topic]...)
}

// Topics returns the number of topics with history.
func (tr *Trajectories) Topics() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.topics)
}

// Reset forgets the history of one topic.
func (tr *Trajectories) Reset(topic string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	delete(tr.topics, topic)
}
