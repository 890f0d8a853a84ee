package diagnostics

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// MissingResultError is recorded when a payload parses but carries no Result.
const MissingResultError = "Parsed data but missing Result field"

// ConditionState is one row of the accumulated condition view. Details is nil when the
// condition is named in the summary but has never been reported in a frame.
type ConditionState struct {
	Name    string
	Details *Condition
	Current bool
}

// State is a snapshot of a Tracker.
type State struct {
	Received   bool
	Result     *ResultMessage
	Conditions []ConditionState
	Error      string
	Raw        json.RawMessage
}

// A Tracker accumulates the result payloads of one result topic.
type Tracker struct {
	mu      sync.Mutex
	topic   string
	result  *ResultMessage
	all     map[string]Condition
	seen    []string
	current map[string]struct{}
	order   []string
	err     string
	raw     json.RawMessage
}

// NewTracker returns an empty tracker for topic.
func NewTracker(topic string) *Tracker {
	return &Tracker{
		topic:   topic,
		all:     map[string]Condition{},
		current: map[string]struct{}{},
	}
}

// Topic returns the topic the tracker follows.
func (t *Tracker) Topic() string {
	return t.topic
}

// Handle consumes one payload. Parse failures are recorded as the tracker error and leave the
// accumulated conditions untouched.
func (t *Tracker) Handle(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.raw = append(json.RawMessage(nil), data...)
	msg, err := Decode(data)
	if err != nil {
		t.err = fmt.Sprintf("Failed to parse result: %s", err)
		return
	}
	if msg.Result == nil {
		t.err = MissingResultError
		return
	}

	t.result = &msg
	if len(t.order) == 0 && msg.Result.Summary != "" {
		if names := ConditionNames(msg.Result.Summary); len(names) > 0 {
			t.order = names
		}
	}
	names := lo.Keys(msg.Frame)
	sort.Strings(names)
	t.current = map[string]struct{}{}
	for _, name := range names {
		if _, ok := t.all[name]; !ok {
			t.seen = append(t.seen, name)
		}
		t.current[name] = struct{}{}
	}
	for name, cond := range msg.Frame {
		t.all[name] = cond
	}
	t.err = ""
}

// State returns a snapshot of the tracker. Conditions follow the order of the first summary
// that named any, otherwise the order in which they were first reported.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := t.order
	if len(names) == 0 {
		names = t.seen
	}
	conditions := lo.Map(names, func(name string, _ int) ConditionState {
		state := ConditionState{Name: name}
		if cond, ok := t.all[name]; ok {
			cond := cond
			state.Details = &cond
		}
		_, state.Current = t.current[name]
		return state
	})

	var result *ResultMessage
	if t.result != nil {
		copied := *t.result
		result = &copied
	}
	return State{
		Received:   t.result != nil,
		Result:     result,
		Conditions: conditions,
		Error:      t.err,
		Raw:        append(json.RawMessage(nil), t.raw...),
	}
}
