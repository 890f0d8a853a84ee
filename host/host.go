// Package host dispatches recorded messages to the registered converters and tracks the state
// shared between messages: the selected vehicle, ego history and diagnostics results.
package host

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/autoware-viz/sceneconv/config"
	"github.com/autoware-viz/sceneconv/diagnostics"
	"github.com/autoware-viz/sceneconv/history"
	"github.com/autoware-viz/sceneconv/logging"
	"github.com/autoware-viz/sceneconv/registry"
	"github.com/autoware-viz/sceneconv/ros"
	"github.com/autoware-viz/sceneconv/scene"
	"github.com/autoware-viz/sceneconv/vehicle"
)

// Stats counts what happened to the messages handed to a Host.
type Stats struct {
	Converted   int
	Dropped     int
	Unknown     int
	Skipped     int
	Diagnostics int
}

// A Host owns the converter environment for one run.
type Host struct {
	logger   logging.Logger
	cfg      *config.Config
	selector *vehicle.Selector
	history  *history.Trajectories
	trackers map[string]*diagnostics.Tracker

	mu             sync.Mutex
	loggers        map[string]logging.Logger
	warnedUnknown  map[string]bool
	stats          Stats
	unsubscribeVeh func()
}

// New returns a host for cfg. The logger's subloggers are named "<logger>.<family>", e.g.
// "host.planning" for autoware_planning_msgs schemas.
func New(cfg *config.Config, logger logging.Logger) (*Host, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	selector, err := vehicle.NewSelector(catalog)
	if err != nil {
		return nil, err
	}
	if cfg.Vehicle != "" {
		if err := selector.Select(cfg.Vehicle); err != nil {
			return nil, err
		}
	}

	h := &Host{
		logger:        logger,
		cfg:           cfg,
		selector:      selector,
		history:       history.NewTrajectories(),
		trackers:      map[string]*diagnostics.Tracker{},
		loggers:       map[string]logging.Logger{},
		warnedUnknown: map[string]bool{},
	}
	for _, topic := range cfg.Diagnostics {
		h.trackers[topic] = diagnostics.NewTracker(topic)
	}
	for _, tc := range cfg.Topics {
		h.loggerFor(tc.Schema)
	}
	if len(h.trackers) > 0 {
		h.loggers["diagnostics"] = logger.Sublogger("diagnostics")
	}
	if err := logging.ApplyPatterns(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "invalid log patterns")
	}

	h.unsubscribeVeh = selector.Subscribe(func(p vehicle.Profile) {
		h.logger.Infow("vehicle changed", "vehicle", p.Name, "length", p.Length(), "width", p.Width())
	})
	logger.Debugw("host ready", "vehicle", selector.Current().Name, "topics", len(cfg.Topics))
	return h, nil
}

// Family returns the logger family of a schema: its package with the autoware_ prefix and the
// _msgs suffix removed, e.g. "planning" for "autoware_planning_msgs/msg/Path".
func Family(schema string) string {
	pkg, _, _ := strings.Cut(schema, "/")
	pkg = strings.TrimPrefix(pkg, "autoware_")
	pkg = strings.TrimSuffix(pkg, "_msgs")
	if pkg == "" {
		return "unknown"
	}
	return pkg
}

func (h *Host) loggerFor(schema string) logging.Logger {
	h.mu.Lock()
	defer h.mu.Unlock()
	family := Family(schema)
	if logger, ok := h.loggers[family]; ok {
		return logger
	}
	logger := h.logger.Sublogger(family)
	h.loggers[family] = logger
	return logger
}

// Vehicle returns the vehicle selector.
func (h *Host) Vehicle() *vehicle.Selector {
	return h.selector
}

// History returns the ego position history.
func (h *Host) History() *history.Trajectories {
	return h.history
}

// Tracker returns the diagnostics tracker of a configured diagnostics topic.
func (h *Host) Tracker(topic string) (*diagnostics.Tracker, bool) {
	tracker, ok := h.trackers[topic]
	return tracker, ok
}

// Stats returns the running message counts.
func (h *Host) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

func (h *Host) count(fn func(*Stats)) {
	h.mu.Lock()
	fn(&h.stats)
	h.mu.Unlock()
}

// Convert runs a single message through the converter for its schema. The schema comes from the
// message, else from the topic config. It returns nil without error for diagnostics topics and
// for messages whose topic has no schema. Conversion failures are logged before being returned.
func (h *Host) Convert(msg ros.Message) (*scene.Update, error) {
	if tracker, ok := h.trackers[msg.Topic]; ok {
		tracker.Handle(msg.Data)
		h.count(func(s *Stats) { s.Diagnostics++ })
		if state := tracker.State(); state.Error != "" {
			h.loggerFor("diagnostics").Warnw("bad result payload", "topic", msg.Topic, "error", state.Error)
		}
		return nil, nil
	}

	tc, _ := h.cfg.Topic(msg.Topic)
	schema := msg.Schema
	if schema == "" {
		schema = tc.Schema
	}
	if schema == "" {
		h.count(func(s *Stats) { s.Skipped++ })
		h.logger.Debugw("skipping unconfigured topic", "topic", msg.Topic)
		return nil, nil
	}

	reg, ok := registry.ConverterLookup(schema)
	if !ok {
		h.count(func(s *Stats) { s.Unknown++ })
		h.mu.Lock()
		warned := h.warnedUnknown[schema]
		h.warnedUnknown[schema] = true
		h.mu.Unlock()
		if !warned {
			h.logger.Warnw("no converter for schema", "schema", schema, "topic", msg.Topic)
		}
		return nil, registry.NewConverterNotFoundError(schema)
	}

	update, err := reg.Convert(registry.Env{Vehicle: h.selector.Current(), History: h.history}, registry.Event{
		Topic:    msg.Topic,
		Schema:   schema,
		Data:     msg.Data,
		Settings: tc.Settings,
	})
	if err != nil {
		h.count(func(s *Stats) { s.Dropped++ })
		h.loggerFor(schema).Warnw("dropping message", "topic", msg.Topic, "error", err)
		return nil, err
	}
	h.count(func(s *Stats) { s.Converted++ })
	return update, nil
}

// Run converts every message in order and writes each resulting update to enc. Messages that
// fail to convert are skipped. It stops early when ctx is done or writing fails.
func (h *Host) Run(ctx context.Context, messages []ros.Message, enc *scene.Encoder) (Stats, error) {
	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return h.Stats(), err
		}
		update, err := h.Convert(msg)
		if err != nil || update == nil {
			continue
		}
		schema := msg.Schema
		if schema == "" {
			if tc, ok := h.cfg.Topic(msg.Topic); ok {
				schema = tc.Schema
			}
		}
		if err := enc.Encode(scene.Record{Topic: msg.Topic, Schema: schema, Stamp: msg.Stamp, Update: update}); err != nil {
			return h.Stats(), err
		}
	}
	return h.Stats(), nil
}

// Close stops listening for vehicle changes.
func (h *Host) Close() {
	h.mu.Lock()
	unsubscribe := h.unsubscribeVeh
	h.unsubscribeVeh = nil
	h.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}
