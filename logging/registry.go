package logging

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// LoggerPatternConfig sets the level of every logger whose name matches Pattern.
type LoggerPatternConfig struct {
	Pattern string `json:"pattern"`
	Level   string `json:"level"`
}

const (
	// e.g. "foo".
	validLoggerSectionName = `[a-zA-Z0-9]+([_-]*[a-zA-Z0-9]+)*`
	// e.g. "foo" or "*".
	validLoggerSectionNameWithWildcard = `(` + validLoggerSectionName + `|\*)`
	// e.g. "foo.*.foo".
	validLoggerName = `^` + validLoggerSectionNameWithWildcard + `(\.` + validLoggerSectionNameWithWildcard + `)*$`
)

var loggerPatternRegexp = regexp.MustCompile(validLoggerName)

// ValidatePattern reports whether the pattern is a dotted logger name, optionally with `*`
// sections.
func ValidatePattern(pattern string) bool {
	return loggerPatternRegexp.MatchString(pattern)
}

func buildRegexFromPattern(pattern string) string {
	var matcher strings.Builder
	matcher.WriteRune('^')
	for _, ch := range pattern {
		switch ch {
		case '*':
			matcher.WriteString(`.*`)
		case '.':
			matcher.WriteString(`\.`)
		default:
			matcher.WriteRune(ch)
		}
	}
	matcher.WriteRune('$')
	return matcher.String()
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]Logger
}

var globalRegistry = &loggerRegistry{loggers: map[string]Logger{}}

func (lr *loggerRegistry) registerLogger(name string, logger Logger) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.loggers[name] = logger
}

func (lr *loggerRegistry) loggerNamed(name string) (Logger, bool) {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	logger, ok := lr.loggers[name]
	return logger, ok
}

func (lr *loggerRegistry) names() []string {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	names := make([]string, 0, len(lr.loggers))
	for name := range lr.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoggerNamed returns the most recently created logger with the given name.
func LoggerNamed(name string) (Logger, bool) {
	return globalRegistry.loggerNamed(name)
}

// RegisteredLoggerNames returns the sorted names of every logger created so far.
func RegisteredLoggerNames() []string {
	return globalRegistry.names()
}

// ApplyPatterns sets the level of every registered logger whose name matches a pattern. Later
// patterns win over earlier ones. Invalid patterns or levels are skipped and reported together.
func ApplyPatterns(patterns []LoggerPatternConfig) error {
	var allErrs error
	for _, name := range globalRegistry.names() {
		logger, ok := globalRegistry.loggerNamed(name)
		if !ok {
			continue
		}
		for _, cfg := range patterns {
			if !ValidatePattern(cfg.Pattern) {
				continue
			}
			matched, err := regexp.MatchString(buildRegexFromPattern(cfg.Pattern), name)
			if err != nil || !matched {
				continue
			}
			level, err := LevelFromString(cfg.Level)
			if err != nil {
				continue
			}
			logger.SetLevel(level)
		}
	}

	for idx, cfg := range patterns {
		if !ValidatePattern(cfg.Pattern) {
			allErrs = multierr.Append(allErrs, errors.Errorf("log.%d: invalid pattern %q", idx, cfg.Pattern))
		}
		if _, err := LevelFromString(cfg.Level); err != nil {
			allErrs = multierr.Append(allErrs, errors.Wrapf(err, "log.%d", idx))
		}
	}
	return allErrs
}
