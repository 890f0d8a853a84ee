package logging

import (
	"io"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileCore returns a core that appends to the file at path, rotating it once it grows past
// maxSizeMB. The returned closer releases the file.
func NewFileCore(path string, maxSizeMB int) (zapcore.Core, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 2,
		Compress:   true,
	}
	return NewWriterCore(rotator, true), rotator
}
