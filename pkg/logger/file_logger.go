// Package logger builds zap loggers backed by append-only log files.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const fileMode = 0o644

// NewFileLogger opens (or creates) the file at filePath and returns a JSON
// zap logger writing to it at info level.
func NewFileLogger(filePath string) (*zap.Logger, error) {
	return NewFileLoggerAt(filePath, zap.InfoLevel)
}

// NewFileLoggerAt is NewFileLogger with an explicit minimum level.
func NewFileLoggerAt(filePath string, level zapcore.Level) (*zap.Logger, error) {
	file, err := os.OpenFile(filepath.Clean(filePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		level,
	)
	return zap.New(core), nil
}
