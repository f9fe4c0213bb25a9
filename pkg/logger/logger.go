// Package logger builds the zap loggers used by kafkaconn binaries.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls NewLog. An empty Dir logs to the console only.
type Options struct {
	Dir   string
	Name  string // file name inside Dir, e.g. "kafkaconn.log"
	Level zapcore.Level
}

// NewLog returns a JSON logger that tees to stderr and, when Dir is set, to a
// rotated file. stdout is left alone so command output stays clean.
func NewLog(o Options) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	console := zapcore.Lock(os.Stderr)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), console, o.Level),
	}

	if o.Dir != "" {
		_ = os.MkdirAll(o.Dir, 0o755)
		name := o.Name
		if name == "" {
			name = "kafkaconn.log"
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(o.Dir, name),
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, o.Level))
	}

	return zap.New(zapcore.NewTee(cores...))
}
