package logging

import (
	"github.com/mr-tron/base58"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapBase58 []byte

func (b zapBase58) String() string {
	return base58.Encode([]byte(b))
}

// Base58 renders input in Base58 only when the entry is actually written.
func Base58(key string, input []byte) zap.Field {
	return zap.Stringer(key, zapBase58(input))
}

// New returns a console logger on stderr.
// Stdout is reserved for the report line.
func New(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
