/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging builds the Logger used by the reconstruction packages on top of zap.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled zap logger with a printf-style API.
type Logger struct {
	*zap.SugaredLogger
	conf *zap.Config
}

// New returns a console logger writing to stderr at the given level
// ("debug", "info", "warn" or "error").
func New(level string) (*Logger, error) {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return build(logConfig, level)
}

// NewProduction returns a JSON logger at the given level.
func NewProduction(level string) (*Logger, error) {
	return build(zap.NewProductionConfig(), level)
}

func build(logConfig zap.Config, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	logConfig.Level = zap.NewAtomicLevelAt(lvl)

	baseLogger, err := logConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed building logger")
	}

	return &Logger{SugaredLogger: baseLogger.Sugar(), conf: &logConfig}, nil
}

// With returns a child logger with the given key/value pairs attached,
// sharing the level of its parent.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...), conf: l.conf}
}

// DebugEnabled reports whether debug messages are emitted.
func (l *Logger) DebugEnabled() bool {
	return l.conf.Level.Enabled(zapcore.DebugLevel)
}

// SetLevel changes the level of the logger and all its children.
func (l *Logger) SetLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	l.conf.Level.SetLevel(lvl)
	return nil
}

// Mute suppresses everything below warnings.
func (l *Logger) Mute() {
	l.conf.Level.SetLevel(zapcore.WarnLevel)
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}
