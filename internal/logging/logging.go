// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the fractalgen command.
//
// Output always goes to a console writer (stderr by default); when a file
// path is set it is tee'd into a size-rotated file through lumberjack.
// Development mode uses a colored console encoder at debug level, otherwise
// JSON at the configured level.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the log file.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

// Config controls logger construction.
type Config struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
	MaxSizeMB   int    `yaml:"max_size_mb"`
	MaxBackups  int    `yaml:"max_backups"`
	MaxAgeDays  int    `yaml:"max_age_days"`
	Compress    bool   `yaml:"compress"`
}

// Default logs at info to the console only.
func Default() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
	}
}

// ParseLevel maps a level name to a zap level, case-insensitively.
// Unknown names yield def.
func ParseLevel(s string, def zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return def
	}
}

// New builds a logger writing to console (os.Stderr when nil) and, if
// cfg.File is set, to a rotated file. The file encoder is always JSON.
func New(cfg Config, console io.Writer) *zap.Logger {
	if console == nil {
		console = os.Stderr
	}

	level := ParseLevel(cfg.Level, zapcore.InfoLevel)
	if cfg.Development {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(cfg.Development), zapcore.AddSync(console), level),
	}
	if cfg.File != "" {
		cores = append(cores, zapcore.NewCore(jsonEncoder(), fileWriter(cfg), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

func fileWriter(cfg Config) zapcore.WriteSyncer {
	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(cfg.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   cfg.Compress,
	}
	return zapcore.AddSync(w)
}

func consoleEncoder(dev bool) zapcore.Encoder {
	if !dev {
		return jsonEncoder()
	}
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func jsonEncoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(ec)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
