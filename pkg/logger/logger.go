// Package logger builds the zerolog loggers used across the CLI and the API
// client.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Build accumulates logger options before Make.
type Build struct {
	writer  io.Writer
	path    string
	level   zerolog.Level
	console bool
}

// Log wraps a configured zerolog.Logger together with the file it writes to,
// when logging to a path.
type Log struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

// New starts a logger build. The default target is stderr at the info level.
func New() *Build {
	return &Build{level: zerolog.InfoLevel}
}

// FromPath appends log output to the file at path.
func (build *Build) FromPath(path string) *Build {
	build.path = path
	return build
}

// FromBuffer writes log output to w.
func (build *Build) FromBuffer(w io.Writer) *Build {
	build.writer = w
	return build
}

// WithLevel sets the minimum level.
func (build *Build) WithLevel(level zerolog.Level) *Build {
	build.level = level
	return build
}

// Console renders human-readable output instead of JSON lines.
func (build *Build) Console() *Build {
	build.console = true
	return build
}

// Make finalizes the build.
func (build *Build) Make() (*Log, error) {
	log := new(Log)
	writer := build.writer
	if writer == nil {
		writer = os.Stderr
	}
	if build.path != "" {
		f, err := os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		log.LogFile = f
		writer = zerolog.SyncWriter(f)
	}
	if build.console {
		writer = zerolog.ConsoleWriter{Out: writer}
	}
	log.Logger = zerolog.New(writer).Level(build.level).With().Timestamp().Logger()
	return log, nil
}
