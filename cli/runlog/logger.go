// Package runlog duplicates generator log entries into a rotated log file.
package runlog

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerOpts describes the logger options.
type LoggerOpts struct {
	// Filename is the name of log file.
	Filename string
	// MaxSize is the maximum size in megabytes of the log file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int
}

// Logger is a log file sink for apex/log entries.
type Logger struct {
	writer io.Writer
	// ljLogger is set when the logger writes to a rotated file.
	ljLogger *lumberjack.Logger
	opts     LoggerOpts
}

// NewLogger creates a logger writing to opts.Filename with rotation.
func NewLogger(opts LoggerOpts) *Logger {
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	return &Logger{writer: ljLogger, ljLogger: ljLogger, opts: opts}
}

// NewCustomLogger creates a logger with custom writer. Rotation does not work in
// this case. Such logger is used in tests.
func NewCustomLogger(writer io.Writer) *Logger {
	return &Logger{writer: writer}
}

// Write implements io.Writer.
func (logger *Logger) Write(p []byte) (int, error) {
	return logger.writer.Write(p)
}

// Handler returns apex/log handler writing entries in logfmt format to the logger.
func (logger *Logger) Handler() log.Handler {
	return logfmt.New(logger)
}

// Rotate closes the existing log file and immediately creates a new one.
func (logger *Logger) Rotate() error {
	if logger.ljLogger == nil {
		return nil
	}

	return logger.ljLogger.Rotate()
}

// GetOpts returns the parameters that were used to create the logger.
func (logger *Logger) GetOpts() LoggerOpts {
	return logger.opts
}

// Close implements io.Closer, and closes the current logfile.
func (logger *Logger) Close() error {
	if logger.ljLogger == nil {
		return nil
	}

	return logger.ljLogger.Close()
}
