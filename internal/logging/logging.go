// Package logging configures the process-wide logrus logger and adapts it
// for libraries that expect their own logger interfaces.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Setup configures the standard logrus logger.
// Unknown levels fall back to info, unknown formats to text.
func Setup(level, format string) {
	Configure(logrus.StandardLogger(), os.Stdout, level, format)
}

// Configure applies level and format to the given logger.
func Configure(logger *logrus.Logger, out io.Writer, level, format string) {
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// GormLogLevel maps a configuration string onto a gorm logger level.
func GormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// GormLogger returns a gorm logger writing through logrus.
func GormLogger(level string) gormlogger.Interface {
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		LogLevel:                  GormLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// TaskLogger implements backlite.Logger on top of logrus.
type TaskLogger struct {
	Entry *logrus.Entry
}

// NewTaskLogger returns a TaskLogger tagged with component=tasks.
func NewTaskLogger() *TaskLogger {
	return &TaskLogger{Entry: logrus.WithField("component", "tasks")}
}

func (l *TaskLogger) Info(message string, params ...any) {
	l.Entry.WithFields(fields(params)).Info(message)
}

func (l *TaskLogger) Error(message string, params ...any) {
	l.Entry.WithFields(fields(params)).Error(message)
}

// fields turns backlite's key/value pairs into logrus fields.
func fields(params []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(params); i += 2 {
		key, ok := params[i].(string)
		if !ok {
			continue
		}
		f[key] = params[i+1]
	}
	return f
}
