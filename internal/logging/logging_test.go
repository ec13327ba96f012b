package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestConfigure_JSONFormat(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer

	Configure(logger, &buf, "debug", "json")
	logger.WithField("operation", "get all books").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "get all books", entry["operation"])
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logrus.New()
	Configure(logger, &bytes.Buffer{}, "loud", "text")

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, GormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, GormLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel(""))
}

func TestTaskLogger_Fields(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	Configure(logger, &buf, "info", "json")

	tl := &TaskLogger{Entry: logrus.NewEntry(logger)}
	tl.Info("task processed", "queue", "cleanup_audit_events", "id", 7, "dangling")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task processed", entry["msg"])
	assert.Equal(t, "cleanup_audit_events", entry["queue"])
	assert.Equal(t, float64(7), entry["id"])
}
