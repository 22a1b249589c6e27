package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewWithWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", false)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud", false)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, gormLevel(zerolog.DebugLevel))
	assert.Equal(t, gormlogger.Warn, gormLevel(zerolog.InfoLevel))
	assert.Equal(t, gormlogger.Warn, gormLevel(zerolog.WarnLevel))
	assert.Equal(t, gormlogger.Error, gormLevel(zerolog.ErrorLevel))
	assert.Equal(t, gormlogger.Silent, gormLevel(zerolog.Disabled))
}

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	gl := NewGormLogger(NewWithWriter(&buf, "debug", false))
	sql := func() (string, int64) { return "SELECT * FROM countries", 2 }

	gl.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "query failed")

	gl.Trace(context.Background(), time.Now(), sql, errors.New("disk I/O error"))
	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "disk I/O error")

	buf.Reset()
	gl.Trace(context.Background(), time.Now(), sql, nil)
	assert.Contains(t, buf.String(), "SELECT * FROM countries")
}

func TestGormLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	gl := NewGormLogger(NewWithWriter(&buf, "debug", false)).LogMode(gormlogger.Silent)

	gl.Error(context.Background(), "boom %d", 1)
	gl.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Empty(t, buf.String())
}
