package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestGormLogger_WritesToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := GormLogger(zap.New(core))
	ctx := context.Background()

	l.Info(ctx, "opened %s", "pool")
	l.Error(ctx, "query failed: %d", 42)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "query failed: 42", entries[0].Message)
	assert.Equal(t, "gorm", entries[0].LoggerName)
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := GormLogger(zap.New(core))
	begin := time.Now()

	l.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT * FROM time_entries WHERE id = 1", 0
	}, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len())

	l.Trace(context.Background(), begin.Add(-time.Second), func() (string, int64) {
		return "SELECT pg_sleep(1)", 1
	}, nil)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}
