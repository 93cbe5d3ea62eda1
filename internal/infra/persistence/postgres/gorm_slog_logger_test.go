package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	deliverycontext "jelpi/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func fixedQuery() (string, int64) {
	return "SELECT * FROM devices", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("uses request logger", func(t *testing.T) {
		base, baseBuf := bufferLogger()
		reqLogger, reqBuf := bufferLogger()
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-1")))

		l := newGormSlogLogger(base, true, 0)
		l.Trace(ctx, time.Now(), fixedQuery, nil)

		assert.Empty(t, baseBuf.String())
		assert.Contains(t, reqBuf.String(), "request_id=req-1")
		assert.Contains(t, reqBuf.String(), "GORM query")
	})

	t.Run("record not found is quiet", func(t *testing.T) {
		base, buf := bufferLogger()

		l := newGormSlogLogger(base, false, 0)
		l.Trace(context.Background(), time.Now(), fixedQuery, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failure logged at error", func(t *testing.T) {
		base, buf := bufferLogger()

		l := newGormSlogLogger(base, false, 0)
		l.Trace(context.Background(), time.Now(), fixedQuery, sql.ErrConnDone)

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("slow query warns", func(t *testing.T) {
		base, buf := bufferLogger()

		l := newGormSlogLogger(base, false, time.Millisecond)
		l.Trace(context.Background(), time.Now().Add(-time.Second), fixedQuery, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("silent", func(t *testing.T) {
		base, buf := bufferLogger()

		l := newGormSlogLogger(base, true, 0).LogMode(logger.Silent)
		l.Trace(context.Background(), time.Now(), fixedQuery, sql.ErrConnDone)

		assert.Empty(t, buf.String())
	})
}

func TestPoolMonitor_Report(t *testing.T) {
	base, buf := bufferLogger()
	m := &poolMonitor{logger: base, warnAfter: 50 * time.Millisecond}

	m.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	m.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	m.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avgWait=500ms")
}
