package arrayx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("ScanCompleted", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		l.LogScan(ctx, "min_index", 10, 1, 3, nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "DEBUG", rec["level"])
		assert.Equal(t, "scan completed", rec["msg"])
		assert.Equal(t, "min_index", rec["op"])
		assert.EqualValues(t, 3, rec["index"])
	})

	t.Run("ScanFailed", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, nil))
		l.LogScan(ctx, "max_index", 10, 2, -1, errors.New("cancelled"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "ERROR", rec["level"])
		assert.Equal(t, "cancelled", rec["error"])
	})

	t.Run("DebugFilteredAtInfo", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))
		l.LogScan(ctx, "min_index", 1, 1, 0, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("WithFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil)).WithCount(7).WithChunks(2)
		l.Info("hello")
		assert.Contains(t, buf.String(), "count=7")
		assert.Contains(t, buf.String(), "chunks=2")
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(ctx, slog.LevelError))
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil))
		assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(ctx, slog.LevelDebug))
		assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(ctx, slog.LevelInfo))
	})
}
