package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2008, time.October, 22, 9, 30, 0, 0, time.UTC)

type failingSink struct{ slog.Handler }

func (failingSink) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func countingExtractor(calls *atomic.Int32) ContextExtractor {
	return func(context.Context) (slog.Attr, bool) {
		calls.Add(1)
		return slog.String("template", "index.html"), true
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("delivers past a failing sink", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := newHandler([]slog.Handler{
			failingSink{slog.NewTextHandler(&bytes.Buffer{}, nil)},
			slog.NewTextHandler(&buf, nil),
		}, nil)

		err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelInfo, "rendered", 0))
		require.Error(t, err)
		assert.Contains(t, buf.String(), "rendered")
	})

	t.Run("enabled if any sink is", func(t *testing.T) {
		t.Parallel()

		h := newHandler([]slog.Handler{
			slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
			slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}),
		}, nil)
		assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
		assert.False(t, newHandler(nil, nil).Enabled(context.Background(), slog.LevelError))
	})

	t.Run("extracts once for all sinks", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		var a, b bytes.Buffer
		log := slog.New(newHandler([]slog.Handler{
			slog.NewTextHandler(&a, nil),
			slog.NewTextHandler(&b, nil),
		}, []ContextExtractor{countingExtractor(&calls), nil}))

		log.Info("ok")
		assert.Equal(t, int32(1), calls.Load())
		assert.Contains(t, a.String(), "template=index.html")
		assert.Contains(t, b.String(), "template=index.html")
	})

	t.Run("skips extractors when no sink accepts the level", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		h := newHandler([]slog.Handler{
			slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		}, []ContextExtractor{countingExtractor(&calls)})

		require.NoError(t, h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelDebug, "hidden", 0)))
		assert.Zero(t, calls.Load())
	})

	t.Run("derived handlers keep extractors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		var buf bytes.Buffer
		log := slog.New(newHandler([]slog.Handler{slog.NewTextHandler(&buf, nil)},
			[]ContextExtractor{countingExtractor(&calls)}))

		log.With("component", "site").WithGroup("render").Info("done")
		assert.Equal(t, int32(1), calls.Load())
		assert.Contains(t, buf.String(), "component=site")
		assert.Contains(t, buf.String(), "render.template=index.html")
	})
}
