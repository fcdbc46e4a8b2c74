// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewPrettyHandler(t *testing.T) {
	tests := []struct {
		name    string
		options *slog.HandlerOptions
	}{
		{
			name:    "with nil options",
			options: nil,
		},
		{
			name: "with custom options",
			options: &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPrettyHandler(tt.options)
			if handler == nil {
				t.Fatal("NewPrettyHandler() returned nil")
			}
			if handler.inner == nil {
				t.Error("NewPrettyHandler() created handler with nil inner handler")
			}
			if handler.buf == nil {
				t.Error("NewPrettyHandler() created handler with nil buffer")
			}
			if handler.mu == nil {
				t.Error("NewPrettyHandler() created handler with nil mutex")
			}
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		options *slog.HandlerOptions
		want    bool
	}{
		{
			name:    "debug level with debug handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelDebug},
			want:    true,
		},
		{
			name:    "debug level with info handler",
			level:   slog.LevelDebug,
			options: &slog.HandlerOptions{Level: slog.LevelInfo},
			want:    false,
		},
		{
			name:    "error level with warn handler",
			level:   slog.LevelError,
			options: &slog.HandlerOptions{Level: slog.LevelWarn},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPrettyHandler(tt.options)
			if got := handler.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("PrettyHandler.Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{})

	newHandler := handler.WithAttrs([]slog.Attr{
		slog.String("key1", "value1"),
		slog.Int("key2", 42),
	})

	prettyHandler, ok := newHandler.(*PrettyHandler)
	if !ok {
		t.Fatal("WithAttrs() did not return *PrettyHandler")
	}

	// Derived handlers share the buffer and mutex so records never interleave.
	if prettyHandler.buf != handler.buf {
		t.Error("WithAttrs() should share the same buffer")
	}
	if prettyHandler.mu != handler.mu {
		t.Error("WithAttrs() should share the same mutex")
	}
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{})

	newHandler := handler.WithGroup("test_group")

	prettyHandler, ok := newHandler.(*PrettyHandler)
	if !ok {
		t.Fatal("WithGroup() did not return *PrettyHandler")
	}

	if prettyHandler.buf != handler.buf {
		t.Error("WithGroup() should share the same buffer")
	}
	if prettyHandler.mu != handler.mu {
		t.Error("WithGroup() should share the same mutex")
	}
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		level          slog.Level
		message        string
		attrs          []any
		expectInOutput []string
	}{
		{
			name:           "basic info message",
			level:          slog.LevelInfo,
			message:        "test message",
			attrs:          []any{},
			expectInOutput: []string{"INFO:", "test message"},
		},
		{
			name:           "debug message with attributes",
			level:          slog.LevelDebug,
			message:        "debug message",
			attrs:          []any{"key", "value", "number", 42},
			expectInOutput: []string{"DEBUG:", "debug message", "key", "value", "42"},
		},
		{
			name:           "warning message",
			level:          slog.LevelWarn,
			message:        "warning message",
			attrs:          []any{},
			expectInOutput: []string{"WARN:", "warning message"},
		},
		{
			name:           "error message",
			level:          slog.LevelError,
			message:        "error message",
			attrs:          []any{},
			expectInOutput: []string{"ERROR:", "error message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			handler := NewPrettyHandler(&slog.HandlerOptions{
				Level: slog.LevelDebug,
			}, WithDestinationWriter(&buf))

			record := slog.NewRecord(time.Now(), tt.level, tt.message, 0)
			record.Add(tt.attrs...)

			if err := handler.Handle(context.Background(), record); err != nil {
				t.Errorf("Handle() returned error: %v", err)
			}

			output := buf.String()
			for _, expected := range tt.expectInOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, got: %s", expected, output)
				}
			}

			if !strings.HasSuffix(output, "\n") {
				t.Error("Output should end with newline")
			}
		})
	}
}

func TestPrettyHandler_Handle_WithReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	replaceAttr := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if a.Key == "secret" {
			return slog.String("secret", "[REDACTED]")
		}
		return a
	}

	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: replaceAttr,
	}, WithDestinationWriter(&buf))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	record.Add("secret", "password123", "public", "data")

	if err := handler.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle() returned error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "[REDACTED]") {
		t.Error("Expected secret to be redacted")
	}
	if strings.Contains(output, "password123") {
		t.Error("Original password should not appear in output")
	}
	if !strings.Contains(output, "public") {
		t.Error("Public data should appear in output")
	}
}

func TestPrettyHandler_Handle_Colour(t *testing.T) {
	var buf bytes.Buffer

	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	}, WithDestinationWriter(&buf), WithColour())

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)

	if err := handler.Handle(context.Background(), record); err != nil {
		t.Errorf("Handle() returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "\033[36mINFO:\033[0m") {
		t.Errorf("expected colored level in output, got: %s", buf.String())
	}
}

func TestPrettyHandler_computeAttrs_Error(t *testing.T) {
	handler := &PrettyHandler{
		inner: &failingHandler{},
		buf:   &bytes.Buffer{},
		mu:    &sync.Mutex{},
	}

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test", 0)
	if _, err := handler.computeAttrs(context.Background(), record); err == nil {
		t.Error("computeAttrs() should return error when inner handler fails")
	}
}

func TestPrettyHandler_Handle_WriteError(t *testing.T) {
	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	}, WithDestinationWriter(&failingWriter{}))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	err := handler.Handle(context.Background(), record)

	if !errors.Is(err, ErrIoWrite) {
		t.Errorf("Handle() should return ErrIoWrite, got: %v", err)
	}
}

func TestSuppressDefaults(t *testing.T) {
	suppressFunc := suppressDefaults(nil)

	tests := []struct {
		name string
		attr slog.Attr
		want slog.Attr
	}{
		{
			name: "time key should be suppressed",
			attr: slog.Time(slog.TimeKey, time.Now()),
			want: slog.Attr{},
		},
		{
			name: "level key should be suppressed",
			attr: slog.Any(slog.LevelKey, slog.LevelInfo),
			want: slog.Attr{},
		},
		{
			name: "message key should be suppressed",
			attr: slog.String(slog.MessageKey, "test"),
			want: slog.Attr{},
		},
		{
			name: "custom key should not be suppressed",
			attr: slog.String("custom", "value"),
			want: slog.String("custom", "value"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suppressFunc([]string{}, tt.attr); !got.Equal(tt.want) {
				t.Errorf("suppressDefaults() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuppressDefaults_WithNext(t *testing.T) {
	nextFunc := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == "transform" {
			return slog.String("transform", "transformed")
		}
		return a
	}

	suppressFunc := suppressDefaults(nextFunc)

	if got := suppressFunc([]string{}, slog.Time(slog.TimeKey, time.Now())); !got.Equal(slog.Attr{}) {
		t.Errorf("time key should still be suppressed, got %v", got)
	}

	want := slog.String("transform", "transformed")
	if got := suppressFunc([]string{}, slog.String("transform", "original")); !got.Equal(want) {
		t.Errorf("suppressDefaults() = %v, want %v", got, want)
	}
}

func TestFunctionalOptions(t *testing.T) {
	t.Run("WithDestinationWriter", func(t *testing.T) {
		var buf bytes.Buffer

		handler := NewPrettyHandler(nil, WithDestinationWriter(&buf))
		if handler.out != &buf {
			t.Error("WithDestinationWriter() did not set writer correctly")
		}
	})

	t.Run("WithColour", func(t *testing.T) {
		handler := NewPrettyHandler(nil, WithColour())
		if !handler.colour {
			t.Error("WithColour() did not enable colour")
		}
	})
}

// Helper types for testing

type failingHandler struct{}

func (h *failingHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *failingHandler) Handle(_ context.Context, _ slog.Record) error {
	return errors.New("failing handler error")
}

func (h *failingHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *failingHandler) WithGroup(_ string) slog.Handler {
	return h
}

type failingWriter struct{}

func (w *failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write failed")
}
