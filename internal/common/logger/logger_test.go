package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZapAdapter_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"component": "draft-store"})

	log.Info("draft saved", map[string]interface{}{"draftId": "draft_1"})
	log.WithError(errors.New("quota exceeded")).Error("save failed", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "draft saved", entries[0].Message)
	assert.Equal(t, "draft-store", entries[0].ContextMap()["component"])
	assert.Equal(t, "draft_1", entries[0].ContextMap()["draftId"])
	assert.Equal(t, "quota exceeded", entries[1].ContextMap()["error"])
}

func TestNewStructured_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		NewStructured("debug", "json").Debug("hello", nil)
		NewNoOpLogger().Warn("ignored", map[string]interface{}{"k": 1})
		NewTestLogger(t).With(map[string]interface{}{"k": "v"}).Info("test", nil)
	})
}
