package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrWebMD/hamurai-name-server/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{" DeBuG ", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"INVALID", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "INFO", Output: &buf})

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_JSONWithExtraFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{
		Level:       "DEBUG",
		Format:      "json",
		IncludePID:  true,
		ExtraFields: map[string]string{"app": "hamurai"},
		Output:      &buf,
	})

	logger.Debug("query", "qname", "ricklantis.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "query", rec["msg"])
	assert.Equal(t, "hamurai", rec["app"])
	assert.Equal(t, "ricklantis.com", rec["qname"])
	assert.EqualValues(t, os.Getpid(), rec["pid"])
}

func TestNew_TextIsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Format: "bogus", Output: &buf})

	logger.Info("started", "port", 53)
	assert.Contains(t, buf.String(), "msg=started")
	assert.Contains(t, buf.String(), "port=53")
}

func TestConfigure_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Output: &buf})
	require.NotNil(t, logger)

	slog.Info("via default")
	assert.Contains(t, buf.String(), "via default")
}
