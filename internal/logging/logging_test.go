package logging_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/search-select/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "search-select.log")
	log, closer, err := logging.New(logging.Options{File: path, Level: "info"})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("committed", "value", "apple")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "committed", rec["msg"])
	assert.Equal(t, "apple", rec["value"])
}

func TestNewWithoutFile(t *testing.T) {
	log, closer, err := logging.New(logging.Options{})
	require.NoError(t, err)
	log.Info("dropped")
	assert.NoError(t, closer.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := logging.New(logging.Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
