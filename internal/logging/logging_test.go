package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/wildroam/internal/config"
)

func TestSetupWritesJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "wildroam.log")
	logger, closer, err := Setup(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug().Int("index", 2).Msg("select_next")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	require.Equal(t, "select_next", line["message"])
	require.Equal(t, "debug", line["level"])
	require.Equal(t, "wildroam", line["app"])
	require.EqualValues(t, 2, line["index"])
}

func TestSetupFallsBackToInfo(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wildroam.log")
	logger, closer, err := Setup(config.LogConfig{Path: path, Level: "chatty"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestSetupWithoutPathIsSilent(t *testing.T) {
	t.Parallel()

	logger, closer, err := Setup(config.LogConfig{})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)
	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())
	logger.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}
