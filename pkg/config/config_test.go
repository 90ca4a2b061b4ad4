package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Nil(t, cfg.Build.Seed)
	assert.False(t, cfg.Build.Parallel)
	assert.True(t, cfg.PrettyOutput())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qabuild.yaml")
	content := `
logging:
  level: DEBUG
build:
  seed: 42
  parallel: true
  pretty: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	require.NotNil(t, cfg.Build.Seed)
	assert.Equal(t, int64(42), *cfg.Build.Seed)
	assert.True(t, cfg.Build.Parallel)
	assert.False(t, cfg.PrettyOutput())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qabuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build:\n  parallel: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.True(t, cfg.Build.Parallel)
	assert.True(t, cfg.PrettyOutput())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.New(errors.IOFailed, "")))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.New(errors.ParseFailed, "")))
	})

	t.Run("invalid level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: LOUD\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.New(errors.ValidationFailed, "")))
	})
}
