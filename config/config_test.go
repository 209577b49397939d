package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Topics)
	assert.Equal(t, 0.3, cfg.Alpha)
	assert.Equal(t, 0.3, cfg.Beta)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "lda.yaml", `
topics: 8
alpha: 0.1
iterations: 200
seed: 42
format: bow
lemmatize: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Topics)
	assert.Equal(t, 0.1, cfg.Alpha)
	assert.Equal(t, 0.3, cfg.Beta)
	assert.Equal(t, 200, cfg.Iterations)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "bow", cfg.Format)
	assert.False(t, cfg.Lemmatize)
	assert.Equal(t, 10, cfg.TopWords)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for _, body := range []string{
		"topics: 0\n",
		"alpha: 0\n",
		"beta: -0.5\n",
		"iterations: -1\n",
		"format: xml\n",
	} {
		_, err := Load(writeFile(t, "bad.yaml", body))
		assert.True(t, errors.Is(err, ErrInvalidConfig), body)
	}
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "bad.yaml", "topics: [\n"))
	assert.Error(t, err)
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, "stop.yaml", "terms:\n  - the\n  - plot\n")

	sl, err := LoadStoplist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "plot"}, sl.Terms)

	sl, err = LoadStoplist(writeFile(t, "empty.yaml", "{}\n"))
	require.NoError(t, err)
	assert.NotNil(t, sl.Terms)
	assert.Empty(t, sl.Terms)
}
