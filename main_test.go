package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machi-da/lda/config"
	"github.com/machi-da/lda/sstable"
)

func TestRunWritesTables(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "reviews.txt")
	require.NoError(t, os.WriteFile(fn, []byte(
		"The cats sat on the mats.\n"+
			"Dogs chased the cats around the garden!\n"+
			"A dog slept on the log.\n"), 0o644))
	*input = fn

	cfg := config.Default()
	cfg.Topics = 2
	cfg.Iterations = 10
	cfg.LogEvery = 0
	cfg.Seed = 1
	cfg.TopWords = 3
	cfg.CheckTol = 1e-9
	cfg.Output = filepath.Join(dir, "model")

	require.NoError(t, run(cfg, "test"))

	phi, err := sstable.Float64DeserializeFile(cfg.Output + ".phi")
	require.NoError(t, err)
	r, _ := phi.Shape()
	assert.Equal(t, 2, r)

	theta, err := sstable.Float64DeserializeFile(cfg.Output + ".theta")
	require.NoError(t, err)
	r, c := theta.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

func TestRunUnknownModel(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "docs.txt")
	require.NoError(t, os.WriteFile(fn, []byte("alpha beta\n"), 0o644))
	*input = fn

	cfg := config.Default()
	cfg.Model = "sparselda"

	assert.Error(t, run(cfg, "test"))
}

func TestNewTokenizerStoplist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terms: [garden]\n"), 0o644))

	cfg := config.Default()
	cfg.Stoplist = path
	tok, err := newTokenizer(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"the"}, tok.Tokenize("the garden"))
}
