package sstable

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machi-da/lda/matrix"
)

func TestFloat64SerializeSparse(t *testing.T) {
	m := matrix.NewFloat64Matrix(2, 3, 0)
	m.Set(0, 1, 0.5)
	m.Set(1, 2, 0.25)

	var buf bytes.Buffer
	require.NoError(t, Float64Serialize(m, &buf))

	assert.Equal(t, "2,3\n0,1,5e-01\n1,2,2.5e-01\n", buf.String())
}

func TestFloat64File(t *testing.T) {
	m := matrix.NewFloat64Matrix(2, 2, 0)
	m.Set(0, 0, 1.0/3)
	m.Set(1, 1, 2.0/3)
	fn := filepath.Join(t.TempDir(), "model.phi")

	require.NoError(t, Float64SerializeFile(m, fn))
	got, err := Float64DeserializeFile(fn)
	require.NoError(t, err)

	assert.Equal(t, m.Values(), got.Values())
}

func TestFloat64DeserializeCorrupted(t *testing.T) {
	_, err := Float64Deserialize(strings.NewReader("2\n"))
	assert.True(t, errors.Is(err, ErrCorrupted))

	_, err = Float64Deserialize(strings.NewReader("1,1\n3,0,1e+00\n"))
	assert.True(t, errors.Is(err, ErrCorrupted))

	_, err = Float64Deserialize(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrCorrupted))

	m, err := Float64Deserialize(strings.NewReader("1,2\nnoise\n0,1,2e+00\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, m.Values())
}

func TestFloat64DeserializeOversizedShape(t *testing.T) {
	_, err := Float64Deserialize(strings.NewReader("4294967295,4294967295\n"))
	assert.True(t, errors.Is(err, ErrCorrupted))

	_, err = Float64Deserialize(strings.NewReader("70000,70000\n"))
	assert.True(t, errors.Is(err, ErrCorrupted))
}
