package matrixutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplestar-go/samplestar/matrixutil"
)

func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrixutil.New[float32](0, 3)
	require.ErrorIs(t, err, matrixutil.ErrInvalidDimensions)

	_, err = matrixutil.New[float32](3, -1)
	require.ErrorIs(t, err, matrixutil.ErrInvalidDimensions)
}

func TestSetAtRoundTrip(t *testing.T) {
	m, err := matrixutil.New[int](3, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 42))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = m.At(5, 5)
	require.ErrorIs(t, err, matrixutil.ErrIndexOutOfBounds)
}

func TestClone(t *testing.T) {
	m, err := matrixutil.New[int](2, 2)
	require.NoError(t, err)
	m.SetUnchecked(0, 0, 7)

	clone := m.Clone()
	clone.SetUnchecked(0, 0, 99)

	assert.Equal(t, 7, m.Get(0, 0))
	assert.Equal(t, 99, clone.Get(0, 0))
}

func TestFill(t *testing.T) {
	m, err := matrixutil.New[bool](3, 3)
	require.NoError(t, err)
	m.Fill(true)
	for _, v := range m.Data {
		assert.True(t, v)
	}
}
