package primeshamir

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededReader(t *testing.T) {
	a := make([]byte, 100)
	b := make([]byte, 100)

	_, err := io.ReadFull(NewSeededReader([]byte("seed")), a)
	require.NoError(t, err)
	_, err = io.ReadFull(NewSeededReader([]byte("seed")), b)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = io.ReadFull(NewSeededReader([]byte("seeD")), b)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	// reads continue the stream rather than restart it
	r := NewSeededReader([]byte("seed"))
	first := make([]byte, 50)
	second := make([]byte, 50)
	_, err = io.ReadFull(r, first)
	require.NoError(t, err)
	_, err = io.ReadFull(r, second)
	require.NoError(t, err)
	assert.Equal(t, a, append(first, second...))
}

func Test_randElement(t *testing.T) {
	f := mustField(t, 65537)
	r := NewSeededReader([]byte("range"))

	for range 1000 {
		v, err := randElement(f, r)
		require.NoError(t, err)
		require.Less(t, v, uint64(65537))
	}
}

func Test_randElement_masksHighBits(t *testing.T) {
	f := mustField(t, 65537)

	v, err := randElement(f, bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 0x00, 0x2a}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2a), v)
}

func Test_randElement_shortRead(t *testing.T) {
	_, err := randElement(Field{}, bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
