package gfx

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/hubastard/powder/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresenter struct {
	frames   int
	w, h     int
	first    [4]byte
	err      error
	released bool
}

func (p *fakePresenter) Present(pix []byte, w, h int) error {
	p.frames++
	p.w, p.h = w, h
	copy(p.first[:], pix)
	return p.err
}

func (p *fakePresenter) Release() { p.released = true }

func TestNewCanvasRejectsEmptySize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := NewCanvas(sz[0], sz[1], nil)
		assert.Error(t, err, "size %v", sz)
	}
}

func TestCanvasClearAndFlush(t *testing.T) {
	p := &fakePresenter{}
	c, err := NewCanvas(8, 8, p)
	require.NoError(t, err)

	require.NoError(t, c.SetSize(4, 2, 2))
	c.Clear(colors.Red)
	require.NoError(t, c.Flush())

	assert.Equal(t, 1, p.frames)
	assert.Equal(t, 4, p.w)
	assert.Equal(t, 2, p.h)
	assert.Equal(t, [4]byte{255, 0, 0, 255}, p.first)

	w, h := c.LogicalSize()
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 1.0, h)
	assert.Equal(t, 2.0, c.ScaleFactor())

	c.Release()
	assert.True(t, p.released)
}

func TestCanvasFlushPropagatesPresentError(t *testing.T) {
	boom := errors.New("lost device")
	c, err := NewCanvas(2, 2, &fakePresenter{err: boom})
	require.NoError(t, err)
	assert.ErrorIs(t, c.Flush(), boom)
}

func TestCanvasSetSizeDefaultsScale(t *testing.T) {
	c, err := NewCanvas(2, 2, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetSize(6, 6, 0))
	assert.Equal(t, 1.0, c.ScaleFactor())
	assert.Error(t, c.SetSize(0, 6, 1))
}

func TestCanvasContainsPoint(t *testing.T) {
	c, err := NewCanvas(2, 2, nil)
	require.NoError(t, err)

	path := gg.NewPath()
	path.Rectangle(10, 10, 20, 5)
	assert.True(t, c.ContainsPoint(path, 15, 12))
	assert.False(t, c.ContainsPoint(path, 5, 12))
	assert.False(t, c.ContainsPoint(path, 15, 16))
}
