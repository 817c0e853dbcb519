package imageload

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastWriteWins(t *testing.T) {
	var applied []Completion
	l := New(func(c Completion) { applied = append(applied, c) })

	imgA := image.NewRGBA(image.Rect(0, 0, 1, 1))
	imgB := image.NewRGBA(image.Rect(0, 0, 2, 2))

	// Request #1, then #2 before #1 resolves; #1 resolves last.
	id1 := l.Begin("back")
	id2 := l.Begin("back")

	assert.True(t, l.Complete(Completion{RegionID: "back", RequestID: id2, Image: imgB}))
	assert.False(t, l.Complete(Completion{RegionID: "back", RequestID: id1, Image: imgA}),
		"stale completion must be dropped")

	require.Len(t, applied, 1)
	assert.Equal(t, id2, applied[0].RequestID)
	assert.Same(t, imgB, applied[0].Image)
}

func TestRegionsAreIndependent(t *testing.T) {
	var applied []Completion
	l := New(func(c Completion) { applied = append(applied, c) })

	front := l.Begin("front")
	back := l.Begin("back")

	assert.True(t, l.Complete(Completion{RegionID: "front", RequestID: front}))
	assert.True(t, l.Complete(Completion{RegionID: "back", RequestID: back}))
	assert.Len(t, applied, 2)
}

func TestCancelDropsOutstanding(t *testing.T) {
	var applied []Completion
	l := New(func(c Completion) { applied = append(applied, c) })

	id := l.Begin("front")
	l.Cancel("front")

	assert.False(t, l.Complete(Completion{RegionID: "front", RequestID: id}))
	assert.Empty(t, applied)
}

func TestCompleteTwiceDeliversOnce(t *testing.T) {
	count := 0
	l := New(func(Completion) { count++ })

	id := l.Begin("front")
	assert.True(t, l.Complete(Completion{RegionID: "front", RequestID: id}))
	assert.False(t, l.Complete(Completion{RegionID: "front", RequestID: id}))
	assert.Equal(t, 1, count)
}

func TestLoadDecodesPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	done := make(chan Completion, 1)
	l := New(func(c Completion) { done <- c })

	l.Load("front", &buf)
	c := <-done
	require.NoError(t, c.Err)
	require.NotNil(t, c.Image)
	assert.Equal(t, 3, c.Image.Bounds().Dx())
}

func TestLoadBadDataReportsError(t *testing.T) {
	done := make(chan Completion, 1)
	l := New(func(c Completion) { done <- c })

	l.Load("front", bytes.NewReader([]byte("not an image")))
	c := <-done
	assert.Error(t, c.Err)
	assert.Nil(t, c.Image)
}
