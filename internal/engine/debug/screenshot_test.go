package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenshots_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "nightreef")
	s.now = func() time.Time { return time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC) }

	// 2x2: top row red, bottom row blue
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	name, err := s.Save(pixels, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nightreef_2026-03-01_21-30-00.000.png"), name)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), b)
	r, _, b, _ = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b)
}

func TestScreenshots_SaveRejectsBadFrame(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	_, err := s.Save(make([]byte, 7), 2, 1)
	assert.Error(t, err)
	_, err = s.Save(nil, 0, 0)
	assert.Error(t, err)
}
