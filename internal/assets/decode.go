package assets

import (
	"github.com/Faultbox/nightreef/internal/engine/gfx"
	"github.com/Faultbox/nightreef/internal/engine/texture"
)

// DecodeAsync loads and decodes an image in a goroutine. The caller polls
// the returned handle from the render thread.
func (m *Manager) DecodeAsync(name string, flipY bool) *gfx.PendingImage {
	return gfx.Go(name, func() (gfx.Image, error) {
		data, err := m.Load(name)
		if err != nil {
			return gfx.Image{}, err
		}
		return texture.Decode(name, data, flipY)
	})
}
