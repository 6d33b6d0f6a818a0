package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // PNG decoder registration
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/material"
)

// loadImage decodes an image file into tightly packed RGBA.
func loadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba, nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// textureCache uploads palette textures on first use. Textures that fail
// to load are replaced by a white pixel and logged once.
type textureCache struct {
	root     string
	loaded   map[material.Texture]uint32
	fallback uint32
}

func newTextureCache(root string) *textureCache {
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []byte{255, 255, 255, 255})
	return &textureCache{
		root:     root,
		loaded:   make(map[material.Texture]uint32),
		fallback: uploadTexture(white),
	}
}

func (c *textureCache) get(t material.Texture) uint32 {
	if t.IsZero() {
		return c.fallback
	}
	if id, ok := c.loaded[t]; ok {
		return id
	}

	id := c.fallback
	img, err := loadImage(filepath.Join(c.root, filepath.FromSlash(t.Path)))
	if err != nil {
		logger.Warn("texture unavailable", zap.String("texture", t.Name), zap.Error(err))
	} else {
		id = uploadTexture(img)
		logger.Debug("texture loaded",
			zap.String("texture", t.Name),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
		)
	}
	c.loaded[t] = id
	return id
}

func (c *textureCache) delete() {
	for _, id := range c.loaded {
		if id != c.fallback {
			gl.DeleteTextures(1, &id)
		}
	}
	gl.DeleteTextures(1, &c.fallback)
	c.loaded = nil
}

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
