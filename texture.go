package ttf

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ttf/rasterizer"
)

// ImageTexture is rendered text kept in CPU memory. RenderText returns it
// when the application has no texture creator.
//
// Pixels are premultiplied RGBA.
type ImageTexture struct {
	img *image.RGBA
}

var _ gpucontext.Texture = (*ImageTexture)(nil)

// Width returns the texture width in pixels.
func (t *ImageTexture) Width() int { return t.img.Rect.Dx() }

// Height returns the texture height in pixels.
func (t *ImageTexture) Height() int { return t.img.Rect.Dy() }

// Format returns the pixel format of the texture data.
func (t *ImageTexture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Image returns the texture pixels.
func (t *ImageTexture) Image() *image.RGBA { return t.img }

// premultipliedSetter is implemented by host textures that need to know
// their data is premultiplied.
type premultipliedSetter interface {
	SetPremultiplied(bool)
}

// convertToTexture turns a rendered surface into a texture for app.
// Ownership of the texture passes to the caller.
func convertToTexture(app Application, s *rasterizer.Surface) (gpucontext.Texture, error) {
	creator := app.TextureCreator()
	if creator == nil {
		return &ImageTexture{img: s.ToImage()}, nil
	}

	tex, err := creator.NewTextureFromRGBA(s.Width(), s.Height(), s.Data())
	if err != nil {
		return nil, fmt.Errorf("ttf: NewTextureFromRGBA failed: %w", err)
	}
	if pt, ok := tex.(premultipliedSetter); ok {
		pt.SetPremultiplied(true)
	}
	return tex, nil
}
