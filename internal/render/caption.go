package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 22

// withCaption returns a copy of img with a strip of text appended below it
func withCaption(img image.Image, text string) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, b.Dy()+captionHeight-6),
	}
	d.DrawString(text)
	return out
}
