package desktop

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphFirst = 32
	glyphLast  = 126
	atlasCols  = 16
)

var glyphFace = basicfont.Face7x13

// glyph cell size in atlas pixels.
var glyphW, glyphH = glyphFace.Advance, glyphFace.Height

// buildGlyphAtlas rasterises the printable ASCII range into a grey coverage
// image, atlasCols glyphs per row.
func buildGlyphAtlas() *image.Gray {
	n := glyphLast - glyphFirst + 1
	rows := (n + atlasCols - 1) / atlasCols
	img := image.NewGray(image.Rect(0, 0, atlasCols*glyphW, rows*glyphH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: glyphFace,
	}
	ascent := glyphFace.Metrics().Ascent.Ceil()
	for c := glyphFirst; c <= glyphLast; c++ {
		i := c - glyphFirst
		x := (i % atlasCols) * glyphW
		y := (i / atlasCols) * glyphH
		d.Dot = fixed.P(x, y+ascent)
		d.DrawString(string(rune(c)))
	}
	return img
}

// glyphUV returns the atlas rectangle of ch in texture coordinates.
func glyphUV(ch rune, atlasW, atlasH int) (u0, v0, u1, v1 float32, ok bool) {
	if ch < glyphFirst || ch > glyphLast {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - glyphFirst
	col, row := i%atlasCols, i/atlasCols
	u0 = float32(col*glyphW) / float32(atlasW)
	v0 = float32(row*glyphH) / float32(atlasH)
	u1 = float32((col+1)*glyphW) / float32(atlasW)
	v1 = float32((row+1)*glyphH) / float32(atlasH)
	return u0, v0, u1, v1, true
}

// TextWidth is the pixel width of the longest line of text at scale.
func TextWidth(text string, scale float32) int {
	line, widest := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			widest = max(widest, line)
			line = 0
			continue
		}
		line++
	}
	widest = max(widest, line)
	return int(float32(widest*glyphW) * scale)
}
