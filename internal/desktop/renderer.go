package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"snakeruins/internal/game"
)

// Each cell sprite is 8 floats: x, y, size, r, g, b, a, shape.
const spriteFloats = 8

// Text quads are 6 vertices of pos(2) + uv(2) + colour(4).
const textFloats = 8

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	cellProg uint32
	cellVAO  uint32
	cellVBO  uint32

	uCellPx     int32
	uOrigin     int32
	uResolution int32

	textProg  uint32
	textVAO   uint32
	textVBO   uint32
	textURes  int32
	fontTex   uint32
	atlasW    int
	atlasH    int
	textBuf   []float32
	spriteBuf []float32

	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	cellProg, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cell program: %w", err)
	}
	textProg, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		gl.DeleteProgram(cellProg)
		return nil, fmt.Errorf("text program: %w", err)
	}
	r := &Renderer{cellProg: cellProg, textProg: textProg}

	gl.GenVertexArrays(1, &r.cellVAO)
	gl.GenBuffers(1, &r.cellVBO)
	gl.BindVertexArray(r.cellVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cellVBO)
	stride := int32(spriteFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	gl.UseProgram(cellProg)
	r.uCellPx = uniform(cellProg, "uCellPx")
	r.uOrigin = uniform(cellProg, "uOrigin")
	r.uResolution = uniform(cellProg, "uResolution")

	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride = int32(textFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.UseProgram(textProg)
	r.textURes = uniform(textProg, "uResolution")
	gl.Uniform1i(uniform(textProg, "uFontTex"), 0)

	atlas := buildGlyphAtlas()
	r.atlasW, r.atlasH = atlas.Rect.Dx(), atlas.Rect.Dy()
	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(r.atlasW), int32(r.atlasH), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cellVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cellVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.cellProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and sets the grid placement.
func (r *Renderer) BeginFrame(fbW, fbH int, originX, originY, cellPx float32) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.cellProg)
	gl.Uniform1f(r.uCellPx, cellPx)
	gl.Uniform2f(r.uOrigin, originX, originY)
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	r.spriteBuf = r.spriteBuf[:0]
}

// Cell queues one sprite at grid coordinates (x, y); size is in cells.
func (r *Renderer) Cell(x, y, size float32, c game.RGB, alpha float32, shape int) {
	r.spriteBuf = append(r.spriteBuf,
		x, y, size,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha,
		float32(shape),
	)
}

// FlushCells draws all queued sprites in order and clears the queue.
func (r *Renderer) FlushCells() {
	if len(r.spriteBuf) == 0 {
		return
	}
	gl.UseProgram(r.cellProg)
	gl.BindVertexArray(r.cellVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cellVBO)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.spriteBuf)*4, gl.Ptr(r.spriteBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.spriteBuf)/spriteFloats))
	gl.Disable(gl.BLEND)

	r.spriteBuf = r.spriteBuf[:0]
}

// DrawString queues text at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col game.RGB) {
	cr, cg, cb := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255
	w := float32(glyphW) * scale
	h := float32(glyphH) * scale
	x, y := float32(sx), float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = float32(sx)
			y += h
			continue
		}
		u0, v0, u1, v1, ok := glyphUV(ch, r.atlasW, r.atlasH)
		if ok {
			r.textBuf = append(r.textBuf,
				x, y, u0, v0, cr, cg, cb, 1,
				x+w, y, u1, v0, cr, cg, cb, 1,
				x, y+h, u0, v1, cr, cg, cb, 1,
				x+w, y, u1, v0, cr, cg, cb, 1,
				x+w, y+h, u1, v1, cr, cg, cb, 1,
				x, y+h, u0, v1, cr, cg, cb, 1,
			)
		}
		x += w
	}
}

// DrawCentred queues text horizontally centred on the framebuffer.
func (r *Renderer) DrawCentred(text string, sy int, scale float32, col game.RGB) {
	r.DrawString(text, r.fbW/2-TextWidth(text, scale)/2, sy, scale, col)
}

// FlushText draws all queued glyphs and clears the queue.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(r.fbW), float32(r.fbH))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/textFloats))
	gl.Disable(gl.BLEND)

	r.textBuf = r.textBuf[:0]
}
