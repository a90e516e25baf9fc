// Package display presents a rendering context's front color buffer in a
// window, scaled by an integer pixel size. It is a development convenience
// around ebiten; the core package never depends on it.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/soft3d"
	"github.com/gogpu/soft3d/internal/pixel"
)

// Window presents a context's front color buffer once per frame. Frame, if
// set, runs before every presentation and is where the application draws.
type Window struct {
	Title string
	Scale int
	Frame func()
}

// Run opens the window and blocks until it is closed. The context must
// have a front color buffer bound; its dimensions fix the window size for
// the lifetime of the loop.
func (w *Window) Run(ctx *soft3d.Context) error {
	cb := ctx.ColorBuffer(soft3d.FrontBuffers)
	if cb == nil {
		return errors.New("display: no front color buffer bound")
	}
	scale := max(w.Scale, 1)

	g := &game{
		frame:  w.Frame,
		ctx:    ctx,
		width:  int(cb.Width()),
		height: int(cb.Height()),
		rgba:   make([]byte, cb.Width()*cb.Height()*4),
	}
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle(w.Title)
	return ebiten.RunGame(g)
}

type game struct {
	frame         func()
	ctx           *soft3d.Context
	width, height int
	rgba          []byte
}

func (g *game) Update() error {
	if g.frame != nil {
		g.frame()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	cb := g.ctx.ColorBuffer(soft3d.FrontBuffers)
	if cb == nil {
		return
	}
	switch cb.Format() {
	case soft3d.RGB16, soft3d.RGBA16:
		for i, p := range cb.Words16() {
			g.rgba[i*4+0] = byte(pixel.R16(p) * 255 / 31)
			g.rgba[i*4+1] = byte(pixel.G16(p) * 255 / 31)
			g.rgba[i*4+2] = byte(pixel.B16(p) * 255 / 31)
			g.rgba[i*4+3] = 255
		}
	case soft3d.RGB32, soft3d.RGBA32:
		for i, p := range cb.Words32() {
			g.rgba[i*4+0] = byte(pixel.R32(p))
			g.rgba[i*4+1] = byte(pixel.G32(p))
			g.rgba[i*4+2] = byte(pixel.B32(p))
			g.rgba[i*4+3] = 255
		}
	}
	screen.WritePixels(g.rgba)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
