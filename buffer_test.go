package soft3d

import (
	"testing"

	"github.com/gogpu/soft3d/internal/pixel"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name          string
		format        Format
		width, height uint32
		want          bool
	}{
		{"rgba32", RGBA32, 4, 4, true},
		{"d16", D16, 8, 2, true},
		{"one row", RGB16, 4, 1, true},
		{"degenerate", RGB32, 0, 1, false},
		{"zero width", RGB32, 0, 5, false},
		{"zero height", RGBA16, 3, 0, false},
		{"zero", D32, 0, 0, false},
		{"unknown format", Format(42), 4, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.format, tt.width, tt.height)
			if (b != nil) != tt.want {
				t.Errorf("NewBuffer() = %v, want non-nil=%v", b, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	words := make([]uint16, 16)
	if b := Wrap16(RGBA16, 4, 4, words); b == nil {
		t.Error("Wrap16 rejected a matching slice")
	}
	if b := Wrap16(RGBA16, 4, 4, words[:8]); b != nil {
		t.Error("Wrap16 accepted a short slice")
	}
	if b := Wrap16(RGB32, 4, 4, words); b != nil {
		t.Error("Wrap16 accepted a 32-bit format")
	}
	if b := Wrap32(D32, 2, 2, make([]uint32, 4)); b == nil {
		t.Error("Wrap32 rejected a matching slice")
	}
	if b := Wrap16(RGBA16, 0, 4, nil); b != nil {
		t.Error("Wrap16 accepted a zero-width buffer")
	}
	if b := Wrap32(RGBA32, 4, 0, nil); b != nil {
		t.Error("Wrap32 accepted a zero-height buffer")
	}
}

func TestBindBuffer_DimensionMatch(t *testing.T) {
	c := NewContext()

	c.BindBuffer(NewBuffer(RGBA32, 4, 4))
	c.BindBuffer(NewBuffer(D16, 8, 8)) // mismatched, ignored

	if c.IsBuffer(DepthBufferBit) {
		t.Fatal("mismatched depth buffer was bound")
	}

	c.BindBuffer(NewBuffer(D16, 4, 4))
	if !c.IsBuffer(ColorBufferBit) || !c.IsBuffer(DepthBufferBit) {
		t.Fatal("matching buffers not bound")
	}

	w, h := c.BufferSize(FrontBuffers)
	if w != 4 || h != 4 {
		t.Errorf("BufferSize = %dx%d, want 4x4", w, h)
	}
}

func TestUnbindBuffer_ResetsDimensions(t *testing.T) {
	c := NewContext()
	c.BindBuffer(NewBuffer(RGBA32, 4, 4))

	c.UnbindBuffer(ColorBufferBit)
	if c.IsBuffer(ColorBufferBit) {
		t.Fatal("color buffer still bound")
	}

	// the set is empty, so a different size may bind now
	c.BindBuffer(NewBuffer(RGBA32, 8, 2))
	w, h := c.BufferSize(FrontBuffers)
	if w != 8 || h != 2 {
		t.Errorf("BufferSize = %dx%d, want 8x2", w, h)
	}
}

func TestSwapBuffers(t *testing.T) {
	c := NewContext()
	front := NewBuffer(RGBA32, 4, 4)
	back := NewBuffer(RGBA32, 8, 8)
	c.BindBuffer(front)
	c.BindBackBuffer(back)

	c.SwapBuffers()

	if c.ColorBuffer(FrontBuffers) != back {
		t.Error("front color buffer did not swap")
	}
	if c.ColorBuffer(BackBuffers) != front {
		t.Error("back color buffer did not swap")
	}
	w, h := c.BufferSize(FrontBuffers)
	if w != 8 || h != 8 {
		t.Errorf("front size after swap = %dx%d, want 8x8", w, h)
	}
}

func TestMaxDepth(t *testing.T) {
	c := NewContext()
	if got := c.MaxDepth(); got != 0 {
		t.Errorf("MaxDepth without depth buffer = %d, want 0", got)
	}
	c.BindBuffer(NewBuffer(D16, 4, 4))
	if got := c.MaxDepth(); got != 0xFFFF {
		t.Errorf("MaxDepth(D16) = %d, want 0xFFFF", got)
	}
}

func TestClear_Color(t *testing.T) {
	c := NewContext()
	b := NewBuffer(RGBA32, 2, 2)
	c.BindBuffer(b)
	c.SetClearColor(1, 0, 0.5)

	c.Clear(ColorBufferBit)

	want := pixel.PackColor32(1, 0, 0.5, 1)
	for i, p := range b.Words32() {
		if p != want {
			t.Fatalf("pixel %d = %#x, want %#x", i, p, want)
		}
	}
}

func TestClear_DepthSentinel(t *testing.T) {
	c := NewContext()
	b := NewBuffer(D16, 2, 2)
	c.BindBuffer(b)

	// default clear depth is the maximum
	c.Clear(DepthBufferBit)
	if b.Words16()[0] != 0xFFFF {
		t.Fatalf("depth word = %#x, want 0xFFFF", b.Words16()[0])
	}

	c.SetClearDepth(0.5)
	c.Clear(DepthBufferBit)
	if got := b.Words16()[0]; got != 0x7FFF {
		t.Fatalf("depth word = %#x, want 0x7FFF", got)
	}

	// negative restores the maximum-depth default
	c.SetClearDepth(-1)
	c.Clear(DepthBufferBit)
	if b.Words16()[0] != 0xFFFF {
		t.Fatalf("depth word = %#x, want 0xFFFF", b.Words16()[0])
	}
}

func TestClear_PrefersBackBuffers(t *testing.T) {
	c := NewContext()
	front := NewBuffer(RGBA32, 2, 2)
	back := NewBuffer(RGBA32, 2, 2)
	c.BindBuffer(front)
	c.BindBackBuffer(back)
	c.SetClearColor(1, 1, 1)

	c.Clear(ColorBufferBit)

	if front.Words32()[0] != 0 {
		t.Error("front buffer cleared despite back binding")
	}
	if back.Words32()[0] == 0 {
		t.Error("back buffer not cleared")
	}
}
