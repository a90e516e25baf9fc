package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Package-level entry points mirroring the Context methods, acting on the
// context installed with Bind. They exist so a renderer reads like a plain
// state machine; every one is a no-op (or returns a zero value) while no
// context is bound.

// Enable turns a state on in the bound context.
func Enable(s State) { Current().Enable(s) }

// Disable turns a state off in the bound context.
func Disable(s State) { Current().Disable(s) }

// IsEnabled reports whether a state is on in the bound context.
func IsEnabled(s State) bool { return Current().IsEnabled(s) }

// SetPolygonMode selects the triangle rasterization mode of the bound
// context.
func SetPolygonMode(m PolygonMode) { Current().SetPolygonMode(m) }

// SetCullWinding selects the culled winding of the bound context.
func SetCullWinding(w Winding) { Current().SetCullWinding(w) }

// SetPointSize sets the point radius of the bound context.
func SetPointSize(radius float32) { Current().SetPointSize(radius) }

// BindBuffer binds a buffer into the bound context's front set.
func BindBuffer(b *Buffer) { Current().BindBuffer(b) }

// BindBackBuffer binds a buffer into the bound context's back set.
func BindBackBuffer(b *Buffer) { Current().BindBackBuffer(b) }

// UnbindBuffer removes buffers from the bound context's front set.
func UnbindBuffer(mask BufferMask) { Current().UnbindBuffer(mask) }

// SwapBuffers exchanges the bound context's front and back buffer sets.
func SwapBuffers() { Current().SwapBuffers() }

// BufferSize returns the dimensions of one of the bound context's buffer
// sets.
func BufferSize(set BufferSet) (width, height uint32) { return Current().BufferSize(set) }

// IsBuffer reports whether the selected front buffers are bound.
func IsBuffer(mask BufferMask) bool { return Current().IsBuffer(mask) }

// MaxDepth returns the depth range of the bound front depth buffer.
func MaxDepth() int64 { return Current().MaxDepth() }

// SetClearColor sets the color Clear writes.
func SetClearColor(red, green, blue float32) { Current().SetClearColor(red, green, blue) }

// SetClearDepth sets the depth Clear writes; negative restores the
// maximum-depth default.
func SetClearDepth(depth float32) { Current().SetClearDepth(depth) }

// Clear fills the selected buffers with the clear color and depth.
func Clear(mask BufferMask) { Current().Clear(mask) }

// ActiveTexture selects the bound context's active texture unit.
func ActiveTexture(unit uint8) { Current().ActiveTexture(unit) }

// SetTexture describes the active texture unit of the bound context.
func SetTexture(data any, format Format, width, height uint32, compressed bool) {
	Current().SetTexture(data, format, width, height, compressed)
}

// SampleTexture samples the bound context's active texture unit.
func SampleTexture(x, y float32) mgl32.Vec4 { return Current().SampleTexture(x, y) }

// BindVertexShader installs the bound context's vertex shader hook.
func BindVertexShader(s VertexShader) { Current().BindVertexShader(s) }

// BindFragmentShader installs the bound context's fragment shader hook.
func BindFragmentShader(s FragmentShader) { Current().BindFragmentShader(s) }

// DrawArrays draws primitives from consecutive vertices on the bound
// context.
func DrawArrays(prim Primitive, count uint32, data []float32) {
	Current().DrawArrays(prim, count, data)
}

// DrawElements draws indexed primitives on the bound context.
func DrawElements(prim Primitive, count uint32, data []float32, indices []uint32) {
	Current().DrawElements(prim, count, data, indices)
}
