// Package soft3d is a software 3D rasterization pipeline for Go.
//
// # Overview
//
// soft3d renders points, lines and triangles described by packed vertex
// arrays into caller-visible color and depth buffers, entirely on the CPU.
// The pipeline is configured through a state machine held by a rendering
// Context: vertex layouts, clipping, perspective division and correction,
// depth testing, blending, face culling, texturing and programmable
// vertex/fragment shader hooks are all toggled states.
//
// # Quick Start
//
//	import "github.com/gogpu/soft3d"
//
//	ctx := soft3d.NewContext()
//	soft3d.Bind(ctx)
//
//	color := soft3d.NewBuffer(soft3d.RGBA32, 256, 256)
//	depth := soft3d.NewBuffer(soft3d.D16, 256, 256)
//	soft3d.BindBuffer(color)
//	soft3d.BindBuffer(depth)
//
//	soft3d.Enable(soft3d.LayoutV3C4)
//	soft3d.DrawArrays(soft3d.Triangles, 1, vertices)
//
// # Coordinate System
//
// Vertex positions enter the pipeline in clip space: a vertex is inside the
// view volume when -w <= x,y,z <= w. After perspective division and depth
// scaling, x and y map to the viewport with the origin at the top-left
// (+X right, +Y down on screen; clip-space +Y is up) and z maps to [0,1]
// with the near plane at 0.
//
// # Error Handling
//
// Operations never panic and never return errors: invalid parameters and
// missing bindings make the operation a silent no-op. Enable logging via
// SetLogger to surface diagnostics for the silently rejected cases.
//
// The package is not safe for concurrent use; callers that share a Context
// across goroutines must serialize access.
package soft3d
