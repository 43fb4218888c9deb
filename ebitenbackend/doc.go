// Package ebitenbackend runs a bramble Window on Ebitengine.
//
// [Run] opens the window, polls Ebitengine input into bramble events, ticks
// the window and replays its DrawQueue with [Renderer]. Frames are only
// redrawn when the window reports a change.
//
// Primitives are drawn with DrawTriangles32 onto a sub-image of the screen
// that acts as the scissor rectangle. Untextured geometry samples a shared
// 1x1 white image. Text goes through text/v2 with faces from [Fonts], which
// defaults to the Go font family.
//
// Textures are uploaded on first use and released once no frame has drawn
// them for two frames.
package ebitenbackend
