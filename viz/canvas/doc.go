// Package canvas is the immediate-mode drawing surface the renderer targets.
//
// A Surface accepts lines, discs, rounded rectangles and centered text, each
// filled with a Paint (a solid Color or a linear/radial Gradient). Raster is
// the software implementation over *image.RGBA; other hosts (the ebiten
// window in package hal) provide their own.
package canvas
