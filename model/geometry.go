package model

import "image"

// Box is an axis-aligned rectangle in image pixel coordinates. The origin is
// the top-left corner of the image and Top grows downwards.
type Box struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// NewBox creates a box from its left/top corner and size.
func NewBox(left, top, width, height int) Box {
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// BoxFromRect converts an image.Rectangle to a Box.
func BoxFromRect(r image.Rectangle) Box {
	r = r.Canon()
	return Box{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Right returns the right edge X coordinate.
func (b Box) Right() int {
	return b.Left + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b Box) Bottom() int {
	return b.Top + b.Height
}

// Rect returns the box as an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right(), b.Bottom())
}

// IsValid reports whether every coordinate and dimension is non-negative.
func (b Box) IsValid() bool {
	return b.Left >= 0 && b.Top >= 0 && b.Width >= 0 && b.Height >= 0
}
