// Package geom provides simple geometric value objects.
package geom

// Rectangle is an axis-aligned rectangle value.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// New creates a rectangle with the given dimensions.
func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width * height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the total edge length.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// Scale returns a copy of r with both dimensions multiplied by f.
func (r Rectangle) Scale(f float64) Rectangle {
	return Rectangle{Width: r.Width * f, Height: r.Height * f}
}
