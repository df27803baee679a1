// Package shapes provides minimal geometric value types.
package shapes

// Rectangle is an axis-aligned rectangle. Dimensions are taken as given -
// there is no validation of numeric inputs.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the surface area of the rectangle.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
