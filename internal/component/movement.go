// component/movement.go
package component

import "go-lane-defense/pkg/geom"

// Body — положение и размер сущности на поверхности.
type Body struct {
	geom.Rect
}

// NewBody собирает Body из координат и размеров.
func NewBody(x, y, w, h float64) Body {
	return Body{Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}
