package logo

import (
	"iter"
	"math"

	"github.com/gogpu/gg"
)

// PetalCount is the number of petals the mark is drawn in.
const PetalCount = 6

// lobeRatio is the angular frequency of the radius function.
const lobeRatio = 3.0 / 7.0

// Radius returns the normalized radius of the rose at theta: cos²(3θ/7).
// The result is always in [0, 1].
func Radius(theta float64) float64 {
	c := math.Cos(lobeRatio * theta)
	return c * c
}

// PointAt returns the rose point at theta for a curve of the given size,
// offset by center. The point is never farther than size from center.
func PointAt(theta, size float64, center gg.Point) gg.Point {
	r := Radius(theta) * size
	return gg.Point{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}

// PetalBound returns (π/6)(3 + 8a + 14k). With a = 0 it is the lower bound
// of petal k, with a = 1 the upper bound.
func PetalBound(a, k int) float64 {
	return math.Pi / 6 * float64(3+8*a+14*k)
}

// PetalRange is the angular interval [Lower, Upper) traced by one petal.
type PetalRange struct {
	Lower, Upper float64
}

// Len returns the angular length of the range.
func (r PetalRange) Len() float64 {
	return r.Upper - r.Lower
}

// Contains reports whether theta lies in [Lower, Upper).
func (r PetalRange) Contains(theta float64) bool {
	return theta >= r.Lower && theta < r.Upper
}

// Petals returns the six petal ranges ordered by k.
func Petals() [PetalCount]PetalRange {
	var out [PetalCount]PetalRange
	for k := range out {
		out[k] = PetalRange{Lower: PetalBound(0, k), Upper: PetalBound(1, k)}
	}
	return out
}

// PetalSamples yields every sampled angle of the six petals in order,
// stepping from each lower bound while below the upper bound.
// A non-positive step yields nothing.
func PetalSamples(step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(step > 0) {
			return
		}
		for _, p := range Petals() {
			for i := 0; ; i++ {
				t := p.Lower + float64(i)*step
				if t >= p.Upper {
					break
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
