package logo

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func TestRadiusRange(t *testing.T) {
	for i := -5000; i <= 5000; i++ {
		theta := float64(i) * 0.0137
		r := Radius(theta)
		if r < 0 || r > 1 {
			t.Fatalf("Radius(%v) = %v, want value in [0,1]", theta, r)
		}
	}
}

func TestRadiusKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"origin", 0, 1},
		{"zero of cosine", 7 * math.Pi / 6, 0},
		{"full period", 7 * math.Pi / 3, 1},
		{"quarter", 7 * math.Pi / 12, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Radius(tt.theta); math.Abs(got-tt.want) > eps {
				t.Errorf("Radius(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}
}

func TestPointAtWithinSize(t *testing.T) {
	center := gg.Pt(240, 200)
	for _, size := range []float64{0, 1, 200, 312} {
		for i := 0; i < 2000; i++ {
			theta := float64(i) * 0.05
			p := PointAt(theta, size, center)
			if d := p.Sub(center).Length(); d > size+eps {
				t.Fatalf("PointAt(%v, %v) is %v from center, want <= %v", theta, size, d, size)
			}
		}
	}
}

func TestPointAtIsPure(t *testing.T) {
	center := gg.Pt(10, -4)
	a := PointAt(3.3, 200, center)
	// Interleave other evaluations; nothing may leak between calls.
	_ = PointAt(0.1, 5, gg.Pt(0, 0))
	_ = Radius(12)
	b := PointAt(3.3, 200, center)
	if a != b {
		t.Errorf("PointAt not idempotent: %v != %v", a, b)
	}
}

func TestPointAtOrigin(t *testing.T) {
	p := PointAt(0, 200, gg.Pt(240, 200))
	if math.Abs(p.X-440) > eps || math.Abs(p.Y-200) > eps {
		t.Errorf("PointAt(0) = %v, want (440, 200)", p)
	}
}

func TestPetalBound(t *testing.T) {
	tests := []struct {
		a, k int
		want float64
	}{
		{0, 0, math.Pi / 2},
		{1, 0, 11 * math.Pi / 6},
		{0, 1, 17 * math.Pi / 6},
		{1, 5, 81 * math.Pi / 6},
	}
	for _, tt := range tests {
		if got := PetalBound(tt.a, tt.k); math.Abs(got-tt.want) > eps {
			t.Errorf("PetalBound(%d, %d) = %v, want %v", tt.a, tt.k, got, tt.want)
		}
	}
}

func TestPetalsOrderedAndDisjoint(t *testing.T) {
	petals := Petals()
	for k, p := range petals {
		if p.Len() <= 0 {
			t.Errorf("petal %d has non-positive length %v", k, p.Len())
		}
		if math.Abs(p.Len()-4*math.Pi/3) > eps {
			t.Errorf("petal %d length = %v, want 4π/3", k, p.Len())
		}
		if k > 0 && p.Lower <= petals[k-1].Upper {
			t.Errorf("petal %d [%v, %v) overlaps petal %d ending at %v", k, p.Lower, p.Upper, k-1, petals[k-1].Upper)
		}
	}
}

func TestPetalSamples(t *testing.T) {
	const step = 0.005
	petals := Petals()

	var (
		count int
		prev  = math.Inf(-1)
		petal = -1
	)
	for theta := range PetalSamples(step) {
		count++
		if theta <= prev {
			t.Fatalf("samples not increasing: %v after %v", theta, prev)
		}
		k := -1
		for i, p := range petals {
			if p.Contains(theta) {
				k = i
			}
		}
		if k < 0 {
			t.Fatalf("sample %v lies outside every petal", theta)
		}
		if k == petal && theta-prev > step+eps {
			t.Fatalf("gap %v inside petal %d exceeds step", theta-prev, k)
		}
		if k != petal && math.Abs(theta-petals[k].Lower) > eps {
			t.Fatalf("petal %d starts at %v, want lower bound %v", k, theta, petals[k].Lower)
		}
		petal, prev = k, theta
	}

	perPetal := int(math.Ceil(petals[0].Len() / step))
	if count != PetalCount*perPetal {
		t.Errorf("got %d samples, want %d", count, PetalCount*perPetal)
	}
}

func TestPetalSamplesNonPositiveStep(t *testing.T) {
	for _, step := range []float64{0, -1, math.NaN()} {
		for range PetalSamples(step) {
			t.Fatalf("PetalSamples(%v) yielded a value", step)
		}
	}
}

func TestPetalSamplesEarlyStop(t *testing.T) {
	n := 0
	for range PetalSamples(0.1) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d samples, want 3", n)
	}
}
