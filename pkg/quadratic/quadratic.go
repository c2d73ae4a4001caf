// Package quadratic analyses y = ax² + bx + c: discriminant, roots, vertex
// and a step-by-step explanation of how they were derived.
package quadratic

import (
	"fmt"
	"math"

	"quadviz/pkg/serrors"
)

// Nature classifies the roots of an equation by the sign of its discriminant.
type Nature string

const (
	// NatureDistinct means D > 0: two different real roots.
	NatureDistinct Nature = "DISTINCT"
	// NatureEqual means D == 0: one repeated real root.
	NatureEqual Nature = "EQUAL"
	// NatureComplex means D < 0: a conjugate pair of complex roots.
	NatureComplex Nature = "COMPLEX"
)

// Describe returns the wording used in explanations ("real and distinct", ...).
func (n Nature) Describe() string {
	switch n {
	case NatureDistinct:
		return "real and distinct"
	case NatureEqual:
		return "real and equal"
	case NatureComplex:
		return "complex"
	default:
		return string(n)
	}
}

// Point is a position on the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Complex is a conjugate root pair Real ± Imag·i.
type Complex struct {
	Real float64 `json:"real" yaml:"real"`
	Imag float64 `json:"imaginary" yaml:"imaginary"`
}

// Analysis is the immutable result of analysing one equation.
type Analysis struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`

	Discriminant float64 `json:"discriminant" yaml:"discriminant"`
	Nature       Nature  `json:"nature"       yaml:"nature"`
	// Roots holds two values for NatureDistinct ("+" branch first), one for
	// NatureEqual and none for NatureComplex.
	Roots []float64 `json:"roots" yaml:"roots"`
	// Complex is set only for NatureComplex.
	Complex *Complex `json:"complex,omitempty" yaml:"complex,omitempty"`
	Vertex  Point    `json:"vertex"            yaml:"vertex"`

	Explanation []string `json:"explanation" yaml:"explanation"`
}

// Analyze derives the discriminant, roots and vertex of ax² + bx + c.
//
// The equal-roots branch is taken on exact floating-point equality D == 0.
// a must be non-zero and all coefficients finite; otherwise an
// serrors.ErrInvalidInput error is returned.
func Analyze(a, b, c float64) (*Analysis, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{{"a", a}, {"b", b}, {"c", c}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return nil, serrors.With(serrors.ErrInvalidInput, "coefficient %q must be a finite number", v.name)
		}
	}
	if a == 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, "coefficient 'a' must not be zero")
	}

	d := b*b - 4*a*c
	sqrtD := math.Sqrt(math.Abs(d))
	vx := -b / (2 * a)

	res := &Analysis{
		A:            a,
		B:            b,
		C:            c,
		Discriminant: d,
		Vertex:       Point{X: vx, Y: a*vx*vx + b*vx + c},
	}

	switch {
	case d > 0:
		res.Nature = NatureDistinct
		res.Roots = []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)}
	case d == 0:
		res.Nature = NatureEqual
		res.Roots = []float64{vx}
	default:
		res.Nature = NatureComplex
		res.Roots = []float64{}
		res.Complex = &Complex{Real: vx, Imag: math.Abs(sqrtD / (2 * a))}
	}

	res.Explanation = explain(res, sqrtD)

	return res, nil
}

// Evaluate returns ax² + bx + c.
func (r *Analysis) Evaluate(x float64) float64 {
	return r.A*x*x + r.B*x + r.C
}

// RealRoots returns the x positions of the real roots as they are marked on
// a graph: both roots for NatureDistinct, the repeated root twice for
// NatureEqual and nil for NatureComplex.
func (r *Analysis) RealRoots() []float64 {
	switch r.Nature {
	case NatureDistinct:
		return []float64{r.Roots[0], r.Roots[1]}
	case NatureEqual:
		return []float64{r.Roots[0], r.Roots[0]}
	default:
		return nil
	}
}

// YIntercept returns the point where the curve crosses the y axis.
func (r *Analysis) YIntercept() Point {
	return Point{X: 0, Y: r.C}
}

// Equation renders "y = {a}x² + {b}x + {c}".
func (r *Analysis) Equation() string {
	return fmt.Sprintf("y = %sx² + %sx + %s", Natural(r.A), Natural(r.B), Natural(r.C))
}
