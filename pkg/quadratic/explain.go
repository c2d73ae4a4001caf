package quadratic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuadraticFormula is the general formula line of every explanation.
const QuadraticFormula = "x = (-b ± √D) / 2a"

// Natural formats f in its shortest round-trip form, always showing a
// fractional part ("2.0") and switching to exponent notation for very small
// or very large magnitudes ("1e+16", "1.5e-05"). Negative zero prints as "0.0".
func Natural(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		return "0.0"
	}

	if abs := math.Abs(f); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// Fixed formats f with two decimals. Values that round to zero print as
// "0.00", never "-0.00".
func Fixed(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}

	return s
}

// grouped parenthesises negative values that are squared or negated in a
// substitution, so "(-3.0)²" and "-(-3.0)" read correctly.
func grouped(f float64) string {
	if f < 0 {
		return "(" + Natural(f) + ")"
	}

	return Natural(f)
}

func comparison(n Nature) string {
	switch n {
	case NatureDistinct:
		return ">"
	case NatureEqual:
		return "="
	default:
		return "<"
	}
}

func explain(r *Analysis, sqrtD float64) []string {
	a, b, c := r.A, r.B, r.C

	var roots string
	switch r.Nature {
	case NatureDistinct:
		roots = fmt.Sprintf("x = (-%s ± √%s) / 2(%s) = ±%s / %s = %s, %s",
			grouped(b), Natural(r.Discriminant), Natural(a),
			Fixed(sqrtD), Natural(2*a), Fixed(r.Roots[0]), Fixed(r.Roots[1]))
	case NatureEqual:
		roots = fmt.Sprintf("x = -%s / 2(%s) = %s", grouped(b), Natural(a), Fixed(r.Roots[0]))
	default:
		roots = fmt.Sprintf("x = %s ± %si", Fixed(r.Complex.Real), Fixed(r.Complex.Imag))
	}

	vx := Fixed(r.Vertex.X)

	return []string{
		"Equation: " + r.Equation(),
		fmt.Sprintf("Discriminant (D) = %s² - 4(%s)(%s) = %s",
			grouped(b), Natural(a), Natural(c), Natural(r.Discriminant)),
		fmt.Sprintf("Since D %s 0, roots are %s.", comparison(r.Nature), r.Nature.Describe()),
		QuadraticFormula,
		roots,
		fmt.Sprintf("Vertex: x = -%s/(2×%s) = %s, y = %s(%s)² + %s(%s) + %s = %s",
			grouped(b), Natural(a), vx, Natural(a), vx, Natural(b), vx, Natural(c), Fixed(r.Vertex.Y)),
	}
}
