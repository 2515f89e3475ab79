// Package numbers provides accurate floating-point linear combinations.
//
// The combinations use error-free transformations (an FMA based exact
// product and Knuth's two-sum) so that a sum of products is computed as if
// with twice the working precision before the final rounding. Geometric
// primitives use them for offsets and projections where cancellation
// between nearly equal products is common.
package numbers

import "math"

// twoProduct returns p = fl(a*b) and the exact rounding error e, so that
// a*b == p + e.
func twoProduct(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}

// twoSum returns s = fl(a+b) and the exact rounding error e.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	z := s - a
	e = (a - (s - z)) + (b - z)
	return s, e
}

// Dot returns the accurate dot product of a and b. It panics if the slices
// differ in length. Non-finite inputs fall back to the naive sum so that
// infinities propagate with their usual sign.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("numbers: Dot of slices with different lengths")
	}
	if len(a) == 0 {
		return 0
	}
	p, s := twoProduct(a[0], b[0])
	for i := 1; i < len(a); i++ {
		h, r := twoProduct(a[i], b[i])
		var q float64
		p, q = twoSum(p, h)
		s += q + r
	}
	result := p + s
	if math.IsNaN(result) {
		return naive(a, b)
	}
	return result
}

func naive(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Value2 returns a1*b1 + a2*b2.
func Value2(a1, b1, a2, b2 float64) float64 {
	return Dot([]float64{a1, a2}, []float64{b1, b2})
}

// Value3 returns a1*b1 + a2*b2 + a3*b3.
func Value3(a1, b1, a2, b2, a3, b3 float64) float64 {
	return Dot([]float64{a1, a2, a3}, []float64{b1, b2, b3})
}

// Value4 returns a1*b1 + a2*b2 + a3*b3 + a4*b4.
func Value4(a1, b1, a2, b2, a3, b3, a4, b4 float64) float64 {
	return Dot([]float64{a1, a2, a3, a4}, []float64{b1, b2, b3, b4})
}
