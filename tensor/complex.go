// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// Complex is an immutable complex scalar. All operations return a new value.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// Common constants.
var (
	Zero = Complex{}
	One  = Complex{Re: 1}
	I    = Complex{Im: 1}
)

// C is a short constructor for Complex{re, im}.
func C(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Complex128 converts to the builtin complex128.
func (a Complex) Complex128() complex128 { return complex(a.Re, a.Im) }

// Add returns a + b.
func (a Complex) Add(b Complex) Complex { return Complex{a.Re + b.Re, a.Im + b.Im} }

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex { return Complex{a.Re - b.Re, a.Im - b.Im} }

// Mul returns a · b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b computed as a · (1/b).
// Division by zero yields NaN/Inf components, as with float64 division.
func (a Complex) Div(b Complex) Complex { return a.Mul(b.Reciprocal()) }

// Scale returns alpha · a.
func (a Complex) Scale(alpha float64) Complex { return Complex{alpha * a.Re, alpha * a.Im} }

// Reciprocal returns 1/a.
func (a Complex) Reciprocal() Complex {
	s := a.Re*a.Re + a.Im*a.Im
	return Complex{a.Re / s, -a.Im / s}
}

// Conj returns the complex conjugate.
func (a Complex) Conj() Complex { return Complex{a.Re, -a.Im} }

// Abs returns the modulus |a|.
func (a Complex) Abs() float64 { return math.Hypot(a.Re, a.Im) }

// Abs2 returns |a|² without the square root.
func (a Complex) Abs2() float64 { return a.Re*a.Re + a.Im*a.Im }

// Exp returns e^a = e^re · (cos im + i·sin im).
func (a Complex) Exp() Complex {
	e := math.Exp(a.Re)
	return Complex{e * math.Cos(a.Im), e * math.Sin(a.Im)}
}

// Equal reports exact component equality.
func (a Complex) Equal(b Complex) bool { return a.Re == b.Re && a.Im == b.Im }

// ApproxEqual reports whether both components differ by at most tol.
func (a Complex) ApproxEqual(b Complex, tol float64) bool {
	return math.Abs(a.Re-b.Re) <= tol && math.Abs(a.Im-b.Im) <= tol
}

// String formats the value with three decimals, e.g. "0.707 - 0.707i".
func (a Complex) String() string {
	if a.Im < 0 {
		return fmt.Sprintf("%.3f - %.3fi", a.Re, -a.Im)
	}
	return fmt.Sprintf("%.3f + %.3fi", a.Re, a.Im)
}
