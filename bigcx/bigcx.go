package bigcx

import (
	"errors"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// MinDigits is the floor on the working precision, in decimal digits.
// Requests below it are clamped so asymptotic corrections stay meaningful.
const MinDigits = 15

// guardBits pads the mantissa so intermediate rounding stays below the
// requested decimal resolution.
const guardBits = 16

var (
	// ErrDivByZero indicates division by a complex zero.
	ErrDivByZero = errors.New("bigcx: division by zero")
	// ErrNonPositiveBase indicates a real power with base ≤ 0.
	ErrNonPositiveBase = errors.New("bigcx: real power requires a positive base")
)

// Bits converts a precision in decimal digits to a big.Float mantissa
// precision in bits, clamping to MinDigits and adding guard bits.
func Bits(digits int) uint {
	if digits < MinDigits {
		digits = MinDigits
	}

	return uint(math.Ceil(float64(digits)*math.Log2(10))) + guardBits
}

// Complex is an immutable complex number with big.Float parts.
// The zero value is unusable; construct via New, Zero or FromParts.
type Complex struct {
	re, im *big.Float
}

// New returns re + im·i at the given precision in decimal digits.
func New(re, im float64, digits int) Complex {
	prec := Bits(digits)

	return Complex{
		re: new(big.Float).SetPrec(prec).SetFloat64(re),
		im: new(big.Float).SetPrec(prec).SetFloat64(im),
	}
}

// Zero returns 0 + 0i at the given precision in decimal digits.
func Zero(digits int) Complex {
	return New(0, 0, digits)
}

// FromParts wraps existing big.Float parts as a Complex.
// The parts are used as-is; callers must not mutate them afterwards.
func FromParts(re, im *big.Float) Complex {
	return Complex{re: re, im: im}
}

// Re returns the real part. Callers must not mutate the result.
func (z Complex) Re() *big.Float { return z.re }

// Im returns the imaginary part. Callers must not mutate the result.
func (z Complex) Im() *big.Float { return z.im }

// Prec returns the mantissa precision, in bits, of the value.
func (z Complex) Prec() uint { return z.re.Prec() }

// Complex128 downcasts to a complex128. This is the module's boundary
// between arbitrary-precision interiors and float64 results.
func (z Complex) Complex128() complex128 {
	re, _ := z.re.Float64()
	im, _ := z.im.Float64()

	return complex(re, im)
}

// prec2 returns the working precision for an operation over z and w.
func prec2(z, w Complex) uint {
	if w.re.Prec() > z.re.Prec() {
		return w.re.Prec()
	}

	return z.re.Prec()
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	p := prec2(z, w)

	return Complex{
		re: new(big.Float).SetPrec(p).Add(z.re, w.re),
		im: new(big.Float).SetPrec(p).Add(z.im, w.im),
	}
}

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex {
	p := prec2(z, w)

	return Complex{
		re: new(big.Float).SetPrec(p).Sub(z.re, w.re),
		im: new(big.Float).SetPrec(p).Sub(z.im, w.im),
	}
}

// Mul returns z · w.
func (z Complex) Mul(w Complex) Complex {
	p := prec2(z, w)
	ac := new(big.Float).SetPrec(p).Mul(z.re, w.re)
	bd := new(big.Float).SetPrec(p).Mul(z.im, w.im)
	ad := new(big.Float).SetPrec(p).Mul(z.re, w.im)
	bc := new(big.Float).SetPrec(p).Mul(z.im, w.re)

	return Complex{
		re: ac.Sub(ac, bd),
		im: ad.Add(ad, bc),
	}
}

// Div returns z / w, or ErrDivByZero when w == 0.
func (z Complex) Div(w Complex) (Complex, error) {
	p := prec2(z, w)
	c2 := new(big.Float).SetPrec(p).Mul(w.re, w.re)
	d2 := new(big.Float).SetPrec(p).Mul(w.im, w.im)
	den := c2.Add(c2, d2)
	if den.Sign() == 0 {
		return Complex{}, ErrDivByZero
	}

	num := z.Mul(w.Conj())

	return Complex{
		re: new(big.Float).SetPrec(p).Quo(num.re, den),
		im: new(big.Float).SetPrec(p).Quo(num.im, den),
	}, nil
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{
		re: new(big.Float).SetPrec(z.re.Prec()).Neg(z.re),
		im: new(big.Float).SetPrec(z.im.Prec()).Neg(z.im),
	}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{
		re: new(big.Float).SetPrec(z.re.Prec()).Set(z.re),
		im: new(big.Float).SetPrec(z.im.Prec()).Neg(z.im),
	}
}

// MulReal returns z scaled by the real factor x.
func (z Complex) MulReal(x *big.Float) Complex {
	p := z.re.Prec()

	return Complex{
		re: new(big.Float).SetPrec(p).Mul(z.re, x),
		im: new(big.Float).SetPrec(p).Mul(z.im, x),
	}
}

// Abs returns |z| = √(re² + im²).
func (z Complex) Abs() *big.Float {
	p := z.re.Prec()
	r2 := new(big.Float).SetPrec(p).Mul(z.re, z.re)
	i2 := new(big.Float).SetPrec(p).Mul(z.im, z.im)

	return r2.Add(r2, i2).Sqrt(r2)
}

// Exp returns e^z via e^{a+bi} = e^a·(cos b + i·sin b).
func (z Complex) Exp() Complex {
	p := z.re.Prec()
	ea := bigfloat.Exp(z.re)

	return Complex{
		re: new(big.Float).SetPrec(p).Mul(ea, Cos(z.im)),
		im: new(big.Float).SetPrec(p).Mul(ea, Sin(z.im)),
	}
}

// PowReal returns x^z = e^{z·ln x} for a real base x > 0.
func PowReal(x *big.Float, z Complex) (Complex, error) {
	if x.Sign() <= 0 {
		return Complex{}, ErrNonPositiveBase
	}

	lnx := bigfloat.Log(x)

	return z.MulReal(lnx).Exp(), nil
}
