package bigcx

import (
	"math/big"
)

// piDigits is π to 200 decimal digits, enough headroom for range reduction
// at every precision this module supports.
const piDigits = "3.1415926535897932384626433832795028841971693993751" +
	"0582097494459230781640628620899862803482534211706798214808651" +
	"3282306647093844609550582231725359408128481117450284102701938" +
	"5211055596446229489549303819644288109756659334461284756482337"

// Pi returns π at the given mantissa precision in bits.
func Pi(prec uint) *big.Float {
	pi, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		// The constant is well-formed; a parse failure is a programming error.
		panic("bigcx: invalid pi constant: " + err.Error())
	}

	return pi
}

// TwoPi returns 2π at the given mantissa precision in bits.
func TwoPi(prec uint) *big.Float {
	pi := Pi(prec)

	return pi.Add(pi, Pi(prec))
}

// floorBig returns ⌊x⌋ as a big.Float at x's precision.
func floorBig(x *big.Float) *big.Float {
	i, acc := x.Int(nil)
	f := new(big.Float).SetPrec(x.Prec()).SetInt(i)
	// Int truncates toward zero; step down for negative non-integers.
	if x.Sign() < 0 && acc != big.Exact {
		f.Sub(f, big.NewFloat(1))
	}

	return f
}

// Sin returns sin(x) via range reduction mod 2π followed by the Taylor
// series. Accuracy at very large |x| is bounded by the stored 200-digit π.
func Sin(x *big.Float) *big.Float {
	prec := x.Prec()
	work := prec + 32

	// Reduce x to r ∈ [−π, π).
	twoPi := TwoPi(work)
	r := new(big.Float).SetPrec(work).Set(x)
	q := new(big.Float).SetPrec(work).Quo(r, twoPi)
	q.Add(q, big.NewFloat(0.5))
	r.Sub(r, new(big.Float).SetPrec(work).Mul(floorBig(q), twoPi))

	// Taylor: sin r = Σ (−1)^k r^{2k+1}/(2k+1)!
	term := new(big.Float).SetPrec(work).Set(r)
	sum := new(big.Float).SetPrec(work).Set(r)
	r2 := new(big.Float).SetPrec(work).Mul(r, r)
	for k := int64(1); ; k++ {
		term.Mul(term, r2)
		term.Quo(term, new(big.Float).SetPrec(work).SetInt64(2*k*(2*k+1)))
		term.Neg(term)
		sum.Add(sum, term)
		if term.Sign() == 0 {
			break
		}
		if exp := term.MantExp(nil); exp < -int(work) {
			break
		}
	}

	return sum.SetPrec(prec)
}

// Cos returns cos(x) = sin(x + π/2).
func Cos(x *big.Float) *big.Float {
	work := x.Prec() + 32
	half := Pi(work)
	half.Quo(half, big.NewFloat(2))
	shifted := new(big.Float).SetPrec(work).Add(x, half)

	return Sin(shifted).SetPrec(x.Prec())
}
