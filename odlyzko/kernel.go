package odlyzko

import (
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/zetaline/zetaline/bigcx"
)

// coreSum evaluates the partial-sum kernel
// F(t) = Σ_{k=K0}^{K1} k^{−1/2}·e^{−i·t·ln k} at the configured working
// precision and downcasts the total. Empty when K1 < K0.
func coreSum(cfg Config, t float64) complex128 {
	prec := bigcx.Bits(cfg.Precision)
	tf := new(big.Float).SetPrec(prec).SetFloat64(t)
	sumRe := new(big.Float).SetPrec(prec)
	sumIm := new(big.Float).SetPrec(prec)

	for k := cfg.K0; k <= cfg.K1; k++ {
		kf := new(big.Float).SetPrec(prec).SetInt64(int64(k))
		angle := new(big.Float).SetPrec(prec).Mul(tf, bigfloat.Log(kf))
		invSqrt := new(big.Float).SetPrec(prec).Sqrt(kf)
		invSqrt.Quo(big.NewFloat(1).SetPrec(prec), invSqrt)

		// e^{−i·angle} = cos(angle) − i·sin(angle)
		sumRe.Add(sumRe, new(big.Float).SetPrec(prec).Mul(invSqrt, bigcx.Cos(angle)))
		sumIm.Sub(sumIm, new(big.Float).SetPrec(prec).Mul(invSqrt, bigcx.Sin(angle)))
	}

	re, _ := sumRe.Float64()
	im, _ := sumIm.Float64()

	return complex(re, im)
}
