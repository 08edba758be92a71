package rootfind

import "errors"

var (
	// ErrBadStep indicates a non-positive scan step.
	ErrBadStep = errors.New("rootfind: step must be positive")
	// ErrBadTolerance indicates a non-positive refinement tolerance.
	ErrBadTolerance = errors.New("rootfind: tolerance must be positive")
	// ErrBadInterval indicates an interval whose left bound is not below its right bound.
	ErrBadInterval = errors.New("rootfind: left bound must be below right bound")
)

// Func is a real-valued evaluator t → f(t).
type Func func(t float64) float64

// Bracket is a transient (left, right) pair of t-values whose function
// values have opposite sign. It is consumed by Bisect and not retained.
type Bracket struct {
	Left, Right float64
}

// Mid returns the bracket midpoint.
func (b Bracket) Mid() float64 { return (b.Left + b.Right) / 2 }

// Scan samples f at lo, lo+step, … up to and including hi and returns the
// ascending brackets where consecutive samples have strictly opposite sign
// (product < 0). Sample positions are generated by index, not accumulation,
// so the sample count is deterministic for given bounds and step.
//
// Exactly-zero samples do not count as crossings; see the package comment.
func Scan(lo, hi, step float64, f Func) ([]Bracket, error) {
	if step <= 0 {
		return nil, ErrBadStep
	}
	if lo >= hi {
		return nil, ErrBadInterval
	}

	// Absorb float drift so the right endpoint itself is sampled.
	eps := step * 1e-9

	var brackets []Bracket
	prevT := lo
	prev := f(lo)
	for i := 1; ; i++ {
		t := lo + float64(i)*step
		if t > hi+eps {
			break
		}
		cur := f(t)
		if prev*cur < 0 {
			brackets = append(brackets, Bracket{Left: prevT, Right: t})
		}
		prevT, prev = t, cur
	}

	return brackets, nil
}

// Bisect refines a sign-changing bracket down to the absolute tolerance tol
// and returns the final midpoint, or the midpoint itself when it lands
// exactly on the root. The left function value is cached, so each iteration
// costs one evaluation.
func Bisect(b Bracket, tol float64, f Func) (float64, error) {
	if tol <= 0 {
		return 0, ErrBadTolerance
	}
	if b.Left >= b.Right {
		return 0, ErrBadInterval
	}

	left, right := b.Left, b.Right
	fLeft := f(left)
	for right-left > tol {
		mid := (left + right) / 2
		fMid := f(mid)
		switch {
		case fMid == 0:
			return mid, nil
		case fLeft*fMid < 0:
			right = mid
		default:
			left = mid
			fLeft = fMid
		}
	}

	return (left + right) / 2, nil
}
