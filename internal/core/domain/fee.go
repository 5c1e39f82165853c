package domain

import "math/bits"

// Fee rates in basis points.
const (
	BaseFeeBPS     = 200 // 2.00% of every donation
	StepFeeBPS     = 50  // 0.50% of the donation per 100% of goal reached
	BPSDenominator = 10000
)

// Fee is the breakdown of the fee charged on a single donation.
type Fee struct {
	Base     uint64
	Ratio    uint64 // campaign progress in basis points, not clamped
	Step     uint64
	Variable uint64
	Total    uint64
}

// ComputeFee returns the fee owed on a donation of amount to c. Every
// product is taken before its paired division and truncated on its own,
// so the stages must not be folded into a single formula.
func ComputeFee(amount uint64, c Campaign) (Fee, error) {
	var (
		f   Fee
		err error
	)

	if f.Base, err = mulDiv(amount, BaseFeeBPS, BPSDenominator); err != nil {
		return Fee{}, err
	}

	if c.Goal != 0 {
		if f.Ratio, err = mulDiv(c.RaisedAmount, BPSDenominator, c.Goal); err != nil {
			return Fee{}, err
		}
	}

	if f.Step, err = mulDiv(amount, StepFeeBPS, BPSDenominator); err != nil {
		return Fee{}, err
	}
	if f.Variable, err = mulDiv(f.Step, f.Ratio, BPSDenominator); err != nil {
		return Fee{}, err
	}

	if f.Total, err = checkedAdd(f.Base, f.Variable); err != nil {
		return Fee{}, err
	}
	return f, nil
}

// mulDiv computes floor(a*b/d), failing if a*b does not fit in 64 bits.
func mulDiv(a, b, d uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrMathOverflow
	}
	return lo / d, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrMathOverflow
	}
	return sum, nil
}
