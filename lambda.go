package traject

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LambdaReturns computes the TD(λ)-style return for every time step of
// a trajectory: with T' = min(truncate, N-1),
//
//	G_t = (1-λ) · Σ_{n=1}^{T'-1} λ^{n-1} · R_t(n)  +  λ^{T'-1} · R_t(T')
//
// a geometrically-weighted mixture of the K-step returns R_t(n) whose
// weights sum to one for any T' ≥ 1. λ=0 reduces to the one-step
// return and λ=1 to the pure truncate-step return; both cases
// short-circuit to a single KStepReturns computation.
//
// Validation, the nil-values convention, and the terminal reward
// policy are identical to KStepReturns.
func (c *Calculator) LambdaReturns(rewards []float64, discount, lambda float64, values []float64, truncate Horizon) ([]float64, error) {
	rw, err := c.prepare(rewards, values)
	if err != nil {
		return nil, err
	}
	n := len(rw)
	out := make([]float64, n)

	// λ=0: the mixture collapses to the one-step return.
	if lambda == 0 {
		kStepInto(out, rw, discount, 1, values)
		return out, nil
	}

	// λ=1: the mixture collapses to the truncate-step return. The
	// truncation resolves with K-step clamping here, as a plain
	// KStepReturns call would.
	if lambda == 1 {
		kStepInto(out, rw, discount, truncate.resolve(n, n), values)
		return out, nil
	}

	tEff := truncate.resolve(n, n-1)
	if tEff < 1 {
		// N=1 trajectory: the only member of the family is R_t(1).
		tEff = 1
	}

	// T'=1: the weighted sum is empty and the truncation term carries
	// λ^0 = 1, so the result is R_t(1) itself.
	if tEff == 1 {
		kStepInto(out, rw, discount, 1, values)
		return out, nil
	}

	// Fold the family R_t(T'-1) … R_t(1) with λ as the coefficient,
	// reusing one scratch buffer for every K-step pass.
	buf := make([]float64, n)
	kStepInto(out, rw, discount, tEff-1, values)
	for k := tEff - 2; k >= 1; k-- {
		floats.Scale(lambda, out)
		kStepInto(buf, rw, discount, k, values)
		floats.Add(out, buf)
	}
	floats.Scale(1-lambda, out)

	// Truncation term: λ^{T'-1} · R_t(T').
	kStepInto(buf, rw, discount, tEff, values)
	floats.AddScaled(out, math.Pow(lambda, float64(tEff-1)), buf)
	return out, nil
}

// LambdaReturns computes λ-returns under the default ReplaceFinalReward
// policy. See Calculator.LambdaReturns.
func LambdaReturns(rewards []float64, discount, lambda float64, values []float64, truncate Horizon) ([]float64, error) {
	return defaultCalc.LambdaReturns(rewards, discount, lambda, values, truncate)
}
