package traject

import "gonum.org/v1/gonum/floats"

// KStepReturns computes the K-step bootstrapped return for every time
// step of a trajectory:
//
//	R_t(K') = Σ_{i=0}^{K'-1} γ^i · rewards[t+i]  +  γ^K' · values[t+K']
//
// with K' = min(k, N), missing rewards and value estimates beyond the
// trajectory end treated as zero. A nil values slice means the state
// following the final reward is terminal with value zero. The output
// always has the same length N as rewards.
//
// When values are supplied, the calculator's TerminalRewardPolicy
// decides whether rewards[N-1] is first replaced by values[N-1]; the
// substitution happens on a private copy, never on the caller's slice.
//
// Returns ErrEmptyTrajectory for an empty reward sequence and
// ErrLengthMismatch when values are supplied with a different length.
func (c *Calculator) KStepReturns(rewards []float64, discount float64, k Horizon, values []float64) ([]float64, error) {
	rw, err := c.prepare(rewards, values)
	if err != nil {
		return nil, err
	}
	n := len(rw)
	out := make([]float64, n)
	kStepInto(out, rw, discount, k.resolve(n, n), values)
	return out, nil
}

// KStepReturns computes K-step returns under the default
// ReplaceFinalReward policy. See Calculator.KStepReturns.
func KStepReturns(rewards []float64, discount float64, k Horizon, values []float64) ([]float64, error) {
	return defaultCalc.KStepReturns(rewards, discount, k, values)
}

// kStepInto computes the kEff-step returns for every time step into
// dst, which must have length len(rewards) and is fully overwritten.
// kEff must already be resolved (0 ≤ kEff ≤ len(rewards)) and the
// terminal reward policy already applied to rewards.
//
// The computation is a single right-to-left fold over shifted arrays:
// dst starts as the bootstrap array (values shifted left by kEff,
// zero-padded), then for each offset i from kEff-1 down to 0,
// dst = dst·γ + rewards shifted left by i. Restricting the addition to
// the aligned subslices dst[:n-i] and rewards[i:] realizes the
// zero-padding without materializing padded copies.
func kStepInto(dst, rewards []float64, discount float64, kEff int, values []float64) {
	n := len(rewards)
	clear(dst)
	if values != nil {
		copy(dst, values[kEff:])
	}
	for i := kEff - 1; i >= 0; i-- {
		floats.Scale(discount, dst)
		floats.Add(dst[:n-i], rewards[i:])
	}
}
