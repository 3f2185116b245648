// Package traject computes multi-step and lambda-weighted discounted
// returns from a single reinforcement-learning trajectory.
//
// traject provides two pure functions over a reward sequence and an
// optional aligned value-estimate sequence: KStepReturns produces the
// K-step bootstrapped return for every time step at once, and
// LambdaReturns blends the whole family of K-step returns into a
// TD(λ)-style return. Both are computed as vectorized right-to-left
// folds over shifted arrays, one pass per step offset.
//
// Basic usage:
//
//	rewards := []float64{3, 2, 4, 1, 5}
//	values := []float64{4, 7, 1, 3, 6}
//
//	returns, err := traject.KStepReturns(rewards, 0.8, traject.Steps(4), values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Callers that need to control how the final reward interacts with the
// final value estimate construct a Calculator:
//
//	calc, err := traject.New(traject.Config{TerminalReward: traject.KeepFinalReward})
package traject
