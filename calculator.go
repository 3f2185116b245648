package traject

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// TerminalRewardPolicy controls how the final reward interacts with the
// final value estimate when a value sequence is supplied.
type TerminalRewardPolicy int

const (
	// ReplaceFinalReward treats the last observed reward as already
	// equal to the last value estimate: the final entry of the reward
	// sequence is replaced by the final entry of the value sequence
	// before any return is computed. This is the historical behavior of
	// the algorithm and affects every return whose look-ahead window
	// reaches the final index; it is preserved as the default for
	// compatibility rather than out of numeric necessity.
	ReplaceFinalReward TerminalRewardPolicy = iota

	// KeepFinalReward leaves the reward sequence untouched.
	KeepFinalReward
)

var (
	policyNames = [...]string{
		ReplaceFinalReward: "ReplaceFinalReward",
		KeepFinalReward:    "KeepFinalReward",
	}
	policyByName = map[string]TerminalRewardPolicy{
		"ReplaceFinalReward": ReplaceFinalReward,
		"KeepFinalReward":    KeepFinalReward,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = TerminalRewardPolicy(0)
	_ json.Marshaler           = TerminalRewardPolicy(0)
	_ json.Unmarshaler         = (*TerminalRewardPolicy)(nil)
	_ encoding.TextMarshaler   = TerminalRewardPolicy(0)
	_ encoding.TextUnmarshaler = (*TerminalRewardPolicy)(nil)
)

// IsValid reports whether p is a defined policy.
func (p TerminalRewardPolicy) IsValid() bool {
	return p >= ReplaceFinalReward && p <= KeepFinalReward
}

// String returns the name of the policy. For invalid values it returns
// "TerminalRewardPolicy(n)".
func (p TerminalRewardPolicy) String() string {
	if p.IsValid() {
		return policyNames[p]
	}
	return fmt.Sprintf("TerminalRewardPolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p TerminalRewardPolicy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(p))
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TerminalRewardPolicy) UnmarshalText(text []byte) error {
	v, ok := policyByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, text)
	}
	*p = v
	return nil
}

// MarshalJSON implements json.Marshaler. The policy serializes as a JSON string.
func (p TerminalRewardPolicy) MarshalJSON() ([]byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (p *TerminalRewardPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, data)
	}
	return p.UnmarshalText([]byte(s))
}

// Config configures a Calculator.
// The zero value is fully usable: TerminalReward defaults to ReplaceFinalReward.
type Config struct {
	TerminalReward TerminalRewardPolicy `json:"terminal_reward"`
}

// Calculator computes trajectory returns under a fixed terminal reward
// policy. It holds no per-trajectory state; a single Calculator may be
// shared across goroutines.
type Calculator struct {
	terminalReward TerminalRewardPolicy
}

// New creates a Calculator from the given config.
// An out-of-range policy value returns ErrInvalidPolicy.
func New(cfg Config) (*Calculator, error) {
	if !cfg.TerminalReward.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(cfg.TerminalReward))
	}
	return &Calculator{terminalReward: cfg.TerminalReward}, nil
}

// defaultCalc backs the package-level KStepReturns and LambdaReturns.
var defaultCalc = &Calculator{terminalReward: ReplaceFinalReward}

// prepare validates the trajectory and applies the terminal reward
// policy. The returned slice is a private copy whenever the policy
// would alter it; the caller's rewards are never mutated.
func (c *Calculator) prepare(rewards, values []float64) ([]float64, error) {
	n := len(rewards)
	if n == 0 {
		return nil, ErrEmptyTrajectory
	}
	if values != nil && len(values) != n {
		return nil, fmt.Errorf("%w: %d rewards, %d values", ErrLengthMismatch, n, len(values))
	}
	if values == nil || c.terminalReward == KeepFinalReward {
		return rewards, nil
	}
	rw := make([]float64, n)
	copy(rw, rewards)
	rw[n-1] = values[n-1]
	return rw, nil
}
