package traject

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"
)

// Horizon selects how far ahead a return computation looks.
// The zero value is Steps(0), a pure-bootstrap return.
type Horizon struct {
	steps int
	full  bool
}

// Steps returns a horizon of exactly k look-ahead steps. The effective
// horizon is clamped to what the trajectory can offer, so k larger than
// the trajectory length is legal. A negative k resolves to the full
// horizon, preserving the behavior of callers that forwarded a -1
// "use maximum" sentinel.
func Steps(k int) Horizon {
	return Horizon{steps: k}
}

// Full returns the largest possible horizon: N-1 look-ahead steps for a
// trajectory of length N.
func Full() Horizon {
	return Horizon{full: true}
}

// IsFull reports whether h resolves to the largest possible horizon.
func (h Horizon) IsFull() bool {
	return h.full || h.steps < 0
}

// resolve returns the effective horizon for a trajectory of length n.
// Full horizons resolve to n-1; explicit step counts are clamped to
// limit (n for K-step returns, n-1 for the λ-return truncation).
func (h Horizon) resolve(n, limit int) int {
	if h.IsFull() {
		return n - 1
	}
	return min(h.steps, limit)
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Horizon{}
	_ json.Marshaler           = Horizon{}
	_ json.Unmarshaler         = (*Horizon)(nil)
	_ encoding.TextMarshaler   = Horizon{}
	_ encoding.TextUnmarshaler = (*Horizon)(nil)
)

// String returns "Full" for a full horizon and "Steps(k)" otherwise.
func (h Horizon) String() string {
	if h.IsFull() {
		return "Full"
	}
	return fmt.Sprintf("Steps(%d)", h.steps)
}

// MarshalText implements encoding.TextMarshaler. A full horizon
// serializes as "full", an explicit one as its decimal step count.
func (h Horizon) MarshalText() ([]byte, error) {
	if h.IsFull() {
		return []byte("full"), nil
	}
	return []byte(strconv.Itoa(h.steps)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Horizon) UnmarshalText(text []byte) error {
	if string(text) == "full" {
		*h = Full()
		return nil
	}
	k, err := strconv.Atoi(string(text))
	if err != nil {
		return fmt.Errorf("traject: invalid horizon: %q", text)
	}
	*h = Steps(k)
	return nil
}

// MarshalJSON implements json.Marshaler. Horizon serializes as a JSON string.
func (h Horizon) MarshalJSON() ([]byte, error) {
	text, err := h.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (h *Horizon) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("traject: invalid horizon: %s", data)
	}
	return h.UnmarshalText([]byte(s))
}
