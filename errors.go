package traject

import "errors"

// Sentinel errors for the traject package.
// Use errors.Is to check: errors.Is(err, traject.ErrLengthMismatch)
var (
	ErrLengthMismatch  = errors.New("traject: rewards and values length mismatch")
	ErrEmptyTrajectory = errors.New("traject: empty reward sequence")
	ErrInvalidPolicy   = errors.New("traject: invalid terminal reward policy")
)
