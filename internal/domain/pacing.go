package domain

import (
	"fmt"
	"time"
)

// DelayRange is an inclusive range of whole seconds used for jittered pauses.
type DelayRange struct {
	MinSeconds int
	MaxSeconds int
}

func (r DelayRange) Validate() error {
	if r.MinSeconds < 0 || r.MaxSeconds < r.MinSeconds {
		return fmt.Errorf("%w: invalid delay range [%d,%d]", ErrConfiguration, r.MinSeconds, r.MaxSeconds)
	}
	return nil
}

// Sample maps intn, which must return a value in [0,n), onto the range.
func (r DelayRange) Sample(intn func(n int) int) time.Duration {
	if r.MaxSeconds <= r.MinSeconds {
		return time.Duration(r.MinSeconds) * time.Second
	}
	seconds := r.MinSeconds + intn(r.MaxSeconds-r.MinSeconds+1)
	return time.Duration(seconds) * time.Second
}
