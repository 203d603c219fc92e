package ports

import "time"

// IntervalTimer fires a function repeatedly at a fixed interval. Arm
// replaces any armed schedule. Disarm is a no-op when nothing is armed.
type IntervalTimer interface {
	Arm(interval time.Duration, fn func()) error
	Disarm()
	Armed() bool
	Stop()
}
