package ports

import "time"

// Clock abstracts time so the simulated payment-gateway delay can run on a
// fake clock in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}
