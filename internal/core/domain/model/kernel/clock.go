package kernel

import "time"

// Clock supplies the current time to components that would otherwise reach for
// an ambient time.Now. Injecting the clock keeps progress computation pure and
// deterministically testable: handlers receive time.Now in production and a
// fixed function in tests.
type Clock func() time.Time
