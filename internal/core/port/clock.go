package port

import "time"

// Clock is the host's source of the current time.
type Clock interface {
	Now() time.Time
}
