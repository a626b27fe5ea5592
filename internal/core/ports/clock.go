package ports

import (
	"time"
)

// Clock supplies the current time to the application core. Orders and
// tracking events are always stamped through a Clock, never time.Now
// directly, so tests can pin time.
type Clock interface {
	Now() time.Time
}
