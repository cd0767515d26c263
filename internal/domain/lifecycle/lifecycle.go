// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown and startup-ping operations.
const DefaultTimeout = 10 * time.Second
