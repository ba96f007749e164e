// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work, such as draining
// in-flight requests or waiting for the first database ping.
const DefaultTimeout = 30 * time.Second
