// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
