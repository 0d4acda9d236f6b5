// Package lifecycle holds shutdown timing shared by servers and publishers.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook.
const DefaultTimeout = 15 * time.Second
