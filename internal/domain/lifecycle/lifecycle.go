// Package lifecycle holds the timeouts shared by start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single OnStart or OnStop hook.
	DefaultTimeout = 10 * time.Second

	// ReadinessTimeout bounds the database ping of the readiness probe.
	ReadinessTimeout = 2 * time.Second
)
