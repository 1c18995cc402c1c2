// Package delivery defines the inbound adapters the application serves through.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
