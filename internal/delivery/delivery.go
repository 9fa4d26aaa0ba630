// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) managed by the
// application lifecycle. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
