// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (e.g. an HTTP server) started by the
// application bootstrap and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
