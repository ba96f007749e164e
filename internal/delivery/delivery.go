// Package delivery defines the contract implemented by every transport that
// serves the application, regardless of protocol.
package delivery

import "context"

// Delivery is a long-running transport endpoint. Serve blocks until the
// transport stops or fails; shutdown runs through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
