// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is implemented by every server the application exposes.
// Serve blocks until the server stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
