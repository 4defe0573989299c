// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a server that runs until it fails or is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
