// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is a server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
