// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is a transport that can serve requests until its context or
// the process lifecycle ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
