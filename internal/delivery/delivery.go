// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// listener stops; shutdown is handled through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
