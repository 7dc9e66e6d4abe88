// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP today). All
// deliveries are collected into an fx group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
