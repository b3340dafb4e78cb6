// Package order provides domain entities and business logic for client orders
// in the Galapagos delivery system. It implements the Order aggregate root with
// lifecycle management and monotonic state transitions.
//
// The package includes:
//   - Order: The aggregate root holding the client reference and ordered line items
//   - Item: A value object pairing a product reference with a requested quantity
//   - Status: A state machine enforcing pending -> in-progress -> delivered
//
// Orders are created in Pending status, move to InProgress exactly once when a
// delivery is planned for them, and finish in Delivered when every shipment of
// the order has arrived.
package order
