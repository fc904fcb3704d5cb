// Package order implements the Order aggregate and its status state machine.
//
// The Order aggregate is the heart of the storefront: a customer order with
// destination, pricing fixed at creation, and a six-state lifecycle
// (received, validated, in_production, in_delivery, delivered, cancelled)
// driven exclusively through validated transitions. Presentation metadata
// (labels, colors, icons, progress fractions) is derived from the status so
// every view renders the pipeline consistently.
package order
