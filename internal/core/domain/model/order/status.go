package order

import (
	"fmt"
	"math"

	"attieke/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct seller workflow.
//
// State transitions:
//
//	Received ──> Validated ──> InProduction ──> InDelivery ──> Delivered
//	    │            │              │               │
//	    └────────────┴──────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no further transition is permitted.
// Status is a value object that validates state transitions and provides
// wire representations for persistence and display metadata for rendering.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is first created.
	// Orders in this status are waiting for seller validation.
	Received

	// Validated indicates the seller confirmed the order.
	Validated

	// InProduction indicates the attiéké is being prepared.
	InProduction

	// InDelivery indicates the order is out for delivery.
	// The position simulator animates orders in this status.
	InDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned.
	// Reachable from any non-terminal state; terminal once reached.
	Cancelled
)

// PipelineLength is the number of ordered pipeline states
// (Received through Delivered, excluding Cancelled).
const PipelineLength = 5

// DisplayInfo carries presentation metadata derived from a status.
// ProgressFraction is index/(PipelineLength-1) for pipeline states and
// NaN for Cancelled, where the progress bar is not rendered.
type DisplayInfo struct {
	Label            string
	Color            string
	Icon             string
	ProgressFraction float64
}

// getStatusStrings returns a map of Status values to their wire symbols.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Received:     "received",
		Validated:    "validated",
		InProduction: "in_production",
		InDelivery:   "in_delivery",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:     "received",
		Validated:    "validated",
		InProduction: "in_production",
		InDelivery:   "in_delivery",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// getDisplayInfos returns presentation metadata for every valid status.
// Labels, colors and icons follow the storefront's visual language.
func getDisplayInfos() map[Status]DisplayInfo {
	//nolint:exhaustive // Unknown has no presentation
	return map[Status]DisplayInfo{
		Received:     {Label: "Reçue", Color: "#D4AF37", Icon: "package", ProgressFraction: 0},
		Validated:    {Label: "Validée", Color: "#27AE60", Icon: "check", ProgressFraction: 0.25},
		InProduction: {Label: "En production", Color: "#E67E22", Icon: "clock", ProgressFraction: 0.5},
		InDelivery:   {Label: "En route", Color: "#3498db", Icon: "truck", ProgressFraction: 0.75},
		Delivered:    {Label: "Livrée", Color: "#2ecc71", Icon: "check-circle", ProgressFraction: 1},
		Cancelled:    {Label: "Annulée", Color: "#e74c3c", Icon: "x", ProgressFraction: math.NaN()},
	}
}

// ParseStatus converts a wire symbol into a Status.
//
// Only the six valid symbols are accepted: "received", "validated",
// "in_production", "in_delivery", "delivered", "cancelled". Any other
// input fails with a validation error rather than being silently accepted.
//
// Example:
//
//	status, err := order.ParseStatus("in_delivery")
//	if err != nil {
//	    // reject the request
//	}
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status symbol", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the five pipeline states plus Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire symbol of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the two terminal states.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// PipelineIndex returns the zero-based index of the status within the
// ordered pipeline (Received=0 .. Delivered=4) and true, or 0 and false
// for Cancelled and invalid values, which are not pipeline states.
func (s Status) PipelineIndex() (int, bool) {
	if s < Received || s > Delivered {
		return 0, false
	}
	return int(s - Received), true
}

// DisplayInfo returns presentation metadata for the status: a label, a
// color, an icon name and the pipeline progress fraction.
//
// ProgressFraction grows in equal steps along the pipeline:
// [0, 0.25, 0.5, 0.75, 1.0]. For Cancelled it is NaN (undefined); callers
// rendering progress must check with math.IsNaN.
func (s Status) DisplayInfo() DisplayInfo {
	if info, ok := getDisplayInfos()[s]; ok {
		return info
	}
	return DisplayInfo{Label: "unknown", ProgressFraction: math.NaN()}
}

// Next transitions the status one step forward along the pipeline.
//
// Valid transitions:
//   - Received -> Validated
//   - Validated -> InProduction
//   - InProduction -> InDelivery
//   - InDelivery -> Delivered
//
// Advancement never targets Cancelled; cancellation is only reachable via
// ChangeTo. Terminal statuses cannot advance.
//
// Returns:
//   - (next, nil) on valid transition
//   - (0, *errs.InvalidTransitionError) if the status is terminal or invalid
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), "next",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	return s + 1, nil
}

// ChangeTo validates a direct status set, as used by the seller's manual
// override (including cancellation from any non-terminal state).
//
// Rules:
//   - target must be a valid status
//   - re-applying the current status is a no-op and always allowed,
//     so duplicate change notifications stay idempotent
//   - a terminal status cannot change to anything else
//
// Returns:
//   - (target, nil) if the set is permitted
//   - (0, *errs.InvalidTransitionError) otherwise
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s == target {
		return target, nil
	}

	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(),
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}

	return target, nil
}
