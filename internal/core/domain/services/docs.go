// Package services provides stateless domain services for the storefront:
// the delivery tariff (destination-based fee tiers), transport
// classification (animation pacing and icon selection), the static city
// geocoder, and the route/position simulator that animates in-delivery
// orders on the tracking map.
//
// All services are pure: given the same inputs they produce the same
// outputs, which keeps them independently unit-testable. Time enters only
// as an explicit elapsed-duration parameter; scheduling lives in the jobs
// package.
package services
