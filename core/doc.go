// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing (route paths to tabs), message contracts, command and key registries
// - shared state machines used across screens (for example picker logic)
// - status, header and footer bars
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - tab-specific pane layouts or domain state
// - low-level widget rendering primitives
package core
