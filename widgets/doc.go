// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay compositor, month grid)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or tab policy
package widgets
