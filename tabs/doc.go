// Package tabs contains the routed views and their pane composition.
//
// Allowed here:
// - pane host behavior, tab-specific layout trees, tab-specific focus/jump policy
// - view state that belongs to one tab (the scheduler's selected day and form)
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
// - domain rules; the scheduler delegates them to internal/calendar
package tabs
