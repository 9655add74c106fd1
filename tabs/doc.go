// Package tabs contains the top-level views of the reading list.
//
// Allowed here:
// - list state, per-tab layout and key policy, data loading commands
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing (core/widgets)
package tabs
