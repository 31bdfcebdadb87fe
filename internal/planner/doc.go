// Package planner holds the BuildIT planner state independent of any user
// interface: the chosen mode, kit selection, custom parts, goal, and the
// outcome of the last generation.
//
// All operations are synchronous; the caller (the terminal UI) performs
// the network calls and reports back through Begin and Finish.
package planner
