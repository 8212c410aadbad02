// Package nested coordinates vertical scrolling between a collapsing header
// (the outer surface) and the scrollable lists inside a paged container (the
// inner surfaces).
//
// A Registry subscribes to offset changes on every inner surface and hands
// each change to a Coordinator. The Coordinator decides whether the gesture
// should move the header, and if so writes both offsets back through a Guard
// so its own writes are never mistaken for user input.
//
// Everything here runs on a single event loop. Nothing is safe for concurrent
// use and nothing needs to be.
package nested
