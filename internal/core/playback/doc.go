// Package playback implements RSVP word playback.
//
// It contains the pure helpers used to present a word sequence one word at
// a time (ORP and Rewind) and the Engine state machine that drives timed
// advancement through an injected driven.Clock.
//
// # Threading
//
// An Engine is not safe for concurrent use. Every method and every clock
// callback must run on the same logical thread (the TUI event loop, or a
// test goroutine driving a virtual clock).
package playback
