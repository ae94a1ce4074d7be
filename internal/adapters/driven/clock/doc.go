// Package clock provides driven.Clock implementations.
//
//   - Realtime: wall-clock timers whose callbacks are handed to a dispatch
//     function, so they run on the host's event loop.
//   - Virtual: a manually advanced clock for deterministic tests.
package clock
