// Package services implements the driving port interfaces.
// Services hold the reading workflow: capturing articles, opening them
// for playback, and keeping settings and history in step with what the
// reader does. They talk to the outside world only through driven ports.
package services
