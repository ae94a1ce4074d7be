// Package browser reads the active tab URL of a desktop browser through
// AppleScript. It only works on macOS; elsewhere every call fails with
// domain.ErrNoBrowserFound so callers fall back to the clipboard.
package browser
