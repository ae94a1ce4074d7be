// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Transforms raw documents into a title and plain text
//   - NormaliserRegistry: Selects the appropriate normaliser by MIME type
//   - Fetcher: Retrieves a page and decodes it to UTF-8
//   - HistoryStore: Reading session persistence
//   - ConfigStore: Application configuration
//   - Clock: Schedules timed callbacks for playback
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - BrowserBridge: Reads the active tab URL. Without it, a URL must be given.
//   - Clipboard: Supplies a text snapshot used as an extraction fallback.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
