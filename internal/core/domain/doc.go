// Package domain defines the core business entities for QuickRead.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: An extracted, tokenized piece of readable text
//   - ReadingSession: An Article paired with the last known word position
//   - AppSettings: Reader, countdown, resume and history preferences
//   - RawDocument: Opaque bytes from a fetcher or clipboard
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
