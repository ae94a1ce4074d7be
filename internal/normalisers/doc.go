// Package normalisers provides implementations of the Normaliser interface
// for the formats a reader can open. Each normaliser turns one MIME type
// into a title and single-space separated text.
//
// Normalisers are registered with the Registry at startup.
package normalisers
