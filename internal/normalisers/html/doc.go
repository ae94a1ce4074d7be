// Package html extracts a readable title and body text from an HTML page.
//
// Extraction is a fixed sequence of regex passes rather than a DOM parse:
// noise removal, content container selection, tag stripping, entity
// decoding and whitespace collapsing. Each pass is exported so it can be
// tested on its own.
package html
