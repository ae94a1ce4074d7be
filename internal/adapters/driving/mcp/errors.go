// Package mcp provides an MCP (Model Context Protocol) server adapter for quickread.
// It lets AI assistants extract readable article text and browse reading history.
package mcp

import "errors"

// ErrMissingCaptureService is returned when the capture service is not provided.
var ErrMissingCaptureService = errors.New("mcp: capture service is required")
