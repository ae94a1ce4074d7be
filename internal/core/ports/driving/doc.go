// Package driving holds the use-case interfaces the CLI, TUI and MCP server
// call into: capturing articles, opening and dismissing readings, browsing
// history and changing settings.
//
// internal/core/services implements every interface here.
package driving
