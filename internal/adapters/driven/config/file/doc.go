// Package file keeps quickread settings in ~/.quickread/config.toml.
//
// ConfigStore reads and writes the file; Watcher reloads it after
// external edits so a running reader sees the new values.
package file
