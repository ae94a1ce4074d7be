// Package fetch provides the HTTP implementation of driven.Fetcher.
//
// Responses are bounded in size and time, throttled per host and
// converted to UTF-8 from whatever encoding the server or page declares.
package fetch
