package history

import "errors"

// ErrNoHistoryService is returned when the history service is nil.
var ErrNoHistoryService = errors.New("history service is required")
