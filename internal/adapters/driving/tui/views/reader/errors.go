package reader

import "errors"

// ErrNoReaderService is returned when the reader service is nil.
var ErrNoReaderService = errors.New("reader service is required")
