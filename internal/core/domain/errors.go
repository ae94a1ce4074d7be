package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates there is no normaliser for a content type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Extraction Errors.

	// ErrNoContent indicates extraction produced no readable words.
	ErrNoContent = errors.New("no readable content found")

	// ErrInvalidSource indicates the source locator could not be used.
	ErrInvalidSource = errors.New("invalid source")

	// Browser Errors.

	// ErrNoBrowserFound indicates no frontmost application could be identified.
	ErrNoBrowserFound = errors.New("no supported browser is active")

	// ErrNoURLFound indicates the browser returned no URL for its active tab.
	ErrNoURLFound = errors.New("could not get the URL from the active browser tab")
)

// FetchError indicates a document could not be retrieved.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	return "failed to fetch page: " + e.Reason
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError builds a FetchError from a reason and optional cause.
func NewFetchError(reason string, cause error) *FetchError {
	return &FetchError{Reason: reason, Err: cause}
}

// UnsupportedBrowserError indicates the frontmost application is not a usable browser.
type UnsupportedBrowserError struct {
	Name string
}

func (e *UnsupportedBrowserError) Error() string {
	return fmt.Sprintf("'%s' is not a supported browser", e.Name)
}

// ScriptError indicates the browser automation script failed.
type ScriptError struct {
	Reason string
}

func (e *ScriptError) Error() string {
	return "browser script error: " + e.Reason
}

// DynamicPageError indicates a page renders its text with scripts, so the
// user has to copy the text before it can be read.
type DynamicPageError struct {
	Host string
}

func (e *DynamicPageError) Error() string {
	return fmt.Sprintf("%s loads content dynamically: select and copy the text you want to read, then try again", e.Host)
}

// IsExtractionError reports whether err belongs to the extraction family
// (fetch failure, no content, invalid source).
func IsExtractionError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) ||
		errors.Is(err, ErrNoContent) ||
		errors.Is(err, ErrInvalidSource)
}

// IsBridgeError reports whether err came from the browser bridge.
func IsBridgeError(err error) bool {
	var unsupported *UnsupportedBrowserError
	var script *ScriptError
	return errors.Is(err, ErrNoBrowserFound) ||
		errors.Is(err, ErrNoURLFound) ||
		errors.As(err, &unsupported) ||
		errors.As(err, &script)
}
