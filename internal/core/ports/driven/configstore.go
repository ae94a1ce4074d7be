package driven

// ConfigStore holds the user's reader settings as flat dotted keys that
// mirror the TOML tables, e.g. "reading.rate_wpm" or "countdown.on_resume".
// A missing key means the default from domain.DefaultAppSettings applies.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns key as a string, or "" when unset or not a string.
	GetString(key string) string

	// GetInt returns key as an int, or 0 when unset or not numeric.
	GetInt(key string) int

	// GetBool returns key as a bool, or false when unset or not a bool.
	GetBool(key string) bool

	// Set records a value. File-backed stores write it through at once.
	Set(key string, value any) error

	// Delete unsets key so its default applies again.
	Delete(key string) error

	// Save writes all values to the backing file, if any.
	Save() error

	// Load rereads the backing file, picking up edits made outside quickread.
	Load() error

	// Path is the backing file, or a marker such as ":memory:".
	Path() string
}
