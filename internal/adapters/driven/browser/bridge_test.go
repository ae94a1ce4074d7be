package browser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// fakeRunner answers osascript calls by matching the script text.
type fakeRunner struct {
	frontmost    string
	frontmostErr error
	running      string
	runningErr   error
	tabs         map[string]string // application name -> URL
	tabErr       error
	scripts      []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	if name != "osascript" || len(args) != 2 || args[0] != "-e" {
		return "", errors.New("unexpected command")
	}
	script := args[1]
	f.scripts = append(f.scripts, script)

	switch {
	case script == frontmostScript:
		return f.frontmost, f.frontmostErr
	case script == runningScript:
		return f.running, f.runningErr
	}
	if f.tabErr != nil {
		return "", f.tabErr
	}
	for app, u := range f.tabs {
		if strings.Contains(script, `tell application "`+app+`"`) {
			return u, nil
		}
	}
	return "", errors.New("application not scriptable")
}

func TestBridge_NonDarwin(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{}, "linux")

	_, err := b.ActiveTabURL(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoBrowserFound)
	assert.True(t, domain.IsBridgeError(err))
}

func TestBridge_FrontmostKnownBrowser(t *testing.T) {
	tests := []struct {
		name     string
		bundleID string
		app      string
		wantTab  string
	}{
		{"safari uses current tab", "com.apple.Safari", "Safari", "current tab"},
		{"chrome uses active tab", "com.google.Chrome", "Google Chrome", "active tab"},
		{"arc", "company.thebrowser.Browser", "Arc", "active tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{
				frontmost: tt.bundleID + "\n" + tt.app,
				tabs:      map[string]string{tt.app: "https://example.com/article"},
			}
			b := NewBridgeWithRunner(runner, "darwin")

			u, err := b.ActiveTabURL(context.Background())

			require.NoError(t, err)
			assert.Equal(t, "https://example.com/article", u)
			assert.Contains(t, runner.scripts[len(runner.scripts)-1], tt.wantTab)
		})
	}
}

func TestBridge_TerminalFrontmostUsesRunningBrowser(t *testing.T) {
	runner := &fakeRunner{
		frontmost: "com.apple.Terminal\nTerminal",
		running:   "com.apple.finder, com.brave.Browser, com.google.Chrome, com.apple.Terminal",
		tabs: map[string]string{
			"Google Chrome": "https://chrome.example.com",
			"Brave Browser": "https://brave.example.com",
		},
	}
	b := NewBridgeWithRunner(runner, "darwin")

	u, err := b.ActiveTabURL(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://chrome.example.com", u, "preference order wins over process order")
}

func TestBridge_UnknownAppGenericScript(t *testing.T) {
	runner := &fakeRunner{
		frontmost: "org.example.Chromish\nChromish",
		running:   "org.example.Chromish",
		tabs:      map[string]string{"Chromish": "https://example.com/generic"},
	}
	b := NewBridgeWithRunner(runner, "darwin")

	u, err := b.ActiveTabURL(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/generic", u)
}

func TestBridge_UnsupportedBrowser(t *testing.T) {
	runner := &fakeRunner{
		frontmost:  "com.apple.Notes\nNotes",
		runningErr: errors.New("not allowed"),
	}
	b := NewBridgeWithRunner(runner, "darwin")

	_, err := b.ActiveTabURL(context.Background())

	var unsupported *domain.UnsupportedBrowserError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Notes", unsupported.Name)
	assert.True(t, domain.IsBridgeError(err))
}

func TestBridge_NoWindows(t *testing.T) {
	runner := &fakeRunner{
		frontmost: "com.apple.Safari\nSafari",
		tabs:      map[string]string{"Safari": ""},
	}
	b := NewBridgeWithRunner(runner, "darwin")

	_, err := b.ActiveTabURL(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoURLFound)
}

func TestBridge_MissingFrontmost(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{frontmost: "missing value\n"}, "darwin")

	_, err := b.ActiveTabURL(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoBrowserFound)
}

func TestBridge_ScriptFailure(t *testing.T) {
	runner := &fakeRunner{frontmostErr: errors.New("execution error: not authorised (-1743)")}
	b := NewBridgeWithRunner(runner, "darwin")

	_, err := b.ActiveTabURL(context.Background())

	var scriptErr *domain.ScriptError
	require.True(t, errors.As(err, &scriptErr))
	assert.Contains(t, scriptErr.Reason, "-1743")
}

func TestBridge_TabScriptFailure(t *testing.T) {
	runner := &fakeRunner{
		frontmost: "com.google.Chrome\nGoogle Chrome",
		tabErr:    errors.New("Chrome got an error"),
	}
	b := NewBridgeWithRunner(runner, "darwin")

	_, err := b.ActiveTabURL(context.Background())

	var scriptErr *domain.ScriptError
	assert.True(t, errors.As(err, &scriptErr))
}

func TestTabScript(t *testing.T) {
	script := tabScript(Browser{Name: "Google Chrome"})

	assert.Contains(t, script, `tell application "Google Chrome"`)
	assert.Contains(t, script, "URL of active tab of front window")
	assert.Contains(t, script, `return ""`)
}

func TestSupportedBundleIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Supported {
		assert.False(t, seen[b.BundleID], b.BundleID)
		seen[b.BundleID] = true
	}
}
