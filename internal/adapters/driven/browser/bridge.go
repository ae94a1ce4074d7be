package browser

import (
	"context"
	"fmt"
	"net/url"
	"runtime"
	"strings"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Ensure Bridge implements the interface.
var _ driven.BrowserBridge = (*Bridge)(nil)

// Browser is a supported browser.
type Browser struct {
	// BundleID is the macOS bundle identifier.
	BundleID string

	// Name is the application name used in scripts.
	Name string

	// WebKit marks Safari-style scripting ("current tab") instead of
	// Chromium-style ("active tab").
	WebKit bool
}

// Supported lists known browsers in preference order.
var Supported = []Browser{
	{BundleID: "com.apple.Safari", Name: "Safari", WebKit: true},
	{BundleID: "com.google.Chrome", Name: "Google Chrome"},
	{BundleID: "company.thebrowser.Browser", Name: "Arc"},
	{BundleID: "com.brave.Browser", Name: "Brave Browser"},
	{BundleID: "com.microsoft.edgemac", Name: "Microsoft Edge"},
	{BundleID: "com.operasoftware.Opera", Name: "Opera"},
	{BundleID: "com.vivaldi.Vivaldi", Name: "Vivaldi"},
	{BundleID: "com.openai.chat", Name: "ChatGPT Atlas"},
	{BundleID: "com.openai.chatgpt-atlas", Name: "ChatGPT Atlas"},
	{BundleID: "build.dia", Name: "Dia"},
	{BundleID: "com.commet.browser", Name: "Commet"},
}

const frontmostScript = `tell application "System Events"
	set frontApp to first application process whose frontmost is true
	return (bundle identifier of frontApp) & linefeed & (name of frontApp)
end tell`

const runningScript = `tell application "System Events" to get bundle identifier of every application process whose background only is false`

// Bridge asks the frontmost browser for its active tab URL.
//
// When the frontmost application is not a known browser, which is the
// usual case when invoked from a terminal, the first running supported
// browser is used instead. Only if none is running is the frontmost
// application tried with a generic Chromium script.
type Bridge struct {
	runner CommandRunner
	goos   string
}

// NewBridge creates a Bridge that shells out to osascript.
func NewBridge() *Bridge {
	return NewBridgeWithRunner(ExecRunner{}, runtime.GOOS)
}

// NewBridgeWithRunner creates a Bridge with an injected runner and platform.
func NewBridgeWithRunner(runner CommandRunner, goos string) *Bridge {
	return &Bridge{runner: runner, goos: goos}
}

// ActiveTabURL returns the URL of the active tab.
func (b *Bridge) ActiveTabURL(ctx context.Context) (string, error) {
	if b.goos != "darwin" {
		return "", fmt.Errorf("%w: reading the active tab requires macOS", domain.ErrNoBrowserFound)
	}

	bundleID, appName, err := b.frontmost(ctx)
	if err != nil {
		return "", err
	}
	logger.Debug("frontmost application: %s (%s)", appName, bundleID)

	if browser, ok := lookup(bundleID); ok {
		return b.tabURL(ctx, browser)
	}

	if browser, ok := b.firstRunning(ctx); ok {
		logger.Debug("frontmost app is not a browser, using running %s", browser.Name)
		return b.tabURL(ctx, browser)
	}

	u, err := b.tabURL(ctx, Browser{Name: appName})
	if err != nil {
		logger.Debug("generic script failed for %s: %v", appName, err)
		return "", &domain.UnsupportedBrowserError{Name: appName}
	}
	return u, nil
}

func (b *Bridge) frontmost(ctx context.Context) (bundleID, name string, err error) {
	out, err := b.osascript(ctx, frontmostScript)
	if err != nil {
		return "", "", err
	}
	bundleID, name, _ = strings.Cut(out, "\n")
	bundleID = strings.TrimSpace(bundleID)
	name = strings.TrimSpace(name)
	if bundleID == "" || bundleID == "missing value" {
		return "", "", domain.ErrNoBrowserFound
	}
	if name == "" {
		name = "Unknown"
	}
	return bundleID, name, nil
}

// firstRunning returns the most preferred supported browser that is running.
// Failures to list processes are treated as none running.
func (b *Bridge) firstRunning(ctx context.Context) (Browser, bool) {
	out, err := b.osascript(ctx, runningScript)
	if err != nil {
		logger.Debug("list running applications: %v", err)
		return Browser{}, false
	}

	running := make(map[string]bool)
	for _, id := range strings.Split(out, ",") {
		running[strings.TrimSpace(id)] = true
	}
	for _, browser := range Supported {
		if running[browser.BundleID] {
			return browser, true
		}
	}
	return Browser{}, false
}

func (b *Bridge) tabURL(ctx context.Context, browser Browser) (string, error) {
	out, err := b.osascript(ctx, tabScript(browser))
	if err != nil {
		return "", err
	}
	if out == "" || out == "missing value" {
		return "", domain.ErrNoURLFound
	}
	if _, err := url.Parse(out); err != nil {
		return "", domain.ErrNoURLFound
	}
	return out, nil
}

func (b *Bridge) osascript(ctx context.Context, script string) (string, error) {
	out, err := b.runner.Run(ctx, "osascript", "-e", script)
	if err != nil {
		return "", &domain.ScriptError{Reason: err.Error()}
	}
	return out, nil
}

func lookup(bundleID string) (Browser, bool) {
	for _, browser := range Supported {
		if browser.BundleID == bundleID {
			return browser, true
		}
	}
	return Browser{}, false
}

// tabScript returns the AppleScript reading the active tab of browser's
// front window, or an empty string when it has no windows.
func tabScript(browser Browser) string {
	tab := "active tab"
	if browser.WebKit {
		tab = "current tab"
	}
	return fmt.Sprintf(`tell application %q
	if (count of windows) > 0 then
		return URL of %s of front window
	end if
end tell
return ""`, browser.Name, tab)
}
