// Package testing drives a simulated full-screen session for end-to-end tests.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/stretchr/testify/require"
	"github.com/voidbrain/webcli/cmd/events"
	"github.com/voidbrain/webcli/cmd/tui"
	"github.com/voidbrain/webcli/pkg/settings"
	"github.com/voidbrain/webcli/pkg/terminal"
)

// EnvEnable must be set for simulated-screen tests to run. The gocui
// simulator shares global screen state and is racy under -race.
const EnvEnable = "WEBCLI_TUI_TESTS"

// TUIDriver types into a running App and reads back its views.
type TUIDriver struct {
	testingScreen gocui.TestingScreen
	app           *tui.App
	store         settings.Store
	cleanup       func()
	t             *testing.T
}

// NewTUIDriver starts an App on the simulator with a private settings file.
func NewTUIDriver(t *testing.T, opts ...terminal.Option) *TUIDriver {
	t.Helper()
	if os.Getenv(EnvEnable) == "" {
		t.Skipf("set %s=1 to run simulated screen tests", EnvEnable)
	}

	bus := events.NewCommandEventBus()
	store, err := settings.NewFileStore(filepath.Join(t.TempDir(), "settings.json"), bus)
	require.NoError(t, err)

	machine := terminal.NewMachine(append([]terminal.Option{terminal.WithSettings(store)}, opts...)...)
	app, err := tui.NewAppWithOutputMode(machine, store, bus, gocui.OutputSimulator)
	require.NoError(t, err)

	testingScreen := app.GetGui().GetTestingScreen()
	stop := testingScreen.StartGui()
	testingScreen.WaitSync()

	d := &TUIDriver{
		testingScreen: testingScreen,
		app:           app,
		store:         store,
		t:             t,
		cleanup: func() {
			stop()
			app.Close()
		},
	}
	t.Cleanup(d.Close)
	return d
}

func (d *TUIDriver) Close() {
	if d.cleanup != nil {
		d.cleanup()
		d.cleanup = nil
	}
}

// Store returns the settings store behind the session.
func (d *TUIDriver) Store() settings.Store {
	return d.store
}

// Type sends text as individual key presses.
func (d *TUIDriver) Type(text string) *TUIDriver {
	d.testingScreen.SendStringAsKeys(text)
	d.testingScreen.WaitSync()
	return d
}

func (d *TUIDriver) PressEnter() *TUIDriver {
	d.testingScreen.SendKeySync(gocui.KeyEnter)
	return d
}

func (d *TUIDriver) PressTab() *TUIDriver {
	d.testingScreen.SendKeySync(gocui.KeyTab)
	return d
}

func (d *TUIDriver) PressArrowUp() *TUIDriver {
	d.testingScreen.SendKeySync(gocui.KeyArrowUp)
	return d
}

func (d *TUIDriver) PressBackspace() *TUIDriver {
	d.testingScreen.SendKeySync(gocui.KeyBackspace2)
	return d
}

// Submit types line and presses Enter.
func (d *TUIDriver) Submit(line string) *TUIDriver {
	return d.Type(line).PressEnter()
}

// Terminal returns the text of the terminal view.
func (d *TUIDriver) Terminal() string {
	d.testingScreen.WaitSync()
	content, err := d.testingScreen.GetViewContent(tui.ViewTerminal)
	require.NoError(d.t, err)
	return content
}

// Status returns the text of the status bar.
func (d *TUIDriver) Status() string {
	d.testingScreen.WaitSync()
	content, err := d.testingScreen.GetViewContent(tui.ViewStatus)
	require.NoError(d.t, err)
	return strings.TrimSpace(content)
}

// Eventually polls the status bar until it contains want.
func (d *TUIDriver) EventuallyStatus(want string, timeout time.Duration) {
	d.t.Helper()
	require.Eventually(d.t, func() bool {
		return strings.Contains(d.Status(), want)
	}, timeout, 10*time.Millisecond, "status never showed %q", want)
}
