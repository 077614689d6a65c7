package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/awesome-gocui/gocui"
	"github.com/google/uuid"
	"github.com/voidbrain/webcli/cmd/events"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/settings"
	"github.com/voidbrain/webcli/pkg/terminal"
	"github.com/voidbrain/webcli/pkg/theme"
	"github.com/voidbrain/webcli/pkg/version"
)

// App is the full-screen terminal: one framed view driven by a
// terminal.Engine and a status bar showing the current settings.
type App struct {
	gui       *gocui.Gui
	engine    *terminal.Engine
	screen    *Screen
	editor    *Editor
	clipboard Clipboard
	store     settings.Store
	bus       *events.CommandEventBus
	logger    logging.Logger
	sessionID string

	mu          sync.Mutex
	current     settings.Settings
	palette     theme.Palette
	unsubscribe func()

	keybindingsSetup bool
}

func NewApp(machine *terminal.Machine, store settings.Store, bus *events.CommandEventBus, cfg config.Config) (*App, error) {
	return NewAppWithOutputMode(machine, store, bus, ParseOutputMode(cfg.OutputMode))
}

// NewAppWithOutputMode creates the app on a gocui screen of the given mode.
// Tests use gocui.OutputSimulator.
func NewAppWithOutputMode(machine *terminal.Machine, store settings.Store, bus *events.CommandEventBus, mode gocui.OutputMode) (*App, error) {
	// The standard logger would scribble over the screen.
	log.SetOutput(io.Discard)

	g, err := gocui.NewGui(mode, true)
	if err != nil {
		return nil, fmt.Errorf("failed to start screen: %w", err)
	}

	sessionID := uuid.New().String()
	app := &App{
		gui:       g,
		screen:    NewScreen(DefaultScrollback),
		clipboard: NewClipboard(),
		store:     store,
		bus:       bus,
		sessionID: sessionID,
		logger:    logging.NewSessionLogger("tui", sessionID),
		current:   settings.Defaults(),
	}
	if store != nil {
		app.current = store.Snapshot()
	}
	app.palette = theme.For(app.current)

	opts := []terminal.EngineOption{terminal.WithLogger(app.logger)}
	if store != nil {
		opts = append(opts, terminal.WithSettingsWriter(store))
	}
	app.engine = terminal.NewEngine(app.screen, machine, opts...)
	app.editor = NewEditor(app.engine, app.clipboard, app.logger)

	if bus != nil {
		app.unsubscribe = bus.SubscribeSettings(func(s settings.Settings) {
			app.PostUIUpdate(func() { app.applySettings(s) })
		})
	}

	g.Cursor = true
	g.SetManagerFunc(func(gui *gocui.Gui) error {
		if err := app.layout(gui); err != nil {
			return err
		}
		if !app.keybindingsSetup {
			if err := app.setupKeybindings(); err != nil {
				return err
			}
			app.keybindingsSetup = true
		}
		return nil
	})

	app.logger.Info("session started", "version", version.GetInfo().ShortString())
	return app, nil
}

func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < 4 || maxY < 4 {
		return nil
	}
	dims := arrange(maxX, maxY)
	palette := app.Palette()

	term := dims[ViewTerminal]
	v, err := g.SetView(ViewTerminal, term.X0, term.Y0, term.X1-1, term.Y1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Title = " " + version.GetInfo().ShortString() + " "
		v.Editable = true
		v.Editor = app.editor
		v.Wrap = false
		if _, err := g.SetCurrentView(ViewTerminal); err != nil {
			return err
		}
	}
	v.BgColor = gocui.GetColor(palette.Background)
	v.FgColor = gocui.GetColor(palette.Foreground)
	v.SelBgColor = gocui.GetColor(palette.SelectionBackground)
	v.SelFgColor = gocui.GetColor(palette.SelectionForeground)
	g.FrameColor = gocui.GetColor(palette.Muted())
	g.SelFrameColor = gocui.GetColor(palette.Cursor)
	if err := app.screen.Render(v); err != nil {
		return err
	}

	// Frameless: widen by one cell on every side so the content row lands
	// on the arranged line.
	status := dims[ViewStatus]
	sv, err := g.SetView(ViewStatus, status.X0-1, status.Y0-1, status.X1+1, status.Y1+1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Frame = false
	sv.BgColor = gocui.GetColor(palette.Background)
	sv.FgColor = gocui.GetColor(palette.Muted())
	sv.Clear()
	fmt.Fprint(sv, app.StatusLine())
	return nil
}

func (app *App) setupKeybindings() error {
	bindings := []struct {
		key     gocui.Key
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }},
		{gocui.KeyCtrlY, func(*gocui.Gui, *gocui.View) error { return app.copyTranscript() }},
	}
	for _, b := range bindings {
		if err := app.gui.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

// copyTranscript puts the visible text on the system clipboard. Failures
// are logged only; a missing clipboard must not end the session.
func (app *App) copyTranscript() error {
	if err := app.clipboard.Copy(app.screen.Text()); err != nil {
		app.logger.Warn("clipboard copy failed", "error", err)
	}
	return nil
}

func (app *App) applySettings(s settings.Settings) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.current = s
	app.palette = theme.For(s)
	app.logger.Debug("settings applied", "settings", s.String())
}

// Palette returns the colors currently in use.
func (app *App) Palette() theme.Palette {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.palette
}

// StatusLine renders the status bar text.
func (app *App) StatusLine() string {
	app.mu.Lock()
	s := app.current
	app.mu.Unlock()
	return fmt.Sprintf(" %s | session %s | ctrl+y copy | ctrl+c quit", s.String(), app.sessionID[:8])
}

// Screen exposes the rendered session for inspection.
func (app *App) Screen() *Screen {
	return app.screen
}

func (app *App) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()

	go func() {
		if _, ok := <-sigChan; ok {
			app.gui.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		}
	}()

	err := app.gui.MainLoop()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

func (app *App) Close() {
	if app.unsubscribe != nil {
		app.unsubscribe()
		app.unsubscribe = nil
	}
	app.gui.Close()
	app.logger.Info("session closed")
}

// PostUIUpdate runs fn on the gui goroutine and redraws.
func (app *App) PostUIUpdate(fn func()) {
	app.gui.Update(func(*gocui.Gui) error {
		fn()
		return nil
	})
}

func (app *App) GetGui() *gocui.Gui {
	return app.gui
}
