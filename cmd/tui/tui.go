package tui

// TUI runs one full-screen session.
type TUI struct {
	app *App
}

func New(app *App) *TUI {
	return &TUI{app: app}
}

// Start blocks until the user quits. Quitting is not an error.
func (t *TUI) Start() error {
	return t.app.Run()
}

func (t *TUI) Stop() {
	t.app.Close()
}
