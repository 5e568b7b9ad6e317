package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashlingo/internal/content"
	engine "github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
	examscreen "github.com/abhisek/flashlingo/internal/screens/exam"
	"github.com/abhisek/flashlingo/internal/screens/home"
	"github.com/abhisek/flashlingo/internal/screens/sets"
	"github.com/abhisek/flashlingo/internal/screens/welcome"
	"github.com/abhisek/flashlingo/internal/tutor"
	"github.com/abhisek/flashlingo/internal/ui/layout"
)

// Deps holds everything the TUI needs from the command layer.
type Deps struct {
	Catalog *content.Catalog
	Loader  engine.Loader

	// Tutor may be nil; explanations are then hidden.
	Tutor  *tutor.Service
	Logger *slog.Logger

	// Language preselects a language on the home screen.
	Language string

	// SetID, when set, opens directly on that exam above the home screen.
	SetID engine.SetID

	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel wires the screen factories and builds the initial stack.
func newAppModel(deps Deps) AppModel {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	openExam := func(id engine.SetID) screen.Screen {
		return examscreen.New(deps.Loader, id, examscreen.Options{
			Tutor:  deps.Tutor,
			Logger: logger,
		})
	}
	openSets := func(lang string) screen.Screen {
		return sets.New(lang, deps.Catalog.Sets(lang), openExam)
	}
	newHome := func() screen.Screen {
		return home.New(deps.Catalog, home.Options{
			OpenSets:     openSets,
			TutorEnabled: deps.Tutor.LLMEnabled(),
			Language:     deps.Language,
		})
	}

	var root screen.Screen
	if deps.SkipWelcome || !deps.SetID.IsZero() {
		root = newHome()
	} else {
		root = welcome.New(newHome)
	}

	r := router.New(root)
	initCmd := root.Init()
	if !deps.SetID.IsZero() {
		direct := examscreen.New(deps.Loader, deps.SetID, examscreen.Options{
			Tutor:     deps.Tutor,
			Logger:    logger,
			AutoStart: true,
		})
		initCmd = tea.Batch(initCmd, r.Push(direct))
	}

	return AppModel{router: r, initCmd: initCmd}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
