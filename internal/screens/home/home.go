package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashlingo/internal/content"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
	"github.com/abhisek/flashlingo/internal/ui/components"
	"github.com/abhisek/flashlingo/internal/ui/layout"
)

// NoExamsNote is shown for a language whose catalog entry has no sets.
const NoExamsNote = "No exam available for this language."

// Options configures the home screen.
type Options struct {
	// OpenSets builds the set list for a language.
	OpenSets func(lang string) screen.Screen

	// TutorEnabled hides the API key hint when an LLM provider is configured.
	TutorEnabled bool

	// Language preselects a language in the menu.
	Language string
}

// HomeScreen lists the study languages of the catalog.
type HomeScreen struct {
	menu       components.Menu
	labels     []string
	empty      []bool
	languages  int
	exams      int
	tutorReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for catalog.
func New(catalog *content.Catalog, opts Options) *HomeScreen {
	h := &HomeScreen{tutorReady: opts.TutorEnabled}

	var items []components.MenuItem
	selected := 0
	for _, lang := range catalog.LanguageNames() {
		n := len(catalog.Sets(lang))
		h.languages++
		h.exams += n

		if lang == opts.Language {
			selected = len(items)
		}
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(lang),
			Note:   examsNote(n),
			Action: openSets(opts.OpenSets, lang),
		})
		h.empty = append(h.empty, n == 0)
	}
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})
	h.empty = append(h.empty, false)

	for _, item := range items {
		h.labels = append(h.labels, item.Label)
	}
	h.menu = components.NewMenu(items)
	h.menu.Selected = selected
	return h
}

func openSets(factory func(string) screen.Screen, lang string) func() tea.Cmd {
	return func() tea.Cmd {
		if factory == nil {
			return nil
		}
		next := factory(lang)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func examsNote(n int) string {
	switch n {
	case 0:
		return NoExamsNote
	case 1:
		return "1 exam"
	default:
		return fmt.Sprintf("%d exams", n)
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
	}
}

// Selected returns the label and note of the item under the cursor.
func (h *HomeScreen) Selected() (label, note string) {
	item, ok := h.menu.Current()
	if !ok {
		return "", ""
	}
	return item.Label, item.Note
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	termHeight := height + 8
	compact := termHeight < 32 || width < 90

	cw := components.ContentWidth(width)
	empty := h.empty[h.menu.Selected]

	sections := []string{renderTitle(cw, compact)}

	if !compact {
		variant := CardIdle
		if empty {
			variant = CardEmpty
		}
		sections = append(sections, renderCardBox(variant, cw))
	}

	sections = append(sections,
		renderStatsBar(h.languages, h.exams, cw, compact),
		renderMenu(h.labels, h.menu.Selected, cw, compact),
	)

	if _, note := h.Selected(); note != "" {
		sections = append(sections, renderNote(note, empty, cw))
	}
	if !h.tutorReady {
		sections = append(sections, renderTutorBanner(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
