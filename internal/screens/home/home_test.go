package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/flashlingo/internal/content"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
)

type stubScreen struct{ lang string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.lang }
func (s *stubScreen) Title() string                           { return "Sets" }

func newTestHome(opts Options) (*HomeScreen, *[]string) {
	var opened []string
	opts.OpenSets = func(lang string) screen.Screen {
		opened = append(opened, lang)
		return &stubScreen{lang: lang}
	}
	return New(content.DefaultCatalog(), opts), &opened
}

func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }
func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestHome_ListsCatalogLanguages(t *testing.T) {
	h, _ := newTestHome(Options{})

	assert.Equal(t, []string{"ENGLISH", "GERMANY", "RUSSION", "FRENCH", "EXIT"}, h.labels)
	label, note := h.Selected()
	assert.Equal(t, "ENGLISH", label)
	assert.Equal(t, "10 exams", note)

	view := h.View(100, 40)
	assert.Contains(t, view, "4 LANGUAGES")
	assert.Contains(t, view, "10 EXAMS")
}

func TestHome_EmptyLanguageNote(t *testing.T) {
	h, _ := newTestHome(Options{})

	h.Update(down())
	label, note := h.Selected()
	assert.Equal(t, "GERMANY", label)
	assert.Equal(t, NoExamsNote, note)
	assert.Contains(t, h.View(100, 40), NoExamsNote)
}

func TestHome_EnterOpensSets(t *testing.T) {
	h, opened := newTestHome(Options{})

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "english", msg.Screen.View(0, 0))
	assert.Equal(t, []string{"english"}, *opened)
}

func TestHome_PreselectsLanguage(t *testing.T) {
	h, opened := newTestHome(Options{Language: "french"})

	label, _ := h.Selected()
	assert.Equal(t, "FRENCH", label)

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"french"}, *opened)
}

func TestHome_Exit(t *testing.T) {
	h, _ := newTestHome(Options{})
	for range 4 {
		h.Update(down())
	}

	label, note := h.Selected()
	assert.Equal(t, "EXIT", label)
	assert.Empty(t, note)

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_TutorBanner(t *testing.T) {
	off, _ := newTestHome(Options{})
	assert.Contains(t, off.View(100, 40), "Set an LLM API key")

	on, _ := newTestHome(Options{TutorEnabled: true})
	assert.NotContains(t, on.View(100, 40), "Set an LLM API key")
}

func TestExamsNote(t *testing.T) {
	assert.Equal(t, NoExamsNote, examsNote(0))
	assert.Equal(t, "1 exam", examsNote(1))
	assert.Equal(t, "3 exams", examsNote(3))
}
