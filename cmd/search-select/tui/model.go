package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/search-select/render"
	"github.com/ruminaider/search-select/searchselect"
)

// Model drives a searchselect.Widget from terminal input. The widget owns
// all selection state; the model only translates keys and mouse events and
// mirrors the search surface into a text input.
type Model struct {
	Title string

	widget *searchselect.Widget
	input  textinput.Model
	width  int
	height int

	// Submitted is set when the user confirmed the form with Enter while
	// the panel was closed.
	Submitted bool
	// Aborted is set on Ctrl+C, or Esc while the panel was closed.
	Aborted bool
}

// NewModel wraps w. The title is shown above the control.
func NewModel(title string, w *searchselect.Widget) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = w.SearchSurface().Placeholder
	ti.Width = DefaultPanelWidth - 2
	ti.SetValue(w.SearchSurface().Value)
	return Model{Title: title, widget: w, input: ti}
}

// Widget returns the wrapped widget.
func (m Model) Widget() *searchselect.Widget { return m.widget }

// Value returns the bound field's current value.
func (m Model) Value() string { return m.widget.Field().Value() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.panelWidth() - 2
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m.syncInput(), nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.widget
	if msg.String() == "ctrl+c" {
		m.Aborted = true
		return m, tea.Quit
	}

	if !w.IsOpen() {
		switch msg.String() {
		case "enter":
			m.Submitted = true
			return m, tea.Quit
		case "esc":
			m.Aborted = true
			return m, tea.Quit
		}
		if w.Field().Disabled {
			return m, nil
		}
		m.open()
		// Typed characters go on to the freshly opened search surface.
		if msg.Type != tea.KeyRunes {
			return m.syncInput(), nil
		}
	}

	ev := searchselect.KeyEvent{Key: keyOf(msg)}
	w.KeyDown(&ev)
	// Enter with nothing to commit leaves the panel open; keep typing
	// possible instead of leaving a blurred input behind.
	if ev.Key == searchselect.KeyEnter && w.IsOpen() {
		w.Focus()
	}
	if ev.DefaultPrevented() || !w.IsOpen() || ev.Key != searchselect.KeyOther {
		return m.syncInput(), nil
	}

	var cmd tea.Cmd
	m = m.syncInput()
	m.input, cmd = m.input.Update(msg)
	w.SetSearchText(m.input.Value())
	w.KeyUp(ev)
	return m, cmd
}

// open shows the panel the way a user would: focusing the inline field, or
// clicking the summary box.
func (m Model) open() {
	w := m.widget
	if w.Config().ShowInlineSearch {
		w.Focus()
		return
	}
	w.Click(w.Container().Query(searchselect.ClassDisplay))
}

func (m Model) updateMouse(msg tea.MouseMsg) {
	w := m.widget
	n := m.nodeAt(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if n == nil && w.IsOpen() {
				n = w.Container().Query(searchselect.ClassFillDismiss)
			}
			w.Click(n)
		case tea.MouseButtonWheelUp:
			if w.IsOpen() {
				w.Navigate(searchselect.Previous)
			}
		case tea.MouseButtonWheelDown:
			if w.IsOpen() {
				w.Navigate(searchselect.Next)
			}
		}
	case tea.MouseActionMotion:
		if n != nil {
			w.Hover(n)
		}
	}
}

// syncInput copies the widget's search surface into the text input. The
// widget clears or rewrites that text on open, close and commit.
func (m Model) syncInput() Model {
	s := m.widget.SearchSurface()
	if m.input.Value() != s.Value {
		m.input.SetValue(s.Value)
	}
	if s.Focused && m.widget.IsOpen() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) nodeAt(y int) *render.Node {
	lines := m.layout()
	if y < 0 || y >= len(lines) {
		return nil
	}
	return lines[y].node
}

func (m Model) panelWidth() int {
	if m.width <= 0 {
		return DefaultPanelWidth
	}
	return min(max(m.width-4, 10), 2*DefaultPanelWidth)
}

func keyOf(msg tea.KeyMsg) searchselect.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return searchselect.KeyEnter
	case tea.KeyEsc:
		return searchselect.KeyEscape
	case tea.KeyUp:
		return searchselect.KeyUp
	case tea.KeyDown:
		return searchselect.KeyDown
	}
	return searchselect.KeyOther
}
