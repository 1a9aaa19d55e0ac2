/*
Package tui implements the interactive terminal picker.

The model is a thin shell over the picker engine: the query box drives
ComposeDisplay, arrow keys drive Navigate, and enter records the selected
glyph's use before quitting.
*/
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/khanglvm/glyphpick/internal/catalog"
	"github.com/khanglvm/glyphpick/internal/display"
	"github.com/khanglvm/glyphpick/internal/grid"
	"github.com/khanglvm/glyphpick/internal/picker"
)

// Model is the root Bubble Tea model for the picker.
type Model struct {
	engine *picker.Engine
	input  textinput.Model

	sections []display.Section
	flat     []catalog.Item
	selected int

	lastQuery string
	chosen    catalog.Item
	picked    bool
	quitting  bool
}

// NewModel creates the picker model with the browse view composed.
func NewModel(engine *picker.Engine) Model {
	input := textinput.New()
	input.Placeholder = "Search glyphs..."
	input.Prompt = "› "
	input.Focus()

	m := Model{
		engine: engine,
		input:  input,
	}
	m.recompose("")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		if item, ok := m.engine.ItemAt(m.selected); ok {
			m.chosen = item
			m.picked = true
			// Unknown items are impossible here; the flat list only
			// holds catalog items.
			_ = m.engine.RecordUse(item.ID, time.Now())
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		m.selected = m.engine.Navigate(grid.Up, m.selected)
		return m, nil
	case tea.KeyDown:
		m.selected = m.engine.Navigate(grid.Down, m.selected)
		return m, nil
	case tea.KeyLeft:
		m.selected = m.engine.Navigate(grid.Left, m.selected)
		return m, nil
	case tea.KeyRight:
		m.selected = m.engine.Navigate(grid.Right, m.selected)
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a message to the query box and recomposes when the
// query text changed.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != m.lastQuery {
		m.recompose(query)
	}
	return m, cmd
}

// recompose rebuilds sections, flat list, and selection for a query.
func (m *Model) recompose(query string) {
	m.sections, m.flat, m.selected = m.engine.ComposeDisplay(query)
	m.lastQuery = query
}

// Chosen returns the picked item, if any.
func (m Model) Chosen() (catalog.Item, bool) {
	return m.chosen, m.picked
}

// Run opens the picker and blocks until the user selects a glyph or quits.
func Run(engine *picker.Engine) (catalog.Item, bool, error) {
	program := tea.NewProgram(NewModel(engine))
	final, err := program.Run()
	if err != nil {
		return catalog.Item{}, false, err
	}
	model, ok := final.(Model)
	if !ok {
		return catalog.Item{}, false, nil
	}
	item, picked := model.Chosen()
	return item, picked, nil
}
