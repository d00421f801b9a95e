package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// MenuKeyMap defines the key bindings for selection menus.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// speedOption is one entry of the speed menu.
type speedOption struct {
	preset config.SpeedPreset
	label  string
}

var speedOptions = []speedOption{
	{config.SpeedEasy, "Easy    (800ms per row)"},
	{config.SpeedNormal, "Normal  (500ms per row)"},
	{config.SpeedHard, "Hard    (300ms per row)"},
	{config.SpeedFixed, "Config  (interval from config file)"},
}

// SpeedMenuModel lets users choose the gravity speed before a game.
type SpeedMenuModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected config.SpeedPreset
	quitting bool
}

// NewSpeedMenuModel creates a speed menu with Normal highlighted.
func NewSpeedMenuModel(width, height int) SpeedMenuModel {
	return SpeedMenuModel{
		cursor: 1,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m SpeedMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpeedMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(speedOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = speedOptions[m.cursor].preset
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the speed selection.
func (m SpeedMenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L O C K S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select speed:", m.width))
	b.WriteString("\n\n")

	for i, opt := range speedOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-36s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m SpeedMenuModel) Selected() config.SpeedPreset {
	return m.selected
}

// RunSpeedMenu shows the speed menu and returns the chosen preset.
// Returns "" if the user quit.
func RunSpeedMenu(width, height int) (config.SpeedPreset, error) {
	p := tea.NewProgram(
		NewSpeedMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(SpeedMenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
