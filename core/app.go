package core

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// TabActivator is implemented by tabs that run a side effect when they
// become the active tab. The profit tab recalculates its sheet here.
type TabActivator interface {
	OnActivate(m *Model) tea.Cmd
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

type AppData struct {
	Enterprises int
	Accounts    int
	Rankings    int
	Figures     int
}

type Model struct {
	width               int
	height              int
	tabs                []Tab
	activeTab           int
	menu                MenuBar
	screens             ScreenStack
	keys                *KeyRegistry
	commands            *CommandRegistry
	status              string
	statusErr           bool
	quitting            bool
	Data                AppData
	DB                  *sql.DB
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, menu MenuBar, db *sql.DB, data AppData) Model {
	m := Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		menu:      menu,
		DB:        db,
		Data:      data,
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.menu.OpenIndex() >= 0 {
		return "menu"
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTabIndex() int { return m.activeTab }

// SwitchTab makes index the single active tab and fires its activation hook.
// Out-of-range requests change nothing.
func (m *Model) SwitchTab(index int) tea.Cmd {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	m.activeTab = index
	if activator, ok := m.tabs[index].(TabActivator); ok {
		return activator.OnActivate(m)
	}
	return nil
}

func (m *Model) Menu() *MenuBar { return &m.menu }

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}
